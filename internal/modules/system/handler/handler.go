package handler

import (
	"image-board/internal/config"
	systemservice "image-board/internal/modules/system/service"
)

type Handler struct {
	systemService *systemservice.Service
	cfg           *config.Config
}

func New(systemService *systemservice.Service, cfg *config.Config) *Handler {
	return &Handler{systemService: systemService, cfg: cfg}
}
