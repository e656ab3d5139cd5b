package handler

import (
	"image-board/internal/config"
	authservice "image-board/internal/modules/auth/service"
)

type Handler struct {
	authService *authservice.Service
	cfg         *config.Config
}

func New(authService *authservice.Service, cfg *config.Config) *Handler {
	return &Handler{authService: authService, cfg: cfg}
}
