package service

import (
	"image-board/internal/config"
	"image-board/internal/modules/auth/repo"
	platformservice "image-board/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	cfg       *config.Config
	userStore repo.UserStore
}

func New(appService *platformservice.AppService, cfg *config.Config, userStore repo.UserStore) *Service {
	return &Service{
		AppService: appService,
		cfg:        cfg,
		userStore:  userStore,
	}
}
