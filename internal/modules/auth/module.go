package auth

import (
	"image-board/internal/config"
	"image-board/internal/modules/auth/handler"
	"image-board/internal/modules/auth/repo"
	"image-board/internal/modules/auth/service"
	platformservice "image-board/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, cfg *config.Config, userStore repo.UserStore) *Module {
	moduleService := service.New(appService, cfg, userStore)
	moduleHandler := handler.New(moduleService, cfg)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
