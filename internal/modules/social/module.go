package social

import (
	"image-board/internal/modules/social/handler"
	"image-board/internal/modules/social/repo"
	"image-board/internal/modules/social/service"
	platformservice "image-board/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, socialStore repo.SocialStore, images service.ImageLookup) *Module {
	moduleService := service.New(appService, socialStore, images)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
