package system

import (
	"image-board/internal/config"
	"image-board/internal/modules/system/handler"
	"image-board/internal/modules/system/repo"
	"image-board/internal/modules/system/service"
	platformservice "image-board/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	storage service.StoragePurger,
	cfg *config.Config,
) *Module {
	moduleService := service.New(appService, systemStore, storage)
	moduleHandler := handler.New(moduleService, cfg)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
