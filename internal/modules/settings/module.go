package settings

import (
	"image-board/internal/modules/settings/handler"
	"image-board/internal/modules/settings/repo"
	"image-board/internal/modules/settings/service"
	platformservice "image-board/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
