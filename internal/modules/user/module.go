package user

import (
	"image-board/internal/modules/user/handler"
	"image-board/internal/modules/user/repo"
	"image-board/internal/modules/user/service"
	platformservice "image-board/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, imageLister service.ImageLister) *Module {
	moduleService := service.New(appService, userStore, imageLister)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
