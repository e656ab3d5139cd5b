package di

import (
	"image-board/internal/modules"
	"image-board/internal/platform/cache"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/router"
)

type Application struct {
	Router     *router.Router
	AppService *platformservice.AppService
	Modules    *modules.AppModules
	Redis      *cache.Redis
}

func NewApplication(r *router.Router, appService *platformservice.AppService, appModules *modules.AppModules, redisCache *cache.Redis) *Application {
	return &Application{
		Router:     r,
		AppService: appService,
		Modules:    appModules,
		Redis:      redisCache,
	}
}
