package router

import (
	"image-board/internal/config"
	"image-board/internal/middleware"
	"image-board/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// registerStaticRoutes 本地存储时由本服务提供图片文件，S3 时图片地址直接指向对象存储
func registerStaticRoutes(r *gin.Engine, cfg *config.Config, appService *service.AppService) {
	if cfg.Storage.Provider != "" && cfg.Storage.Provider != "local" {
		return
	}
	if cfg.Storage.URLPrefix == "" || cfg.Storage.Path == "" {
		return
	}

	// 使用带缓存控制的静态文件服务
	r.Group(cfg.Storage.URLPrefix, middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(cfg.Storage.Path, false))
}
