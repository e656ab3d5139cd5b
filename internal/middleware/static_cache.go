package middleware

import (
	"image-board/internal/consts"
	"image-board/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为本地存储的图片添加 Cache-Control 头
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := appService.GetString(consts.ConfigStaticCacheControl); cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
