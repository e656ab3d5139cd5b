package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"image-board/internal/consts"
	"image-board/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通请求的请求体大小，上传路由由 UploadBodyLimitMiddleware 处理
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasSuffix(c.Request.URL.Path, "/upload") {
			c.Next()
			return
		}

		maxSizeMB := appService.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 按 max_upload_size 限制上传请求体
func UploadBodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := appService.GetInt(consts.ConfigMaxUploadSize)
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		// multipart 头部额外留 1MB
		maxBytes := int64(maxSizeMB+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
