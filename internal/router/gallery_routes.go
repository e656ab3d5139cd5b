package router

import (
	"image-board/internal/middleware"
	"image-board/internal/modules"
	"image-board/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerGalleryRoutes(g *gin.RouterGroup, uploadLimiter gin.HandlerFunc, appService *service.AppService, m *modules.AppModules) {
	g.GET("/images", m.Image.Handler.ListImages)
	g.GET("/images/:id", m.Image.Handler.GetImage)

	g.GET("/upload", m.Image.Handler.UploadForm)
	g.POST("/upload", uploadLimiter, middleware.UploadBodyLimitMiddleware(appService), m.Image.Handler.Upload)

	g.POST("/comments/:id", m.Social.Handler.PostComment)
	g.POST("/fav_image/:id", m.Social.Handler.Favorite)

	g.GET("/users", m.User.Handler.ListUsers)
	g.GET("/users/:id", m.User.Handler.GetUser)
	g.GET("/current_user_profile", m.User.Handler.CurrentUserProfile)
}
