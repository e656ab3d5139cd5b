package router

import (
	"image-board/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(g *gin.RouterGroup, m *modules.AppModules) {
	g.POST("/delete_image/:id", m.Image.Handler.DeleteImage)
	g.GET("/recreate_image_versions", m.Image.Handler.RecreateVersions)
	g.GET("/update_exif", m.Image.Handler.UpdateExif)

	g.GET("/destroy", m.System.Handler.DestroyConfirm)
	g.POST("/destroy", m.System.Handler.Destroy)

	g.GET("/admin/stats", m.System.Handler.GetServerStats)
	g.GET("/admin/settings", m.Settings.Handler.GetSettings)
	g.PATCH("/admin/settings", m.Settings.Handler.UpdateSettings)
}
