package router

import (
	"image-board/internal/metrics"
	authhandler "image-board/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(r *gin.Engine, authLimiter gin.HandlerFunc, h *authhandler.Handler) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	r.GET("/metrics", metrics.Handler())

	r.GET("/", h.Index)
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", authLimiter, h.Signup)
	r.POST("/login", authLimiter, h.Login)
	r.GET("/logout", h.Logout)
}
