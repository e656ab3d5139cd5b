package middleware

import (
	"net/http"
	"time"

	"image-board/internal/config"
	"image-board/internal/consts"
	"image-board/internal/identity"
	"image-board/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// IdentityResolver 把会话令牌解析为身份，任何失败都返回匿名身份
type IdentityResolver interface {
	CurrentIdentity(token string) identity.Identity
}

// Session 每个请求解析一次身份并写入上下文
func Session(resolver IdentityResolver, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := identity.Anonymous()
		if token, err := c.Cookie(cfg.Session.CookieName); err == nil && token != "" {
			id = resolver.CurrentIdentity(token)
		}
		SetIdentity(c, id)
		c.Next()
	}
}

func SetIdentity(c *gin.Context, id identity.Identity) {
	c.Set(consts.ContextIdentityKey, id)
}

// CurrentIdentity 读取会话中间件写入的身份，未经过中间件时为匿名
func CurrentIdentity(c *gin.Context) identity.Identity {
	if v, ok := c.Get(consts.ContextIdentityKey); ok {
		if id, ok := v.(identity.Identity); ok {
			return id
		}
	}
	return identity.Anonymous()
}

// RequireAuth 未登录时返回 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := identity.RequireAuthenticated(CurrentIdentity(c)); err != nil {
			httpx.WriteServiceError(c, err, "请先登录")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 未登录 401，非管理员 403
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := identity.RequireAdmin(CurrentIdentity(c)); err != nil {
			httpx.WriteServiceError(c, err, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

func SetSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	maxAge := int((time.Duration(cfg.Session.MaxAgeHours) * time.Hour).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Session.CookieName, token, maxAge, "/", "", cfg.Session.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Session.CookieName, "", -1, "/", "", cfg.Session.Secure, true)
}
