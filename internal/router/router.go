package router

import (
	"image-board/internal/config"
	"image-board/internal/consts"
	"image-board/internal/metrics"
	"image-board/internal/middleware"
	"image-board/internal/modules"
	"image-board/internal/platform/cache"
	"image-board/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
	cfg     *config.Config
	redis   *cache.Redis
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService, cfg *config.Config, redisCache *cache.Redis) *Router {
	return &Router{
		modules: appModules,
		service: appService,
		cfg:     cfg,
		redis:   redisCache,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	metrics.RegisterMetrics()

	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())
	// 每个请求只解析一次身份
	r.Use(middleware.Session(rt.modules.Auth.Service, rt.cfg))
	r.Use(middleware.BodyLimitMiddleware(rt.service))

	// 认证限流：登录和注册共用同一个实例
	authLimiter := middleware.RateLimitMiddleware(rt.service, rt.redis, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)
	uploadLimiter := middleware.RateLimitMiddleware(rt.service, rt.redis, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)

	registerPublicRoutes(r, authLimiter, rt.modules.Auth.Handler)
	registerStaticRoutes(r, rt.cfg, rt.service)

	authed := r.Group("")
	authed.Use(middleware.RequireAuth())
	registerGalleryRoutes(authed, uploadLimiter, rt.service, rt.modules)

	admin := r.Group("")
	admin.Use(middleware.RequireAdmin())
	registerAdminRoutes(admin, rt.modules)
}
