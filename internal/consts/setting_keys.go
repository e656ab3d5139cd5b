package consts

const (

	// ConfigSiteName 站点名称
	ConfigSiteName = "site_name"

	// ConfigAllowSignup 是否开放注册 (true/false)，关闭后邀请码也无法注册
	ConfigAllowSignup = "allow_signup"

	// ConfigImagesPerPage 图片列表每页数量
	ConfigImagesPerPage = "images_per_page"

	// ConfigMaxUploadSize 图片最大上传限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigDeliverMaxWidth 展示版本的最大宽度 (px)
	ConfigDeliverMaxWidth = "deliver_max_width"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 登录/注册接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 登录/注册接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigMaxRequestBodySize 非上传接口最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 本地存储图片的 Cache-Control
	ConfigStaticCacheControl = "static_cache_control"
)
