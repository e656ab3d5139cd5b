package service

import (
	"image-board/internal/consts"
	"image-board/internal/model"
)

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Image Board", Desc: "站点名称", Category: "general"},
	{Key: consts.ConfigAllowSignup, Value: "true", Desc: "是否开放注册 (true/false)", Category: "general"},
	{Key: consts.ConfigImagesPerPage, Value: "10", Desc: "图片列表每页数量", Category: "gallery"},
	{Key: consts.ConfigMaxUploadSize, Value: "10", Desc: "单个文件最大大小 (MB)", Category: "upload"},
	{Key: consts.ConfigDeliverMaxWidth, Value: "800", Desc: "展示版本最大宽度 (px)", Category: "upload"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "security"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "登录/注册接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "登录/注册接口突发请求限制", Category: "security"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "上传接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制", Category: "security"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非上传接口最大请求体限制 (MB)", Category: "security"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "本地图片缓存设置 (Cache-Control)", Category: "upload"},
}

func defaultSetting(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}

// IsKnownSetting 判断是否为系统定义的配置项
func IsKnownSetting(key string) bool {
	_, ok := defaultSetting(key)
	return ok
}
