package service

import (
	"log"
	"strconv"
	"sync"

	"image-board/internal/model"
)

// SettingReader 运行时配置的存储
type SettingReader interface {
	InitializeDefaults(defaults []model.Setting) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
}

// AppService 提供各模块共用的运行时配置读取（带内存缓存）
type AppService struct {
	settingStore  SettingReader
	settingsCache sync.Map
}

func NewAppService(settingStore SettingReader) *AppService {
	return &AppService{settingStore: settingStore}
}

const valueNotFound = "||__NOT_FOUND__||"

// ClearCache 清空配置缓存
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 写入缺失的默认配置
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == valueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		if def, ok := defaultSetting(key); ok {
			// 忽略写入错误，并发写入可能导致主键冲突
			newSetting := def
			if createErr := s.settingStore.Create(&newSetting); createErr != nil {
				log.Printf("⚠️ 写入默认配置 %s 失败: %v", key, createErr)
			}
			s.settingsCache.Store(key, def.Value)
			return def.Value
		}

		s.settingsCache.Store(key, valueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetInt64(key string) int64 {
	val, err := strconv.ParseInt(s.GetString(key), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

// GetBool 支持 "1", "t", "T", "true", "TRUE", "True"
func (s *AppService) GetBool(key string) bool {
	val, err := strconv.ParseBool(s.GetString(key))
	if err != nil {
		return false
	}
	return val
}
