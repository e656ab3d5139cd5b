package service

import (
	"log"

	"image-board/internal/identity"
	"image-board/internal/model"
	moduledto "image-board/internal/modules/settings/dto"
	"image-board/internal/modules/settings/repo"
	platformservice "image-board/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
	}
}

// AdminListSettings 列出全部运行时配置
func (s *Service) AdminListSettings(id identity.Identity) ([]model.Setting, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("获取配置失败")
	}
	return settings, nil
}

// AdminUpdateSettings 批量更新配置，只允许修改系统定义的配置项
func (s *Service) AdminUpdateSettings(id identity.Identity, items []moduledto.UpdateSettingRequest) error {
	if err := identity.RequireAdmin(id); err != nil {
		return err
	}
	if len(items) == 0 {
		return platformservice.NewValidationError("没有需要更新的配置")
	}

	values := make(map[string]string, len(items))
	for _, item := range items {
		if !platformservice.IsKnownSetting(item.Key) {
			return platformservice.NewValidationError("未知配置项: " + item.Key)
		}
		values[item.Key] = item.Value
	}

	if err := s.settingStore.UpdateValues(values); err != nil {
		log.Printf("Update settings error: %v", err)
		return platformservice.NewInternalError("更新配置失败")
	}
	s.ClearCache()
	return nil
}
