package repo

import (
	"fmt"

	"image-board/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

// InitializeDefaults 补齐缺失的配置项，已有的只同步描述与分类，不覆盖值
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			var count int64
			if err := tx.Model(&model.Setting{}).Where(&model.Setting{Key: def.Key}).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q failed: %w", def.Key, err)
			}
			if count == 0 {
				item := def
				if err := tx.Create(&item).Error; err != nil {
					return fmt.Errorf("create default setting %q failed: %w", def.Key, err)
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where(&model.Setting{Key: def.Key}).Updates(map[string]interface{}{
				"desc":     def.Desc,
				"category": def.Category,
			}).Error; err != nil {
				return fmt.Errorf("update default setting metadata %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(&model.Setting{Key: key}).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order("category asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateValues(values map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := tx.Model(&model.Setting{}).Where(&model.Setting{Key: key}).Update("value", value).Error; err != nil {
				return fmt.Errorf("update setting %q failed: %w", key, err)
			}
		}
		return nil
	})
}
