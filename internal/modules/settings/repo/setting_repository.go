package repo

import (
	"image-board/internal/model"

	"gorm.io/gorm"
)

type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	UpdateValues(values map[string]string) error
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}
