package repo

import (
	"image-board/internal/consts"
	"image-board/internal/model"

	"gorm.io/gorm"
)

// UserSummary 用户列表中的一行
type UserSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	ImageCount int64  `json:"image_count"`
}

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByName(name string) (*model.User, error)
	Create(user *model.User) error
	FieldExists(field consts.UserField, value string) (bool, error)
	UpdatePrivilegeLevel(userID uint, level int) error
	ListSummaries() ([]UserSummary, error)
	CountFavoritesReceived(userID uint) (int64, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
