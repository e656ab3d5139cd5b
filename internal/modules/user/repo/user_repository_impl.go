package repo

import (
	"fmt"

	"image-board/internal/consts"
	"image-board/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName 精确匹配用户名
func (r *UserRepository) FindByName(name string) (*model.User, error) {
	var user model.User
	if err := r.db.Where(&model.User{Name: name}).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FieldExists(field consts.UserField, value string) (bool, error) {
	var column string
	switch field {
	case consts.UserFieldName:
		column = "name"
	case consts.UserFieldEmail:
		column = "email"
	default:
		return false, fmt.Errorf("unsupported user field %q", field)
	}

	var count int64
	if err := r.db.Model(&model.User{}).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UpdatePrivilegeLevel(userID uint, level int) error {
	tx := r.db.Model(&model.User{}).Where("id = ?", userID).Update("privilege_level", level)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) ListSummaries() ([]UserSummary, error) {
	var rows []UserSummary
	err := r.db.Model(&model.User{}).
		Select("users.id AS id, users.name AS name, COUNT(images.id) AS image_count").
		Joins("LEFT JOIN images ON images.user_id = users.id").
		Group("users.id, users.name").
		Order("users.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountFavoritesReceived 用户全部图片收到的收藏数
func (r *UserRepository) CountFavoritesReceived(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Joins("JOIN images ON images.id = favorites.image_id").
		Where("images.user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
