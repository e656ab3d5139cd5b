package repo

import (
	"image-board/internal/model"

	"gorm.io/gorm"
)

type SocialRepository struct {
	db *gorm.DB
}

func (r *SocialRepository) CreateComment(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// ListComments 按发表时间正序
func (r *SocialRepository) ListComments(imageID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").
		Where("image_id = ?", imageID).
		Order("posted_at asc").Order("id asc").
		Find(&comments).Error
	return comments, err
}

func (r *SocialRepository) CreateFavorite(favorite *model.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *SocialRepository) ExistsFavorite(userID uint, imageID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND image_id = ?", userID, imageID).
		Count(&count).Error
	return count > 0, err
}

func (r *SocialRepository) ListFavorites(imageID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.Preload("User").
		Where("image_id = ?", imageID).
		Order("id asc").
		Find(&favorites).Error
	return favorites, err
}
