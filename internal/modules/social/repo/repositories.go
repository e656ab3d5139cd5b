package repo

import (
	"image-board/internal/model"

	"gorm.io/gorm"
)

// SocialStore 评论与收藏的持久化
type SocialStore interface {
	CreateComment(comment *model.Comment) error
	ListComments(imageID uint) ([]model.Comment, error)
	CreateFavorite(favorite *model.Favorite) error
	ExistsFavorite(userID uint, imageID uint) (bool, error)
	ListFavorites(imageID uint) ([]model.Favorite, error)
}

func NewSocialRepository(db *gorm.DB) SocialStore {
	return &SocialRepository{db: db}
}
