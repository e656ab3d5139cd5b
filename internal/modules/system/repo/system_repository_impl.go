package repo

import (
	"image-board/internal/db"
	"image-board/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func (r *SystemRepository) CountAll() (*TableCounts, error) {
	var counts TableCounts
	targets := []struct {
		model interface{}
		dst   *int64
	}{
		{&model.User{}, &counts.Users},
		{&model.Image{}, &counts.Images},
		{&model.Comment{}, &counts.Comments},
		{&model.Favorite{}, &counts.Favorites},
	}
	for _, target := range targets {
		if err := r.db.Model(target.model).Count(target.dst).Error; err != nil {
			return nil, err
		}
	}
	return &counts, nil
}

// ResetAll 删除并重建全部表
func (r *SystemRepository) ResetAll() error {
	return db.Reset(r.db)
}
