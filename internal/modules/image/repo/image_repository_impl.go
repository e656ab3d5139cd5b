package repo

import (
	"image-board/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.Preload("User").First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// ListImages 按上传时间倒序分页
func (r *ImageRepository) ListImages(params ListImagesParams) ([]model.Image, int64, error) {
	var images []model.Image
	var total int64

	query := r.db.Model(&model.Image{})
	if params.UserID != nil {
		query = query.Where("images.user_id = ?", *params.UserID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("User").
		Order("images.posted_at desc").Order("images.id desc").
		Offset(params.Offset).Limit(params.Limit).
		Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (r *ImageRepository) FindAll() ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Order("id asc").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) UpdateDeliverVersion(imageID uint, key, url string) error {
	return r.db.Model(&model.Image{}).Where("id = ?", imageID).
		Updates(map[string]interface{}{"deliver_key": key, "deliver_url": url}).Error
}

// UpdateMetadata 整体覆盖五个元数据字段，读取不到的字段写为 NULL
func (r *ImageRepository) UpdateMetadata(imageID uint, md ImageMetadata) error {
	return r.db.Model(&model.Image{ID: imageID}).
		Select("CameraModel", "FocalLength", "ISO", "Aperture", "ShutterSpeed").
		Updates(&model.Image{
			CameraModel:  md.CameraModel,
			FocalLength:  md.FocalLength,
			ISO:          md.ISO,
			Aperture:     md.Aperture,
			ShutterSpeed: md.ShutterSpeed,
		}).Error
}

// DeleteWithRelations 在一个事务里删除图片及其评论和收藏
func (r *ImageRepository) DeleteWithRelations(imageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_id = ?", imageID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Image{}, imageID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
