package repo

import (
	"image-board/internal/model"

	"gorm.io/gorm"
)

// ImageMetadata 可由 EXIF 重新生成的字段
type ImageMetadata struct {
	CameraModel  *string
	FocalLength  *int
	ISO          *int
	Aperture     *float64
	ShutterSpeed *string
}

type ListImagesParams struct {
	UserID *uint
	Offset int
	Limit  int
}

// ImageStore 图片持久化。图片的 user_id 创建后不可修改，因此这里不提供更新所有者的方法。
type ImageStore interface {
	Create(image *model.Image) error
	FindByID(id uint) (*model.Image, error)
	ListImages(params ListImagesParams) ([]model.Image, int64, error)
	FindAll() ([]model.Image, error)
	UpdateDeliverVersion(imageID uint, key, url string) error
	UpdateMetadata(imageID uint, md ImageMetadata) error
	DeleteWithRelations(imageID uint) error
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}
