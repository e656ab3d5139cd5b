package service

import (
	"image-board/internal/model"
	"image-board/internal/modules/social/repo"
	platformservice "image-board/internal/platform/service"
)

// ImageLookup 校验图片存在，不存在时返回 not_found 业务错误
type ImageLookup interface {
	FindImage(imageID uint) (*model.Image, error)
}

type Service struct {
	*platformservice.AppService
	socialStore repo.SocialStore
	images      ImageLookup
}

func New(appService *platformservice.AppService, socialStore repo.SocialStore, images ImageLookup) *Service {
	return &Service{
		AppService:  appService,
		socialStore: socialStore,
		images:      images,
	}
}
