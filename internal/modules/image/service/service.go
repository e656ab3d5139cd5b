package service

import (
	"image-board/internal/exifmeta"
	"image-board/internal/modules/image/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
)

type Service struct {
	*platformservice.AppService
	imageStore repo.ImageStore
	storage    storage.Provider
	extractor  exifmeta.Extractor
}

func New(
	appService *platformservice.AppService,
	imageStore repo.ImageStore,
	provider storage.Provider,
	extractor exifmeta.Extractor,
) *Service {
	return &Service{
		AppService: appService,
		imageStore: imageStore,
		storage:    provider,
		extractor:  extractor,
	}
}
