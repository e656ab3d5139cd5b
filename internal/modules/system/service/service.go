package service

import (
	"context"

	"image-board/internal/identity"
	"image-board/internal/modules/system/repo"
	platformservice "image-board/internal/platform/service"
)

// StoragePurger 清空图片存储
type StoragePurger interface {
	PurgeStorage(ctx context.Context, id identity.Identity) (int, error)
}

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
	storage     StoragePurger
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore, storage StoragePurger) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
		storage:     storage,
	}
}
