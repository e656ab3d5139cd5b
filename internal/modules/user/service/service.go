package service

import (
	"image-board/internal/identity"
	imagedto "image-board/internal/modules/image/dto"
	"image-board/internal/modules/user/repo"
	platformservice "image-board/internal/platform/service"
)

// ImageLister 用户主页的图片分页
type ImageLister interface {
	ListImages(id identity.Identity, userID *uint, page int) (*imagedto.ImagePage, error)
}

type Service struct {
	*platformservice.AppService
	userStore   repo.UserStore
	imageLister ImageLister
}

func New(appService *platformservice.AppService, userStore repo.UserStore, imageLister ImageLister) *Service {
	return &Service{
		AppService:  appService,
		userStore:   userStore,
		imageLister: imageLister,
	}
}
