package handler

import (
	"image-board/internal/identity"
	imageservice "image-board/internal/modules/image/service"
	socialdto "image-board/internal/modules/social/dto"
)

// SocialReader 详情页需要的评论与收藏查询
type SocialReader interface {
	ListComments(imageID uint) ([]socialdto.CommentView, error)
	ListFavorites(imageID uint) ([]socialdto.FavoriteView, error)
	HasFavorited(id identity.Identity, imageID uint) (bool, error)
}

type Handler struct {
	imageService *imageservice.Service
	social       SocialReader
}

func New(imageService *imageservice.Service, social SocialReader) *Handler {
	return &Handler{imageService: imageService, social: social}
}
