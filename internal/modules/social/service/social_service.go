package service

import (
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"image-board/internal/consts"
	"image-board/internal/db"
	"image-board/internal/identity"
	"image-board/internal/metrics"
	"image-board/internal/model"
	"image-board/internal/modules/social/dto"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/sanitize"
)

// PostComment 发表评论。内容先清理 HTML 再自动加链接，超长直接拒绝。
func (s *Service) PostComment(id identity.Identity, imageID uint, raw string) (*model.Comment, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}
	if id.UserID == 0 {
		return nil, platformservice.NewForbiddenError("当前身份不能发表评论")
	}
	if _, err := s.images.FindImage(imageID); err != nil {
		return nil, err
	}

	text := sanitize.Comment(raw)
	if text == "" {
		return nil, platformservice.NewValidationError("评论内容不能为空")
	}
	if utf8.RuneCountInString(text) > consts.MaxCommentLength {
		return nil, platformservice.NewValidationError(fmt.Sprintf("评论内容不能超过 %d 个字符", consts.MaxCommentLength))
	}

	comment := &model.Comment{
		ImageID:  imageID,
		UserID:   id.UserID,
		Text:     text,
		PostedAt: time.Now(),
	}
	if err := s.socialStore.CreateComment(comment); err != nil {
		log.Printf("CreateComment error: %v", err)
		return nil, platformservice.NewInternalError("发表评论失败")
	}

	metrics.Comments.Inc()
	return comment, nil
}

// Favorite 收藏图片。自己的图片或已收藏时什么也不做，返回 created=false。
func (s *Service) Favorite(id identity.Identity, imageID uint) (*model.Favorite, bool, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, false, err
	}
	if id.UserID == 0 {
		return nil, false, platformservice.NewForbiddenError("当前身份不能收藏图片")
	}
	image, err := s.images.FindImage(imageID)
	if err != nil {
		return nil, false, err
	}

	if identity.IsOwner(id, image) {
		metrics.Favorites.WithLabelValues("noop").Inc()
		return nil, false, nil
	}
	exists, err := identity.HasFavorited(s.socialStore, id, imageID)
	if err != nil {
		log.Printf("ExistsFavorite error: %v", err)
		return nil, false, platformservice.NewInternalError("收藏失败")
	}
	if exists {
		metrics.Favorites.WithLabelValues("noop").Inc()
		return nil, false, nil
	}

	favorite := &model.Favorite{ImageID: imageID, UserID: id.UserID}
	if err := s.socialStore.CreateFavorite(favorite); err != nil {
		// 并发请求先一步写入，视为已收藏
		if db.IsUniqueViolation(err) {
			metrics.Favorites.WithLabelValues("noop").Inc()
			return nil, false, nil
		}
		log.Printf("CreateFavorite error: %v", err)
		return nil, false, platformservice.NewInternalError("收藏失败")
	}

	metrics.Favorites.WithLabelValues("created").Inc()
	return favorite, true, nil
}

// HasFavorited 当前身份是否已收藏
func (s *Service) HasFavorited(id identity.Identity, imageID uint) (bool, error) {
	ok, err := identity.HasFavorited(s.socialStore, id, imageID)
	if err != nil {
		log.Printf("ExistsFavorite error: %v", err)
		return false, platformservice.NewInternalError("查询收藏失败")
	}
	return ok, nil
}

func (s *Service) ListComments(imageID uint) ([]dto.CommentView, error) {
	comments, err := s.socialStore.ListComments(imageID)
	if err != nil {
		log.Printf("ListComments error: %v", err)
		return nil, platformservice.NewInternalError("获取评论失败")
	}
	views := make([]dto.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, dto.ToCommentView(&comments[i]))
	}
	return views, nil
}

func (s *Service) ListFavorites(imageID uint) ([]dto.FavoriteView, error) {
	favorites, err := s.socialStore.ListFavorites(imageID)
	if err != nil {
		log.Printf("ListFavorites error: %v", err)
		return nil, platformservice.NewInternalError("获取收藏失败")
	}
	views := make([]dto.FavoriteView, 0, len(favorites))
	for i := range favorites {
		views = append(views, dto.ToFavoriteView(&favorites[i]))
	}
	return views, nil
}
