package identity

import (
	"image-board/internal/model"
	platformservice "image-board/internal/platform/service"
)

// RequireAuthenticated 需要登录的操作入口
func RequireAuthenticated(id Identity) error {
	if !id.Authenticated() {
		return platformservice.NewAuthRequiredError()
	}
	return nil
}

// RequireAdmin 先判定登录，再判定管理员
func RequireAdmin(id Identity) error {
	if err := RequireAuthenticated(id); err != nil {
		return err
	}
	if !id.IsAdmin() {
		return platformservice.NewForbiddenError("需要管理员权限")
	}
	return nil
}

// IsOwner 当前身份是否为图片上传者
func IsOwner(id Identity, image *model.Image) bool {
	if image == nil || !id.Authenticated() || id.UserID == 0 {
		return false
	}
	return image.UserID == id.UserID
}

// FavoriteLookup 查询收藏关系
type FavoriteLookup interface {
	ExistsFavorite(userID uint, imageID uint) (bool, error)
}

// HasFavorited 当前身份是否已收藏该图片，匿名身份恒为 false
func HasFavorited(lookup FavoriteLookup, id Identity, imageID uint) (bool, error) {
	if !id.Authenticated() || id.UserID == 0 {
		return false, nil
	}
	return lookup.ExistsFavorite(id.UserID, imageID)
}
