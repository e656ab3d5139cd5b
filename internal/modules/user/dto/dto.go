package dto

import (
	"time"

	"image-board/internal/consts"
	"image-board/internal/model"
	imagedto "image-board/internal/modules/image/dto"
	"image-board/internal/modules/user/repo"
)

type UserInfo struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	List []repo.UserSummary `json:"list"`
}

// UserProfileResponse 用户主页：基本信息、分页图片和收到的收藏数
type UserProfileResponse struct {
	User              UserInfo            `json:"user"`
	Images            *imagedto.ImagePage `json:"images"`
	FavoritesReceived int64               `json:"favorites_received"`
}

func ToUserInfo(u *model.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		IsAdmin:   u.PrivilegeLevel == consts.PrivilegeAdmin,
		CreatedAt: u.CreatedAt,
	}
}
