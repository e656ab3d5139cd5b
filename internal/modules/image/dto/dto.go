package dto

import (
	"time"

	"image-board/internal/model"
	socialdto "image-board/internal/modules/social/dto"
)

type ImageSummary struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name"`
	URL          string    `json:"url"`
	DeliverURL   string    `json:"deliver_url"`
	DisplayURL   string    `json:"display_url"`
	PostedAt     time.Time `json:"posted_at"`
	CameraModel  *string   `json:"camera_model"`
	FocalLength  *int      `json:"focal_length"`
	ISO          *int      `json:"iso"`
	Aperture     *float64  `json:"aperture"`
	ShutterSpeed *string   `json:"shutter_speed"`
}

type ImagePage struct {
	List       []ImageSummary `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// MaintenanceResult 批量维护任务的结果统计
type MaintenanceResult struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type UploadFormResponse struct {
	Field             string   `json:"field"`
	AllowedExtensions []string `json:"allowed_extensions"`
	MaxUploadSizeMB   int      `json:"max_upload_size_mb"`
}

func ToImageSummary(image *model.Image) ImageSummary {
	return ImageSummary{
		ID:           image.ID,
		UserID:       image.UserID,
		UserName:     image.User.Name,
		URL:          image.URL,
		DeliverURL:   image.DeliverURL,
		DisplayURL:   image.DisplayURL(),
		PostedAt:     image.PostedAt,
		CameraModel:  image.CameraModel,
		FocalLength:  image.FocalLength,
		ISO:          image.ISO,
		Aperture:     image.Aperture,
		ShutterSpeed: image.ShutterSpeed,
	}
}

// ImageDetail 图片详情页：图片、评论、收藏以及当前身份相关的标记
type ImageDetail struct {
	Image         ImageSummary             `json:"image"`
	Comments      []socialdto.CommentView  `json:"comments"`
	Favorites     []socialdto.FavoriteView `json:"favorites"`
	FavoriteCount int                      `json:"favorite_count"`
	IsOwner       bool                     `json:"is_owner"`
	HasFavorited  bool                     `json:"has_favorited"`
}
