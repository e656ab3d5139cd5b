package model

import "time"

type Image struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	StorageKey string    `json:"-" gorm:"not null;uniqueIndex;size:255"`
	URL        string    `json:"url" gorm:"not null"`
	DeliverKey string    `json:"-" gorm:"size:255"`
	DeliverURL string    `json:"deliver_url"`
	PostedAt   time.Time `json:"posted_at" gorm:"not null;index"`

	// EXIF 元数据，上传后尽力填充，缺失的字段保持为空
	CameraModel  *string  `json:"camera_model" gorm:"size:255"`
	FocalLength  *int     `json:"focal_length"`
	ISO          *int     `json:"iso"`
	Aperture     *float64 `json:"aperture"`
	ShutterSpeed *string  `json:"shutter_speed" gorm:"size:32"`

	Comments  []Comment  `json:"-"`
	Favorites []Favorite `json:"-"`
}

// DisplayURL 优先返回展示版本地址
func (i *Image) DisplayURL() string {
	if i.DeliverURL != "" {
		return i.DeliverURL
	}
	return i.URL
}
