package model

import "time"

type Comment struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	ImageID  uint      `json:"image_id" gorm:"not null;index"`
	Image    Image     `gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	User     User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Text     string    `json:"text" gorm:"not null;size:1024"`
	PostedAt time.Time `json:"posted_at" gorm:"not null"`
}
