package model

type Favorite struct {
	ID      uint  `json:"id" gorm:"primaryKey"`
	ImageID uint  `json:"image_id" gorm:"not null;uniqueIndex:idx_favorite_user_image,priority:2"`
	Image   Image `gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	UserID  uint  `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_image,priority:1"`
	User    User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
