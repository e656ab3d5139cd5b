package model

import (
	"time"
)

type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"-"`
	Name           string     `json:"name" gorm:"uniqueIndex;not null;size:64"`
	PasswordHash   string     `json:"-" gorm:"not null"`
	Email          string     `json:"-" gorm:"uniqueIndex;not null;size:255"`
	PrivilegeLevel int        `json:"privilege_level" gorm:"not null;default:0"` // 0: 普通用户, 99: 管理员
	Images         []Image    `json:"-"`
	Comments       []Comment  `json:"-"`
	Favorites      []Favorite `json:"-"`
}
