package repo

import (
	"gorm.io/gorm"
)

// TableCounts 各业务表的行数
type TableCounts struct {
	Users     int64
	Images    int64
	Comments  int64
	Favorites int64
}

type SystemStore interface {
	CountAll() (*TableCounts, error)
	ResetAll() error
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
