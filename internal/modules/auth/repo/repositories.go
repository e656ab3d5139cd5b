package repo

import (
	"image-board/internal/consts"
	"image-board/internal/model"
)

// UserStore 认证所需的用户持久化能力，由 user 模块的仓储实现
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByName(name string) (*model.User, error)
	Create(user *model.User) error
	FieldExists(field consts.UserField, value string) (bool, error)
}
