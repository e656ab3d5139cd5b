// Package identity 定义请求的身份与授权判定。
//
// 每个请求在进入业务层之前解析出一个 Identity，之后作为参数显式传递，
// 业务层通过本包的 RequireAuthenticated / RequireAdmin 统一做权限判定。
package identity

import (
	"image-board/internal/consts"
	"image-board/internal/model"
)

type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Identity 当前请求的身份，零值即匿名
type Identity struct {
	UserID uint
	Name   string
	Role   Role
}

func Anonymous() Identity {
	return Identity{}
}

// FromUser 根据用户记录推导身份，角色只取决于数据库中的权限等级
func FromUser(user *model.User) Identity {
	if user == nil {
		return Anonymous()
	}
	role := RoleUser
	if user.PrivilegeLevel == consts.PrivilegeAdmin {
		role = RoleAdmin
	}
	return Identity{UserID: user.ID, Name: user.Name, Role: role}
}

// Console 命令行维护任务使用的管理员身份，不对应任何用户记录
func Console() Identity {
	return Identity{Name: "console", Role: RoleAdmin}
}

func (i Identity) Authenticated() bool {
	return i.Role != RoleAnonymous
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
