package consts

type UserField string

const (
	UserFieldName  UserField = "name"
	UserFieldEmail UserField = "email"
)

// 权限等级。99 是历史遗留的管理员编码，数据库中只允许出现这两个值。
const (
	PrivilegeUser  = 0
	PrivilegeAdmin = 99
)
