package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// bcrypt 只处理前 72 字节
const maxPasswordBytes = 72

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "用户名不能为空"
	}
	// 允许英文大小写、数字和下划线
	if !usernamePattern.MatchString(username) {
		return false, "用户名只能包含英文大小写、数字和下划线"
	}
	// 不能是纯数字，避免与 /users/:id 混淆
	if digitsPattern.MatchString(username) {
		return false, "用户名不能为纯数字"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "密码不能为空"
	}
	if len(password) > maxPasswordBytes {
		return false, "密码长度不能超过72字节"
	}
	return true, ""
}

// ValidateEmail 校验邮箱格式，要求域名部分包含点
func ValidateEmail(email string) (bool, string) {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false, "邮箱格式不正确"
	}
	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false, "邮箱格式不正确"
	}
	return true, ""
}
