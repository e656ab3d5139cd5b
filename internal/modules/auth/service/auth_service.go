package service

import (
	"crypto/subtle"
	"errors"
	"log"
	"sync"
	"time"

	"image-board/internal/consts"
	"image-board/internal/db"
	"image-board/internal/identity"
	"image-board/internal/metrics"
	"image-board/internal/model"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "用户名或密码错误"

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// 用户不存在时也做一次 bcrypt 比较，避免通过耗时判断用户名是否存在
func compareDummyHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("image-board-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Authenticate 校验用户名密码。用户不存在与密码错误返回同一个错误。
func (s *Service) Authenticate(name, password string) (identity.Identity, error) {
	user, err := s.userStore.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			compareDummyHash(password)
			metrics.Logins.WithLabelValues("failed").Inc()
			return identity.Anonymous(), platformservice.NewInvalidCredentialsError(invalidCredentialsMessage)
		}
		log.Printf("Authenticate find user error: %v", err)
		return identity.Anonymous(), platformservice.NewInternalError("登录失败，请稍后重试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		return identity.Anonymous(), platformservice.NewInvalidCredentialsError(invalidCredentialsMessage)
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	return identity.FromUser(user), nil
}

// Signup 校验邀请码与注册信息，创建一个普通用户
func (s *Service) Signup(name, password, email, code string) (identity.Identity, error) {
	if !s.GetBool(consts.ConfigAllowSignup) {
		return identity.Anonymous(), platformservice.NewForbiddenError("当前未开放注册")
	}

	if ok, msg := utils.ValidateUsername(name); !ok {
		return identity.Anonymous(), platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return identity.Anonymous(), platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return identity.Anonymous(), platformservice.NewValidationError(msg)
	}

	if !s.signupCodeMatches(code) {
		metrics.Signups.WithLabelValues("bad_code").Inc()
		return identity.Anonymous(), platformservice.NewInvalidCredentialsError("邀请码错误")
	}

	if taken, err := s.userStore.FieldExists(consts.UserFieldName, name); err != nil {
		log.Printf("Signup check name error: %v", err)
		return identity.Anonymous(), platformservice.NewInternalError("注册失败，请稍后重试")
	} else if taken {
		return identity.Anonymous(), platformservice.NewConflictError("用户名已被占用")
	}
	if taken, err := s.userStore.FieldExists(consts.UserFieldEmail, email); err != nil {
		log.Printf("Signup check email error: %v", err)
		return identity.Anonymous(), platformservice.NewInternalError("注册失败，请稍后重试")
	} else if taken {
		return identity.Anonymous(), platformservice.NewConflictError("邮箱已被占用")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return identity.Anonymous(), platformservice.NewInternalError("注册失败，请稍后重试")
	}

	user := &model.User{
		Name:           name,
		PasswordHash:   string(hashed),
		Email:          email,
		PrivilegeLevel: consts.PrivilegeUser,
	}
	if err := s.userStore.Create(user); err != nil {
		// 并发注册时由唯一索引兜底
		if db.IsUniqueViolation(err) {
			return identity.Anonymous(), platformservice.NewConflictError("用户名或邮箱已被占用")
		}
		log.Printf("Signup create user error: %v", err)
		return identity.Anonymous(), platformservice.NewInternalError("注册失败，请稍后重试")
	}

	metrics.Signups.WithLabelValues("ok").Inc()
	log.Printf("✅ 新用户注册: %s (id=%d)", user.Name, user.ID)
	return identity.FromUser(user), nil
}

func (s *Service) signupCodeMatches(code string) bool {
	expected := s.cfg.Signup.Code
	if expected == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(expected)) == 1
}

// CurrentIdentity 解析会话令牌。令牌无效、过期或用户已不存在时返回匿名身份。
func (s *Service) CurrentIdentity(token string) identity.Identity {
	if token == "" {
		return identity.Anonymous()
	}
	claims, err := utils.ParseSessionToken(s.cfg.Session.Secret, token)
	if err != nil {
		return identity.Anonymous()
	}
	user, err := s.userStore.FindByID(claims.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("CurrentIdentity find user error: %v", err)
		}
		return identity.Anonymous()
	}
	// 用户名不一致说明令牌签发后数据库被重置过
	if user.Name != claims.Username {
		return identity.Anonymous()
	}
	return identity.FromUser(user)
}

// IssueSessionToken 为已登录身份签发会话令牌
func (s *Service) IssueSessionToken(id identity.Identity) (string, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return "", err
	}
	if id.UserID == 0 {
		return "", platformservice.NewValidationError("该身份不能登录")
	}
	maxAge := time.Duration(s.cfg.Session.MaxAgeHours) * time.Hour
	token, err := utils.GenerateSessionToken(s.cfg.Session.Secret, id.UserID, id.Name, maxAge)
	if err != nil {
		log.Printf("IssueSessionToken error: %v", err)
		return "", platformservice.NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}
