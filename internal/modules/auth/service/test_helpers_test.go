package service

import (
	"testing"

	"image-board/internal/config"
	"image-board/internal/model"
	settingsrepo "image-board/internal/modules/settings/repo"
	userrepo "image-board/internal/modules/user/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSignupCode = "let-me-in"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "sid"
	cfg.Session.MaxAgeHours = 1
	cfg.Signup.Code = testSignupCode
	return cfg
}

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	return New(appService, testConfig(), userrepo.NewUserRepository(gdb)), gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name, password string, level int) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &model.User{Name: name, PasswordHash: string(hashed), Email: name + "@example.com", PrivilegeLevel: level}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

