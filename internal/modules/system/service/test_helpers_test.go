package service

import (
	"context"
	"errors"
	"testing"

	"image-board/internal/identity"
	"image-board/internal/model"
	settingsrepo "image-board/internal/modules/settings/repo"
	"image-board/internal/modules/system/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"gorm.io/gorm"
)

type fakePurger struct {
	calls int
	err   error
}

func (f *fakePurger) PurgeStorage(_ context.Context, _ identity.Identity) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

var errPurge = errors.New("bucket unavailable")

func setupTestService(t *testing.T, purger StoragePurger) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	return New(appService, repo.NewSystemRepository(gdb), purger), gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name string, level int) *model.User {
	t.Helper()
	u := &model.User{Name: name, PasswordHash: "x", Email: name + "@example.com", PrivilegeLevel: level}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}
