package service

import (
	"testing"
	"time"

	"image-board/internal/exifmeta"
	"image-board/internal/model"
	imagerepo "image-board/internal/modules/image/repo"
	imageservice "image-board/internal/modules/image/service"
	settingsrepo "image-board/internal/modules/settings/repo"
	"image-board/internal/modules/user/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
	"image-board/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	provider, err := storage.NewLocalProvider(t.TempDir(), "/imgs/")
	if err != nil {
		t.Fatalf("NewLocalProvider: %v", err)
	}
	images := imageservice.New(appService, imagerepo.NewImageRepository(gdb), provider, exifmeta.NewExtractor())
	return New(appService, repo.NewUserRepository(gdb), images), gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name string, level int) *model.User {
	t.Helper()
	u := &model.User{Name: name, PasswordHash: "x", Email: name + "@example.com", PrivilegeLevel: level}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func createImage(t *testing.T, gdb *gorm.DB, owner *model.User, key string) *model.Image {
	t.Helper()
	img := &model.Image{UserID: owner.ID, StorageKey: key, URL: "/imgs/" + key, PostedAt: time.Now()}
	if err := gdb.Create(img).Error; err != nil {
		t.Fatalf("创建图片失败: %v", err)
	}
	return img
}
