package service

import (
	"errors"
	"testing"
	"time"

	"image-board/internal/model"
	settingsrepo "image-board/internal/modules/settings/repo"
	"image-board/internal/modules/social/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"gorm.io/gorm"
)

// dbImageLookup 直接查库的图片查询
type dbImageLookup struct {
	db *gorm.DB
}

func (l dbImageLookup) FindImage(imageID uint) (*model.Image, error) {
	var image model.Image
	if err := l.db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("图片不存在")
		}
		return nil, err
	}
	return &image, nil
}

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	return New(appService, repo.NewSocialRepository(gdb), dbImageLookup{db: gdb}), gdb
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
