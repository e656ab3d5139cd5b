package middleware

import (
	"testing"

	"image-board/internal/model"
	settingsrepo "image-board/internal/modules/settings/repo"
	"image-board/internal/platform/service"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	if err := testService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	return gdb
}

func saveSetting(t *testing.T, gdb *gorm.DB, key, value string) {
	t.Helper()
	if err := gdb.Save(&model.Setting{Key: key, Value: value}).Error; err != nil {
		t.Fatalf("设置配置项失败: %v", err)
	}
	testService.ClearCache()
}
