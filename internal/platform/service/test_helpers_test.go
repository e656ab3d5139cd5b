package service

import (
	"testing"

	settingsrepo "image-board/internal/modules/settings/repo"
	"image-board/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*AppService, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()
	return appService, gdb
}
