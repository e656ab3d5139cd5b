package service

import (
	"testing"

	"image-board/internal/modules/settings/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	gdb := testutils.SetupDB(t)
	settingStore := repo.NewSettingRepository(gdb)
	appService := platformservice.NewAppService(settingStore)
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	return New(appService, settingStore)
}
