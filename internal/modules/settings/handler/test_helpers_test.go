package handler

import (
	"testing"

	"image-board/internal/identity"
	"image-board/internal/middleware"
	modulerepo "image-board/internal/modules/settings/repo"
	settingsservice "image-board/internal/modules/settings/service"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
)

var (
	testService *platformservice.AppService
	testHandler *Handler
)

func setupTestHandler(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testService = platformservice.NewAppService(settingStore)
	if err := testService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	testHandler = New(settingsservice.New(testService, settingStore))
}

// withIdentity 模拟会话中间件写入当前身份
func withIdentity(id identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	}
}
