package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"image-board/internal/identity"
	"image-board/internal/middleware"
	"image-board/internal/model"
	settingsrepo "image-board/internal/modules/settings/repo"
	systemrepo "image-board/internal/modules/system/repo"
	systemservice "image-board/internal/modules/system/service"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type noopPurger struct{}

func (noopPurger) PurgeStorage(context.Context, identity.Identity) (int, error) {
	return 0, nil
}

func setupTestRouter(t *testing.T, id identity.Identity) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	h := New(systemservice.New(appService, systemrepo.NewSystemRepository(gdb), noopPurger{}), testCfg)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	})
	r.GET("/destroy", h.DestroyConfirm)
	r.POST("/destroy", h.Destroy)
	r.GET("/admin/stats", h.GetServerStats)
	return r, gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name string, level int) *model.User {
	t.Helper()
	u := &model.User{Name: name, PasswordHash: "x", Email: name + "@example.com", PrivilegeLevel: level}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func do(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}
