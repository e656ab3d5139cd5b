package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"image-board/internal/exifmeta"
	"image-board/internal/identity"
	"image-board/internal/middleware"
	"image-board/internal/model"
	imagerepo "image-board/internal/modules/image/repo"
	imageservice "image-board/internal/modules/image/service"
	settingsrepo "image-board/internal/modules/settings/repo"
	userrepo "image-board/internal/modules/user/repo"
	userservice "image-board/internal/modules/user/service"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T, identityFor func() identity.Identity) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
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
	h := New(userservice.New(appService, userrepo.NewUserRepository(gdb), images))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, identityFor())
		c.Next()
	})
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.GET("/current_user_profile", h.CurrentUserProfile)
	return r, gdb
}

func createUser(t *testing.T, gdb *gorm.DB, name string) *model.User {
	t.Helper()
	u := &model.User{Name: name, PasswordHash: "x", Email: name + "@example.com"}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}
