package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"image-board/internal/identity"
	"image-board/internal/middleware"
	"image-board/internal/model"
	settingsrepo "image-board/internal/modules/settings/repo"
	socialrepo "image-board/internal/modules/social/repo"
	socialservice "image-board/internal/modules/social/service"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type dbImageLookup struct {
	db *gorm.DB
}

func (l dbImageLookup) FindImage(imageID uint) (*model.Image, error) {
	var image model.Image
	if err := l.db.First(&image, imageID).Error; err != nil {
		return nil, platformservice.NewNotFoundError("图片不存在")
	}
	return &image, nil
}

func setupTestRouter(t *testing.T, id identity.Identity) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	h := New(socialservice.New(appService, socialrepo.NewSocialRepository(gdb), dbImageLookup{db: gdb}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	})
	r.POST("/comments/:id", h.PostComment)
	r.POST("/fav_image/:id", h.Favorite)
	return r, gdb
}

func seed(t *testing.T, gdb *gorm.DB) (*model.User, *model.User, *model.Image) {
	t.Helper()
	owner := &model.User{Name: "owner", PasswordHash: "x", Email: "owner@example.com"}
	fan := &model.User{Name: "fan", PasswordHash: "x", Email: "fan@example.com"}
	gdb.Create(owner)
	gdb.Create(fan)
	img := &model.Image{UserID: owner.ID, StorageKey: "a.png", URL: "/imgs/a.png", PostedAt: time.Now()}
	if err := gdb.Create(img).Error; err != nil {
		t.Fatalf("创建图片失败: %v", err)
	}
	return owner, fan, img
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
