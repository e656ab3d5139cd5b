package handler

import (
	"bytes"
	"mime/multipart"
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
	socialrepo "image-board/internal/modules/social/repo"
	socialservice "image-board/internal/modules/social/service"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	root   string
}

// setupTestEnv 使用本地磁盘存储，身份由 identityFor 在每个请求上决定
func setupTestEnv(t *testing.T, identityFor func() identity.Identity) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}

	root := t.TempDir()
	provider, err := storage.NewLocalProvider(root, "/imgs/")
	if err != nil {
		t.Fatalf("NewLocalProvider: %v", err)
	}
	imageSvc := imageservice.New(appService, imagerepo.NewImageRepository(gdb), provider, exifmeta.NewExtractor())
	socialSvc := socialservice.New(appService, socialrepo.NewSocialRepository(gdb), imageSvc)
	h := New(imageSvc, socialSvc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, identityFor())
		c.Next()
	})
	r.GET("/images", h.ListImages)
	r.GET("/images/:id", h.GetImage)
	r.GET("/upload", h.UploadForm)
	r.POST("/upload", h.Upload)
	r.POST("/delete_image/:id", h.DeleteImage)
	r.GET("/recreate_image_versions", h.RecreateVersions)
	r.GET("/update_exif", h.UpdateExif)

	return &testEnv{router: r, db: gdb, root: root}
}

func createUser(t *testing.T, gdb *gorm.DB, name string, level int) *model.User {
	t.Helper()
	u := &model.User{Name: name, PasswordHash: "x", Email: name + "@example.com", PrivilegeLevel: level}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func uploadRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
