package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"image-board/internal/config"
	"image-board/internal/middleware"
	authservice "image-board/internal/modules/auth/service"
	settingsrepo "image-board/internal/modules/settings/repo"
	userrepo "image-board/internal/modules/user/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const testSignupCode = "let-me-in"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.CookieName = "sid"
	cfg.Session.MaxAgeHours = 1
	cfg.Signup.Code = testSignupCode
	return cfg
}

// setupTestRouter 组装带会话中间件的认证路由
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	cfg := testConfig()
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}
	svc := authservice.New(appService, cfg, userrepo.NewUserRepository(gdb))
	h := New(svc, cfg)

	r := gin.New()
	r.Use(middleware.Session(svc, cfg))
	r.GET("/", h.Index)
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	return r, gdb
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "sid" {
			return c
		}
	}
	return nil
}
