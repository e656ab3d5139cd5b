package handler

import (
	"net/http"

	"image-board/internal/consts"
	"image-board/internal/identity"
	"image-board/internal/middleware"
	moduledto "image-board/internal/modules/auth/dto"
	"image-board/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// Index 已登录跳转到图片列表，否则返回站点信息
func (h *Handler) Index(c *gin.Context) {
	if middleware.CurrentIdentity(c).Authenticated() {
		c.Redirect(http.StatusFound, "/images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"site_name":    h.authService.GetString(consts.ConfigSiteName),
		"allow_signup": h.authService.GetBool(consts.ConfigAllowSignup),
		"version":      consts.ApplicationVersion,
	})
}

// SignupForm 注册需要提交的字段
func (h *Handler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"allow_signup": h.authService.GetBool(consts.ConfigAllowSignup),
		"fields":       []string{"username", "password", "email", "signupcode"},
	})
}

func (h *Handler) Signup(c *gin.Context) {
	var req moduledto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	id, err := h.authService.Signup(req.Username, req.Password, req.Email, req.SignupCode)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	if !h.startSession(c, id) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功",
		"user":    sessionUser(id),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	id, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	if !h.startSession(c, id) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"user":    sessionUser(id),
	})
}

// Logout 清除会话，永不失败
func (h *Handler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.cfg)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) startSession(c *gin.Context, id identity.Identity) bool {
	token, err := h.authService.IssueSessionToken(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return false
	}
	middleware.SetSessionCookie(c, h.cfg, token)
	return true
}

func sessionUser(id identity.Identity) moduledto.SessionUserResponse {
	return moduledto.SessionUserResponse{
		ID:    id.UserID,
		Name:  id.Name,
		Role:  id.Role.String(),
		Admin: id.IsAdmin(),
	}
}
