package handler

import (
	"fmt"
	"net/http"

	"image-board/internal/identity"
	"image-board/internal/middleware"
	"image-board/internal/modules/common/httpx"
	moduledto "image-board/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户列表失败")
		return
	}
	c.JSON(http.StatusOK, moduledto.UserListResponse{List: users})
}

func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := httpx.ParseIDParam(c, "id", "用户不存在")
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(middleware.CurrentIdentity(c), userID, httpx.PageQuery(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CurrentUserProfile 跳转到当前用户的主页
func (h *Handler) CurrentUserProfile(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	if err := identity.RequireAuthenticated(id); err != nil {
		httpx.WriteServiceError(c, err, "请先登录")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", id.UserID))
}
