package handler

import (
	"net/http"

	"image-board/internal/middleware"
	"image-board/internal/modules/common/httpx"
	moduledto "image-board/internal/modules/settings/dto"
	settingsservice "image-board/internal/modules/settings/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	settingsService *settingsservice.Service
}

func New(settingsService *settingsservice.Service) *Handler {
	return &Handler{settingsService: settingsService}
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings(middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.settingsService.AdminUpdateSettings(middleware.CurrentIdentity(c), reqs); err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "配置更新成功",
		"count":   len(reqs),
	})
}
