package handler

import (
	"net/http"

	"image-board/internal/middleware"
	"image-board/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.AdminGetServerStats(middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计数据失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DestroyConfirm 清库前的确认信息
func (h *Handler) DestroyConfirm(c *gin.Context) {
	stats, err := h.systemService.AdminGetServerStats(middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计数据失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "此操作将删除全部用户、图片、评论和收藏，且无法恢复。确认请 POST /destroy",
		"stats":   stats,
	})
}

// Destroy 清库后当前会话对应的用户已不存在，直接清除 Cookie
func (h *Handler) Destroy(c *gin.Context) {
	result, err := h.systemService.Destroy(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "清空数据失败")
		return
	}

	middleware.ClearSessionCookie(c, h.cfg)
	c.JSON(http.StatusOK, gin.H{
		"message":       "数据已清空",
		"deleted_files": result.DeletedFiles,
	})
}
