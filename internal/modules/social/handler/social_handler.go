package handler

import (
	"net/http"

	"image-board/internal/middleware"
	"image-board/internal/modules/common/httpx"
	moduledto "image-board/internal/modules/social/dto"

	"github.com/gin-gonic/gin"
)

// PostComment 表单字段 comment
func (h *Handler) PostComment(c *gin.Context) {
	imageID, ok := httpx.ParseIDParam(c, "id", "图片不存在")
	if !ok {
		return
	}

	var req moduledto.PostCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	id := middleware.CurrentIdentity(c)
	comment, err := h.socialService.PostComment(id, imageID, req.Comment)
	if err != nil {
		httpx.WriteServiceError(c, err, "发表评论失败")
		return
	}

	view := moduledto.ToCommentView(comment)
	view.UserName = id.Name
	c.JSON(http.StatusCreated, gin.H{
		"message": "评论成功",
		"comment": view,
	})
}

func (h *Handler) Favorite(c *gin.Context) {
	imageID, ok := httpx.ParseIDParam(c, "id", "图片不存在")
	if !ok {
		return
	}

	_, created, err := h.socialService.Favorite(middleware.CurrentIdentity(c), imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "收藏失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_id": imageID,
		"created":  created,
	})
}
