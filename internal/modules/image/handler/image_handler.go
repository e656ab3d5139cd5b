package handler

import (
	"net/http"

	"image-board/internal/consts"
	"image-board/internal/identity"
	"image-board/internal/middleware"
	"image-board/internal/modules/common/httpx"
	moduledto "image-board/internal/modules/image/dto"

	"github.com/gin-gonic/gin"
)

// uploadFormField 上传表单的文件字段名
const uploadFormField = "myfile"

func (h *Handler) ListImages(c *gin.Context) {
	page, err := h.imageService.ListImages(middleware.CurrentIdentity(c), nil, httpx.PageQuery(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetImage(c *gin.Context) {
	imageID, ok := httpx.ParseIDParam(c, "id", "图片不存在")
	if !ok {
		return
	}

	id := middleware.CurrentIdentity(c)
	image, err := h.imageService.GetImage(id, imageID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片失败")
		return
	}

	comments, err := h.social.ListComments(image.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论失败")
		return
	}
	favorites, err := h.social.ListFavorites(image.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取收藏失败")
		return
	}
	favorited, err := h.social.HasFavorited(id, image.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取收藏失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.ImageDetail{
		Image:         moduledto.ToImageSummary(image),
		Comments:      comments,
		Favorites:     favorites,
		FavoriteCount: len(favorites),
		IsOwner:       identity.IsOwner(id, image),
		HasFavorited:  favorited,
	})
}

// UploadForm 上传表单需要的信息
func (h *Handler) UploadForm(c *gin.Context) {
	c.JSON(http.StatusOK, moduledto.UploadFormResponse{
		Field:             uploadFormField,
		AllowedExtensions: consts.AllowedImageExtensions,
		MaxUploadSizeMB:   h.imageService.GetInt(consts.ConfigMaxUploadSize),
	})
}

func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile(uploadFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择要上传的文件"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer func() { _ = src.Close() }()

	id := middleware.CurrentIdentity(c)
	image, err := h.imageService.Upload(c.Request.Context(), id, file.Filename, src)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败")
		return
	}

	image.User.Name = id.Name
	c.JSON(http.StatusCreated, gin.H{
		"message": "上传成功",
		"image":   moduledto.ToImageSummary(image),
	})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	imageID, ok := httpx.ParseIDParam(c, "id", "图片不存在")
	if !ok {
		return
	}

	if err := h.imageService.DeleteImage(c.Request.Context(), middleware.CurrentIdentity(c), imageID); err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "图片已删除"})
}

func (h *Handler) RecreateVersions(c *gin.Context) {
	result, err := h.imageService.RecreateVersions(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "重新生成展示版本失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateExif(c *gin.Context) {
	result, err := h.imageService.UpdateExif(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "更新 EXIF 失败")
		return
	}
	c.JSON(http.StatusOK, result)
}
