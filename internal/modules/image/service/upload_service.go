package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"image-board/internal/consts"
	"image-board/internal/exifmeta"
	"image-board/internal/identity"
	"image-board/internal/imageproc"
	"image-board/internal/metrics"
	"image-board/internal/model"
	"image-board/internal/modules/image/repo"
	platformservice "image-board/internal/platform/service"

	"github.com/google/uuid"
)

// deliverKeyPrefix 展示版本与原图同名，加前缀区分
const deliverKeyPrefix = "deliver_"

// ValidateImageFile 校验扩展名
func ValidateImageFile(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !consts.IsAllowedImageExtension(ext) {
		return "", platformservice.NewUnsupportedMediaTypeError("不支持的文件格式，仅允许 jpg、jpeg、gif、png")
	}
	return ext, nil
}

// Upload 保存上传的图片：校验、存储、入库，然后尽力生成展示版本和读取 EXIF。
// 后两步失败只记录日志，不影响已创建的图片。
func (s *Service) Upload(ctx context.Context, id identity.Identity, filename string, body io.Reader) (*model.Image, error) {
	start := time.Now()
	defer func() { metrics.UploadDuration.Observe(time.Since(start).Seconds()) }()

	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}
	if id.UserID == 0 {
		return nil, platformservice.NewForbiddenError("当前身份不能上传图片")
	}

	ext, err := ValidateImageFile(filename)
	if err != nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, err
	}

	data, err := s.readLimited(body)
	if err != nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// 存储名只由随机 token 和扩展名组成
	key := uuid.New().String() + ext
	if err := s.storage.Put(ctx, key, bytes.NewReader(data), http.DetectContentType(data)); err != nil {
		log.Printf("❌ 图片存储失败 key=%s: %v", key, err)
		metrics.Uploads.WithLabelValues("storage_error").Inc()
		return nil, platformservice.NewStorageError("图片存储失败，请稍后重试")
	}

	image := &model.Image{
		UserID:     id.UserID,
		StorageKey: key,
		URL:        s.storage.URL(key),
		PostedAt:   time.Now(),
	}
	if err := s.imageStore.Create(image); err != nil {
		// 入库失败，回滚已存储的文件
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Printf("⚠️ 回滚已存储文件失败 key=%s: %v", key, delErr)
		}
		metrics.Uploads.WithLabelValues("failed").Inc()
		return nil, platformservice.NewInternalError("保存图片记录失败")
	}

	if err := s.createDeliverVersion(ctx, image, data); err != nil {
		log.Printf("⚠️ 生成展示版本失败 image=%d: %v", image.ID, err)
	}
	if err := s.enrichMetadata(image, data); err != nil {
		log.Printf("⚠️ 读取 EXIF 失败 image=%d: %v", image.ID, err)
	}

	metrics.Uploads.WithLabelValues("ok").Inc()
	return image, nil
}

func (s *Service) readLimited(body io.Reader) ([]byte, error) {
	maxSizeMB := s.GetInt(consts.ConfigMaxUploadSize)
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024

	data, err := io.ReadAll(io.LimitReader(body, maxBytes+1))
	if err != nil {
		return nil, platformservice.NewValidationError("读取上传文件失败")
	}
	if int64(len(data)) > maxBytes {
		return nil, platformservice.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}
	if len(data) == 0 {
		return nil, platformservice.NewValidationError("上传文件为空")
	}
	return data, nil
}

// createDeliverVersion 生成限宽的展示版本并记录地址
func (s *Service) createDeliverVersion(ctx context.Context, image *model.Image, data []byte) (err error) {
	defer func() {
		status := "ok"
		if err != nil {
			status = "failed"
		}
		metrics.Enrichment.WithLabelValues("deliver", status).Inc()
	}()

	maxWidth := s.GetInt(consts.ConfigDeliverMaxWidth)
	if maxWidth <= 0 {
		maxWidth = consts.DefaultDeliverMaxWidth
	}

	resized, err := imageproc.ResizeToLimit(bytes.NewReader(data), image.StorageKey, maxWidth, consts.DefaultDeliverMaxHeight)
	if err != nil {
		return err
	}

	key := deliverKeyPrefix + image.StorageKey
	if err := s.storage.Put(ctx, key, bytes.NewReader(resized), http.DetectContentType(resized)); err != nil {
		return err
	}
	url := s.storage.URL(key)
	if err := s.imageStore.UpdateDeliverVersion(image.ID, key, url); err != nil {
		return err
	}
	image.DeliverKey = key
	image.DeliverURL = url
	return nil
}

// enrichMetadata 从图片字节中读取拍摄参数，五个字段相互独立
func (s *Service) enrichMetadata(image *model.Image, data []byte) (err error) {
	defer func() {
		// 损坏的 EXIF 段不应影响上传
		if r := recover(); r != nil {
			err = fmt.Errorf("exif panic: %v", r)
		}
		status := "ok"
		if err != nil {
			status = "failed"
		}
		metrics.Enrichment.WithLabelValues("exif", status).Inc()
	}()

	md, err := s.extractor.Extract(bytes.NewReader(data))
	if err != nil {
		return err
	}

	fields := toImageMetadata(md)
	if err := s.imageStore.UpdateMetadata(image.ID, fields); err != nil {
		return err
	}
	image.CameraModel = fields.CameraModel
	image.FocalLength = fields.FocalLength
	image.ISO = fields.ISO
	image.Aperture = fields.Aperture
	image.ShutterSpeed = fields.ShutterSpeed
	return nil
}

func toImageMetadata(md *exifmeta.Metadata) repo.ImageMetadata {
	var out repo.ImageMetadata
	if md == nil {
		return out
	}
	out.CameraModel = md.CameraModel
	out.ISO = md.ISO
	out.Aperture = md.Aperture
	if md.FocalLength != nil {
		v := exifmeta.RoundFocalLength(*md.FocalLength)
		out.FocalLength = &v
	}
	if md.ExposureTime != nil {
		v := exifmeta.FormatShutterSpeed(*md.ExposureTime)
		out.ShutterSpeed = &v
	}
	return out
}
