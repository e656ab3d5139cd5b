package service

import (
	"context"
	"errors"
	"io"
	"log"

	"image-board/internal/consts"
	"image-board/internal/identity"
	"image-board/internal/model"
	"image-board/internal/modules/image/dto"
	"image-board/internal/modules/image/repo"
	platformservice "image-board/internal/platform/service"

	"gorm.io/gorm"
)

func (s *Service) pageSize() int {
	size := s.GetInt(consts.ConfigImagesPerPage)
	if size <= 0 {
		return 10
	}
	return size
}

// ListImages 分页列出全部图片，userID 非空时只列出该用户的图片
func (s *Service) ListImages(id identity.Identity, userID *uint, page int) (*dto.ImagePage, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	pageSize := s.pageSize()

	images, total, err := s.imageStore.ListImages(repo.ListImagesParams{
		UserID: userID,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		log.Printf("ListImages error: %v", err)
		return nil, platformservice.NewInternalError("获取图片列表失败")
	}

	list := make([]dto.ImageSummary, 0, len(images))
	for i := range images {
		list = append(list, dto.ToImageSummary(&images[i]))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &dto.ImagePage{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetImage 获取单张图片（带上传者）
func (s *Service) GetImage(id identity.Identity, imageID uint) (*model.Image, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}
	return s.FindImage(imageID)
}

// FindImage 不做权限判定的查询，供其他模块校验图片是否存在
func (s *Service) FindImage(imageID uint) (*model.Image, error) {
	image, err := s.imageStore.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("图片不存在")
		}
		log.Printf("FindImage error: %v", err)
		return nil, platformservice.NewInternalError("获取图片失败")
	}
	return image, nil
}

// DeleteImage 管理员删除图片。评论、收藏与图片在同一事务中删除，随后清理存储文件。
func (s *Service) DeleteImage(ctx context.Context, id identity.Identity, imageID uint) error {
	if err := identity.RequireAdmin(id); err != nil {
		return err
	}

	image, err := s.imageStore.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("图片不存在")
		}
		return platformservice.NewInternalError("获取图片失败")
	}

	if err := s.imageStore.DeleteWithRelations(image.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("图片不存在")
		}
		log.Printf("DeleteImage error: %v", err)
		return platformservice.NewInternalError("删除图片失败")
	}

	// 记录已删除，文件删除失败只记录日志
	for _, key := range []string{image.StorageKey, image.DeliverKey} {
		if key == "" {
			continue
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("⚠️ 删除存储文件失败 key=%s: %v", key, err)
		}
	}
	return nil
}

// RecreateVersions 为全部图片重新生成展示版本
func (s *Service) RecreateVersions(ctx context.Context, id identity.Identity) (*dto.MaintenanceResult, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}
	return s.forEachStoredImage(ctx, func(image *model.Image, data []byte) error {
		return s.createDeliverVersion(ctx, image, data)
	})
}

// UpdateExif 为全部图片重新读取 EXIF
func (s *Service) UpdateExif(ctx context.Context, id identity.Identity) (*dto.MaintenanceResult, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}
	return s.forEachStoredImage(ctx, func(image *model.Image, data []byte) error {
		return s.enrichMetadata(image, data)
	})
}

func (s *Service) forEachStoredImage(ctx context.Context, fn func(image *model.Image, data []byte) error) (*dto.MaintenanceResult, error) {
	images, err := s.imageStore.FindAll()
	if err != nil {
		log.Printf("FindAll images error: %v", err)
		return nil, platformservice.NewInternalError("获取图片失败")
	}

	result := &dto.MaintenanceResult{Total: len(images)}
	for i := range images {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		image := &images[i]
		data, err := s.readStored(ctx, image.StorageKey)
		if err == nil {
			err = fn(image, data)
		}
		if err != nil {
			log.Printf("⚠️ 处理图片失败 image=%d: %v", image.ID, err)
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

func (s *Service) readStored(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() { _ = obj.Body.Close() }()
	return io.ReadAll(obj.Body)
}

// PurgeStorage 删除存储中的全部文件，返回删除数量
func (s *Service) PurgeStorage(ctx context.Context, id identity.Identity) (int, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return 0, err
	}

	keys, err := s.storage.List(ctx)
	if err != nil {
		log.Printf("List storage error: %v", err)
		return 0, platformservice.NewStorageError("读取存储失败")
	}

	deleted := 0
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Printf("⚠️ 删除存储文件失败 key=%s: %v", key, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
