package service

import (
	"context"
	"log"

	"image-board/internal/identity"
	moduledto "image-board/internal/modules/system/dto"
	platformservice "image-board/internal/platform/service"
)

// Destroy 清空全部数据：删除存储文件，重建全部表，重新写入默认配置。
// 所有用户（包括当前管理员）都会被删除。
func (s *Service) Destroy(ctx context.Context, id identity.Identity) (*moduledto.DestroyResult, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}

	deleted, err := s.storage.PurgeStorage(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.systemStore.ResetAll(); err != nil {
		log.Printf("ResetAll error: %v", err)
		return nil, platformservice.NewInternalError("重建数据表失败")
	}

	s.ClearCache()
	if err := s.InitializeSettings(); err != nil {
		log.Printf("InitializeSettings error: %v", err)
		return nil, platformservice.NewInternalError("初始化配置失败")
	}

	log.Printf("⚠️ 数据已被 %s 清空，删除文件 %d 个", id.Name, deleted)
	return &moduledto.DestroyResult{DeletedFiles: deleted}, nil
}
