package service

import (
	"log"
	"runtime"

	"image-board/internal/identity"
	moduledto "image-board/internal/modules/system/dto"
	platformservice "image-board/internal/platform/service"
)

// AdminGetServerStats 获取后台统计数据，也用于清库前的确认信息
func (s *Service) AdminGetServerStats(id identity.Identity) (*moduledto.ServerStatsResponse, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}

	counts, err := s.systemStore.CountAll()
	if err != nil {
		log.Printf("CountAll error: %v", err)
		return nil, platformservice.NewInternalError("统计数据失败")
	}

	return &moduledto.ServerStatsResponse{
		UserCount:     counts.Users,
		ImageCount:    counts.Images,
		CommentCount:  counts.Comments,
		FavoriteCount: counts.Favorites,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
