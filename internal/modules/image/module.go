package image

import (
	"image-board/internal/exifmeta"
	"image-board/internal/modules/image/handler"
	"image-board/internal/modules/image/repo"
	"image-board/internal/modules/image/service"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	imageStore repo.ImageStore,
	provider storage.Provider,
	extractor exifmeta.Extractor,
) *Module {
	moduleService := service.New(appService, imageStore, provider, extractor)

	return &Module{
		Service: moduleService,
	}
}

// BindSocial 详情页依赖评论模块，评论模块又依赖图片查询，因此 Handler 在两者都创建后再组装
func (m *Module) BindSocial(social handler.SocialReader) {
	m.Handler = handler.New(m.Service, social)
}
