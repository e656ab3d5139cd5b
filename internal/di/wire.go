//go:build wireinject
// +build wireinject

package di

import (
	"image-board/internal/config"
	"image-board/internal/exifmeta"
	"image-board/internal/modules"
	imagerepo "image-board/internal/modules/image/repo"
	settingsrepo "image-board/internal/modules/settings/repo"
	socialrepo "image-board/internal/modules/social/repo"
	systemrepo "image-board/internal/modules/system/repo"
	userrepo "image-board/internal/modules/user/repo"
	"image-board/internal/platform/cache"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/router"
	"image-board/internal/storage"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(cfg *config.Config, gormDB *gorm.DB, provider storage.Provider) (*Application, error) {
	wire.Build(
		settingsrepo.NewSettingRepository,
		wire.Bind(new(platformservice.SettingReader), new(settingsrepo.SettingStore)),
		platformservice.NewAppService,
		userrepo.NewUserRepository,
		imagerepo.NewImageRepository,
		socialrepo.NewSocialRepository,
		systemrepo.NewSystemRepository,
		exifmeta.NewExtractor,
		wire.Bind(new(exifmeta.Extractor), new(*exifmeta.GoExifExtractor)),
		cache.NewRedis,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
