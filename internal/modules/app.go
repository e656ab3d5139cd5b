package modules

import (
	"image-board/internal/config"
	"image-board/internal/exifmeta"
	"image-board/internal/modules/auth"
	"image-board/internal/modules/image"
	imagerepo "image-board/internal/modules/image/repo"
	"image-board/internal/modules/settings"
	settingsrepo "image-board/internal/modules/settings/repo"
	"image-board/internal/modules/social"
	socialrepo "image-board/internal/modules/social/repo"
	"image-board/internal/modules/system"
	systemrepo "image-board/internal/modules/system/repo"
	"image-board/internal/modules/user"
	userrepo "image-board/internal/modules/user/repo"
	platformservice "image-board/internal/platform/service"
	"image-board/internal/storage"
)

type AppModules struct {
	Auth     *auth.Module
	User     *user.Module
	Image    *image.Module
	Social   *social.Module
	Settings *settings.Module
	System   *system.Module
}

func New(
	appService *platformservice.AppService,
	cfg *config.Config,
	provider storage.Provider,
	extractor exifmeta.Extractor,
	userStore userrepo.UserStore,
	imageStore imagerepo.ImageStore,
	socialStore socialrepo.SocialStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
) *AppModules {
	imageModule := image.New(appService, imageStore, provider, extractor)
	socialModule := social.New(appService, socialStore, imageModule.Service)
	imageModule.BindSocial(socialModule.Service)

	return &AppModules{
		Auth:     auth.New(appService, cfg, userStore),
		User:     user.New(appService, userStore, imageModule.Service),
		Image:    imageModule,
		Social:   socialModule,
		Settings: settings.New(appService, settingStore),
		System:   system.New(appService, systemStore, imageModule.Service, cfg),
	}
}
