package service

import (
	"errors"
	"log"

	"image-board/internal/consts"
	"image-board/internal/identity"
	"image-board/internal/model"
	"image-board/internal/modules/user/dto"
	"image-board/internal/modules/user/repo"
	platformservice "image-board/internal/platform/service"

	"gorm.io/gorm"
)

func (s *Service) ListUsers(id identity.Identity) ([]repo.UserSummary, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}
	users, err := s.userStore.ListSummaries()
	if err != nil {
		log.Printf("ListSummaries error: %v", err)
		return nil, platformservice.NewInternalError("获取用户列表失败")
	}
	return users, nil
}

// GetProfile 用户主页
func (s *Service) GetProfile(id identity.Identity, userID uint, page int) (*dto.UserProfileResponse, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}

	user, err := s.findUser(func() (*model.User, error) { return s.userStore.FindByID(userID) })
	if err != nil {
		return nil, err
	}

	images, err := s.imageLister.ListImages(id, &user.ID, page)
	if err != nil {
		return nil, err
	}

	favs, err := s.userStore.CountFavoritesReceived(user.ID)
	if err != nil {
		log.Printf("CountFavoritesReceived error: %v", err)
		return nil, platformservice.NewInternalError("获取用户信息失败")
	}

	return &dto.UserProfileResponse{
		User:              dto.ToUserInfo(user),
		Images:            images,
		FavoritesReceived: favs,
	}, nil
}

// Promote 把用户设为管理员，仅供管理员或命令行调用
func (s *Service) Promote(id identity.Identity, name string) (*model.User, error) {
	return s.setPrivilegeLevel(id, name, consts.PrivilegeAdmin)
}

// Demote 取消管理员
func (s *Service) Demote(id identity.Identity, name string) (*model.User, error) {
	return s.setPrivilegeLevel(id, name, consts.PrivilegeUser)
}

func (s *Service) setPrivilegeLevel(id identity.Identity, name string, level int) (*model.User, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}
	if level != consts.PrivilegeUser && level != consts.PrivilegeAdmin {
		return nil, platformservice.NewValidationError("无效的权限等级")
	}

	user, err := s.findUser(func() (*model.User, error) { return s.userStore.FindByName(name) })
	if err != nil {
		return nil, err
	}

	if err := s.userStore.UpdatePrivilegeLevel(user.ID, level); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		log.Printf("UpdatePrivilegeLevel error: %v", err)
		return nil, platformservice.NewInternalError("更新权限失败")
	}
	user.PrivilegeLevel = level
	return user, nil
}

func (s *Service) findUser(find func() (*model.User, error)) (*model.User, error) {
	user, err := find()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		log.Printf("find user error: %v", err)
		return nil, platformservice.NewInternalError("获取用户信息失败")
	}
	return user, nil
}
