package service

import (
	"testing"

	"image-board/internal/consts"
	"image-board/internal/identity"
	"image-board/internal/model"
	platformservice "image-board/internal/platform/service"
)

// 测试内容：验证用户列表包含每个用户的图片数量。
func TestListUsers(t *testing.T) {
	s, gdb := setupTestService(t)
	alice := createUser(t, gdb, "alice", consts.PrivilegeUser)
	createUser(t, gdb, "bob", consts.PrivilegeUser)
	createImage(t, gdb, alice, "a.png")
	createImage(t, gdb, alice, "b.png")

	if _, err := s.ListUsers(identity.Anonymous()); !platformservice.HasCode(err, platformservice.ErrorCodeUnauthorized) {
		t.Fatalf("期望 unauthorized，实际为 %v", err)
	}

	users, err := s.ListUsers(identity.FromUser(alice))
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 || users[0].ImageCount != 2 || users[1].ImageCount != 0 {
		t.Fatalf("非预期用户列表: %+v", users)
	}
}

// 测试内容：验证用户主页返回该用户的图片与收到的收藏数。
func TestGetProfile(t *testing.T) {
	s, gdb := setupTestService(t)
	alice := createUser(t, gdb, "alice", consts.PrivilegeUser)
	bob := createUser(t, gdb, "bob", consts.PrivilegeUser)
	img := createImage(t, gdb, alice, "a.png")
	createImage(t, gdb, bob, "b.png")
	gdb.Create(&model.Favorite{ImageID: img.ID, UserID: bob.ID})

	profile, err := s.GetProfile(identity.FromUser(bob), alice.ID, 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.User.Name != "alice" || profile.Images.Total != 1 || profile.FavoritesReceived != 1 {
		t.Fatalf("非预期主页: %+v", profile)
	}

	if _, err := s.GetProfile(identity.FromUser(bob), 999, 1); !platformservice.HasCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
}

// 测试内容：验证提升管理员只允许管理员身份，且只写入合法的权限等级。
func TestPromote(t *testing.T) {
	s, gdb := setupTestService(t)
	alice := createUser(t, gdb, "alice", consts.PrivilegeUser)

	if _, err := s.Promote(identity.FromUser(alice), "alice"); !platformservice.HasCode(err, platformservice.ErrorCodeForbidden) {
		t.Fatalf("期望 forbidden，实际为 %v", err)
	}

	u, err := s.Promote(identity.Console(), "alice")
	if err != nil || u.PrivilegeLevel != consts.PrivilegeAdmin {
		t.Fatalf("Promote: %+v (%v)", u, err)
	}
	var stored model.User
	gdb.First(&stored, alice.ID)
	if stored.PrivilegeLevel != consts.PrivilegeAdmin {
		t.Fatalf("期望已写入管理员权限，实际为 %d", stored.PrivilegeLevel)
	}

	if _, err := s.Demote(identity.Console(), "alice"); err != nil {
		t.Fatalf("Demote: %v", err)
	}
	if _, err := s.Promote(identity.Console(), "nobody"); !platformservice.HasCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
	if _, err := s.setPrivilegeLevel(identity.Console(), "alice", 42); !platformservice.HasCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望 validation，实际为 %v", err)
	}
}
