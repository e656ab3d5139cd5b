package repo

import (
	"testing"
	"time"

	"image-board/internal/db"
	"image-board/internal/model"
	"image-board/internal/testutils"

	"gorm.io/gorm"
)

func seedImage(t *testing.T, gdb *gorm.DB) (*model.User, *model.User, *model.Image) {
	t.Helper()
	owner := &model.User{Name: "owner", PasswordHash: "x", Email: "owner@example.com"}
	other := &model.User{Name: "other", PasswordHash: "x", Email: "other@example.com"}
	if err := gdb.Create(owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := gdb.Create(other).Error; err != nil {
		t.Fatalf("create other: %v", err)
	}
	img := &model.Image{UserID: owner.ID, StorageKey: "a.png", URL: "/imgs/a.png", PostedAt: time.Now()}
	if err := gdb.Create(img).Error; err != nil {
		t.Fatalf("create image: %v", err)
	}
	return owner, other, img
}

// 测试内容：验证评论按发表时间正序返回并带上作者。
func TestSocialRepository_ListCommentsOrdered(t *testing.T) {
	gdb := testutils.SetupDB(t)
	r := NewSocialRepository(gdb)
	owner, other, img := seedImage(t, gdb)

	now := time.Now()
	_ = r.CreateComment(&model.Comment{ImageID: img.ID, UserID: other.ID, Text: "second", PostedAt: now})
	_ = r.CreateComment(&model.Comment{ImageID: img.ID, UserID: owner.ID, Text: "first", PostedAt: now.Add(-time.Minute)})

	comments, err := r.ListComments(img.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 2 || comments[0].Text != "first" || comments[1].Text != "second" {
		t.Fatalf("非预期评论顺序: %+v", comments)
	}
	if comments[0].User.Name != "owner" {
		t.Fatalf("期望预加载作者，实际为 %q", comments[0].User.Name)
	}
}

// 测试内容：验证同一用户重复收藏被唯一索引拒绝。
func TestSocialRepository_FavoriteUnique(t *testing.T) {
	gdb := testutils.SetupDB(t)
	r := NewSocialRepository(gdb)
	_, other, img := seedImage(t, gdb)

	if err := r.CreateFavorite(&model.Favorite{ImageID: img.ID, UserID: other.ID}); err != nil {
		t.Fatalf("CreateFavorite: %v", err)
	}
	err := r.CreateFavorite(&model.Favorite{ImageID: img.ID, UserID: other.ID})
	if !db.IsUniqueViolation(err) {
		t.Fatalf("期望唯一约束冲突，实际为 %v", err)
	}

	ok, err := r.ExistsFavorite(other.ID, img.ID)
	if err != nil || !ok {
		t.Fatalf("期望已收藏，实际为 %v (%v)", ok, err)
	}
	favs, err := r.ListFavorites(img.ID)
	if err != nil || len(favs) != 1 || favs[0].User.Name != "other" {
		t.Fatalf("非预期收藏列表: %+v (%v)", favs, err)
	}
}
