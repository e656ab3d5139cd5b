package dto

import (
	"time"

	"image-board/internal/model"
)

type PostCommentRequest struct {
	Comment string `form:"comment" json:"comment"`
}

type CommentView struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	UserName string    `json:"user_name"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"posted_at"`
}

type FavoriteView struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

func ToCommentView(c *model.Comment) CommentView {
	return CommentView{
		ID:       c.ID,
		UserID:   c.UserID,
		UserName: c.User.Name,
		Text:     c.Text,
		PostedAt: c.PostedAt,
	}
}

func ToFavoriteView(f *model.Favorite) FavoriteView {
	return FavoriteView{UserID: f.UserID, UserName: f.User.Name}
}
