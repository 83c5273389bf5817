package models

import (
	"time"
)

// CommentLike backs the like/unlike toggle. One row per user per
// comment; Comment.Likes is the denormalized count.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;index;uniqueIndex:idx_user_comment" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
