package models

import (
	"time"
)

const (
	CommentStatusActive   = "active"
	CommentStatusDeleted  = "deleted"
	CommentStatusReported = "reported"
)

type Comment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PostID          uint      `gorm:"not null;index" json:"post_id"`
	Post            Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID        uint      `gorm:"not null;index" json:"author_id"`
	Author          User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentCommentID *uint     `gorm:"index" json:"parent_comment_id"` // nil for top-level comments
	Content         string    `gorm:"type:text;not null" json:"content"`
	Status          string    `gorm:"size:20;default:'active';not null;index" json:"status"` // active, deleted, reported
	Likes           int       `gorm:"default:0" json:"likes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Comment) OwnerID() uint {
	return c.AuthorID
}

// CommentView is a comment joined with its author projection, the
// shape every comment endpoint returns.
type CommentView struct {
	Comment
	Author Author `json:"author"`
}
