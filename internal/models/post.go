package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	Image      string    `json:"image"` // URL; upload handling is external
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Filled at query time, not a column.
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (p *Post) OwnerID() uint {
	return p.AuthorID
}
