package dashboard

import (
	"time"
)

// Wire types mirroring the API payloads. The dashboard only needs the
// fields it renders or submits.

type Author struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Post struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	Author     Author    `json:"author"`
	CategoryID uint      `json:"category_id"`
	Category   Category  `json:"category"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"created_at"`
}

type Comment struct {
	ID              uint      `json:"id"`
	PostID          uint      `json:"post_id"`
	AuthorID        uint      `json:"author_id"`
	ParentCommentID *uint     `json:"parent_comment_id"`
	Content         string    `json:"content"`
	Status          string    `json:"status"`
	Likes           int       `json:"likes"`
	Author          Author    `json:"author"`
	CreatedAt       time.Time `json:"created_at"`
}

type Report struct {
	ID         uint      `json:"id"`
	ReporterID uint      `json:"reporter_id"`
	TargetType string    `json:"target_type"`
	TargetID   uint      `json:"target_id"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReportedComment struct {
	Comment Comment  `json:"comment"`
	Reports []Report `json:"reports"`
}

// PostForm / CategoryForm / UserForm are the dialog submission bodies.

type PostForm struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID uint   `json:"category_id"`
	Image      string `json:"image,omitempty"`
}

type CategoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserForm struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
}

type ReportPatch struct {
	Status string `json:"status,omitempty"`
	Reason string `json:"reason,omitempty"`
}
