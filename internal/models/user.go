package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	Avatar    string    `json:"avatar"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Author is the minimal projection embedded in comment and post
// responses. Never carries email or password.
type Author struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (u *User) AsAuthor() Author {
	return Author{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// OwnerID lets the authorization guard treat a user record as a
// resource owned by itself: users may edit their own profile.
func (u *User) OwnerID() uint {
	return u.ID
}
