package models

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"

	ReportTargetComment = "comment"
	ReportTargetPost    = "post"
	ReportTargetUser    = "user"
)

// Report status only ever moves pending -> resolved, never back.
type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReporterID uint      `gorm:"not null;index" json:"reporter_id"`
	Reporter   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	TargetType string    `gorm:"size:20;not null" json:"target_type"` // comment, post, user
	TargetID   uint      `gorm:"not null;index" json:"target_id"`
	Reason     string    `gorm:"size:200;not null" json:"reason"`
	Status     string    `gorm:"size:20;default:'pending';not null;index" json:"status"` // pending, resolved
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
