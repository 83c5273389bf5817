package services

import (
	"errors"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

const (
	ModerationActionDelete = "delete"
	ModerationActionIgnore = "ignore"
)

var (
	ErrUnknownAction   = errors.New("unknown moderation action")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNothingPending  = errors.New("no pending report for comment")
)

// ReportedComment pairs a flagged comment with its open reports for
// the moderation queue.
type ReportedComment struct {
	Comment models.CommentView `json:"comment"`
	Reports []models.Report    `json:"reports"`
}

// ListReportedComments returns every comment currently in the
// reported status together with its pending reports.
func ListReportedComments() ([]ReportedComment, error) {
	var comments []models.Comment
	if err := db.DB.Preload("Author").
		Where("status = ?", models.CommentStatusReported).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	out := make([]ReportedComment, 0, len(comments))
	for _, com := range comments {
		var reports []models.Report
		if err := db.DB.
			Where("target_type = ? AND target_id = ? AND status = ?",
				models.ReportTargetComment, com.ID, models.ReportStatusPending).
			Order("created_at DESC").
			Find(&reports).Error; err != nil {
			return nil, err
		}
		out = append(out, ReportedComment{
			Comment: models.CommentView{Comment: com, Author: com.Author.AsAuthor()},
			Reports: reports,
		})
	}
	return out, nil
}

// HandleReportedComment resolves the moderation case for one comment
// in a single transaction:
//
//	delete — resolve the pending reports AND remove the comment.
//	ignore — resolve the pending reports, restore the comment to active.
//
// Calling it again for the same comment fails with ErrCommentNotFound
// or ErrNothingPending instead of touching any state, so repeated
// clicks from the dashboard cannot corrupt anything.
func HandleReportedComment(commentID uint, action string) error {
	if action != ModerationActionDelete && action != ModerationActionIgnore {
		return ErrUnknownAction
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}

		res := tx.Model(&models.Report{}).
			Where("target_type = ? AND target_id = ? AND status = ?",
				models.ReportTargetComment, commentID, models.ReportStatusPending).
			Update("status", models.ReportStatusResolved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 && comment.Status != models.CommentStatusReported {
			return ErrNothingPending
		}

		if action == ModerationActionDelete {
			return tx.Delete(&comment).Error
		}
		return tx.Model(&comment).Update("status", models.CommentStatusActive).Error
	})
}
