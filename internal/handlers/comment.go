package handlers

import (
	"net/http"

	"inkwell/internal/authz"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

func commentViews(comments []models.Comment) []models.CommentView {
	views := make([]models.CommentView, len(comments))
	for i, com := range comments {
		views[i] = models.CommentView{Comment: com, Author: com.Author.AsAuthor()}
	}
	return views
}

// List returns the top-level active comments of a post, newest first,
// each joined with the minimal author projection. Replies are never
// eagerly loaded; callers fetch them per comment via Replies.
func (h *CommentHandler) List(c *gin.Context) {
	postID := utils.StringToUint(c.Param("postId"))

	var comments []models.Comment
	db.DB.Preload("Author").
		Where("post_id = ? AND parent_comment_id IS NULL AND status = ?", postID, models.CommentStatusActive).
		Order("created_at DESC").
		Find(&comments)

	respondOK(c, commentViews(comments))
}

// Replies lazy-loads the direct children of one comment, one level
// per request.
func (h *CommentHandler) Replies(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var parent models.Comment
	if err := db.DB.First(&parent, id).Error; err != nil {
		respondNotFound(c, "Comment not found")
		return
	}

	var replies []models.Comment
	db.DB.Preload("Author").
		Where("parent_comment_id = ? AND status = ?", parent.ID, models.CommentStatusActive).
		Order("created_at ASC").
		Find(&replies)

	respondOK(c, commentViews(replies))
}

type commentRequest struct {
	Content         string `json:"content" binding:"required"`
	ParentCommentID *uint  `json:"parent_comment_id"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("postId"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		respondNotFound(c, "Post not found")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.ParentCommentID != nil {
		var parent models.Comment
		if err := db.DB.Where("id = ? AND post_id = ?", *req.ParentCommentID, post.ID).First(&parent).Error; err != nil {
			respondNotFound(c, "Parent comment not found")
			return
		}
	}

	comment := models.Comment{
		PostID:          post.ID,
		AuthorID:        user.ID, // always the session user, never the body
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
		Status:          models.CommentStatusActive,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		respondInternal(c, "Error creating comment", err)
		return
	}

	respondCreated(c, models.CommentView{Comment: comment, Author: user.AsAuthor()})
}

type commentPatch struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		respondNotFound(c, "Comment not found")
		return
	}

	if !authz.CanMutate(user, &comment) {
		respondUnauthorized(c, "Not authorized to update this comment")
		return
	}

	var patch commentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Only the content is patchable; author and post never change.
	comment.Content = patch.Content
	if err := db.DB.Save(&comment).Error; err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	db.DB.Preload("Author").First(&comment, comment.ID)
	respondOK(c, models.CommentView{Comment: comment, Author: comment.Author.AsAuthor()})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		respondNotFound(c, "Comment not found")
		return
	}

	if !authz.CanMutate(user, &comment) {
		respondUnauthorized(c, "Not authorized to delete this comment")
		return
	}

	// Hard delete; reports against the comment keep their own status.
	if err := db.DB.Delete(&comment).Error; err != nil {
		respondInternal(c, "Error deleting comment", err)
		return
	}

	respondMessage(c, "Comment deleted successfully")
}

// ToggleLike flips the caller's like on a comment. The CommentLike row
// and the denormalized count move together in one transaction.
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		respondNotFound(c, "Comment not found")
		return
	}

	liked := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentLike
		if err := tx.Where("user_id = ? AND comment_id = ?", user.ID, comment.ID).First(&existing).Error; err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
				UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
		}

		liked = true
		like := models.CommentLike{UserID: user.ID, CommentID: comment.ID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})
	if err != nil {
		respondInternal(c, "Error updating like", err)
		return
	}

	db.DB.First(&comment, comment.ID)
	respondOK(c, gin.H{"liked": liked, "likes": comment.Likes})
}

type reportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Report flags a comment for moderation: the comment moves to the
// reported status and a pending Report row is filed.
func (h *CommentHandler) Report(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		respondNotFound(c, "Comment not found")
		return
	}

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var report models.Report
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		report = models.Report{
			ReporterID: user.ID,
			TargetType: models.ReportTargetComment,
			TargetID:   comment.ID,
			Reason:     req.Reason,
			Status:     models.ReportStatusPending,
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			Update("status", models.CommentStatusReported).Error
	})
	if err != nil {
		respondInternal(c, "Error reporting comment", err)
		return
	}

	respondCreated(c, report)
}
