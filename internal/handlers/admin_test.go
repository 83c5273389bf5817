package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireAdmin(t *testing.T) {
	srv := newTestServer(t)

	anon := newAPIClient(t, srv)
	code, envelope := anon.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, envelope["success"])

	plain := newAPIClient(t, srv)
	plain.signup("alice")
	code, _ = plain.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestDashboardBootstrap(t *testing.T) {
	srv := newTestServer(t)
	admin := newAPIClient(t, srv)
	adminID := admin.signup("root")
	promote(t, adminID)

	category := seedCategory(t, "general")
	createPost(t, admin, category.ID)

	code, envelope := admin.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, code)

	data := envelope["data"].(map[string]interface{})
	for _, panel := range []string{"reports", "posts", "categories", "users"} {
		p := data[panel].(map[string]interface{})
		assert.Equal(t, true, p["success"], "panel %s settles independently", panel)
	}
	posts := data["posts"].(map[string]interface{})["data"].([]interface{})
	assert.Len(t, posts, 1)
}

func TestHandleReportedCommentEndpoint(t *testing.T) {
	srv := newTestServer(t)
	admin := newAPIClient(t, srv)
	adminID := admin.signup("root")
	promote(t, adminID)
	category := seedCategory(t, "general")
	postID := createPost(t, admin, category.ID)

	comment := models.Comment{PostID: postID, AuthorID: adminID, Content: "bad", Status: models.CommentStatusReported}
	require.NoError(t, db.DB.Create(&comment).Error)
	report := models.Report{ReporterID: adminID, TargetType: models.ReportTargetComment, TargetID: comment.ID, Reason: "spam", Status: models.ReportStatusPending}
	require.NoError(t, db.DB.Create(&report).Error)

	path := fmt.Sprintf("/api/v1/admin/comments/%d/handle", comment.ID)

	code, envelope := admin.do(http.MethodPost, path, map[string]string{"action": "delete"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])

	// Second resolution fails gracefully.
	code, envelope = admin.do(http.MethodPost, path, map[string]string{"action": "delete"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, envelope["success"])

	var count int64
	db.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestReportStatusNeverMovesBack(t *testing.T) {
	srv := newTestServer(t)
	admin := newAPIClient(t, srv)
	adminID := admin.signup("root")
	promote(t, adminID)

	report := models.Report{ReporterID: adminID, TargetType: models.ReportTargetUser, TargetID: 1, Reason: "abuse", Status: models.ReportStatusResolved}
	require.NoError(t, db.DB.Create(&report).Error)

	code, envelope := admin.do(http.MethodPut, fmt.Sprintf("/api/v1/reports/%d", report.ID), map[string]string{
		"status": "pending",
	})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["success"])

	var unchanged models.Report
	require.NoError(t, db.DB.First(&unchanged, report.ID).Error)
	assert.Equal(t, models.ReportStatusResolved, unchanged.Status)
}
