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

func createPost(t *testing.T, c *apiClient, categoryID uint) uint {
	t.Helper()
	code, envelope := c.do(http.MethodPost, "/api/v1/posts", map[string]interface{}{
		"title":       "First post",
		"content":     "Some *markdown* content",
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, code, "%v", envelope)
	return uint(envelope["data"].(map[string]interface{})["id"].(float64))
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	srv := newTestServer(t)
	c := newAPIClient(t, srv)
	c.signup("alice")

	code, envelope := c.do(http.MethodPost, "/api/v1/posts/999999/comments", map[string]string{
		"content": "hello?",
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Post not found", envelope["message"])
}

func TestCreateCommentForcesAuthor(t *testing.T) {
	srv := newTestServer(t)
	c := newAPIClient(t, srv)
	aliceID := c.signup("alice")
	category := seedCategory(t, "general")
	postID := createPost(t, c, category.ID)

	// A forged author_id in the body must be ignored.
	code, envelope := c.do(http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", postID), map[string]interface{}{
		"content":   "nice post",
		"author_id": 424242,
	})

	require.Equal(t, http.StatusCreated, code)
	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, aliceID, data["author_id"].(float64))
	author := data["author"].(map[string]interface{})
	assert.Equal(t, "alice", author["name"])
}

func TestListTopLevelActiveOnly(t *testing.T) {
	srv := newTestServer(t)
	c := newAPIClient(t, srv)
	aliceID := c.signup("alice")
	category := seedCategory(t, "general")
	postID := createPost(t, c, category.ID)

	top := models.Comment{PostID: postID, AuthorID: aliceID, Content: "top", Status: models.CommentStatusActive}
	require.NoError(t, db.DB.Create(&top).Error)
	reply := models.Comment{PostID: postID, AuthorID: aliceID, ParentCommentID: &top.ID, Content: "reply", Status: models.CommentStatusActive}
	require.NoError(t, db.DB.Create(&reply).Error)
	flagged := models.Comment{PostID: postID, AuthorID: aliceID, Content: "flagged", Status: models.CommentStatusReported}
	require.NoError(t, db.DB.Create(&flagged).Error)

	code, envelope := c.do(http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/comments", postID), nil)

	require.Equal(t, http.StatusOK, code)
	comments := envelope["data"].([]interface{})
	require.Len(t, comments, 1, "only the top-level active comment")
	got := comments[0].(map[string]interface{})
	assert.Equal(t, "top", got["content"])
	assert.Nil(t, got["parent_comment_id"])

	// Replies come from their own endpoint, one level per request.
	code, envelope = c.do(http.MethodGet, fmt.Sprintf("/api/v1/comments/%d/replies", top.ID), nil)
	require.Equal(t, http.StatusOK, code)
	replies := envelope["data"].([]interface{})
	require.Len(t, replies, 1)
	assert.Equal(t, "reply", replies[0].(map[string]interface{})["content"])
}

func TestUpdateCommentByNonOwner(t *testing.T) {
	srv := newTestServer(t)
	owner := newAPIClient(t, srv)
	ownerID := owner.signup("alice")
	category := seedCategory(t, "general")
	postID := createPost(t, owner, category.ID)

	comment := models.Comment{PostID: postID, AuthorID: ownerID, Content: "original", Status: models.CommentStatusActive}
	require.NoError(t, db.DB.Create(&comment).Error)

	mallory := newAPIClient(t, srv)
	mallory.signup("mallory")

	code, envelope := mallory.do(http.MethodPut, fmt.Sprintf("/api/v1/comments/%d", comment.ID), map[string]string{
		"content": "defaced",
	})

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, envelope["success"])

	var unchanged models.Comment
	require.NoError(t, db.DB.First(&unchanged, comment.ID).Error)
	assert.Equal(t, "original", unchanged.Content, "record left unchanged")

	// Delete is guarded the same way.
	code, _ = mallory.do(http.MethodDelete, fmt.Sprintf("/api/v1/comments/%d", comment.ID), nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminDeletesOthersComment(t *testing.T) {
	srv := newTestServer(t)
	owner := newAPIClient(t, srv)
	ownerID := owner.signup("alice")
	category := seedCategory(t, "general")
	postID := createPost(t, owner, category.ID)

	comment := models.Comment{PostID: postID, AuthorID: ownerID, Content: "spam", Status: models.CommentStatusActive}
	require.NoError(t, db.DB.Create(&comment).Error)

	admin := newAPIClient(t, srv)
	adminID := admin.signup("root")
	promote(t, adminID)

	code, envelope := admin.do(http.MethodDelete, fmt.Sprintf("/api/v1/comments/%d", comment.ID), nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Comment deleted successfully", envelope["message"])

	var count int64
	db.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLikeToggle(t *testing.T) {
	srv := newTestServer(t)
	c := newAPIClient(t, srv)
	aliceID := c.signup("alice")
	category := seedCategory(t, "general")
	postID := createPost(t, c, category.ID)

	comment := models.Comment{PostID: postID, AuthorID: aliceID, Content: "likeable", Status: models.CommentStatusActive}
	require.NoError(t, db.DB.Create(&comment).Error)

	path := fmt.Sprintf("/api/v1/comments/%d/like", comment.ID)

	code, envelope := c.do(http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["liked"])
	assert.EqualValues(t, 1, data["likes"].(float64))

	// Second call unlikes.
	code, envelope = c.do(http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]interface{})
	assert.Equal(t, false, data["liked"])
	assert.EqualValues(t, 0, data["likes"].(float64))
}

func TestReportCommentFlagsIt(t *testing.T) {
	srv := newTestServer(t)
	c := newAPIClient(t, srv)
	aliceID := c.signup("alice")
	category := seedCategory(t, "general")
	postID := createPost(t, c, category.ID)

	comment := models.Comment{PostID: postID, AuthorID: aliceID, Content: "rude", Status: models.CommentStatusActive}
	require.NoError(t, db.DB.Create(&comment).Error)

	reporter := newAPIClient(t, srv)
	reporter.signup("bob")

	code, envelope := reporter.do(http.MethodPost, fmt.Sprintf("/api/v1/comments/%d/report", comment.ID), map[string]string{
		"reason": "uncalled for",
	})

	require.Equal(t, http.StatusCreated, code)
	report := envelope["data"].(map[string]interface{})
	assert.Equal(t, models.ReportStatusPending, report["status"])
	assert.Equal(t, models.ReportTargetComment, report["target_type"])

	var flagged models.Comment
	require.NoError(t, db.DB.First(&flagged, comment.ID).Error)
	assert.Equal(t, models.CommentStatusReported, flagged.Status)
}
