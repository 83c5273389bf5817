package services

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDashboardSettlesAllPanels(t *testing.T) {
	setupTestDB(t)
	author := seedUser(t, "author", models.RoleUser)
	reporter := seedUser(t, "reporter", models.RoleUser)
	post := seedPost(t, author)
	seedReportedComment(t, post, author, reporter)

	data := FetchDashboard()

	require.True(t, data.Reports.Success)
	require.True(t, data.Posts.Success)
	require.True(t, data.Categories.Success)
	require.True(t, data.Users.Success)

	assert.Len(t, data.Reports.Data.([]models.Report), 1)
	assert.Len(t, data.Posts.Data.([]models.Post), 1)
	assert.Len(t, data.Categories.Data.([]models.Category), 1)
	assert.Len(t, data.Users.Data.([]models.User), 2)
}

func TestFetchDashboardEmptyStore(t *testing.T) {
	setupTestDB(t)

	data := FetchDashboard()

	// Empty collections are still successful panels.
	assert.True(t, data.Reports.Success)
	assert.True(t, data.Posts.Success)
	assert.Empty(t, data.Reports.Data)
	assert.Empty(t, data.Posts.Data)
}
