package services

import (
	"path/filepath"
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatal(err)
	}
	db.DB = gdb
}

func seedUser(t *testing.T, name, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: name + "@example.com", Password: "x", Role: role}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

func seedPost(t *testing.T, author models.User) models.Post {
	t.Helper()
	category := models.Category{Name: "general-" + t.Name(), Description: "test"}
	if err := db.DB.Create(&category).Error; err != nil {
		t.Fatal(err)
	}
	post := models.Post{AuthorID: author.ID, CategoryID: category.ID, Title: "hello", Content: "world"}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatal(err)
	}
	return post
}

func seedReportedComment(t *testing.T, post models.Post, author, reporter models.User) models.Comment {
	t.Helper()
	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Content:  "offensive",
		Status:   models.CommentStatusReported,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		t.Fatal(err)
	}
	report := models.Report{
		ReporterID: reporter.ID,
		TargetType: models.ReportTargetComment,
		TargetID:   comment.ID,
		Reason:     "spam",
		Status:     models.ReportStatusPending,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		t.Fatal(err)
	}
	return comment
}
