package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"inkwell/internal/authz"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

const postsPerPage = 30

// fillCommentCounts batch-fills the comment counts for a page of posts.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ? AND status = ?", postIDs, models.CommentStatusActive).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

type postPage struct {
	Posts       []models.Post `json:"posts"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

func (h *PostHandler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	cacheKey := "post:list:page:" + strconv.Itoa(page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if pageData, ok := cachedData.(postPage); ok {
			respondOK(c, pageData)
			return
		}
	}

	var total int64
	db.DB.Model(&models.Post{}).Count(&total)

	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var posts []models.Post
	db.DB.Preload("Author").Preload("Category").
		Order("created_at DESC").
		Limit(postsPerPage).
		Offset((page - 1) * postsPerPage).
		Find(&posts)

	fillCommentCounts(posts)

	pageData := postPage{Posts: posts, CurrentPage: page, TotalPages: totalPages}
	utils.GetCache().Set(cacheKey, pageData, 1*time.Minute)

	respondOK(c, pageData)
}

func (h *PostHandler) Get(c *gin.Context) {
	id := utils.StringToUint(c.Param("postId"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Category").First(&post, id).Error; err != nil {
		respondNotFound(c, "Post not found")
		return
	}

	var count int64
	db.DB.Model(&models.Comment{}).
		Where("post_id = ? AND status = ?", post.ID, models.CommentStatusActive).
		Count(&count)
	post.CommentCount = int(count)

	respondOK(c, gin.H{
		"post":         post,
		"content_html": utils.RenderMarkdown(post.Content),
	})
}

type postRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	CategoryID uint   `json:"category_id" binding:"required"`
	Image      string `json:"image"`
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// A post must reference an existing category.
	var category models.Category
	if err := db.DB.First(&category, req.CategoryID).Error; err != nil {
		respondNotFound(c, "Category not found")
		return
	}

	post := models.Post{
		AuthorID:   user.ID, // never trusted from the body
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		respondInternal(c, "Error creating post", err)
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	db.DB.Preload("Author").Preload("Category").First(&post, post.ID)
	respondCreated(c, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("postId"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		respondNotFound(c, "Post not found")
		return
	}

	if !authz.CanMutate(user, &post) {
		respondUnauthorized(c, "Not authorized to update this post")
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.CategoryID != post.CategoryID {
		var category models.Category
		if err := db.DB.First(&category, req.CategoryID).Error; err != nil {
			respondNotFound(c, "Category not found")
			return
		}
	}

	post.Title = req.Title
	post.Content = req.Content
	post.CategoryID = req.CategoryID
	if req.Image != "" {
		post.Image = req.Image
	}

	if err := db.DB.Save(&post).Error; err != nil {
		respondInternal(c, "Error updating post", err)
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	db.DB.Preload("Author").Preload("Category").First(&post, post.ID)
	respondOK(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("postId"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		respondNotFound(c, "Post not found")
		return
	}

	if !authz.CanMutate(user, &post) {
		respondUnauthorized(c, "Not authorized to delete this post")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		respondInternal(c, "Error deleting post", err)
		return
	}

	utils.GetCache().Delete("post:list:page:1")

	respondMessage(c, "Post deleted successfully")
}
