package handlers

import (
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	db.DB.Order("id ASC").Find(&categories)
	respondOK(c, categories)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Categories have no owner; mutations are admin-only (enforced by the
// route group).

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := db.DB.Create(&category).Error; err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondCreated(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		respondNotFound(c, "Category not found")
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := db.DB.Save(&category).Error; err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		respondNotFound(c, "Category not found")
		return
	}

	// Posts reference categories with ON DELETE RESTRICT; surface the
	// constraint violation instead of orphaning posts.
	if err := db.DB.Delete(&category).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Category is still in use")
		return
	}

	respondMessage(c, "Category deleted successfully")
}
