package handlers

import (
	"net/http"

	"inkwell/internal/authz"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// List is admin-only (route group).
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	db.DB.Order("created_at DESC").Find(&users)
	respondOK(c, users)
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// Create is the admin path for provisioning users; unlike Register it
// may set the role.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondInternal(c, "Error creating user", err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Avatar:   req.Avatar,
		Role:     role,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondCreated(c, user)
}

type updateUserRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

func (h *UserHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		respondNotFound(c, "User not found")
		return
	}

	if !authz.CanMutate(actor, &user) {
		respondUnauthorized(c, "Not authorized to update this user")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	// Role is immutable except by admin action.
	if req.Role != "" && actor.IsAdmin() {
		user.Role = req.Role
	}

	if err := db.DB.Save(&user).Error; err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		respondNotFound(c, "User not found")
		return
	}

	if !authz.CanMutate(actor, &user) {
		respondUnauthorized(c, "Not authorized to delete this user")
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		respondInternal(c, "Error deleting user", err)
		return
	}

	respondMessage(c, "User deleted successfully")
}
