package handlers

import (
	"errors"
	"net/http"

	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Dashboard is the bootstrap fetch for the admin dashboard: all four
// collections in one round trip, each panel settled independently.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	respondOK(c, services.FetchDashboard())
}

func (h *AdminHandler) ReportedComments(c *gin.Context) {
	reported, err := services.ListReportedComments()
	if err != nil {
		respondInternal(c, "Error fetching reported comments", err)
		return
	}
	respondOK(c, reported)
}

type moderationRequest struct {
	Action string `json:"action" binding:"required"`
}

func (h *AdminHandler) HandleReportedComment(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	switch err := services.HandleReportedComment(id, req.Action); {
	case err == nil:
		respondMessage(c, "Report handled successfully")
	case errors.Is(err, services.ErrUnknownAction):
		respondError(c, http.StatusBadRequest, "Action must be delete or ignore")
	case errors.Is(err, services.ErrCommentNotFound):
		respondNotFound(c, "Comment not found")
	case errors.Is(err, services.ErrNothingPending):
		respondNotFound(c, "No pending report for this comment")
	default:
		respondInternal(c, "Error handling report", err)
	}
}
