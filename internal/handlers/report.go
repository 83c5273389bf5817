package handlers

import (
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

func (h *ReportHandler) List(c *gin.Context) {
	var reports []models.Report
	db.DB.Order("created_at DESC").Find(&reports)
	respondOK(c, reports)
}

func (h *ReportHandler) ListByStatus(c *gin.Context) {
	status := c.Param("status")
	if status != models.ReportStatusPending && status != models.ReportStatusResolved {
		respondError(c, http.StatusBadRequest, "Unknown report status")
		return
	}

	var reports []models.Report
	db.DB.Where("status = ?", status).Order("created_at DESC").Find(&reports)
	respondOK(c, reports)
}

type reportPatch struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (h *ReportHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var report models.Report
	if err := db.DB.First(&report, id).Error; err != nil {
		respondNotFound(c, "Report not found")
		return
	}

	var patch reportPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Status only moves pending -> resolved, never back.
	if patch.Status != "" {
		if patch.Status != models.ReportStatusResolved || report.Status != models.ReportStatusPending {
			respondError(c, http.StatusBadRequest, "Report status can only move from pending to resolved")
			return
		}
		report.Status = models.ReportStatusResolved
	}
	if patch.Reason != "" {
		report.Reason = patch.Reason
	}

	if err := db.DB.Save(&report).Error; err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, report)
}

func (h *ReportHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var report models.Report
	if err := db.DB.First(&report, id).Error; err != nil {
		respondNotFound(c, "Report not found")
		return
	}

	if err := db.DB.Delete(&report).Error; err != nil {
		respondInternal(c, "Error deleting report", err)
		return
	}

	respondMessage(c, "Report deleted successfully")
}
