package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gal099/qr-track-challenge/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAnalytics handles GET /api/analytics/:qr_code_id.
func (h *Handler) GetAnalytics(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("qr_code_id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid QR code ID. Please provide a valid numeric ID."})
		return
	}

	qr, err := h.qrRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "QR code not found. It may have been deleted or the ID is incorrect."})
			return
		}
		h.logger.Error("Analytics lookup failed", "qr_code_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch analytics. Please try again."})
		return
	}

	analytics, err := h.scanRepo.Analytics(qr.ID)
	if err != nil {
		h.logger.Error("Analytics aggregation failed", "qr_code_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch analytics. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"qr_code": gin.H{
				"id":         qr.ID,
				"short_code": qr.ShortCode,
				"target_url": qr.TargetURL,
				"created_at": qr.CreatedAt,
			},
			"analytics": analytics,
		},
	})
}
