package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListQRCodes handles GET /api/qr/list: all live codes, newest first,
// each with its total scan count.
func (h *Handler) ListQRCodes(c *gin.Context) {
	qrCodes, err := h.qrRepo.ListWithScanCounts()
	if err != nil {
		h.logger.Error("QR list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch QR codes. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"qr_codes": qrCodes},
	})
}
