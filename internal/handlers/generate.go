package handlers

import (
	"fmt"
	"net/http"

	"github.com/gal099/qr-track-challenge/internal/models"
	"github.com/gal099/qr-track-challenge/internal/services"
	"github.com/gal099/qr-track-challenge/internal/validation"

	"github.com/gin-gonic/gin"
)

// GenerateQRCode handles POST /api/qr/generate: validates the input,
// issues a unique short code, stores the record and renders the QR PNG
// for the short URL.
func (h *Handler) GenerateQRCode(c *gin.Context) {
	var req validation.GenerateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON in request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	shortCode, err := h.codeGen.GenerateUnique()
	if err != nil {
		h.logger.Error("Short code generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate QR code. Please try again."})
		return
	}

	qr := models.QRCode{
		ShortCode: shortCode,
		TargetURL: req.TargetURL,
		FgColor:   req.FgColor,
		BgColor:   req.BgColor,
		Author:    req.Author,
	}
	if err := h.qrRepo.Create(&qr); err != nil {
		h.logger.Error("QR code creation failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate QR code. Please try again."})
		return
	}

	shortURL := fmt.Sprintf("%s/r/%s", h.cfg.BaseURL, shortCode)

	dataURL, _, err := h.qrService.GenerateQRCode(services.QROptions{
		Content: shortURL,
		FgColor: req.FgColor,
		BgColor: req.BgColor,
	})
	if err != nil {
		h.logger.Error("QR image rendering failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate QR code. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"qr_code_id":       qr.ID,
			"short_code":       shortCode,
			"short_url":        shortURL,
			"target_url":       req.TargetURL,
			"qr_code_data_url": dataURL,
			"analytics_url":    fmt.Sprintf("%s/analytics/%d", h.cfg.BaseURL, qr.ID),
		},
	})
}
