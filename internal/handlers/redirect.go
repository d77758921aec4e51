package handlers

import (
	"errors"
	"net/http"

	"github.com/gal099/qr-track-challenge/internal/repository"
	"github.com/gal099/qr-track-challenge/internal/services"
	"github.com/gal099/qr-track-challenge/internal/validation"

	"github.com/gin-gonic/gin"
)

// RedirectToURL handles GET /r/:short_code. The scan record is dispatched
// to the tracker without waiting: the redirect goes out whether or not
// the write ever lands.
func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("short_code")
	if !validation.IsValidShortCode(shortCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid short code format"})
		return
	}

	qr, err := h.qrRepo.GetByShortCode(shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// A row hidden by soft delete still exists unscoped; tell
			// those apart from codes that were never issued.
			deleted, exErr := h.qrRepo.ShortCodeExists(shortCode)
			if exErr == nil && deleted {
				c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found. It may have been deleted."})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found"})
			return
		}
		h.logger.Error("Redirect lookup failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.tracker.TrackAsync(services.ScanEvent{
		QRCodeID:     qr.ID,
		UserAgent:    c.Request.UserAgent(),
		ForwardedFor: c.GetHeader("X-Forwarded-For"),
		RealIP:       c.GetHeader("X-Real-IP"),
		GeoCountry:   c.GetHeader("X-Geo-Country"),
		GeoCity:      c.GetHeader("X-Geo-City"),
	})

	// Target URL was validated at creation time; redirect to it verbatim.
	c.Redirect(http.StatusFound, qr.TargetURL)
}
