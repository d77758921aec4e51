package handlers

import (
	"net/http"
	"time"

	"github.com/gal099/qr-track-challenge/internal/services"
	"github.com/gal099/qr-track-challenge/internal/validation"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) authClientIP(c *gin.Context) string {
	ip := services.ClientIPFromHeaders(c.GetHeader("X-Forwarded-For"), c.GetHeader("X-Real-IP"))
	if ip == "" {
		ip = c.ClientIP()
	}
	return ip
}

// AdminLogin handles POST /api/admin/auth. Failed attempts are counted
// per IP; five within an hour lock the IP out until the window resets.
func (h *Handler) AdminLogin(c *gin.Context) {
	ip := h.authClientIP(c)
	ctx := c.Request.Context()

	limit, err := h.attempts.Check(ctx, ip)
	if err != nil {
		h.logger.Error("Attempt store check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Authentication failed. Please try again."})
		return
	}
	if !limit.Allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success":    false,
			"error":      "Too many attempts. Try again later.",
			"reset_time": limit.ResetTime.Format(time.RFC3339),
		})
		return
	}

	var req validation.AdminAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON in request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// An unset admin password rejects every login.
	if h.cfg.AdminPassword == "" || req.Password != h.cfg.AdminPassword {
		if err := h.attempts.RecordFailure(ctx, ip); err != nil {
			h.logger.Error("Attempt store record failed", "error", err)
		}
		updated, _ := h.attempts.Check(ctx, ip)

		c.JSON(http.StatusUnauthorized, gin.H{
			"success":            false,
			"error":              "Invalid password",
			"remaining_attempts": updated.RemainingAttempts,
		})
		return
	}

	if err := h.attempts.Clear(ctx, ip); err != nil {
		h.logger.Error("Attempt store clear failed", "error", err)
	}

	session := sessions.Default(c)
	session.Set(adminSessionKey, uuid.NewString())
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save session"})
		return
	}

	h.auditService.LogAction("ADMIN_LOGIN", "", nil, ip)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminLogout handles DELETE /api/admin/auth.
func (h *Handler) AdminLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteQRCode handles DELETE /api/admin/qr/:short_code. Soft delete is
// idempotent at the storage layer, so a second delete reports not found.
func (h *Handler) DeleteQRCode(c *gin.Context) {
	shortCode := c.Param("short_code")
	if !validation.IsValidShortCode(shortCode) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid short code format"})
		return
	}

	deleted, err := h.qrRepo.SoftDelete(shortCode)
	if err != nil {
		h.logger.Error("QR delete failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete QR code. Please try again."})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "QR code not found"})
		return
	}

	h.auditService.LogAction("DELETE_QR", shortCode, nil, h.authClientIP(c))

	c.JSON(http.StatusOK, gin.H{"success": true})
}
