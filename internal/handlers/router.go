package handlers

import (
	"net/http"

	"github.com/gal099/qr-track-challenge/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   h.cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("qrtrack_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	if rateLimiter != nil {
		api.Use(h.RateLimitMiddleware(rateLimiter))
	}
	{
		api.POST("/qr/generate", h.GenerateQRCode)
		api.GET("/qr/list", h.ListQRCodes)
		api.GET("/analytics/:qr_code_id", h.GetAnalytics)

		api.POST("/admin/auth", h.AdminLogin)
		api.DELETE("/admin/auth", h.AdminLogout)
		api.DELETE("/admin/qr/:short_code", h.AdminRequired(), h.DeleteQRCode)
	}

	// Redirects stay outside the rate-limited API group.
	r.GET("/r/:short_code", h.RedirectToURL)

	return r
}
