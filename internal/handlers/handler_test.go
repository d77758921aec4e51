package handlers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gal099/qr-track-challenge/internal/config"
	"github.com/gal099/qr-track-challenge/internal/models"
	"github.com/gal099/qr-track-challenge/internal/repository"
	"github.com/gal099/qr-track-challenge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles everything a handler test touches: the router for
// HTTP-level assertions and the db for direct state checks.
type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	handler *Handler
	cfg     config.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.QRCode{}, &models.Scan{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := config.Config{
		AppEnv:        "test",
		BaseURL:       "http://localhost:8080",
		SessionSecret: "test-session-secret",
		AdminPassword: "test-admin-password",
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	qrRepo := repository.NewQRCodeRepository(db)
	scanRepo := repository.NewScanRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	codeGen := services.NewShortCodeGenerator(qrRepo)
	geoIP := services.NewGeoIPService(cfg, log)
	tracker := services.NewTrackerService(scanRepo, log, geoIP)
	auditService := services.NewAuditService(auditRepo, log)
	qrService := services.NewQRService()
	attempts := services.NewMemoryAttemptStore()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go tracker.Start(ctx)
	go auditService.Start(ctx)

	h := NewHandler(cfg, log, qrRepo, scanRepo, codeGen, tracker, auditService, qrService, attempts)

	return &testEnv{
		router:  h.SetupRouter(nil),
		db:      db,
		handler: h,
		cfg:     cfg,
	}
}

func (e *testEnv) createQRCode(t *testing.T, shortCode, targetURL string) models.QRCode {
	t.Helper()
	qr := models.QRCode{
		ShortCode: shortCode,
		TargetURL: targetURL,
		FgColor:   "#000000",
		BgColor:   "#FFFFFF",
		Author:    "Test Author",
	}
	if err := e.db.Create(&qr).Error; err != nil {
		t.Fatalf("failed to seed qr code: %v", err)
	}
	return qr
}
