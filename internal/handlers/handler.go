package handlers

import (
	"log/slog"

	"github.com/gal099/qr-track-challenge/internal/config"
	"github.com/gal099/qr-track-challenge/internal/repository"
	"github.com/gal099/qr-track-challenge/internal/services"
)

type Handler struct {
	cfg          config.Config
	logger       *slog.Logger
	qrRepo       *repository.QRCodeRepository
	scanRepo     *repository.ScanRepository
	codeGen      *services.ShortCodeGenerator
	tracker      *services.TrackerService
	auditService *services.AuditService
	qrService    *services.QRService
	attempts     services.AttemptStore
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	qrRepo *repository.QRCodeRepository,
	scanRepo *repository.ScanRepository,
	codeGen *services.ShortCodeGenerator,
	tracker *services.TrackerService,
	auditService *services.AuditService,
	qrService *services.QRService,
	attempts services.AttemptStore,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		qrRepo:       qrRepo,
		scanRepo:     scanRepo,
		codeGen:      codeGen,
		tracker:      tracker,
		auditService: auditService,
		qrService:    qrService,
		attempts:     attempts,
	}
}
