package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gal099/qr-track-challenge/internal/models"
	"github.com/gal099/qr-track-challenge/internal/repository"
)

// AuditService records admin actions (logins, deletions) through a
// buffered channel so handlers never wait on the write.
type AuditService struct {
	repo         *repository.AuditRepository
	logger       *slog.Logger
	auditChannel chan models.AuditLog
}

func NewAuditService(repo *repository.AuditRepository, logger *slog.Logger) *AuditService {
	return &AuditService{
		repo:         repo,
		logger:       logger,
		auditChannel: make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	for {
		select {
		case entry := <-s.auditChannel:
			if err := s.repo.Create(&entry); err != nil {
				s.logger.Error("Failed to write audit log", "action", entry.Action, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *AuditService) LogAction(action, entityID string, details interface{}, ip string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.auditChannel <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}
