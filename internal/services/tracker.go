package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/gal099/qr-track-challenge/internal/models"
	"github.com/gal099/qr-track-challenge/internal/repository"
)

// ScanEvent is the raw request-side capture for one redirect. Header
// values are carried as-is; parsing, decoding and IP redaction happen in
// the worker so the redirect path does no extra work.
type ScanEvent struct {
	QRCodeID     uint
	UserAgent    string
	ForwardedFor string
	RealIP       string
	GeoCountry   string
	GeoCity      string
}

// TrackerService persists scan events off the request path. Events are
// dispatched onto a buffered channel and the HTTP response never waits
// for the write; a failed insert is logged and otherwise dropped.
type TrackerService struct {
	repo         *repository.ScanRepository
	logger       *slog.Logger
	geoIPService *GeoIPService
	scanChannel  chan ScanEvent
}

func NewTrackerService(repo *repository.ScanRepository, logger *slog.Logger, geoIPService *GeoIPService) *TrackerService {
	return &TrackerService{
		repo:         repo,
		logger:       logger,
		geoIPService: geoIPService,
		scanChannel:  make(chan ScanEvent, 1000),
	}
}

func (s *TrackerService) Start(ctx context.Context) {
	s.logger.Info("Scan tracker starting")
	for {
		select {
		case event := <-s.scanChannel:
			scan := s.buildScan(event)
			if err := s.repo.Create(scan); err != nil {
				s.logger.Error("Failed to record scan", "qr_code_id", event.QRCodeID, "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Scan tracker stopping")
			return
		}
	}
}

// TrackAsync dispatches an event without blocking. A full channel drops
// the event; losing a scan is preferred over delaying a redirect.
func (s *TrackerService) TrackAsync(event ScanEvent) {
	select {
	case s.scanChannel <- event:
	default:
		s.logger.Warn("Scan channel full, dropping scan event", "qr_code_id", event.QRCodeID)
	}
}

func (s *TrackerService) buildScan(event ScanEvent) *models.Scan {
	scan := &models.Scan{
		QRCodeID:  event.QRCodeID,
		ScannedAt: time.Now(),
	}

	deviceType, browser := ParseUserAgent(event.UserAgent)
	scan.DeviceType = &deviceType
	scan.Browser = &browser
	if event.UserAgent != "" {
		ua := event.UserAgent
		scan.UserAgent = &ua
	}

	scan.Country, scan.City = DecodeGeoHeaders(event.GeoCountry, event.GeoCity)

	clientIP := ClientIPFromHeaders(event.ForwardedFor, event.RealIP)
	if clientIP != "" {
		// GeoIP fallback only when the edge provided no location headers.
		if scan.Country == nil && scan.City == nil && s.geoIPService != nil {
			country, city := s.geoIPService.Lookup(clientIP)
			if country != "" {
				scan.Country = &country
			}
			if city != "" {
				scan.City = &city
			}
		}

		redacted := RedactIP(clientIP)
		scan.IPAddress = &redacted
	}

	return scan
}
