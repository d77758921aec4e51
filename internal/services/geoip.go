package services

import (
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/gal099/qr-track-challenge/internal/config"

	"github.com/oschwald/geoip2-golang"
)

// GeoIPService resolves coarse location for scans whose requests carried
// no geolocation headers. It is optional: without a database file every
// lookup returns empty values.
type GeoIPService struct {
	cfg       config.Config
	logger    *slog.Logger
	geoReader *geoip2.Reader
	geoLock   sync.RWMutex
}

func NewGeoIPService(cfg config.Config, logger *slog.Logger) *GeoIPService {
	return &GeoIPService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *GeoIPService) Init() {
	dbPath := s.cfg.GeoIPDBPath
	if dbPath == "" {
		return
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		s.logger.Warn("GeoIP: Database missing, header-less lookups disabled", "path", dbPath)
		return
	}
	s.reloadReader(dbPath)
}

func (s *GeoIPService) reloadReader(path string) {
	s.geoLock.Lock()
	defer s.geoLock.Unlock()

	if s.geoReader != nil {
		s.geoReader.Close()
	}

	reader, err := geoip2.Open(path)
	if err != nil {
		s.logger.Error("GeoIP: Failed to open database", "path", path, "error", err)
		return
	}
	s.geoReader = reader

	meta := reader.Metadata()
	s.logger.Info("GeoIP: Loaded database", "epoch", meta.BuildEpoch)
}

func (s *GeoIPService) Close() {
	s.geoLock.Lock()
	defer s.geoLock.Unlock()
	if s.geoReader != nil {
		s.geoReader.Close()
		s.geoReader = nil
	}
}

// Lookup returns the ISO country code and city name for an address, or
// empty strings when no database is loaded or the address is unknown.
func (s *GeoIPService) Lookup(ipStr string) (country, city string) {
	s.geoLock.RLock()
	reader := s.geoReader
	s.geoLock.RUnlock()

	if reader == nil {
		return "", ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "", ""
	}

	record, err := reader.City(ip)
	if err != nil {
		s.logger.Error("GeoIP: Lookup error", "ip", ipStr, "error", err)
		return "", ""
	}

	country = record.Country.IsoCode
	if name, ok := record.City.Names["en"]; ok {
		city = name
	}
	return country, city
}
