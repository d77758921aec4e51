package repository

import (
	"github.com/gal099/qr-track-challenge/internal/models"

	"gorm.io/gorm"
)

type ScanRepository struct {
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

func (r *ScanRepository) Create(scan *models.Scan) error {
	return r.db.Create(scan).Error
}

// Analytics runs five independent aggregate reads over one code's scans.
// The reads are not wrapped in a transaction, so under concurrent inserts
// the numbers may reflect slightly different snapshots.
func (r *ScanRepository) Analytics(qrCodeID uint) (*models.ScanAnalytics, error) {
	analytics := &models.ScanAnalytics{
		ScansByDate:       []models.DateCount{},
		DeviceBreakdown:   []models.DeviceTypeCount{},
		BrowserBreakdown:  []models.BrowserCount{},
		LocationBreakdown: []models.LocationCount{},
	}

	err := r.db.Model(&models.Scan{}).
		Where("qr_code_id = ?", qrCodeID).
		Count(&analytics.TotalScans).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Scan{}).
		Where("qr_code_id = ?", qrCodeID).
		Select("DATE(scanned_at) as date, COUNT(*) as count").
		Group("DATE(scanned_at)").
		Order("date ASC").
		Scan(&analytics.ScansByDate).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Scan{}).
		Where("qr_code_id = ?", qrCodeID).
		Select("COALESCE(device_type, 'unknown') as device_type, COUNT(*) as count").
		Group("device_type").
		Scan(&analytics.DeviceBreakdown).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Scan{}).
		Where("qr_code_id = ?", qrCodeID).
		Select("COALESCE(browser, 'unknown') as browser, COUNT(*) as count").
		Group("browser").
		Order("count DESC").
		Limit(10).
		Scan(&analytics.BrowserBreakdown).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Scan{}).
		Where("qr_code_id = ?", qrCodeID).
		Select("COALESCE(country, 'unknown') as country, COALESCE(city, 'unknown') as city, COUNT(*) as count").
		Group("country, city").
		Order("count DESC").
		Limit(20).
		Scan(&analytics.LocationBreakdown).Error
	if err != nil {
		return nil, err
	}

	return analytics, nil
}
