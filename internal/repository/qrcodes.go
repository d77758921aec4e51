package repository

import (
	"errors"

	"github.com/gal099/qr-track-challenge/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no live row.
	ErrNotFound = errors.New("record not found")
	// ErrCodeTaken is returned when a short code is already present,
	// counting soft-deleted rows.
	ErrCodeTaken = errors.New("short code already taken")
)

type QRCodeRepository struct {
	db *gorm.DB
}

func NewQRCodeRepository(db *gorm.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

// Create inserts a new QR code record. The short code must not exist
// anywhere in history, soft-deleted rows included.
func (r *QRCodeRepository) Create(qr *models.QRCode) error {
	exists, err := r.ShortCodeExists(qr.ShortCode)
	if err != nil {
		return err
	}
	if exists {
		return ErrCodeTaken
	}
	return r.db.Create(qr).Error
}

// GetByShortCode returns the live record for a code. Soft-deleted rows
// are excluded; callers that need to tell "deleted" apart from "never
// existed" combine this with ShortCodeExists.
func (r *QRCodeRepository) GetByShortCode(shortCode string) (*models.QRCode, error) {
	var qr models.QRCode
	if err := r.db.Where("short_code = ?", shortCode).First(&qr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &qr, nil
}

func (r *QRCodeRepository) GetByID(id uint) (*models.QRCode, error) {
	var qr models.QRCode
	if err := r.db.First(&qr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &qr, nil
}

// ShortCodeExists reports whether a code was ever issued. It includes
// soft-deleted rows so that deleted codes are never reissued.
func (r *QRCodeRepository) ShortCodeExists(shortCode string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&models.QRCode{}).Where("short_code = ?", shortCode).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SoftDelete marks a code deleted and reports whether a live row was
// affected. Deleting an already-deleted code is a no-op returning false.
func (r *QRCodeRepository) SoftDelete(shortCode string) (bool, error) {
	res := r.db.Where("short_code = ?", shortCode).Delete(&models.QRCode{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListWithScanCounts returns all live codes with a per-code scan count,
// newest first.
func (r *QRCodeRepository) ListWithScanCounts() ([]models.QRCodeWithScans, error) {
	var rows []models.QRCodeWithScans
	err := r.db.Model(&models.QRCode{}).
		Select("qr_codes.id, qr_codes.short_code, qr_codes.target_url, qr_codes.fg_color, qr_codes.bg_color, qr_codes.author, qr_codes.created_at, COUNT(scans.id) as total_scans").
		Joins("LEFT JOIN scans ON scans.qr_code_id = qr_codes.id").
		Group("qr_codes.id, qr_codes.short_code, qr_codes.target_url, qr_codes.fg_color, qr_codes.bg_color, qr_codes.author, qr_codes.created_at").
		Order("qr_codes.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.QRCodeWithScans{}
	}
	return rows, nil
}
