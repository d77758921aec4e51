package models

import (
	"time"
)

// Scan is one recorded redirect traversal. Rows are append-only: the
// tracking worker inserts them and nothing ever updates or deletes one.
type Scan struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QRCodeID   uint      `gorm:"not null;index" json:"qr_code_id"`
	ScannedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"scanned_at"`
	UserAgent  *string   `gorm:"type:text" json:"user_agent,omitempty"`
	IPAddress  *string   `gorm:"size:45" json:"ip_address,omitempty"`
	Country    *string   `gorm:"size:100" json:"country,omitempty"`
	City       *string   `gorm:"size:100" json:"city,omitempty"`
	DeviceType *string   `gorm:"size:20" json:"device_type,omitempty"`
	Browser    *string   `gorm:"size:50" json:"browser,omitempty"`
}

func (Scan) TableName() string {
	return "scans"
}

// ScanAnalytics is the on-demand aggregate view over one code's scans.
// It is computed per request and never persisted.
type ScanAnalytics struct {
	TotalScans        int64             `json:"total_scans"`
	ScansByDate       []DateCount       `json:"scans_by_date"`
	DeviceBreakdown   []DeviceTypeCount `json:"device_breakdown"`
	BrowserBreakdown  []BrowserCount    `json:"browser_breakdown"`
	LocationBreakdown []LocationCount   `json:"location_breakdown"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DeviceTypeCount struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

type LocationCount struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Count   int64  `json:"count"`
}
