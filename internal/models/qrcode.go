package models

import (
	"time"

	"gorm.io/gorm"
)

type QRCode struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ShortCode string         `gorm:"unique;not null;size:20;index" json:"short_code"`
	TargetURL string         `gorm:"not null;type:text" json:"target_url"`
	FgColor   string         `gorm:"size:7;default:'#000000'" json:"fg_color"`
	BgColor   string         `gorm:"size:7;default:'#FFFFFF'" json:"bg_color"`
	Author    string         `gorm:"size:30" json:"author,omitempty"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Scans []Scan `gorm:"foreignKey:QRCodeID;constraint:OnDelete:CASCADE" json:"scans,omitempty"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}

// QRCodeWithScans is the list-view shape: a QR code plus its scan count.
type QRCodeWithScans struct {
	ID         uint      `json:"id"`
	ShortCode  string    `json:"short_code"`
	TargetURL  string    `json:"target_url"`
	FgColor    string    `json:"fg_color"`
	BgColor    string    `json:"bg_color"`
	Author     string    `json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	TotalScans int64     `json:"total_scans"`
}
