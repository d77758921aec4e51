package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:50;not null" json:"action"` // e.g., "ADMIN_LOGIN", "DELETE_QR"
	EntityID  string    `gorm:"size:50" json:"entity_id"`       // ID of the object affected (e.g. ShortCode)
	Details   string    `gorm:"type:text" json:"details"`       // JSON or text description
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}
