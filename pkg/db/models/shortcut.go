package models

import (
	"time"

	"gorm.io/gorm"
)

// Shortcut represents a named, persisted filter clause list owned by one user
type Shortcut struct {
	ID        string `gorm:"primaryKey;type:text"`
	CreatorID int32  `gorm:"not null;index:idx_shortcut_creator"`
	Title     string `gorm:"type:text;not null"`
	Payload   string `gorm:"type:text;not null"` // e.g., [{"type":"TAG","value":{"operator":"CONTAIN","value":"go"},"relation":"AND"}]
	Pinned    bool   `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
