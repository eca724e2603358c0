package models

import (
	"time"

	"gorm.io/gorm"
)

// Memo represents a single note
type Memo struct {
	ID         uint   `gorm:"primaryKey"`
	CreatorID  int32  `gorm:"not null;index:idx_memo_creator"`
	Content    string `gorm:"type:text;not null"`
	Visibility string `gorm:"type:text;not null;default:PRIVATE"`

	// Timestamps
	DisplayAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Resources []Resource `gorm:"foreignKey:MemoID;constraint:OnDelete:CASCADE"`
}

// Resource represents an attachment linked to a memo
type Resource struct {
	ID       uint   `gorm:"primaryKey"`
	MemoID   uint   `gorm:"not null;index"`
	Filename string `gorm:"type:text;not null"`
	Type     string `gorm:"type:text"`
	Size     int64  `gorm:"default:0"`

	CreatedAt time.Time
}
