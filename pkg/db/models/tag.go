package models

import (
	"time"
)

// Tag represents a tag name known to a user
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	CreatorID int32  `gorm:"not null;uniqueIndex:idx_creator_tag"`
	Name      string `gorm:"type:text;not null;uniqueIndex:idx_creator_tag"`

	CreatedAt time.Time
}
