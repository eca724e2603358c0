package shortcut

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwantia/gomemo/pkg/db/models"
	"github.com/mwantia/gomemo/pkg/filter"
)

// RowStatus is the legacy status vocabulary where ARCHIVED meant pinned.
type RowStatus string

const (
	RowStatusNormal   RowStatus = "NORMAL"
	RowStatusArchived RowStatus = "ARCHIVED"
)

// ParseRowStatus maps the legacy status onto the pin flag.
func ParseRowStatus(status string) (pinned bool, err error) {
	switch RowStatus(strings.ToUpper(status)) {
	case RowStatusNormal:
		return false, nil
	case RowStatusArchived:
		return true, nil
	}
	return false, fmt.Errorf("unknown row status '%s'", status)
}

// Shortcut is a named clause sequence a user can reapply or pin.
type Shortcut struct {
	ID        string    `json:"id"        yaml:"id"`
	CreatorID int32     `json:"creatorId" yaml:"creator_id"`
	Title     string    `json:"title"     yaml:"title"`
	Payload   string    `json:"payload"   yaml:"payload"`
	Pinned    bool      `json:"pinned"    yaml:"pinned"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}

func (s Shortcut) RowStatus() RowStatus {
	if s.Pinned {
		return RowStatusArchived
	}
	return RowStatusNormal
}

// Clauses decodes the payload. A corrupt payload yields no clauses.
func (s Shortcut) Clauses() filter.Sequence {
	return filter.Deserialize(s.Payload)
}

func fromModel(m models.Shortcut) Shortcut {
	return Shortcut{
		ID:        m.ID,
		CreatorID: m.CreatorID,
		Title:     m.Title,
		Payload:   m.Payload,
		Pinned:    m.Pinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
