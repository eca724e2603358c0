package store

import (
	"context"
	"errors"

	"github.com/mwantia/gomemo/pkg/db/models"
)

// ErrNotFound is returned when a record addressed by id or name does not exist
var ErrNotFound = errors.New("record not found")

// MetadataStore defines the interface for database operations
type MetadataStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error

	// Shortcut operations
	CreateShortcut(ctx context.Context, shortcut *models.Shortcut) error
	GetShortcut(ctx context.Context, id string) (*models.Shortcut, error)
	ListShortcuts(ctx context.Context, creatorID int32) ([]models.Shortcut, error)
	UpdateShortcut(ctx context.Context, id string, update ShortcutUpdate) (*models.Shortcut, error)
	DeleteShortcut(ctx context.Context, id string) error

	// Tag operations
	ListTags(ctx context.Context, creatorID int32) ([]string, error)
	UpsertTag(ctx context.Context, creatorID int32, name string) error
	DeleteTag(ctx context.Context, creatorID int32, name string) error

	// Memo operations
	CreateMemo(ctx context.Context, memo *models.Memo) error
	ListMemos(ctx context.Context, creatorID int32, limit, offset int) ([]models.Memo, error)
}

// ShortcutUpdate carries the fields to change on a shortcut. Nil fields are
// left untouched.
type ShortcutUpdate struct {
	Title   *string
	Payload *string
	Pinned  *bool
}
