package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mwantia/gomemo/pkg/db/migrations"
	"github.com/mwantia/gomemo/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SQLiteStore implements MetadataStore using SQLite
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// DB returns the underlying GORM database instance
func (s *SQLiteStore) DB() *gorm.DB {
	return s.db
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path         string
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

// NewSQLiteStore creates a new SQLite-backed metadata store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	// Default to silent logging
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Silent
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Connect initializes the database connection
func (s *SQLiteStore) Connect(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(1) // SQLite only supports 1 writer
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Migrate runs all pending database migrations
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return migrations.NewMigrator(s.db).Migrate(ctx)
}

// Health checks database connectivity
func (s *SQLiteStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Shortcut operations

func (s *SQLiteStore) CreateShortcut(ctx context.Context, shortcut *models.Shortcut) error {
	return s.db.WithContext(ctx).Create(shortcut).Error
}

func (s *SQLiteStore) GetShortcut(ctx context.Context, id string) (*models.Shortcut, error) {
	var shortcut models.Shortcut
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&shortcut).Error
	if err != nil {
		return nil, notFound(err, "shortcut", id)
	}
	return &shortcut, nil
}

func (s *SQLiteStore) ListShortcuts(ctx context.Context, creatorID int32) ([]models.Shortcut, error) {
	var shortcuts []models.Shortcut
	err := s.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&shortcuts).Error
	return shortcuts, err
}

func (s *SQLiteStore) UpdateShortcut(ctx context.Context, id string, update ShortcutUpdate) (*models.Shortcut, error) {
	fields := map[string]any{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Payload != nil {
		fields["payload"] = *update.Payload
	}
	if update.Pinned != nil {
		fields["pinned"] = *update.Pinned
	}

	if len(fields) > 0 {
		result := s.db.WithContext(ctx).Model(&models.Shortcut{ID: id}).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("shortcut '%s': %w", id, ErrNotFound)
		}
	}

	return s.GetShortcut(ctx, id)
}

func (s *SQLiteStore) DeleteShortcut(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Shortcut{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("shortcut '%s': %w", id, ErrNotFound)
	}
	return nil
}

// Tag operations

func (s *SQLiteStore) ListTags(ctx context.Context, creatorID int32) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("creator_id = ?", creatorID).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}

func (s *SQLiteStore) UpsertTag(ctx context.Context, creatorID int32, name string) error {
	tag := &models.Tag{
		CreatorID: creatorID,
		Name:      name,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(tag).Error
}

func (s *SQLiteStore) DeleteTag(ctx context.Context, creatorID int32, name string) error {
	result := s.db.WithContext(ctx).
		Where("creator_id = ? AND name = ?", creatorID, name).
		Delete(&models.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("tag '%s': %w", name, ErrNotFound)
	}
	return nil
}

// Memo operations

func (s *SQLiteStore) CreateMemo(ctx context.Context, memo *models.Memo) error {
	if memo.DisplayAt.IsZero() {
		memo.DisplayAt = s.db.NowFunc()
	}
	memo.DisplayAt = memo.DisplayAt.UTC()
	return s.db.WithContext(ctx).Create(memo).Error
}

func (s *SQLiteStore) ListMemos(ctx context.Context, creatorID int32, limit, offset int) ([]models.Memo, error) {
	var memos []models.Memo
	query := s.db.WithContext(ctx).
		Preload("Resources").
		Where("creator_id = ?", creatorID).
		Order("display_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&memos).Error
	return memos, err
}

func notFound(err error, kind, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s '%s': %w", kind, key, ErrNotFound)
	}
	return err
}
