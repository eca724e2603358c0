package shortcut

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mwantia/gomemo/pkg/db/models"
	"github.com/mwantia/gomemo/pkg/db/store"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/mwantia/gomemo/pkg/log"
)

// ErrUnknownShortcut is returned for ids not present in the local collection.
var ErrUnknownShortcut = errors.New("unknown shortcut")

// PersistenceError wraps a failed store call. Its message is meant to be
// shown to the user.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Service runs the store round trips for one user's shortcuts and mirrors
// their results into the local collection.
type Service struct {
	store      store.MetadataStore
	collection *Collection
	creatorID  int32
	log        log.LoggerService
}

func NewService(st store.MetadataStore, creatorID int32, logger log.LoggerService) *Service {
	return &Service{
		store:      st,
		collection: NewCollection(),
		creatorID:  creatorID,
		log:        logger.Named("shortcut"),
	}
}

func (s *Service) Collection() *Collection {
	return s.collection
}

// Fetch reloads every shortcut of the user from the store.
func (s *Service) Fetch(ctx context.Context) error {
	list, err := s.store.ListShortcuts(ctx, s.creatorID)
	if err != nil {
		return &PersistenceError{Op: "list shortcuts", Err: err}
	}

	shortcuts := make([]Shortcut, 0, len(list))
	for _, m := range list {
		shortcuts = append(shortcuts, fromModel(m))
	}
	s.collection.Replace(shortcuts)

	s.log.Debug("Fetched %d shortcuts for user %d", len(shortcuts), s.creatorID)
	return nil
}

// Save persists the editor content, creating the shortcut when the editor has
// no id yet. Validation runs first; an invalid editor never reaches the store.
func (s *Service) Save(ctx context.Context, e *filter.Editor) (Shortcut, error) {
	if err := e.Validate(); err != nil {
		return Shortcut{}, err
	}

	title := strings.TrimSpace(e.Title)
	payload := e.Payload()

	if e.ShortcutID == "" {
		m := &models.Shortcut{
			ID:        uuid.NewString(),
			CreatorID: s.creatorID,
			Title:     title,
			Payload:   payload,
		}
		if err := s.store.CreateShortcut(ctx, m); err != nil {
			return Shortcut{}, &PersistenceError{Op: "create shortcut", Err: err}
		}

		created := fromModel(*m)
		s.collection.Put(created)
		s.log.Info("Created shortcut '%s' (%s)", created.Title, created.ID)
		return created, nil
	}

	m, err := s.store.UpdateShortcut(ctx, e.ShortcutID, store.ShortcutUpdate{
		Title:   &title,
		Payload: &payload,
	})
	if err != nil {
		return Shortcut{}, &PersistenceError{Op: "update shortcut", Err: err}
	}

	updated := fromModel(*m)
	s.collection.Put(updated)
	s.log.Info("Updated shortcut '%s' (%s)", updated.Title, updated.ID)
	return updated, nil
}

// TogglePin flips the pin flag. The change is applied locally before the
// store call and rolled back if that call fails.
func (s *Service) TogglePin(ctx context.Context, id string) (Shortcut, error) {
	current, ok := s.collection.Get(id)
	if !ok {
		return Shortcut{}, fmt.Errorf("failed to toggle pin of '%s': %w", id, ErrUnknownShortcut)
	}

	snapshot := s.collection.Snapshot()

	pinned := !current.Pinned
	current.Pinned = pinned
	s.collection.Put(current)

	m, err := s.store.UpdateShortcut(ctx, id, store.ShortcutUpdate{Pinned: &pinned})
	if err != nil {
		s.collection.Restore(snapshot)
		s.log.Warn("Rolled back pin of shortcut '%s': %v", id, err)
		return Shortcut{}, &PersistenceError{Op: "update shortcut", Err: err}
	}

	updated := fromModel(*m)
	s.collection.Put(updated)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteShortcut(ctx, id); err != nil {
		return &PersistenceError{Op: "delete shortcut", Err: err}
	}

	s.collection.Remove(id)
	s.log.Info("Deleted shortcut '%s'", id)
	return nil
}
