package session

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mwantia/gomemo/pkg/db/store"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/mwantia/gomemo/pkg/log"
	"github.com/mwantia/gomemo/pkg/shortcut"
)

// Session is the single owner of one user's filtering state: the active
// filter, the shortcut collection and the known tags.
type Session struct {
	mutex sync.RWMutex

	userID    int32
	store     store.MetadataStore
	shortcuts *shortcut.Service
	log       log.LoggerService

	filter filter.ActiveFilter
	tags   []string
}

func New(st store.MetadataStore, userID int32, logger log.LoggerService) *Session {
	return &Session{
		userID:    userID,
		store:     st,
		shortcuts: shortcut.NewService(st, userID, logger),
		log:       logger.Named("session"),
		tags:      []string{},
	}
}

func (s *Session) UserID() int32 {
	return s.userID
}

// Refresh loads shortcuts and tags from the store.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.shortcuts.Fetch(ctx); err != nil {
		return err
	}

	tags, err := s.store.ListTags(ctx, s.userID)
	if err != nil {
		return &shortcut.PersistenceError{Op: "list tags", Err: err}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tags = sortedTags(tags)
	return nil
}

func (s *Session) Filter() filter.ActiveFilter {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filter
}

// UpdateFilter applies fn to the active filter and returns the new state.
func (s *Session) UpdateFilter(fn func(filter.ActiveFilter) filter.ActiveFilter) filter.ActiveFilter {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.filter = fn(s.filter)
	return s.filter
}

// Navigate resets the active filter so nothing leaks across routes.
func (s *Session) Navigate() filter.ActiveFilter {
	return s.UpdateFilter(filter.ActiveFilter.Clear)
}

// SelectShortcut makes id the active shortcut, or deselects it when it is
// already active.
func (s *Session) SelectShortcut(id string) (filter.ActiveFilter, error) {
	if _, ok := s.shortcuts.Collection().Get(id); !ok {
		return s.Filter(), fmt.Errorf("failed to select shortcut '%s': %w", id, shortcut.ErrUnknownShortcut)
	}

	return s.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter {
		if f.ShortcutID == id {
			return f.WithShortcut("")
		}
		return f.WithShortcut(id)
	}), nil
}

// Shortcuts returns the user's shortcuts in display order.
func (s *Session) Shortcuts() []shortcut.Shortcut {
	return s.shortcuts.Collection().Sorted()
}

func (s *Session) Shortcut(id string) (shortcut.Shortcut, bool) {
	return s.shortcuts.Collection().Get(id)
}

func (s *Session) SaveShortcut(ctx context.Context, e *filter.Editor) (shortcut.Shortcut, error) {
	return s.shortcuts.Save(ctx, e)
}

func (s *Session) TogglePin(ctx context.Context, id string) (shortcut.Shortcut, error) {
	return s.shortcuts.TogglePin(ctx, id)
}

// DeleteShortcut removes the shortcut and drops it from the active filter if
// it was applied.
func (s *Session) DeleteShortcut(ctx context.Context, id string) error {
	if err := s.shortcuts.Delete(ctx, id); err != nil {
		return err
	}

	s.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter {
		if f.ShortcutID == id {
			return f.WithShortcut("")
		}
		return f
	})
	return nil
}

// Tags returns the known tags sorted lexicographically.
func (s *Session) Tags() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.tags)
}

func (s *Session) UpsertTag(ctx context.Context, name string) error {
	if err := s.store.UpsertTag(ctx, s.userID, name); err != nil {
		return &shortcut.PersistenceError{Op: "upsert tag", Err: err}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tags = sortedTags(append(s.tags, name))
	return nil
}

func (s *Session) DeleteTag(ctx context.Context, name string) error {
	if err := s.store.DeleteTag(ctx, s.userID, name); err != nil {
		return &shortcut.PersistenceError{Op: "delete tag", Err: err}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tags = slices.DeleteFunc(s.tags, func(tag string) bool { return tag == name })
	return nil
}

func sortedTags(tags []string) []string {
	sorted := slices.Clone(tags)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
