package session

import (
	"context"
	"sort"
	"time"

	"github.com/mwantia/gomemo/pkg/db/models"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/mwantia/gomemo/pkg/shortcut"
)

// Query is everything the memo list needs to narrow its results: the active
// criteria and the decoded clauses of the referenced shortcut, if any.
type Query struct {
	Filter   filter.ActiveFilter
	Shortcut *shortcut.Shortcut
	Clauses  filter.Sequence
}

func (q Query) Match(t filter.Target) bool {
	return q.Filter.Match(t) && filter.Evaluate(q.Clauses, t)
}

// Query resolves the active filter. A shortcut id that is no longer in the
// collection contributes no clauses.
func (s *Session) Query() Query {
	q := Query{
		Filter:  s.Filter(),
		Clauses: filter.Sequence{},
	}

	if q.Filter.ShortcutID != "" {
		if sc, ok := s.shortcuts.Collection().Get(q.Filter.ShortcutID); ok {
			q.Shortcut = &sc
			q.Clauses = sc.Clauses()
		}
	}
	return q
}

// ListMemos returns the user's memos that pass the current query, newest
// first.
func (s *Session) ListMemos(ctx context.Context) ([]models.Memo, error) {
	memos, err := s.store.ListMemos(ctx, s.userID, 0, 0)
	if err != nil {
		return nil, &shortcut.PersistenceError{Op: "list memos", Err: err}
	}

	q := s.Query()
	matched := make([]models.Memo, 0, len(memos))
	for _, m := range memos {
		if q.Match(Target(m)) {
			matched = append(matched, m)
		}
	}

	s.log.Debug("Matched %d of %d memos", len(matched), len(memos))
	return matched, nil
}

// CreateMemo stores a memo and registers every tag it references.
func (s *Session) CreateMemo(ctx context.Context, content, visibility string, displayAt time.Time) (*models.Memo, error) {
	if visibility == "" {
		visibility = filter.VisibilityPrivate
	}

	memo := &models.Memo{
		CreatorID:  s.userID,
		Content:    content,
		Visibility: visibility,
		DisplayAt:  displayAt,
	}
	if err := s.store.CreateMemo(ctx, memo); err != nil {
		return nil, &shortcut.PersistenceError{Op: "create memo", Err: err}
	}

	tags := make([]string, 0)
	for tag := range Target(*memo).Tags() {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		if err := s.UpsertTag(ctx, tag); err != nil {
			return memo, err
		}
	}
	return memo, nil
}

// Target is the evaluation view of a stored memo.
func Target(m models.Memo) filter.Target {
	return filter.Target{
		Content:     m.Content,
		Visibility:  m.Visibility,
		DisplayTime: m.DisplayAt,
		Resources:   len(m.Resources),
	}
}
