package session

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	config "github.com/mwantia/gomemo/internal/config/server"
	"github.com/mwantia/gomemo/pkg/db/store/storetest"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/mwantia/gomemo/pkg/log"
	"github.com/mwantia/gomemo/pkg/shortcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *storetest.FailingStore) {
	t.Helper()

	st := &storetest.FailingStore{
		MetadataStore: storetest.NewSQLiteStore(t),
		Err:           errors.New("offline"),
		Fail:          map[string]bool{},
	}
	logger := log.NewWriterLoggerService("test", config.LogServerConfig{Level: "debug"}, &bytes.Buffer{})
	return New(st, 7, logger), st
}

func saveShortcut(t *testing.T, s *Session, title string, clauses ...filter.Clause) shortcut.Shortcut {
	t.Helper()

	e := filter.NewEditor()
	e.Title = title
	e.Clauses = clauses

	sc, err := s.SaveShortcut(context.Background(), e)
	require.NoError(t, err)
	return sc
}

func TestNavigateClearsFilter(t *testing.T) {
	s, _ := newTestSession(t)

	s.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter { return f.WithTag("x") })
	assert.Equal(t, "x", s.Filter().Tag)

	cleared := s.Navigate()
	assert.False(t, cleared.IsActive())
	assert.Empty(t, s.Filter().Tag)
}

func TestSelectShortcutToggles(t *testing.T) {
	s, _ := newTestSession(t)
	sc := saveShortcut(t, s, "work", filter.Clause{Dimension: filter.DimensionTag, Operator: filter.OperatorContain, Value: "work"})

	s.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter { return f.WithText("meeting") })

	f, err := s.SelectShortcut(sc.ID)
	require.NoError(t, err)
	assert.Equal(t, sc.ID, f.ShortcutID)
	assert.Equal(t, "meeting", f.Text, "shortcut composes with ad-hoc criteria")

	f, err = s.SelectShortcut(sc.ID)
	require.NoError(t, err)
	assert.Empty(t, f.ShortcutID)
	assert.Equal(t, "meeting", f.Text)

	_, err = s.SelectShortcut("missing")
	assert.ErrorIs(t, err, shortcut.ErrUnknownShortcut)
}

func TestDeleteActiveShortcutClearsSelection(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	sc := saveShortcut(t, s, "work", filter.Clause{Dimension: filter.DimensionTag, Operator: filter.OperatorContain, Value: "work"})

	_, err := s.SelectShortcut(sc.ID)
	require.NoError(t, err)
	s.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter { return f.WithTag("books") })

	require.NoError(t, s.DeleteShortcut(ctx, sc.ID))
	assert.Empty(t, s.Filter().ShortcutID)
	assert.Equal(t, "books", s.Filter().Tag)
	assert.Empty(t, s.Shortcuts())
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	s, st := newTestSession(t)

	require.NoError(t, s.UpsertTag(ctx, "work"))
	require.NoError(t, s.UpsertTag(ctx, "books"))
	require.NoError(t, s.UpsertTag(ctx, "work"))
	assert.Equal(t, []string{"books", "work"}, s.Tags())

	require.NoError(t, s.DeleteTag(ctx, "work"))
	assert.Equal(t, []string{"books"}, s.Tags())

	st.Fail["UpsertTag"] = true
	assert.Error(t, s.UpsertTag(ctx, "art"))
	assert.Equal(t, []string{"books"}, s.Tags())

	other := New(st.MetadataStore, 7, log.NewWriterLoggerService("test", config.LogServerConfig{}, &bytes.Buffer{}))
	require.NoError(t, other.Refresh(ctx))
	assert.Equal(t, []string{"books"}, other.Tags())
}

func TestListMemosAppliesQuery(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	_, err := s.CreateMemo(ctx, "standup notes #work/meeting", filter.VisibilityPrivate, at)
	require.NoError(t, err)
	_, err = s.CreateMemo(ctx, "read [go blog](https://go.dev/blog) #books", filter.VisibilityPublic, at.Add(time.Hour))
	require.NoError(t, err)
	_, err = s.CreateMemo(ctx, "groceries", "", at.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, []string{"books", "work", "work/meeting"}, s.Tags())

	all, err := s.ListMemos(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sc := saveShortcut(t, s, "work or links",
		filter.Clause{Dimension: filter.DimensionTag, Operator: filter.OperatorContain, Value: "work"},
		filter.Clause{Relation: filter.RelationOr, Dimension: filter.DimensionType, Operator: filter.OperatorIs, Value: filter.TypeLinked},
	)
	_, err = s.SelectShortcut(sc.ID)
	require.NoError(t, err)

	q := s.Query()
	require.NotNil(t, q.Shortcut)
	assert.Len(t, q.Clauses, 2)

	matched, err := s.ListMemos(ctx)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "read [go blog](https://go.dev/blog) #books", matched[0].Content)

	s.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter { return f.WithVisibility(filter.VisibilityPrivate) })
	matched, err = s.ListMemos(ctx)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "standup notes #work/meeting", matched[0].Content)

	s.Navigate()
	matched, err = s.ListMemos(ctx)
	require.NoError(t, err)
	assert.Len(t, matched, 3)
}
