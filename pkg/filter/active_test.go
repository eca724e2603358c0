package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveFilterClear(t *testing.T) {
	f := ActiveFilter{}.WithTag("x").WithText("hello").WithShortcut("s1")
	assert.True(t, f.IsActive())

	cleared := f.Clear()
	assert.False(t, cleared.IsActive())
	assert.Empty(t, cleared.Tag)
	assert.Equal(t, "x", f.Tag, "receiver is not modified")
}

func TestActiveFilterDuration(t *testing.T) {
	from := time.Unix(10, 0)
	to := time.Unix(5, 0)

	inverted := ActiveFilter{}.WithDuration(&Duration{From: from, To: to})
	assert.False(t, inverted.IsActive())

	empty := ActiveFilter{}.WithDuration(&Duration{From: to, To: to})
	assert.False(t, empty.IsActive())

	valid := ActiveFilter{}.WithDuration(&Duration{From: to, To: from})
	assert.True(t, valid.IsActive())
	assert.Equal(t, []Criterion{CriterionDuration}, valid.Chips())
}

func TestActiveFilterSettersAreIndependent(t *testing.T) {
	f := ActiveFilter{}.
		WithTag("work").
		WithMemoType(TypeLinked).
		WithVisibility(VisibilityPublic).
		WithText("q")

	withShortcut := f.WithShortcut("s1")
	assert.Equal(t, "work", withShortcut.Tag, "shortcut composes with ad-hoc criteria")
	assert.Equal(t, withShortcut, withShortcut.WithShortcut("s1"), "setters are idempotent")

	removed := withShortcut.Without(CriterionShortcut)
	assert.Equal(t, f, removed)

	noTag := withShortcut.Without(CriterionTag)
	assert.Empty(t, noTag.Tag)
	assert.Equal(t, "s1", noTag.ShortcutID)
	assert.Equal(t, []Criterion{CriterionShortcut, CriterionType, CriterionVisibility, CriterionText}, noTag.Chips())
}

func TestWithDurationCopies(t *testing.T) {
	d := &Duration{From: time.Unix(1, 0), To: time.Unix(2, 0)}
	f := ActiveFilter{}.WithDuration(d)

	d.To = time.Unix(0, 0)
	assert.True(t, f.HasDuration())
}
