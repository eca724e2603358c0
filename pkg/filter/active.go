package filter

import "time"

// Duration is a display time range. It only filters when From is before To.
type Duration struct {
	From time.Time
	To   time.Time
}

func (d Duration) Valid() bool {
	return d.From.Before(d.To)
}

// Criterion names one removable field of an ActiveFilter.
type Criterion string

const (
	CriterionShortcut   Criterion = "shortcut"
	CriterionTag        Criterion = "tag"
	CriterionType       Criterion = "type"
	CriterionVisibility Criterion = "visibility"
	CriterionDuration   Criterion = "duration"
	CriterionText       Criterion = "text"
)

// ActiveFilter is what currently narrows the memo list: ad-hoc criteria plus
// at most one referenced shortcut. It is a value; every setter returns the
// new state and leaves the receiver untouched. Empty strings mean absent.
type ActiveFilter struct {
	Tag        string
	Duration   *Duration
	MemoType   string
	Text       string
	ShortcutID string
	Visibility string
}

func (f ActiveFilter) WithTag(tag string) ActiveFilter {
	f.Tag = tag
	return f
}

// WithDuration sets the time range; nil clears it.
func (f ActiveFilter) WithDuration(d *Duration) ActiveFilter {
	if d != nil {
		copied := *d
		d = &copied
	}
	f.Duration = d
	return f
}

func (f ActiveFilter) WithMemoType(memoType string) ActiveFilter {
	f.MemoType = memoType
	return f
}

func (f ActiveFilter) WithText(text string) ActiveFilter {
	f.Text = text
	return f
}

// WithShortcut references a shortcut. The ad-hoc criteria stay in place and
// compose with it.
func (f ActiveFilter) WithShortcut(id string) ActiveFilter {
	f.ShortcutID = id
	return f
}

func (f ActiveFilter) WithVisibility(visibility string) ActiveFilter {
	f.Visibility = visibility
	return f
}

// Clear returns the empty filter.
func (f ActiveFilter) Clear() ActiveFilter {
	return ActiveFilter{}
}

// Without clears exactly one criterion.
func (f ActiveFilter) Without(c Criterion) ActiveFilter {
	switch c {
	case CriterionShortcut:
		return f.WithShortcut("")
	case CriterionTag:
		return f.WithTag("")
	case CriterionType:
		return f.WithMemoType("")
	case CriterionVisibility:
		return f.WithVisibility("")
	case CriterionDuration:
		return f.WithDuration(nil)
	case CriterionText:
		return f.WithText("")
	}
	return f
}

// HasDuration reports whether a usable time range is set.
func (f ActiveFilter) HasDuration() bool {
	return f.Duration != nil && f.Duration.Valid()
}

func (f ActiveFilter) IsActive() bool {
	return len(f.Chips()) > 0
}

// Chips lists the active criteria in the order the filter bar shows them.
func (f ActiveFilter) Chips() []Criterion {
	var chips []Criterion
	if f.ShortcutID != "" {
		chips = append(chips, CriterionShortcut)
	}
	if f.Tag != "" {
		chips = append(chips, CriterionTag)
	}
	if f.MemoType != "" {
		chips = append(chips, CriterionType)
	}
	if f.Visibility != "" {
		chips = append(chips, CriterionVisibility)
	}
	if f.HasDuration() {
		chips = append(chips, CriterionDuration)
	}
	if f.Text != "" {
		chips = append(chips, CriterionText)
	}
	return chips
}
