package filter

import (
	"regexp"
	"strings"
	"time"
)

var (
	tagPattern  = regexp.MustCompile(`#([^\s#,]+)`)
	linkPattern = regexp.MustCompile(`\[[^\]]*\]\([^)]+\)|https?://\S+`)
)

// Target is the view of a memo that clauses are evaluated against.
type Target struct {
	Content     string
	Visibility  string
	DisplayTime time.Time
	Resources   int
}

// Tags returns every tag referenced in the content. Nested tags also yield
// their parents, so "#work/meeting" produces "work" and "work/meeting".
func (t Target) Tags() map[string]struct{} {
	tags := make(map[string]struct{})
	for _, match := range tagPattern.FindAllStringSubmatch(t.Content, -1) {
		prefix := ""
		for _, part := range strings.Split(match[1], "/") {
			if part == "" {
				break
			}
			prefix += part
			tags[prefix] = struct{}{}
			prefix += "/"
		}
	}
	return tags
}

func (t Target) hasTag(tag string) bool {
	_, ok := t.Tags()[tag]
	return ok
}

func (t Target) hasType(memoType string) bool {
	switch memoType {
	case TypeNotTagged:
		return len(t.Tags()) == 0
	case TypeLinked:
		return linkPattern.MatchString(t.Content)
	case TypeHasAttachment:
		return t.Resources > 0
	}
	return false
}

// Matches evaluates a single clause.
func (c Clause) Matches(t Target) bool {
	switch c.Dimension {
	case DimensionTag:
		return negate(c.Operator == OperatorNotContain, t.hasTag(c.Value))
	case DimensionType:
		return negate(c.Operator == OperatorIsNot, t.hasType(c.Value))
	case DimensionText:
		contains := strings.Contains(strings.ToLower(t.Content), strings.ToLower(c.Value))
		return negate(c.Operator == OperatorNotContain, contains)
	case DimensionDisplayTime:
		at, err := time.ParseInLocation(TimeLayout, c.Value, time.Local)
		if err != nil {
			return false
		}
		if c.Operator == OperatorAfter {
			return t.DisplayTime.After(at)
		}
		return t.DisplayTime.Before(at)
	case DimensionVisibility:
		return negate(c.Operator == OperatorIsNot, t.Visibility == c.Value)
	}
	return false
}

// Evaluate folds the sequence left to right: the first clause seeds the
// result and every later clause joins it through its relation, so
// A AND B OR C reads as (A AND B) OR C. An empty sequence matches everything.
func Evaluate(s Sequence, t Target) bool {
	if len(s) == 0 {
		return true
	}

	result := s[0].Matches(t)
	for _, c := range s[1:] {
		if c.Relation == RelationOr {
			result = result || c.Matches(t)
		} else {
			result = result && c.Matches(t)
		}
	}
	return result
}

// Match applies the ad-hoc criteria of f. The referenced shortcut is not
// resolved here; its clauses are evaluated separately with Evaluate.
func (f ActiveFilter) Match(t Target) bool {
	if f.Tag != "" && !t.hasTag(f.Tag) {
		return false
	}
	if f.HasDuration() && (t.DisplayTime.Before(f.Duration.From) || !t.DisplayTime.Before(f.Duration.To)) {
		return false
	}
	if f.MemoType != "" && !t.hasType(f.MemoType) {
		return false
	}
	if f.Text != "" && !strings.Contains(strings.ToLower(t.Content), strings.ToLower(f.Text)) {
		return false
	}
	if f.Visibility != "" && t.Visibility != f.Visibility {
		return false
	}
	return true
}

func negate(invert, v bool) bool {
	if invert {
		return !v
	}
	return v
}
