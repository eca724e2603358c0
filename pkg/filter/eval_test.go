package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTargetTags(t *testing.T) {
	target := Target{Content: "notes #work/meeting and #books, nothing # here"}

	assert.Equal(t, map[string]struct{}{
		"work":         {},
		"work/meeting": {},
		"books":        {},
	}, target.Tags())
}

func TestClauseMatches(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	target := Target{
		Content:     "Read [the docs](https://go.dev) #golang",
		Visibility:  VisibilityPublic,
		DisplayTime: at,
	}

	tests := []struct {
		name   string
		clause Clause
		want   bool
	}{
		{"tag contain", Clause{Dimension: DimensionTag, Operator: OperatorContain, Value: "golang"}, true},
		{"tag not contain", Clause{Dimension: DimensionTag, Operator: OperatorNotContain, Value: "golang"}, false},
		{"type linked", Clause{Dimension: DimensionType, Operator: OperatorIs, Value: TypeLinked}, true},
		{"type not tagged", Clause{Dimension: DimensionType, Operator: OperatorIs, Value: TypeNotTagged}, false},
		{"type without attachment", Clause{Dimension: DimensionType, Operator: OperatorIsNot, Value: TypeHasAttachment}, true},
		{"text case insensitive", Clause{Dimension: DimensionText, Operator: OperatorContain, Value: "READ"}, true},
		{"before", Clause{Dimension: DimensionDisplayTime, Operator: OperatorBefore, Value: "2024-06-02T00:00"}, true},
		{"after", Clause{Dimension: DimensionDisplayTime, Operator: OperatorAfter, Value: "2024-06-02T00:00"}, false},
		{"bad time", Clause{Dimension: DimensionDisplayTime, Operator: OperatorBefore, Value: "tomorrow"}, false},
		{"visibility", Clause{Dimension: DimensionVisibility, Operator: OperatorIsNot, Value: VisibilityPrivate}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clause.Matches(target))
		})
	}
}

func TestEvaluateFoldsLeftToRight(t *testing.T) {
	target := Target{Content: "#a"}
	a := Clause{Dimension: DimensionTag, Operator: OperatorContain, Value: "a"}
	b := Clause{Dimension: DimensionTag, Operator: OperatorContain, Value: "b"}
	c := Clause{Dimension: DimensionTag, Operator: OperatorContain, Value: "c"}

	and := func(c Clause) Clause { c.Relation = RelationAnd; return c }
	or := func(c Clause) Clause { c.Relation = RelationOr; return c }

	assert.True(t, Evaluate(Sequence{b, and(c), or(a)}, target), "(b AND c) OR a")
	assert.False(t, Evaluate(Sequence{a, or(b), and(c)}, target), "(a OR b) AND c")
	assert.True(t, Evaluate(Sequence{}, target))
	assert.True(t, Evaluate(Sequence{or(a)}, target), "relation of the first clause is ignored")
}

func TestActiveFilterMatch(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	target := Target{Content: "Trip #travel", Visibility: VisibilityPrivate, DisplayTime: at, Resources: 2}

	assert.True(t, ActiveFilter{}.Match(target))
	assert.True(t, ActiveFilter{}.WithTag("travel").WithMemoType(TypeHasAttachment).Match(target))
	assert.False(t, ActiveFilter{}.WithVisibility(VisibilityPublic).Match(target))
	assert.False(t, ActiveFilter{}.WithText("work").Match(target))

	inside := &Duration{From: at.Add(-time.Hour), To: at.Add(time.Hour)}
	outside := &Duration{From: at.Add(time.Hour), To: at.Add(2 * time.Hour)}
	inverted := &Duration{From: at.Add(2 * time.Hour), To: at.Add(time.Hour)}

	assert.True(t, ActiveFilter{}.WithDuration(inside).Match(target))
	assert.False(t, ActiveFilter{}.WithDuration(outside).Match(target))
	assert.True(t, ActiveFilter{}.WithDuration(inverted).Match(target), "inverted range is ignored")
}
