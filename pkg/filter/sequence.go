package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Relation states how a clause combines with everything before it.
type Relation string

const (
	RelationAnd Relation = "AND"
	RelationOr  Relation = "OR"
)

func (r Relation) IsValid() bool {
	return r == RelationAnd || r == RelationOr
}

// ParseRelation resolves a relation name case-insensitively.
func ParseRelation(name string) (Relation, error) {
	r := Relation(strings.ToUpper(strings.TrimSpace(name)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown relation '%s'", name)
	}
	return r, nil
}

// Clause is a single predicate. Relation is ignored on the first clause of a
// sequence.
type Clause struct {
	Relation  Relation
	Dimension Dimension
	Operator  Operator
	Value     string
}

// NewClause returns an empty clause over d using its default operator.
func NewClause(d Dimension) Clause {
	return Clause{
		Relation:  RelationAnd,
		Dimension: d,
		Operator:  d.DefaultOperator(),
	}
}

func (c Clause) String() string {
	return fmt.Sprintf("%s %s %q", c.Dimension, c.Operator, c.Value)
}

// Sequence is an ordered list of clauses folded left to right.
type Sequence []Clause

// Append adds an empty clause over d. It refuses with ErrFillPrevious when the
// last clause has no value yet.
func (s Sequence) Append(d Dimension) (Sequence, error) {
	if n := len(s); n > 0 && s[n-1].Value == "" {
		return s, ErrFillPrevious
	}

	out := make(Sequence, len(s), len(s)+1)
	copy(out, s)
	return append(out, NewClause(d)), nil
}

// ReplaceAt returns a copy of s with the clause at index replaced.
func (s Sequence) ReplaceAt(index int, c Clause) (Sequence, error) {
	if index < 0 || index >= len(s) {
		return s, fmt.Errorf("failed to replace clause %d: %w", index, ErrIndexOutOfRange)
	}

	out := slices.Clone(s)
	out[index] = c
	return out, nil
}

// RemoveAt returns a copy of s without the clause at index.
func (s Sequence) RemoveAt(index int) (Sequence, error) {
	if index < 0 || index >= len(s) {
		return s, fmt.Errorf("failed to remove clause %d: %w", index, ErrIndexOutOfRange)
	}

	out := make(Sequence, 0, len(s)-1)
	out = append(out, s[:index]...)
	return append(out, s[index+1:]...), nil
}

// ChangeDimension switches the clause at index to d. The operator resets to
// the default of d and the value is cleared, except for DISPLAY_TIME which is
// anchored to now.
func (s Sequence) ChangeDimension(index int, d Dimension, now time.Time) (Sequence, error) {
	if index < 0 || index >= len(s) {
		return s, fmt.Errorf("failed to change dimension of clause %d: %w", index, ErrIndexOutOfRange)
	}
	if s[index].Dimension == d {
		return s, nil
	}

	c := s[index]
	c.Dimension = d
	c.Operator = d.DefaultOperator()
	c.Value = ""
	if d == DimensionDisplayTime {
		c.Value = now.Local().Format(TimeLayout)
	}

	return s.ReplaceAt(index, c)
}

// Validate checks that every clause can be persisted.
func (s Sequence) Validate() error {
	for i, c := range s {
		if c.Value == "" {
			return &ValidationError{Code: CodeValueRequired, Index: i}
		}
	}

	for i, c := range s {
		if !c.Dimension.IsValid() || !c.Dimension.HasOperator(c.Operator) {
			return &ValidationError{Code: CodeOperatorInvalid, Index: i}
		}
		if c.Dimension.IsClosed() && !slices.Contains(c.Dimension.Domain(nil), c.Value) {
			return &ValidationError{Code: CodeValueInvalid, Index: i}
		}
		if i > 0 && !c.Relation.IsValid() {
			return &ValidationError{Code: CodeRelationInvalid, Index: i}
		}
	}

	return nil
}

// ValidateForSave checks a shortcut title and its clauses before anything is
// sent to the store.
func ValidateForSave(title string, s Sequence) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Code: CodeTitleRequired, Index: -1}
	}
	return s.Validate()
}
