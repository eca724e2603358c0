package filter

import (
	"fmt"
	"slices"
	"strings"
)

// Dimension identifies what a clause compares against.
type Dimension string

const (
	DimensionTag         Dimension = "TAG"
	DimensionType        Dimension = "TYPE"
	DimensionText        Dimension = "TEXT"
	DimensionDisplayTime Dimension = "DISPLAY_TIME"
	DimensionVisibility  Dimension = "VISIBILITY"
)

// Operator is a comparison applied between a memo and a clause value.
type Operator string

const (
	OperatorContain    Operator = "CONTAIN"
	OperatorNotContain Operator = "NOT_CONTAIN"
	OperatorIs         Operator = "IS"
	OperatorIsNot      Operator = "IS_NOT"
	OperatorBefore     Operator = "BEFORE"
	OperatorAfter      Operator = "AFTER"
)

// Memo type values accepted by the TYPE dimension.
const (
	TypeNotTagged     = "NOT_TAGGED"
	TypeLinked        = "LINKED"
	TypeHasAttachment = "HAS_ATTACHMENT"
)

// Visibility values accepted by the VISIBILITY dimension.
const (
	VisibilityPublic    = "PUBLIC"
	VisibilityProtected = "PROTECTED"
	VisibilityPrivate   = "PRIVATE"
)

// TimeLayout is the format of DISPLAY_TIME clause values.
const TimeLayout = "2006-01-02T15:04"

// Dimensions returns every known dimension in display order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionTag,
		DimensionType,
		DimensionText,
		DimensionDisplayTime,
		DimensionVisibility,
	}
}

// ParseDimension resolves a dimension name case-insensitively.
func ParseDimension(name string) (Dimension, error) {
	d := Dimension(strings.ToUpper(strings.TrimSpace(name)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown filter dimension '%s'", name)
	}
	return d, nil
}

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionTag, DimensionType, DimensionText, DimensionDisplayTime, DimensionVisibility:
		return true
	}
	return false
}

func (d Dimension) String() string {
	return string(d)
}

// Operators returns the operators allowed for d. The first entry is the
// default operator of the dimension. Calling it on an unknown dimension
// panics.
func (d Dimension) Operators() []Operator {
	switch d {
	case DimensionTag, DimensionText:
		return []Operator{OperatorContain, OperatorNotContain}
	case DimensionType, DimensionVisibility:
		return []Operator{OperatorIs, OperatorIsNot}
	case DimensionDisplayTime:
		return []Operator{OperatorBefore, OperatorAfter}
	}
	panic(fmt.Sprintf("filter: no operators for dimension '%s'", string(d)))
}

// DefaultOperator is the first operator of d.
func (d Dimension) DefaultOperator() Operator {
	return d.Operators()[0]
}

// HasOperator reports whether op belongs to the operator set of d.
func (d Dimension) HasOperator(op Operator) bool {
	return slices.Contains(d.Operators(), op)
}

// Domain returns the values a clause over d may take. TAG resolves to the
// given tag set sorted lexicographically. TEXT and DISPLAY_TIME are
// unconstrained and return nil.
func (d Dimension) Domain(tags []string) []string {
	switch d {
	case DimensionType:
		return []string{TypeNotTagged, TypeLinked, TypeHasAttachment}
	case DimensionVisibility:
		return []string{VisibilityPublic, VisibilityProtected, VisibilityPrivate}
	case DimensionTag:
		sorted := slices.Clone(tags)
		slices.Sort(sorted)
		return slices.Compact(sorted)
	case DimensionText, DimensionDisplayTime:
		return nil
	}
	panic(fmt.Sprintf("filter: no value domain for dimension '%s'", string(d)))
}

// IsClosed reports whether d only accepts the fixed literals of its domain.
func (d Dimension) IsClosed() bool {
	return d == DimensionType || d == DimensionVisibility
}

// UnmarshalText rejects unknown dimensions so corrupt payloads never produce
// clauses the registry cannot answer for.
func (d *Dimension) UnmarshalText(text []byte) error {
	v := Dimension(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown filter dimension '%s'", string(text))
	}
	*d = v
	return nil
}

func (op Operator) String() string {
	return string(op)
}
