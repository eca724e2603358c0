package client

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mwantia/gomemo/pkg/filter"
)

// parseClause reads a clause written as [RELATION:]DIMENSION:OPERATOR:VALUE,
// for example "TAG:CONTAIN:work" or "OR:DISPLAY_TIME:AFTER:2024-01-01T09:00".
// The value is the remainder and may contain colons.
func parseClause(def string) (filter.Clause, error) {
	relation := filter.RelationAnd

	head, rest, ok := strings.Cut(def, ":")
	if !ok {
		return filter.Clause{}, fmt.Errorf("invalid clause '%s': expected DIMENSION:OPERATOR:VALUE", def)
	}
	if r, err := filter.ParseRelation(head); err == nil {
		relation = r
		def = rest
	}

	parts := strings.SplitN(def, ":", 3)
	if len(parts) != 3 {
		return filter.Clause{}, fmt.Errorf("invalid clause '%s': expected DIMENSION:OPERATOR:VALUE", def)
	}

	dimension, err := filter.ParseDimension(parts[0])
	if err != nil {
		return filter.Clause{}, err
	}

	operator := filter.Operator(strings.ToUpper(strings.TrimSpace(parts[1])))
	if !dimension.HasOperator(operator) {
		return filter.Clause{}, fmt.Errorf("operator '%s' is not valid for %s (expected one of %v)", parts[1], dimension, dimension.Operators())
	}

	return filter.Clause{
		Relation:  relation,
		Dimension: dimension,
		Operator:  operator,
		Value:     parts[2],
	}, nil
}

// applyClauses appends every clause through the editor operations so the
// same cascade rules apply as for interactive edits.
func applyClauses(e *filter.Editor, defs []string) error {
	for _, def := range defs {
		c, err := parseClause(def)
		if err != nil {
			return err
		}

		if err := e.Append(); err != nil {
			return err
		}
		index := len(e.Clauses) - 1

		if err := e.ChangeDimension(index, c.Dimension); err != nil {
			return err
		}
		if err := e.SetOperator(index, c.Operator); err != nil {
			return err
		}
		if err := e.SetRelation(index, c.Relation); err != nil {
			return err
		}
		if err := e.SetValue(index, c.Value); err != nil {
			return err
		}
	}
	return nil
}

func describeClauses(seq filter.Sequence) []string {
	lines := make([]string, 0, len(seq))
	for i, c := range seq {
		if i == 0 {
			lines = append(lines, c.String())
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", c.Relation, c))
	}
	return lines
}

// removeClauses drops the clauses at the given indexes of the original list.
// Indexes are removed highest first so earlier removals do not shift later ones.
func removeClauses(e *filter.Editor, indexes []int) error {
	sorted := slices.Clone(indexes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for i := len(sorted) - 1; i >= 0; i-- {
		if err := e.RemoveAt(sorted[i]); err != nil {
			return err
		}
	}
	return nil
}
