package filter

import "time"

// Editor holds the working copy of a shortcut while it is being built or
// edited. An empty ShortcutID means the shortcut does not exist yet.
type Editor struct {
	ShortcutID string
	Title      string
	Clauses    Sequence

	dimension Dimension
	now       func() time.Time
}

type EditorOption func(*Editor)

// WithDefaultDimension sets the dimension of newly appended clauses.
func WithDefaultDimension(d Dimension) EditorOption {
	return func(e *Editor) {
		if d.IsValid() {
			e.dimension = d
		}
	}
}

// WithClock replaces the time source used to anchor DISPLAY_TIME clauses.
func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) {
		e.now = now
	}
}

// NewEditor starts an editor for a new shortcut.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		Clauses:   Sequence{},
		dimension: DimensionTag,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EditExisting starts an editor preloaded with a stored shortcut. A payload
// that cannot be decoded opens with no clauses.
func EditExisting(id, title, payload string, opts ...EditorOption) *Editor {
	e := NewEditor(opts...)
	e.ShortcutID = id
	e.Title = title
	e.Clauses = Deserialize(payload)
	return e
}

func (e *Editor) Append() error {
	next, err := e.Clauses.Append(e.dimension)
	if err != nil {
		return err
	}
	e.Clauses = next
	return nil
}

func (e *Editor) ReplaceAt(index int, c Clause) error {
	next, err := e.Clauses.ReplaceAt(index, c)
	if err != nil {
		return err
	}
	e.Clauses = next
	return nil
}

func (e *Editor) RemoveAt(index int) error {
	next, err := e.Clauses.RemoveAt(index)
	if err != nil {
		return err
	}
	e.Clauses = next
	return nil
}

func (e *Editor) ChangeDimension(index int, d Dimension) error {
	next, err := e.Clauses.ChangeDimension(index, d, e.now())
	if err != nil {
		return err
	}
	e.Clauses = next
	return nil
}

// SetRelation, SetOperator and SetValue are single-field edits expressed as a
// whole-clause replacement.
func (e *Editor) SetRelation(index int, r Relation) error {
	return e.edit(index, func(c *Clause) { c.Relation = r })
}

func (e *Editor) SetOperator(index int, op Operator) error {
	return e.edit(index, func(c *Clause) { c.Operator = op })
}

func (e *Editor) SetValue(index int, value string) error {
	return e.edit(index, func(c *Clause) { c.Value = value })
}

func (e *Editor) edit(index int, fn func(*Clause)) error {
	if index < 0 || index >= len(e.Clauses) {
		return ErrIndexOutOfRange
	}
	c := e.Clauses[index]
	fn(&c)
	return e.ReplaceAt(index, c)
}

func (e *Editor) Validate() error {
	return ValidateForSave(e.Title, e.Clauses)
}

// Payload serializes the current clauses.
func (e *Editor) Payload() string {
	return Serialize(e.Clauses)
}
