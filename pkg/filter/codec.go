package filter

import (
	"encoding/json"
	"fmt"
)

// wireClause is the persisted shape of a clause inside a shortcut payload:
// {"type":"TAG","value":{"operator":"CONTAIN","value":"go"},"relation":"AND"}
type wireClause struct {
	Type     Dimension `json:"type"`
	Value    wireValue `json:"value"`
	Relation Relation  `json:"relation"`
}

type wireValue struct {
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
}

func (c Clause) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireClause{
		Type:     c.Dimension,
		Value:    wireValue{Operator: c.Operator, Value: c.Value},
		Relation: c.Relation,
	})
}

func (c *Clause) UnmarshalJSON(data []byte) error {
	var w wireClause
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if !w.Type.IsValid() {
		return fmt.Errorf("clause without a known filter dimension: %s", string(data))
	}

	*c = Clause{
		Relation:  w.Relation,
		Dimension: w.Type,
		Operator:  w.Value.Operator,
		Value:     w.Value.Value,
	}
	return nil
}

// Serialize encodes s into the text payload stored on a shortcut.
func Serialize(s Sequence) string {
	if s == nil {
		s = Sequence{}
	}

	data, err := json.Marshal(s)
	if err != nil {
		// Only string fields, cannot fail.
		panic(err)
	}
	return string(data)
}

// Deserialize decodes a shortcut payload. Anything that is not a list of
// well-formed clauses yields an empty sequence.
func Deserialize(payload string) Sequence {
	var decoded []Clause
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return Sequence{}
	}

	out := make(Sequence, 0, len(decoded))
	return append(out, decoded...)
}
