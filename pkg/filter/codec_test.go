package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequence
	}{
		{name: "empty", seq: Sequence{}},
		{
			name: "mixed relations",
			seq: Sequence{
				{Relation: RelationAnd, Dimension: DimensionTag, Operator: OperatorContain, Value: "work"},
				{Relation: RelationOr, Dimension: DimensionText, Operator: OperatorNotContain, Value: "draft \"quoted\""},
				{Relation: RelationAnd, Dimension: DimensionType, Operator: OperatorIs, Value: TypeLinked},
				{Relation: RelationOr, Dimension: DimensionDisplayTime, Operator: OperatorAfter, Value: "2023-05-01T08:00"},
				{Relation: RelationAnd, Dimension: DimensionVisibility, Operator: OperatorIsNot, Value: VisibilityPrivate},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.seq, Deserialize(Serialize(tt.seq)))
		})
	}
}

func TestSerializeWireFormat(t *testing.T) {
	payload := Serialize(Sequence{{Relation: RelationAnd, Dimension: DimensionTag, Operator: OperatorContain, Value: "go"}})

	assert.JSONEq(t, `[{"type":"TAG","value":{"operator":"CONTAIN","value":"go"},"relation":"AND"}]`, payload)
	assert.Equal(t, "[]", Serialize(nil))
}

func TestDeserializeMalformed(t *testing.T) {
	for _, payload := range []string{
		"not valid structure",
		"",
		`{"type":"TAG"}`,
		`[1, 2]`,
		`[{"type":"COLOUR","value":{"operator":"IS","value":"red"},"relation":"AND"}]`,
		`[{}]`,
		`[null]`,
		`[{"value":{"operator":"CONTAIN","value":"go"}}]`,
		`[{"type":"TAG","value":{"operator":"CONTAIN","value":"go"},"relation":"AND"},{"type":""}]`,
	} {
		assert.Equal(t, Sequence{}, Deserialize(payload), "payload %q", payload)
	}
}

func TestDeserializedClausesAreKnownToRegistry(t *testing.T) {
	for _, payload := range []string{`[{}]`, `[null]`, `[{"relation":"OR"}]`} {
		for _, c := range Deserialize(payload) {
			assert.NotPanics(t, func() { c.Dimension.Operators() }, "payload %q", payload)
		}
		e := EditExisting("id", "title", payload)
		assert.Empty(t, e.Clauses, "payload %q", payload)
	}
}
