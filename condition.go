package blockflow

import "reflect"

// Condition is a sealed visibility predicate on a sub-block. The two
// implementations are Equals and OneOf; evaluation is a pure function of the
// referenced field's current snapshot value.
type Condition interface {
	// Field returns the sub-block ID the condition reads.
	Field() string

	// Matches reports whether the condition holds for the field's current
	// value. present is false when the field is absent from the snapshot,
	// which never matches.
	Matches(value any, present bool) bool

	isCondition()
}

// Equals activates a sub-block while another field equals a literal value.
type Equals struct {
	On    string
	Value any
}

func (c Equals) Field() string { return c.On }

func (c Equals) Matches(value any, present bool) bool {
	return present && literalEqual(value, c.Value)
}

func (Equals) isCondition() {}

// OneOf activates a sub-block while another field equals any of a list of
// literal values.
type OneOf struct {
	On     string
	Values []any
}

func (c OneOf) Field() string { return c.On }

func (c OneOf) Matches(value any, present bool) bool {
	if !present {
		return false
	}
	for _, want := range c.Values {
		if literalEqual(value, want) {
			return true
		}
	}
	return false
}

func (OneOf) isCondition() {}

// literalEqual compares a snapshot value against a condition literal.
// Condition literals are scalars (string, number, bool); numeric values are
// compared after normalizing to float64 so that an int literal matches a
// JSON-decoded float64.
func literalEqual(value, literal any) bool {
	if vf, ok := toFloat(value); ok {
		if lf, ok := toFloat(literal); ok {
			return vf == lf
		}
	}
	return reflect.DeepEqual(value, literal)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
