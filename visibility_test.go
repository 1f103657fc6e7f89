package blockflow

import (
	"reflect"
	"testing"
)

func TestVisibleSubBlocks_NoCondition(t *testing.T) {
	subs := []SubBlock{
		{ID: "operation", Kind: FieldDropdown},
		{ID: "url", Kind: FieldShortInput},
	}
	snap := NewParamSnapshot(nil)

	visible := VisibleSubBlocks(subs, snap)

	if !visible["operation"] || !visible["url"] {
		t.Errorf("unconditional sub-blocks should always be visible, got %v", visible)
	}
}

func TestVisibleSubBlocks_Equals(t *testing.T) {
	subs := []SubBlock{
		{ID: "value", Kind: FieldCode, Condition: Equals{On: "operation", Value: "set"}},
	}

	tests := []struct {
		name    string
		values  map[string]any
		visible bool
	}{
		{"matching", map[string]any{"operation": "set"}, true},
		{"different value", map[string]any{"operation": "get"}, false},
		{"field absent", map[string]any{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleSubBlocks(subs, NewParamSnapshot(tt.values))
			if got["value"] != tt.visible {
				t.Errorf("visible = %v, want %v", got["value"], tt.visible)
			}
		})
	}
}

func TestVisibleSubBlocks_OneOf(t *testing.T) {
	subs := []SubBlock{
		{ID: "key", Kind: FieldShortInput, Condition: OneOf{On: "operation", Values: []any{"get", "set", "delete"}}},
	}

	for _, op := range []string{"get", "set", "delete"} {
		got := VisibleSubBlocks(subs, NewParamSnapshot(map[string]any{"operation": op}))
		if !got["key"] {
			t.Errorf("operation=%q: key should be visible", op)
		}
	}

	got := VisibleSubBlocks(subs, NewParamSnapshot(map[string]any{"operation": "keys"}))
	if got["key"] {
		t.Error("operation=keys: key should be hidden")
	}
}

func TestVisibleSubBlocks_BoolCondition(t *testing.T) {
	subs := []SubBlock{
		{ID: "threadTs", Kind: FieldShortInput, Condition: Equals{On: "threadReply", Value: true}},
	}

	got := VisibleSubBlocks(subs, NewParamSnapshot(map[string]any{"threadReply": true}))
	if !got["threadTs"] {
		t.Error("threadTs should be visible when threadReply=true")
	}

	got = VisibleSubBlocks(subs, NewParamSnapshot(map[string]any{"threadReply": false}))
	if got["threadTs"] {
		t.Error("threadTs should be hidden when threadReply=false")
	}
}

func TestVisibleSubBlocks_NumericLiteralNormalization(t *testing.T) {
	// A JSON-decoded snapshot holds float64; an int condition literal must
	// still match.
	subs := []SubBlock{
		{ID: "detail", Kind: FieldShortInput, Condition: Equals{On: "level", Value: 2}},
	}

	got := VisibleSubBlocks(subs, NewParamSnapshot(map[string]any{"level": float64(2)}))
	if !got["detail"] {
		t.Error("int literal should match JSON-decoded float64")
	}
}

func TestVisibleSubBlocks_Idempotent(t *testing.T) {
	subs := []SubBlock{
		{ID: "operation", Kind: FieldDropdown},
		{ID: "value", Kind: FieldCode, Condition: Equals{On: "operation", Value: "set"}},
		{ID: "pattern", Kind: FieldShortInput, Condition: Equals{On: "operation", Value: "keys"}},
	}
	snap := NewParamSnapshot(map[string]any{"operation": "set"})

	first := VisibleSubBlocks(subs, snap)
	second := VisibleSubBlocks(subs, snap)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results: %v vs %v", first, second)
	}
}
