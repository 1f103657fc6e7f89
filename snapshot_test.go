package blockflow

import "testing"

func TestParamSnapshot_CopiesInput(t *testing.T) {
	values := map[string]any{"key": "original"}
	snap := NewParamSnapshot(values)

	values["key"] = "mutated"

	got, _ := snap.Value("key")
	if got != "original" {
		t.Errorf("snapshot observed caller mutation: got %v", got)
	}
}

func TestParamSnapshot_WithLeavesReceiverUnchanged(t *testing.T) {
	snap := NewParamSnapshot(map[string]any{"a": "1"})
	edited := snap.With("a", "2").With("b", "3")

	if got, _ := snap.Value("a"); got != "1" {
		t.Errorf("original snapshot changed: a = %v", got)
	}
	if snap.Has("b") {
		t.Error("original snapshot gained a key")
	}
	if got, _ := edited.Value("a"); got != "2" {
		t.Errorf("edited snapshot a = %v, want 2", got)
	}
}

func TestParamSnapshot_Without(t *testing.T) {
	snap := NewParamSnapshot(map[string]any{"a": "1", "b": "2"})
	trimmed := snap.Without("a")

	if trimmed.Has("a") {
		t.Error("removed key still present")
	}
	if !snap.Has("a") {
		t.Error("receiver lost a key")
	}
}

func TestParamSnapshot_Keys(t *testing.T) {
	snap := NewParamSnapshot(map[string]any{"b": 1, "a": 2, "c": 3})
	got := snap.Keys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

func TestIsEmptyValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "   ", true},
		{"non-blank string", "x", false},
		{"zero", float64(0), false},
		{"false", false, false},
		{"object", map[string]any{"a": 1}, false},
		{"empty list", []any{}, true},
		{"non-empty plain list", []any{"a"}, false},
		{"table all blank", []TableRow{{Cells: map[string]string{"key": " ", "value": ""}}}, true},
		{"table one filled", []TableRow{
			{Cells: map[string]string{"key": "", "value": ""}},
			{Cells: map[string]string{"key": "name", "value": "x"}},
		}, false},
		{"decoded table all blank", []any{
			map[string]any{"id": "r1", "cells": map[string]any{"key": "", "value": " "}},
		}, true},
		{"decoded table filled", []any{
			map[string]any{"id": "r1", "cells": map[string]any{"key": "k", "value": "v"}},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmptyValue(tt.value); got != tt.want {
				t.Errorf("IsEmptyValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
