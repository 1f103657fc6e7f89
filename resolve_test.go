package blockflow

import (
	"errors"
	"testing"
)

func TestResolve_Complete(t *testing.T) {
	def := kvBlock()
	snap := NewParamSnapshot(map[string]any{
		"operation":  "set",
		"credential": "cred-1",
		"key":        "user:42",
		"value":      `{"name": "Ada"}`,
	})

	res, err := Resolve(def, snap)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.BlockType != "kvstore" {
		t.Errorf("BlockType = %q, want kvstore", res.BlockType)
	}
	if res.ToolID != "kv_set" {
		t.Errorf("ToolID = %q, want kv_set", res.ToolID)
	}
	if res.Args["accessToken"] != "cred-1" {
		t.Errorf("accessToken = %v, want cred-1", res.Args["accessToken"])
	}
	if res.Outputs["result"].Type != TypeJSON {
		t.Errorf("result output = %v, want json", res.Outputs["result"].Type)
	}
}

func TestResolve_ToolFailureShortCircuits(t *testing.T) {
	def := kvBlock()
	snap := NewParamSnapshot(map[string]any{"operation": "bogus"})

	res, err := Resolve(def, snap)
	if res != nil {
		t.Fatalf("Resolve() = %+v, want nil on error", res)
	}
	var toolErr *UnresolvedToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error = %T, want *UnresolvedToolError", err)
	}
}

func TestResolve_ValidationFailure(t *testing.T) {
	def := kvBlock()
	snap := NewParamSnapshot(map[string]any{"operation": "get"})

	_, err := Resolve(def, snap)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %T, want *ValidationError", err)
	}
}

func TestEvaluateState(t *testing.T) {
	def := kvBlock()

	tests := []struct {
		name   string
		values map[string]any
		want   NodeState
	}{
		{"empty snapshot", nil, StateUnconfigured},
		{"operation only", map[string]any{"operation": "get"}, StatePartiallyConfigured},
		{"complete", map[string]any{
			"operation":  "get",
			"credential": "cred-1",
			"key":        "user:42",
		}, StateResolvedReady},
		{"unresolved tool", map[string]any{"operation": "bogus"}, StateInvalid},
		{"malformed json", map[string]any{
			"operation":  "set",
			"credential": "cred-1",
			"key":        "user:42",
			"value":      "{not json",
		}, StateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateState(def, NewParamSnapshot(tt.values))
			if got != tt.want {
				t.Errorf("EvaluateState() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A corrected snapshot moves a node out of Invalid; no state sticks.
func TestEvaluateState_Recovers(t *testing.T) {
	def := kvBlock()
	bad := NewParamSnapshot(map[string]any{"operation": "bogus"})
	if got := EvaluateState(def, bad); got != StateInvalid {
		t.Fatalf("state = %v, want invalid", got)
	}

	fixed := bad.With("operation", "list").With("credential", "cred-1").With("key", "k")
	if got := EvaluateState(def, fixed); got != StateResolvedReady {
		t.Errorf("state after fix = %v, want resolved_ready", got)
	}
}
