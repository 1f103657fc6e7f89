package blockflow

import (
	"errors"
	"testing"
)

func TestResolveTool_RoutesDiscriminant(t *testing.T) {
	def := kvBlock()

	tests := []struct {
		operation string
		want      string
	}{
		{"get", "kv_get"},
		{"set", "kv_set"},
		{"list", "kv_list"},
	}

	for _, tt := range tests {
		snap := NewParamSnapshot(map[string]any{"operation": tt.operation})
		got, err := ResolveTool(def, snap)
		if err != nil {
			t.Fatalf("ResolveTool(operation=%q) error = %v", tt.operation, err)
		}
		if got != tt.want {
			t.Errorf("ResolveTool(operation=%q) = %q, want %q", tt.operation, got, tt.want)
		}
	}
}

func TestResolveTool_UnknownDiscriminant(t *testing.T) {
	def := kvBlock()
	snap := NewParamSnapshot(map[string]any{"operation": "bogus"})

	_, err := ResolveTool(def, snap)

	var toolErr *UnresolvedToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *UnresolvedToolError, got %v", err)
	}
	if toolErr.Param != "operation" || toolErr.Value != "bogus" {
		t.Errorf("error carries %s=%v, want operation=bogus", toolErr.Param, toolErr.Value)
	}
}

func TestResolveTool_MissingDiscriminant(t *testing.T) {
	def := kvBlock()

	_, err := ResolveTool(def, NewParamSnapshot(nil))

	var toolErr *UnresolvedToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *UnresolvedToolError, got %v", err)
	}
}

func TestResolveTool_DefaultTool(t *testing.T) {
	def := kvBlock()
	def.Tools.Default = "kv_get"

	got, err := ResolveTool(def, NewParamSnapshot(nil))
	if err != nil {
		t.Fatalf("ResolveTool() error = %v", err)
	}
	if got != "kv_get" {
		t.Errorf("ResolveTool() = %q, want default kv_get", got)
	}
}

func TestResolveTool_SingleToolNoRoutes(t *testing.T) {
	def := &BlockDefinition{
		Type:       "webhook",
		ToolAccess: []string{"webhook_send"},
	}

	got, err := ResolveTool(def, NewParamSnapshot(nil))
	if err != nil {
		t.Fatalf("ResolveTool() error = %v", err)
	}
	if got != "webhook_send" {
		t.Errorf("ResolveTool() = %q, want webhook_send", got)
	}
}

// Membership property: whatever the snapshot contains, a successful
// resolution always lands inside the declared tool access list.
func TestResolveTool_AlwaysInToolAccess(t *testing.T) {
	def := kvBlock()

	snapshots := []map[string]any{
		{"operation": "get"},
		{"operation": "set"},
		{"operation": "list"},
		{"operation": "bogus"},
		{"operation": ""},
		{"operation": 42},
		{},
	}

	for _, values := range snapshots {
		got, err := ResolveTool(def, NewParamSnapshot(values))
		if err != nil {
			continue
		}
		if !def.HasToolAccess(got) {
			t.Errorf("snapshot %v resolved to %q, outside tool access %v", values, got, def.ToolAccess)
		}
	}
}

func TestResolveTool_OutOfListRouteRejected(t *testing.T) {
	// A definition that bypassed registry validation must still never
	// resolve outside its access list.
	def := kvBlock()
	def.Tools.Routes["rogue"] = "kv_drop_everything"

	_, err := ResolveTool(def, NewParamSnapshot(map[string]any{"operation": "rogue"}))

	var toolErr *UnresolvedToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *UnresolvedToolError for out-of-list route, got %v", err)
	}
}
