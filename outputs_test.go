package blockflow

import "testing"

func TestResolveOutputs_Static(t *testing.T) {
	def := kvBlock()
	outputs := ResolveOutputs(def, NewParamSnapshot(nil))

	if outputs["result"].Type != TypeJSON {
		t.Errorf("result type = %v, want json", outputs["result"].Type)
	}
	if len(outputs) != len(def.Outputs) {
		t.Errorf("resolved %d outputs, want %d: every declared key resolves", len(outputs), len(def.Outputs))
	}
}

func TestResolveOutputs_DependentSwitches(t *testing.T) {
	def := kvBlock()

	tests := []struct {
		name    string
		mapping any
		present bool
		want    ValueType
	}{
		{"unset", nil, false, TypeArray},
		{"blank string", "   ", true, TypeArray},
		{"filled", `{"rows": "items[*]"}`, true, TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[string]any{}
			if tt.present {
				values["mapping"] = tt.mapping
			}
			outputs := ResolveOutputs(def, NewParamSnapshot(values))
			if outputs["data"].Type != tt.want {
				t.Errorf("data type = %v, want %v", outputs["data"].Type, tt.want)
			}
		})
	}
}

// Emptiness cases from dependent-output resolution: zero and false count as
// filled, blank strings as empty.
func TestResolveOutputs_EmptinessBoundaries(t *testing.T) {
	def := &BlockDefinition{
		Type:      "probe",
		SubBlocks: []SubBlock{{ID: "advancedOptions", Kind: FieldCode}},
		Outputs: map[string]OutputSpec{
			"response": {DependsOn: &DependentOutput{
				SubBlock:   "advancedOptions",
				WhenEmpty:  TypeDescriptor{Type: TypeString},
				WhenFilled: TypeDescriptor{Type: TypeObject},
			}},
		},
		ToolAccess: []string{"probe_run"},
	}

	tests := []struct {
		name  string
		value any
		want  ValueType
	}{
		{"empty string", "", TypeString},
		{"spaces", "   ", TypeString},
		{"text", "x", TypeObject},
		{"zero", float64(0), TypeObject},
		{"false", false, TypeObject},
		{"object", map[string]any{"k": "v"}, TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewParamSnapshot(map[string]any{"advancedOptions": tt.value})
			outputs := ResolveOutputs(def, snap)
			if outputs["response"].Type != tt.want {
				t.Errorf("response type = %v, want %v", outputs["response"].Type, tt.want)
			}
		})
	}
}
