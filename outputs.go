package blockflow

// ResolveOutputs computes the concrete output shape the node currently
// exposes to downstream nodes. Static outputs are emitted unchanged; a
// dependent output emits its WhenEmpty or WhenFilled descriptor depending on
// the canonical emptiness of the controlling sub-block's snapshot value (an
// absent sub-block counts as empty).
//
// Every declared output key resolves to exactly one descriptor.
func ResolveOutputs(def *BlockDefinition, snap ParamSnapshot) map[string]TypeDescriptor {
	resolved := make(map[string]TypeDescriptor, len(def.Outputs))
	for key, spec := range def.Outputs {
		switch {
		case spec.DependsOn != nil:
			value, _ := snap.Value(spec.DependsOn.SubBlock)
			if IsEmptyValue(value) {
				resolved[key] = spec.DependsOn.WhenEmpty
			} else {
				resolved[key] = spec.DependsOn.WhenFilled
			}
		case spec.Static != nil:
			resolved[key] = *spec.Static
		default:
			// Registration validates that one branch is set; an untyped
			// output degrades to any rather than disappearing.
			resolved[key] = TypeDescriptor{Type: TypeAny}
		}
	}
	return resolved
}
