package graph

import (
	"fmt"

	"github.com/blockflowhq/blockflow"
)

// checkCompatibility compares an upstream output descriptor against a
// downstream input's declared type.
//
// "any" on either side is allowed but flagged with a warning so authors can
// see where type checking is bypassed. "json" interoperates with every
// structured type (object, array, json) silently: a json output is by
// definition shape-unknown until runtime. Everything else must match
// exactly.
func checkCompatibility(edge EdgeDef, source blockflow.TypeDescriptor, target blockflow.ValueType) []Diagnostic {
	if source.Type == blockflow.TypeAny || target == blockflow.TypeAny {
		return []Diagnostic{{
			Code:     "WF-023",
			Severity: SeverityWarning,
			NodeID:   edge.Target,
			Field:    edge.TargetHandle,
			Message: fmt.Sprintf("Type check bypassed on %s.%s -> %s.%s: one side is typed as any",
				edge.Source, edge.SourceHandle, edge.Target, edge.TargetHandle),
		}}
	}

	if compatible(source.Type, target) {
		return nil
	}

	return []Diagnostic{{
		Code:     "WF-022",
		Severity: SeverityError,
		NodeID:   edge.Target,
		Field:    edge.TargetHandle,
		Message: fmt.Sprintf("Type mismatch: output %s.%s (%s) is not compatible with input %s.%s (%s)",
			edge.Source, edge.SourceHandle, source.Type, edge.Target, edge.TargetHandle, target),
	}}
}

func compatible(source, target blockflow.ValueType) bool {
	if source == target {
		return true
	}
	if source == blockflow.TypeJSON && structured(target) {
		return true
	}
	if target == blockflow.TypeJSON && structured(source) {
		return true
	}
	return false
}

// structured reports whether values of the type are JSON-shaped rather than
// scalar.
func structured(t blockflow.ValueType) bool {
	switch t {
	case blockflow.TypeJSON, blockflow.TypeObject, blockflow.TypeArray:
		return true
	}
	return false
}
