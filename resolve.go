package blockflow

import "errors"

// Resolution is the full result of resolving one node: the concrete tool, the
// validated arguments for it, and the output shape the node exposes. It is
// handed to the (external) tool-invocation layer and to the editor's wiring
// validator. Resolutions are recomputed on every edit and never cached.
type Resolution struct {
	BlockType string                    `json:"block_type"`
	ToolID    string                    `json:"tool_id"`
	Args      map[string]any            `json:"args"`
	Outputs   map[string]TypeDescriptor `json:"outputs"`
}

// Resolve runs the full resolution pass for one block definition and
// snapshot: tool dispatch, parameter transformation, and output typing.
// On failure the error is one of *UnresolvedToolError, *ValidationError, or
// *MalformedInputError, each pointing at the offending field(s).
func Resolve(def *BlockDefinition, snap ParamSnapshot) (*Resolution, error) {
	toolID, err := ResolveTool(def, snap)
	if err != nil {
		return nil, err
	}

	args, err := TransformParams(def, toolID, snap)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		BlockType: def.Type,
		ToolID:    toolID,
		Args:      args,
		Outputs:   ResolveOutputs(def, snap),
	}, nil
}

// NodeState is the logical configuration state of one node instance,
// recomputed speculatively on every edit. No state is permanent: a corrected
// snapshot moves an Invalid node back to ResolvedReady.
type NodeState string

const (
	// StateUnconfigured: nothing set yet.
	StateUnconfigured NodeState = "unconfigured"

	// StatePartiallyConfigured: some values set, required fields still
	// missing, nothing actually wrong.
	StatePartiallyConfigured NodeState = "partially_configured"

	// StateResolvedReady: the node resolves cleanly and is executable.
	StateResolvedReady NodeState = "resolved_ready"

	// StateInvalid: the tool cannot be resolved or a value is malformed.
	StateInvalid NodeState = "invalid"
)

// EvaluateState classifies the node's current snapshot. A clean resolution
// is ResolvedReady. A validation failure consisting only of missing required
// fields is PartiallyConfigured (or Unconfigured when the snapshot is
// empty); every other failure is Invalid.
func EvaluateState(def *BlockDefinition, snap ParamSnapshot) NodeState {
	_, err := Resolve(def, snap)
	if err == nil {
		return StateResolvedReady
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) && valErr.MissingOnly() {
		if snap.Len() == 0 {
			return StateUnconfigured
		}
		return StatePartiallyConfigured
	}

	var toolErr *UnresolvedToolError
	if errors.As(err, &toolErr) && snap.Len() == 0 {
		return StateUnconfigured
	}

	return StateInvalid
}
