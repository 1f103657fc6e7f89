package graph

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blockflowhq/blockflow"
	"github.com/blockflowhq/blockflow/registry"
)

// Option configures a validation pass.
type Option func(*validateConfig)

type validateConfig struct {
	events blockflow.EventHandler
}

// WithEventHandler attaches an observability handler that receives
// pass-level and per-node resolution events.
func WithEventHandler(h blockflow.EventHandler) Option {
	return func(c *validateConfig) {
		c.events = h
	}
}

// Validate resolves every node against the catalog and checks every edge's
// type compatibility. Failures are local: a broken node produces
// diagnostics for that node only and never stops sibling nodes from being
// validated. The returned diagnostics carry the offending node and field so
// the editor can highlight them exactly.
func (w *Workflow) Validate(cat *registry.Catalog, opts ...Option) []Diagnostic {
	_, diags := w.resolveAll(cat, opts...)
	return diags
}

// Resolutions runs the same pass as Validate and additionally returns the
// successful resolutions keyed by node ID. One pass, one event stream:
// attached handlers see each node resolved exactly once.
func (w *Workflow) Resolutions(cat *registry.Catalog, opts ...Option) (map[string]*blockflow.Resolution, []Diagnostic) {
	return w.resolveAll(cat, opts...)
}

func (w *Workflow) resolveAll(cat *registry.Catalog, opts ...Option) (map[string]*blockflow.Resolution, []Diagnostic) {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	emit := cfg.events
	if emit == nil {
		emit = func(blockflow.Event) {}
	}

	passID := uuid.NewString()
	started := time.Now()
	emit(blockflow.NewEvent(blockflow.EventPassStarted, passID).
		WithPayload("workflow", w.Name).
		WithPayload("nodes", len(w.Nodes)))

	diags := w.validateStructure()

	// Per-node resolution. Each node resolves against its own snapshot;
	// a failure never aborts siblings.
	resolutions := make(map[string]*blockflow.Resolution, len(w.Nodes))
	for _, node := range w.Nodes {
		res, nodeDiags := resolveNode(cat, node)
		diags = append(diags, nodeDiags...)

		ev := blockflow.NewEvent(blockflow.EventNodeResolved, passID).
			WithNode(node.ID, node.Block).
			WithElapsed(time.Since(started))
		if res != nil {
			resolutions[node.ID] = res
			emit(ev.WithPayload("tool", res.ToolID))
		} else {
			ev.Kind = blockflow.EventNodeInvalid
			emit(ev.WithPayload("diagnostics", len(nodeDiags)))
		}
	}

	diags = append(diags, w.validateWiring(cat, resolutions)...)

	emit(blockflow.NewEvent(blockflow.EventPassFinished, passID).
		WithElapsed(time.Since(started)).
		WithPayload("diagnostics", len(diags)))

	return resolutions, diags
}

// validateStructure checks node and edge referential integrity.
func (w *Workflow) validateStructure() []Diagnostic {
	var diags []Diagnostic

	nodeIDs := make(map[string]bool, len(w.Nodes))
	for _, node := range w.Nodes {
		if nodeIDs[node.ID] {
			diags = append(diags, Diagnostic{
				Code:     "WF-001",
				Severity: SeverityError,
				NodeID:   node.ID,
				Message:  fmt.Sprintf("Duplicate node ID %q", node.ID),
			})
		}
		nodeIDs[node.ID] = true
	}

	for _, edge := range w.Edges {
		if !nodeIDs[edge.Source] {
			diags = append(diags, Diagnostic{
				Code:     "WF-002",
				Severity: SeverityError,
				Message:  fmt.Sprintf("Edge source %q references unknown node", edge.Source),
			})
		}
		if !nodeIDs[edge.Target] {
			diags = append(diags, Diagnostic{
				Code:     "WF-002",
				Severity: SeverityError,
				Message:  fmt.Sprintf("Edge target %q references unknown node", edge.Target),
			})
		}
	}

	// Orphans are legal while editing, but worth flagging.
	if len(w.Nodes) > 1 {
		connected := make(map[string]bool)
		for _, edge := range w.Edges {
			connected[edge.Source] = true
			connected[edge.Target] = true
		}
		for _, node := range w.Nodes {
			if !connected[node.ID] {
				diags = append(diags, Diagnostic{
					Code:     "WF-003",
					Severity: SeverityWarning,
					NodeID:   node.ID,
					Message:  fmt.Sprintf("Node %q has no inbound or outbound edges", node.ID),
				})
			}
		}
	}

	return diags
}

// resolveNode runs the resolution pass for one node and maps the typed
// engine errors onto field-level diagnostics.
func resolveNode(cat *registry.Catalog, node NodeDef) (*blockflow.Resolution, []Diagnostic) {
	res, err := cat.Resolve(node.Block, blockflow.NewParamSnapshot(node.Params))
	if err == nil {
		return res, nil
	}

	var unknownErr *blockflow.UnknownBlockTypeError
	if errors.As(err, &unknownErr) {
		return nil, []Diagnostic{{
			Code:     "WF-010",
			Severity: SeverityError,
			NodeID:   node.ID,
			Message:  fmt.Sprintf("Unknown block type %q", node.Block),
		}}
	}

	var toolErr *blockflow.UnresolvedToolError
	if errors.As(err, &toolErr) {
		return nil, []Diagnostic{{
			Code:     "WF-011",
			Severity: SeverityError,
			NodeID:   node.ID,
			Field:    toolErr.Param,
			Message:  toolErr.Error(),
		}}
	}

	var valErr *blockflow.ValidationError
	if errors.As(err, &valErr) {
		diags := make([]Diagnostic, 0, len(valErr.Fields))
		for _, f := range valErr.Fields {
			diags = append(diags, Diagnostic{
				Code:     "WF-012",
				Severity: SeverityError,
				NodeID:   node.ID,
				Field:    f.Field,
				Message:  fmt.Sprintf("Field %q is %s", f.Field, f.Reason),
			})
		}
		return nil, diags
	}

	var malformedErr *blockflow.MalformedInputError
	if errors.As(err, &malformedErr) {
		return nil, []Diagnostic{{
			Code:     "WF-013",
			Severity: SeverityError,
			NodeID:   node.ID,
			Field:    malformedErr.Field,
			Message:  malformedErr.Error(),
		}}
	}

	return nil, []Diagnostic{{
		Code:     "WF-019",
		Severity: SeverityError,
		NodeID:   node.ID,
		Message:  err.Error(),
	}}
}

// validateWiring checks each edge between two successfully resolved nodes:
// the source handle must be an exposed output, the target handle a declared
// input, and the two shapes must be compatible. Because output shapes are
// value-dependent, wiring results can change as the user edits either node.
func (w *Workflow) validateWiring(cat *registry.Catalog, resolutions map[string]*blockflow.Resolution) []Diagnostic {
	var diags []Diagnostic

	for _, edge := range w.Edges {
		source, ok := resolutions[edge.Source]
		if !ok {
			continue
		}
		targetNode := w.NodeByID(edge.Target)
		if targetNode == nil {
			continue
		}
		targetDef, err := cat.Get(targetNode.Block)
		if err != nil {
			continue
		}

		desc, ok := source.Outputs[edge.SourceHandle]
		if !ok {
			diags = append(diags, Diagnostic{
				Code:     "WF-020",
				Severity: SeverityError,
				NodeID:   edge.Source,
				Field:    edge.SourceHandle,
				Message:  fmt.Sprintf("Node %q does not expose output %q", edge.Source, edge.SourceHandle),
			})
			continue
		}

		input, ok := targetDef.Inputs[edge.TargetHandle]
		if !ok {
			diags = append(diags, Diagnostic{
				Code:     "WF-021",
				Severity: SeverityError,
				NodeID:   edge.Target,
				Field:    edge.TargetHandle,
				Message:  fmt.Sprintf("Block %q declares no input %q", targetNode.Block, edge.TargetHandle),
			})
			continue
		}

		diags = append(diags, checkCompatibility(edge, desc, input.Type)...)
	}

	return diags
}
