// Package graph provides the serializable workflow representation and its
// validator. A workflow is a set of block-typed nodes plus the edges wiring
// upstream outputs to downstream inputs; validation resolves every node
// independently against the block catalog and checks each wire for type
// compatibility.
package graph

import (
	"github.com/google/uuid"
)

// Workflow is the serializable representation of one editor graph. It is
// produced by the editor or by loading a saved workflow file.
type Workflow struct {
	ID       string            `json:"id,omitempty"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Nodes    []NodeDef         `json:"nodes"`
	Edges    []EdgeDef         `json:"edges,omitempty"`
}

// NodeDef is one node instance: a block type plus the node's current raw
// parameter values.
type NodeDef struct {
	ID     string         `json:"id"`
	Block  string         `json:"block"`
	Params map[string]any `json:"params,omitempty"`
}

// EdgeDef wires one node's output key to another node's input.
type EdgeDef struct {
	Source       string `json:"source"`
	SourceHandle string `json:"sourceHandle"`
	Target       string `json:"target"`
	TargetHandle string `json:"targetHandle"`
}

// EnsureNodeIDs fills in a generated UUID for any node loaded without an ID
// and returns the workflow for chaining. Hand-written workflow files often
// omit IDs; everything downstream requires them.
func (w *Workflow) EnsureNodeIDs() *Workflow {
	for i := range w.Nodes {
		if w.Nodes[i].ID == "" {
			w.Nodes[i].ID = uuid.NewString()
		}
	}
	return w
}

// NodeByID returns the node with the given ID, or nil.
func (w *Workflow) NodeByID(id string) *NodeDef {
	for i := range w.Nodes {
		if w.Nodes[i].ID == id {
			return &w.Nodes[i]
		}
	}
	return nil
}

// Diagnostic is one validation finding, pointing at the offending node and,
// where known, the exact field.
type Diagnostic struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	NodeID   string `json:"node_id,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// HasErrors returns true if any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity diagnostics.
func Errors(diags []Diagnostic) []Diagnostic {
	var errs []Diagnostic
	for _, d := range diags {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}

// Warnings returns only the warning-severity diagnostics.
func Warnings(diags []Diagnostic) []Diagnostic {
	var warns []Diagnostic
	for _, d := range diags {
		if d.Severity == SeverityWarning {
			warns = append(warns, d)
		}
	}
	return warns
}
