package blockflow

import (
	"fmt"
	"strings"
)

// Field error reasons carried by ValidationError entries.
const (
	ReasonMissing = "missing"
	ReasonInvalid = "invalid"
)

// UnknownBlockTypeError reports a registry miss: the referenced block type
// was never registered. Fatal for that node at graph-validation time.
type UnknownBlockTypeError struct {
	BlockType string
}

func (e *UnknownBlockTypeError) Error() string {
	return fmt.Sprintf("unknown block type %q", e.BlockType)
}

// DuplicateBlockTypeError reports an attempt to register a block type twice.
// The original registration is left intact.
type DuplicateBlockTypeError struct {
	BlockType string
}

func (e *DuplicateBlockTypeError) Error() string {
	return fmt.Sprintf("block type %q is already registered", e.BlockType)
}

// UnresolvedToolError reports that the current parameters do not map to any
// declared tool. Recoverable: the user must pick or complete the operation
// field.
type UnresolvedToolError struct {
	BlockType string
	Param     string
	Value     any
}

func (e *UnresolvedToolError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("block %q: no tool selected: %s is not set", e.BlockType, e.Param)
	}
	return fmt.Sprintf("block %q: no tool for %s=%v", e.BlockType, e.Param, e.Value)
}

// FieldError is one invalid or missing field within a ValidationError.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

func (e FieldError) String() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%s: %s)", e.Field, e.Reason, e.Detail)
	}
	return fmt.Sprintf("%s (%s)", e.Field, e.Reason)
}

// ValidationError aggregates every missing or invalid field found in one
// transform pass, so the editor can highlight all of them at once rather
// than the first.
type ValidationError struct {
	BlockType string
	Fields    []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("block %q: invalid params: %s", e.BlockType, strings.Join(parts, ", "))
}

// FieldNames returns the offending field IDs in report order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// MissingOnly reports whether every entry is a missing required field, i.e.
// the node is incomplete rather than misconfigured.
func (e *ValidationError) MissingOnly() bool {
	for _, f := range e.Fields {
		if f.Reason != ReasonMissing {
			return false
		}
	}
	return len(e.Fields) > 0
}

// MalformedInputError reports a JSON/code field whose string value failed to
// parse. The transform aborts immediately; no partial output is returned.
type MalformedInputError struct {
	BlockType string
	Field     string
	Err       error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("block %q: field %q is not valid JSON: %v", e.BlockType, e.Field, e.Err)
}

// Unwrap exposes the underlying parse error for errors.Is/errors.As.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
