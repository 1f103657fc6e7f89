// Package blockflow implements the block resolution engine for declaratively
// configured workflow nodes.
//
// A block is a node type described entirely by data: its configurable fields
// (sub-blocks), its typed inputs and outputs, and the set of concrete tools it
// can dispatch to. Given a block definition and the node's current parameter
// snapshot, the engine deterministically computes which tool the node
// represents, the validated arguments for that tool, and the output shape the
// node exposes to downstream nodes. All of this happens before any network
// call: resolution is pure, synchronous, and safe to re-run on every edit.
//
// The actual tool invocation, credential handling, and graph scheduling live
// outside this package.
package blockflow

// ValueType identifies the declared type of an input, output, or config value.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeJSON    ValueType = "json"
	TypeArray   ValueType = "array"
	TypeObject  ValueType = "object"
	TypeAny     ValueType = "any"
)

// String returns the string representation of the ValueType.
func (t ValueType) String() string {
	return string(t)
}

// TypeDescriptor describes the concrete shape of a resolved output value.
// Array types carry an Items descriptor; object types may declare Properties.
type TypeDescriptor struct {
	Type        ValueType                 `json:"type"`
	Description string                    `json:"description,omitempty"`
	Items       *TypeDescriptor           `json:"items,omitempty"`
	Properties  map[string]TypeDescriptor `json:"properties,omitempty"`
}

// FieldKind identifies the editor widget rendered for a sub-block.
// The engine only cares about a few of these (slider bounds, code parsing,
// credential renaming); the rest are carried for the editor.
type FieldKind string

const (
	FieldShortInput FieldKind = "short-input"
	FieldLongInput  FieldKind = "long-input"
	FieldDropdown   FieldKind = "dropdown"
	FieldCode       FieldKind = "code"
	FieldCredential FieldKind = "credential"
	FieldSlider     FieldKind = "slider"
	FieldSwitch     FieldKind = "switch"
	FieldTable      FieldKind = "table"
)

// Option is one selectable choice on a dropdown sub-block.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SubBlock is one configurable field on a block. A sub-block with a nil
// Condition is always active; otherwise it is active only while the
// condition matches the current snapshot.
type SubBlock struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Kind        FieldKind `json:"kind"`
	Condition   Condition `json:"-"`
	Options     []Option  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`

	// Min and Max bound slider values. Stored values are re-clamped at
	// transform time regardless of what the snapshot claims.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// ArgName renames the field to the argument name the tool expects
	// (e.g. a credential selector forwarded as "accessToken"). Empty keeps
	// the sub-block ID.
	ArgName string `json:"arg_name,omitempty"`

	// Internal marks editor-only fields that are never forwarded to tools.
	Internal bool `json:"internal,omitempty"`
}

// InputSpec declares one tool-facing input on a block.
type InputSpec struct {
	Type     ValueType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Default  any       `json:"default,omitempty"`
}

// OutputSpec declares one output key on a block. Exactly one of Static or
// DependsOn is set; the registry rejects definitions that violate this.
type OutputSpec struct {
	Static    *TypeDescriptor  `json:"static,omitempty"`
	DependsOn *DependentOutput `json:"depends_on,omitempty"`
}

// DependentOutput makes an output's type depend on whether a sub-block is
// currently filled. This lets a node's exposed shape change with user
// configuration, e.g. enabling a custom result mapping.
type DependentOutput struct {
	SubBlock   string         `json:"sub_block"`
	WhenEmpty  TypeDescriptor `json:"when_empty"`
	WhenFilled TypeDescriptor `json:"when_filled"`
}

// ToolRouter maps a single discriminant parameter (commonly "operation") to
// one of the block's declared tools. The mapping is closed: an unrecognized
// discriminant falls back to Default when set, and is otherwise an
// UnresolvedToolError. Routes must name tools from the block's ToolAccess
// list; the registry enforces this at registration time.
type ToolRouter struct {
	Param   string            `json:"param,omitempty"`
	Routes  map[string]string `json:"routes,omitempty"`
	Default string            `json:"default,omitempty"`
}

// DiscriminantParam is the sub-block consulted by the router, defaulting to
// "operation".
func (r ToolRouter) DiscriminantParam() string {
	if r.Param == "" {
		return "operation"
	}
	return r.Param
}

// BlockDefinition is the static, declaratively authored description of one
// block type. Definitions are registered once at startup and are read-only
// afterwards.
type BlockDefinition struct {
	Type        string               `json:"type"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category"`
	SubBlocks   []SubBlock           `json:"sub_blocks"`
	Inputs      map[string]InputSpec `json:"inputs"`
	Outputs     map[string]OutputSpec `json:"outputs"`
	ToolAccess  []string             `json:"tool_access"`
	Tools       ToolRouter           `json:"tools"`
}

// SubBlockByID returns the sub-block with the given ID, or nil.
func (d *BlockDefinition) SubBlockByID(id string) *SubBlock {
	for i := range d.SubBlocks {
		if d.SubBlocks[i].ID == id {
			return &d.SubBlocks[i]
		}
	}
	return nil
}

// HasToolAccess reports whether toolID is in the block's declared tool list.
func (d *BlockDefinition) HasToolAccess(toolID string) bool {
	for _, id := range d.ToolAccess {
		if id == toolID {
			return true
		}
	}
	return false
}
