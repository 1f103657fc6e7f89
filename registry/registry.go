// Package registry provides the block catalog: the static, immutable-after-
// init collection of block definitions consumed by the resolution engine,
// the graph validator, and the editor API.
//
// Unlike a global mutable registry, a Catalog is an explicit object built
// once during startup and passed by reference to its consumers. Registration
// never overlaps with lookups, so reads need no locking.
package registry

import (
	"fmt"

	"github.com/blockflowhq/blockflow"
)

// Catalog holds all known block definitions in registration order.
type Catalog struct {
	defs  map[string]*blockflow.BlockDefinition
	order []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		defs: make(map[string]*blockflow.BlockDefinition),
	}
}

// Register adds a block definition. A duplicate type is rejected with
// *blockflow.DuplicateBlockTypeError and the original definition is left
// intact. The definition is also checked for internal consistency: every
// router route and the router default must name a tool from ToolAccess,
// every output must declare exactly one shape, and dependent outputs must
// reference a declared sub-block.
func (c *Catalog) Register(def *blockflow.BlockDefinition) error {
	if def == nil {
		return fmt.Errorf("registry: nil block definition")
	}
	if def.Type == "" {
		return fmt.Errorf("registry: block definition has no type")
	}
	if _, exists := c.defs[def.Type]; exists {
		return &blockflow.DuplicateBlockTypeError{BlockType: def.Type}
	}
	if err := validateDefinition(def); err != nil {
		return err
	}

	c.defs[def.Type] = def
	c.order = append(c.order, def.Type)
	return nil
}

// MustRegister registers a definition and panics on error. Intended for the
// static builtin catalog, where a failure is a programming error.
func (c *Catalog) MustRegister(def *blockflow.BlockDefinition) {
	if err := c.Register(def); err != nil {
		panic(err)
	}
}

// Get returns the definition for a block type, or an
// *blockflow.UnknownBlockTypeError.
func (c *Catalog) Get(blockType string) (*blockflow.BlockDefinition, error) {
	def, ok := c.defs[blockType]
	if !ok {
		return nil, &blockflow.UnknownBlockTypeError{BlockType: blockType}
	}
	return def, nil
}

// Has reports whether the block type is registered.
func (c *Catalog) Has(blockType string) bool {
	_, ok := c.defs[blockType]
	return ok
}

// All returns all registered definitions in registration order.
func (c *Catalog) All() []*blockflow.BlockDefinition {
	result := make([]*blockflow.BlockDefinition, 0, len(c.order))
	for _, t := range c.order {
		result = append(result, c.defs[t])
	}
	return result
}

// ListByCategory returns the definitions in the given category, in
// registration order.
func (c *Catalog) ListByCategory(category string) []*blockflow.BlockDefinition {
	var result []*blockflow.BlockDefinition
	for _, t := range c.order {
		if c.defs[t].Category == category {
			result = append(result, c.defs[t])
		}
	}
	return result
}

// Resolve looks up the block type and runs the full resolution pass against
// the snapshot.
func (c *Catalog) Resolve(blockType string, snap blockflow.ParamSnapshot) (*blockflow.Resolution, error) {
	def, err := c.Get(blockType)
	if err != nil {
		return nil, err
	}
	return blockflow.Resolve(def, snap)
}

// validateDefinition enforces definition-level invariants at registration
// time so that resolve-time code never sees an out-of-list tool or an
// ambiguous output.
func validateDefinition(def *blockflow.BlockDefinition) error {
	if len(def.ToolAccess) == 0 {
		return fmt.Errorf("registry: block %q declares no tools", def.Type)
	}

	for key, toolID := range def.Tools.Routes {
		if !def.HasToolAccess(toolID) {
			return fmt.Errorf("registry: block %q routes %s=%q to tool %q outside its tool access list",
				def.Type, def.Tools.DiscriminantParam(), key, toolID)
		}
	}
	if def.Tools.Default != "" && !def.HasToolAccess(def.Tools.Default) {
		return fmt.Errorf("registry: block %q default tool %q is outside its tool access list",
			def.Type, def.Tools.Default)
	}

	for key, out := range def.Outputs {
		if out.Static != nil && out.DependsOn != nil {
			return fmt.Errorf("registry: block %q output %q declares both a static and a dependent type",
				def.Type, key)
		}
		if out.Static == nil && out.DependsOn == nil {
			return fmt.Errorf("registry: block %q output %q declares no type", def.Type, key)
		}
		if out.DependsOn != nil && def.SubBlockByID(out.DependsOn.SubBlock) == nil {
			return fmt.Errorf("registry: block %q output %q depends on unknown sub-block %q",
				def.Type, key, out.DependsOn.SubBlock)
		}
	}

	for _, sb := range def.SubBlocks {
		if sb.ID == "" {
			return fmt.Errorf("registry: block %q has a sub-block without an ID", def.Type)
		}
	}

	return nil
}
