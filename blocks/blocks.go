// Package blocks holds the builtin block definitions: declarative data
// describing each integration's configurable fields, typed inputs, output
// shapes, and tool dispatch. There is no logic here; the resolution engine
// in the root package interprets these definitions.
package blocks

import (
	"sync"

	"github.com/blockflowhq/blockflow/registry"
)

// Block categories used by the editor's palette.
const (
	CategoryStorage       = "storage"
	CategoryMemory        = "memory"
	CategoryCRM           = "crm"
	CategoryProjects      = "projects"
	CategoryCommunication = "communication"
	CategoryAI            = "ai"
)

var (
	builtin     *registry.Catalog
	builtinOnce sync.Once
)

// Builtin returns a catalog pre-populated with every builtin block. The
// catalog is built once and is read-only afterwards; callers share it
// freely across goroutines.
func Builtin() *registry.Catalog {
	builtinOnce.Do(func() {
		builtin = registry.New()
		Register(builtin)
	})
	return builtin
}

// Register adds all builtin block definitions to the catalog. Definitions
// are static; a registration failure is a programming error and panics.
func Register(c *registry.Catalog) {
	c.MustRegister(Redis())
	c.MustRegister(PostgreSQL())
	c.MustRegister(MongoDB())
	c.MustRegister(Mem0())
	c.MustRegister(HubSpot())
	c.MustRegister(Jira())
	c.MustRegister(Slack())
	c.MustRegister(ImageGenerator())
}

// floatPtr is a convenience for slider bounds.
func floatPtr(f float64) *float64 {
	return &f
}
