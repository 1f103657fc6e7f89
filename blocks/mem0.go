package blocks

import "github.com/blockflowhq/blockflow"

// Mem0 stores and retrieves agent memories through the Mem0 API.
func Mem0() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "mem0",
		Name:        "Mem0",
		Description: "Add, search, and fetch agent memories",
		Category:    CategoryMemory,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "operation",
				Title: "Operation",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "Add Memories", Value: "add"},
					{Label: "Search Memories", Value: "search"},
					{Label: "Get Memories", Value: "get"},
				},
			},
			{
				ID:      "apiKey",
				Title:   "API Key",
				Kind:    blockflow.FieldCredential,
				ArgName: "apiKey",
			},
			{ID: "userId", Title: "User ID", Kind: blockflow.FieldShortInput},
			{
				ID:        "messages",
				Title:     "Messages",
				Kind:      blockflow.FieldCode,
				Condition: blockflow.Equals{On: "operation", Value: "add"},
			},
			{
				ID:        "query",
				Title:     "Search Query",
				Kind:      blockflow.FieldLongInput,
				Condition: blockflow.Equals{On: "operation", Value: "search"},
			},
			{
				ID:        "limit",
				Title:     "Result Limit",
				Kind:      blockflow.FieldSlider,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"search", "get"}},
				Min:       floatPtr(1),
				Max:       floatPtr(100),
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"operation": {Type: blockflow.TypeString, Required: true},
			"apiKey":    {Type: blockflow.TypeString, Required: true},
			"userId":    {Type: blockflow.TypeString, Required: true},
			"messages":  {Type: blockflow.TypeJSON, Required: true},
			"query":     {Type: blockflow.TypeString, Required: true},
			"limit":     {Type: blockflow.TypeNumber, Default: float64(10)},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"memories": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeJSON}}},
			"ids":      {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeString}}},
		},
		ToolAccess: []string{"mem0_add_memories", "mem0_search_memories", "mem0_get_memories"},
		Tools: blockflow.ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"add":    "mem0_add_memories",
				"search": "mem0_search_memories",
				"get":    "mem0_get_memories",
			},
		},
	}
}
