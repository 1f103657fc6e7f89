package blocks

import "github.com/blockflowhq/blockflow"

// Redis exposes key-value operations against a Redis instance.
func Redis() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "redis",
		Name:        "Redis",
		Description: "Get, set, delete, and list keys in a Redis database",
		Category:    CategoryStorage,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "operation",
				Title: "Operation",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "Get Value", Value: "get"},
					{Label: "Set Value", Value: "set"},
					{Label: "Delete Key", Value: "delete"},
					{Label: "List Keys", Value: "keys"},
				},
			},
			{
				ID:          "url",
				Title:       "Connection URL",
				Kind:        blockflow.FieldShortInput,
				Placeholder: "redis://localhost:6379",
			},
			{
				ID:        "key",
				Title:     "Key",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"get", "set", "delete"}},
			},
			{
				ID:        "value",
				Title:     "Value",
				Kind:      blockflow.FieldCode,
				Condition: blockflow.Equals{On: "operation", Value: "set"},
			},
			{
				ID:        "ttl",
				Title:     "TTL (seconds)",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.Equals{On: "operation", Value: "set"},
			},
			{
				ID:        "pattern",
				Title:     "Key Pattern",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.Equals{On: "operation", Value: "keys"},
				Placeholder: "*",
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"operation": {Type: blockflow.TypeString, Required: true},
			"url":       {Type: blockflow.TypeString, Default: "redis://localhost:6379"},
			"key":       {Type: blockflow.TypeString, Required: true},
			"value":     {Type: blockflow.TypeJSON},
			"ttl":       {Type: blockflow.TypeNumber, Default: float64(0)},
			"pattern":   {Type: blockflow.TypeString, Default: "*"},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"result": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeJSON, Description: "Operation result"}},
			"keys":   {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeString}}},
		},
		ToolAccess: []string{"redis_get", "redis_set", "redis_delete", "redis_keys"},
		Tools: blockflow.ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"get":    "redis_get",
				"set":    "redis_set",
				"delete": "redis_delete",
				"keys":   "redis_keys",
			},
		},
	}
}
