package blocks

import "github.com/blockflowhq/blockflow"

// MongoDB runs document operations against a MongoDB collection.
func MongoDB() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "mongodb",
		Name:        "MongoDB",
		Description: "Find, insert, update, and delete documents in a MongoDB collection",
		Category:    CategoryStorage,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "operation",
				Title: "Operation",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "Find", Value: "find"},
					{Label: "Insert", Value: "insert"},
					{Label: "Update", Value: "update"},
					{Label: "Delete", Value: "delete"},
				},
			},
			{
				ID:          "connectionString",
				Title:       "Connection String",
				Kind:        blockflow.FieldShortInput,
				Placeholder: "mongodb://localhost:27017",
			},
			{ID: "database", Title: "Database", Kind: blockflow.FieldShortInput},
			{ID: "collection", Title: "Collection", Kind: blockflow.FieldShortInput},
			{
				ID:        "filter",
				Title:     "Filter",
				Kind:      blockflow.FieldCode,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"find", "update", "delete"}},
			},
			{
				ID:        "document",
				Title:     "Document",
				Kind:      blockflow.FieldCode,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"insert", "update"}},
			},
			{
				ID:        "limit",
				Title:     "Limit",
				Kind:      blockflow.FieldSlider,
				Condition: blockflow.Equals{On: "operation", Value: "find"},
				Min:       floatPtr(1),
				Max:       floatPtr(1000),
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"operation":        {Type: blockflow.TypeString, Required: true},
			"connectionString": {Type: blockflow.TypeString, Required: true},
			"database":         {Type: blockflow.TypeString, Required: true},
			"collection":       {Type: blockflow.TypeString, Required: true},
			"filter":           {Type: blockflow.TypeJSON},
			"document":         {Type: blockflow.TypeJSON, Required: true},
			"limit":            {Type: blockflow.TypeNumber, Default: float64(100)},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"documents": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeJSON}}},
			"count":     {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeNumber}},
		},
		ToolAccess: []string{"mongodb_find", "mongodb_insert", "mongodb_update", "mongodb_delete"},
		Tools: blockflow.ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"find":   "mongodb_find",
				"insert": "mongodb_insert",
				"update": "mongodb_update",
				"delete": "mongodb_delete",
			},
		},
	}
}
