package blocks

import "github.com/blockflowhq/blockflow"

// PostgreSQL runs SQL operations against a PostgreSQL database. The "rows"
// output shape depends on whether a custom result mapping is configured.
func PostgreSQL() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "postgresql",
		Name:        "PostgreSQL",
		Description: "Query, insert, update, and delete rows in a PostgreSQL database",
		Category:    CategoryStorage,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "operation",
				Title: "Operation",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "Query", Value: "query"},
					{Label: "Insert", Value: "insert"},
					{Label: "Update", Value: "update"},
					{Label: "Delete", Value: "delete"},
				},
			},
			{ID: "host", Title: "Host", Kind: blockflow.FieldShortInput, Placeholder: "localhost"},
			{ID: "port", Title: "Port", Kind: blockflow.FieldShortInput, Placeholder: "5432"},
			{ID: "database", Title: "Database", Kind: blockflow.FieldShortInput},
			{ID: "username", Title: "Username", Kind: blockflow.FieldShortInput},
			{ID: "password", Title: "Password", Kind: blockflow.FieldShortInput},
			{
				ID:        "query",
				Title:     "SQL",
				Kind:      blockflow.FieldCode,
				Condition: blockflow.Equals{On: "operation", Value: "query"},
			},
			{
				ID:        "table",
				Title:     "Table",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"insert", "update", "delete"}},
			},
			{
				ID:        "data",
				Title:     "Row Data",
				Kind:      blockflow.FieldCode,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"insert", "update"}},
			},
			{
				ID:        "where",
				Title:     "Where Clause",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"update", "delete"}},
			},
			{
				ID:    "resultMapping",
				Title: "Result Mapping",
				Kind:  blockflow.FieldCode,
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"operation":     {Type: blockflow.TypeString, Required: true},
			"host":          {Type: blockflow.TypeString, Required: true},
			"port":          {Type: blockflow.TypeNumber, Default: float64(5432)},
			"database":      {Type: blockflow.TypeString, Required: true},
			"username":      {Type: blockflow.TypeString, Required: true},
			"password":      {Type: blockflow.TypeString, Required: true},
			"query":         {Type: blockflow.TypeString, Required: true},
			"table":         {Type: blockflow.TypeString, Required: true},
			"data":          {Type: blockflow.TypeJSON},
			"where":         {Type: blockflow.TypeString},
			"resultMapping": {Type: blockflow.TypeJSON},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"rows": {DependsOn: &blockflow.DependentOutput{
				SubBlock:   "resultMapping",
				WhenEmpty:  blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeJSON}},
				WhenFilled: blockflow.TypeDescriptor{Type: blockflow.TypeObject, Description: "Rows reshaped by the custom result mapping"},
			}},
			"rowCount": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeNumber}},
		},
		ToolAccess: []string{"postgresql_query", "postgresql_insert", "postgresql_update", "postgresql_delete"},
		Tools: blockflow.ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"query":  "postgresql_query",
				"insert": "postgresql_insert",
				"update": "postgresql_update",
				"delete": "postgresql_delete",
			},
		},
	}
}
