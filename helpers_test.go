package blockflow

// kvBlock is a small key-value store block used across the engine tests.
// It mirrors the shape of real database blocks: an operation dropdown
// routing to one tool per operation, conditional fields, a JSON value, and
// a clamped slider.
func kvBlock() *BlockDefinition {
	return &BlockDefinition{
		Type:     "kvstore",
		Name:     "KV Store",
		Category: "storage",
		SubBlocks: []SubBlock{
			{ID: "operation", Kind: FieldDropdown, Options: []Option{
				{Label: "Get", Value: "get"},
				{Label: "Set", Value: "set"},
				{Label: "List", Value: "list"},
			}},
			{ID: "credential", Kind: FieldCredential, ArgName: "accessToken"},
			{ID: "key", Kind: FieldShortInput, Condition: OneOf{On: "operation", Values: []any{"get", "set"}}},
			{ID: "value", Kind: FieldCode, Condition: Equals{On: "operation", Value: "set"}},
			{ID: "limit", Kind: FieldSlider, Min: floatPtr(1), Max: floatPtr(100),
				Condition: Equals{On: "operation", Value: "list"}},
			{ID: "notes", Kind: FieldLongInput, Internal: true},
			{ID: "mapping", Kind: FieldCode},
		},
		Inputs: map[string]InputSpec{
			"operation":  {Type: TypeString, Required: true},
			"credential": {Type: TypeString, Required: true},
			"key":        {Type: TypeString, Required: true},
			"value":      {Type: TypeJSON},
			"limit":      {Type: TypeNumber, Default: float64(10)},
			"notes":      {Type: TypeString},
			"mapping":    {Type: TypeJSON},
		},
		Outputs: map[string]OutputSpec{
			"result": {Static: &TypeDescriptor{Type: TypeJSON}},
			"data": {DependsOn: &DependentOutput{
				SubBlock:   "mapping",
				WhenEmpty:  TypeDescriptor{Type: TypeArray, Items: &TypeDescriptor{Type: TypeJSON}},
				WhenFilled: TypeDescriptor{Type: TypeObject},
			}},
		},
		ToolAccess: []string{"kv_get", "kv_set", "kv_list"},
		Tools: ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"get":  "kv_get",
				"set":  "kv_set",
				"list": "kv_list",
			},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
