package blocks

import "github.com/blockflowhq/blockflow"

// Jira reads and writes issues in a Jira project.
func Jira() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "jira",
		Name:        "Jira",
		Description: "Read, update, and create Jira issues",
		Category:    CategoryProjects,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "operation",
				Title: "Operation",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "Read Issue", Value: "read"},
					{Label: "Update Issue", Value: "update"},
					{Label: "Create Issue", Value: "write"},
				},
			},
			{
				ID:      "credential",
				Title:   "Jira Account",
				Kind:    blockflow.FieldCredential,
				ArgName: "accessToken",
			},
			{
				ID:          "domain",
				Title:       "Domain",
				Kind:        blockflow.FieldShortInput,
				Placeholder: "yourcompany.atlassian.net",
			},
			{
				ID:        "projectId",
				Title:     "Project ID",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.Equals{On: "operation", Value: "write"},
			},
			{
				ID:        "issueKey",
				Title:     "Issue Key",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"read", "update"}},
			},
			{
				ID:        "summary",
				Title:     "Summary",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"update", "write"}},
			},
			{
				ID:        "description",
				Title:     "Description",
				Kind:      blockflow.FieldLongInput,
				Condition: blockflow.OneOf{On: "operation", Values: []any{"update", "write"}},
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"operation":   {Type: blockflow.TypeString, Required: true},
			"credential":  {Type: blockflow.TypeString, Required: true},
			"domain":      {Type: blockflow.TypeString, Required: true},
			"projectId":   {Type: blockflow.TypeString, Required: true},
			"issueKey":    {Type: blockflow.TypeString, Required: true},
			"summary":     {Type: blockflow.TypeString, Required: true},
			"description": {Type: blockflow.TypeString},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"issue":    {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeObject, Description: "The fetched or written issue"}},
			"issueKey": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeString}},
		},
		ToolAccess: []string{"jira_read", "jira_update", "jira_write"},
		Tools: blockflow.ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"read":   "jira_read",
				"update": "jira_update",
				"write":  "jira_write",
			},
		},
	}
}
