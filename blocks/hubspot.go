package blocks

import "github.com/blockflowhq/blockflow"

// HubSpot manages CRM contacts through the HubSpot API. The credential
// selector is forwarded to tools as "accessToken", never under its editor
// field name.
func HubSpot() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "hubspot",
		Name:        "HubSpot",
		Description: "List, fetch, and create contacts in HubSpot CRM",
		Category:    CategoryCRM,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "operation",
				Title: "Operation",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "List Contacts", Value: "list_contacts"},
					{Label: "Get Contact", Value: "get_contact"},
					{Label: "Create Contact", Value: "create_contact"},
				},
			},
			{
				ID:      "credential",
				Title:   "HubSpot Account",
				Kind:    blockflow.FieldCredential,
				ArgName: "accessToken",
			},
			{
				ID:        "contactId",
				Title:     "Contact ID",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.Equals{On: "operation", Value: "get_contact"},
			},
			{
				ID:        "properties",
				Title:     "Contact Properties",
				Kind:      blockflow.FieldTable,
				Condition: blockflow.Equals{On: "operation", Value: "create_contact"},
			},
			{
				ID:        "limit",
				Title:     "Page Size",
				Kind:      blockflow.FieldSlider,
				Condition: blockflow.Equals{On: "operation", Value: "list_contacts"},
				Min:       floatPtr(1),
				Max:       floatPtr(100),
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"operation":  {Type: blockflow.TypeString, Required: true},
			"credential": {Type: blockflow.TypeString, Required: true},
			"contactId":  {Type: blockflow.TypeString, Required: true},
			"properties": {Type: blockflow.TypeArray, Required: true},
			"limit":      {Type: blockflow.TypeNumber, Default: float64(20)},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"contacts": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeObject}}},
			"contact":  {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeObject}},
		},
		ToolAccess: []string{"hubspot_list_contacts", "hubspot_get_contact", "hubspot_create_contact"},
		Tools: blockflow.ToolRouter{
			Param: "operation",
			Routes: map[string]string{
				"list_contacts":  "hubspot_list_contacts",
				"get_contact":    "hubspot_get_contact",
				"create_contact": "hubspot_create_contact",
			},
		},
	}
}
