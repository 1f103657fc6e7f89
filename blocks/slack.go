package blocks

import "github.com/blockflowhq/blockflow"

// Slack posts messages to a Slack channel. Single-tool block: no operation
// discriminant, the router always resolves to the one declared tool.
func Slack() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "slack",
		Name:        "Slack",
		Description: "Send a message to a Slack channel",
		Category:    CategoryCommunication,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:      "credential",
				Title:   "Slack Workspace",
				Kind:    blockflow.FieldCredential,
				ArgName: "accessToken",
			},
			{
				ID:          "channel",
				Title:       "Channel",
				Kind:        blockflow.FieldShortInput,
				Placeholder: "#general",
			},
			{
				ID:    "text",
				Title: "Message",
				Kind:  blockflow.FieldLongInput,
			},
			{
				ID:    "threadReply",
				Title: "Reply in Thread",
				Kind:  blockflow.FieldSwitch,
			},
			{
				ID:        "threadTs",
				Title:     "Thread Timestamp",
				Kind:      blockflow.FieldShortInput,
				Condition: blockflow.Equals{On: "threadReply", Value: true},
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"credential":  {Type: blockflow.TypeString, Required: true},
			"channel":     {Type: blockflow.TypeString, Required: true},
			"text":        {Type: blockflow.TypeString, Required: true},
			"threadReply": {Type: blockflow.TypeBoolean, Default: false},
			"threadTs":    {Type: blockflow.TypeString, Required: true},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"ts":      {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeString, Description: "Timestamp of the posted message"}},
			"channel": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeString}},
		},
		ToolAccess: []string{"slack_message_send"},
		Tools:      blockflow.ToolRouter{},
	}
}
