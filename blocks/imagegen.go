package blocks

import "github.com/blockflowhq/blockflow"

// ImageGenerator produces images from a text prompt. The advanced options
// field switches the metadata output between a minimal and a full shape.
func ImageGenerator() *blockflow.BlockDefinition {
	return &blockflow.BlockDefinition{
		Type:        "image_generator",
		Name:        "Image Generator",
		Description: "Generate an image from a text prompt",
		Category:    CategoryAI,
		SubBlocks: []blockflow.SubBlock{
			{
				ID:    "model",
				Title: "Model",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "DALL-E 3", Value: "dall-e-3"},
					{Label: "GPT Image", Value: "gpt-image-1"},
				},
			},
			{
				ID:      "apiKey",
				Title:   "API Key",
				Kind:    blockflow.FieldCredential,
				ArgName: "apiKey",
			},
			{ID: "prompt", Title: "Prompt", Kind: blockflow.FieldLongInput},
			{
				ID:    "size",
				Title: "Size",
				Kind:  blockflow.FieldDropdown,
				Options: []blockflow.Option{
					{Label: "1024x1024", Value: "1024x1024"},
					{Label: "1792x1024", Value: "1792x1024"},
					{Label: "1024x1792", Value: "1024x1792"},
				},
			},
			{
				ID:        "quality",
				Title:     "Quality",
				Kind:      blockflow.FieldDropdown,
				Condition: blockflow.Equals{On: "model", Value: "dall-e-3"},
				Options: []blockflow.Option{
					{Label: "Standard", Value: "standard"},
					{Label: "HD", Value: "hd"},
				},
			},
			{
				ID:    "count",
				Title: "Image Count",
				Kind:  blockflow.FieldSlider,
				Min:   floatPtr(1),
				Max:   floatPtr(4),
			},
			{
				ID:    "advancedOptions",
				Title: "Advanced Options",
				Kind:  blockflow.FieldCode,
			},
		},
		Inputs: map[string]blockflow.InputSpec{
			"model":           {Type: blockflow.TypeString, Default: "dall-e-3"},
			"apiKey":          {Type: blockflow.TypeString, Required: true},
			"prompt":          {Type: blockflow.TypeString, Required: true},
			"size":            {Type: blockflow.TypeString, Default: "1024x1024"},
			"quality":         {Type: blockflow.TypeString, Default: "standard"},
			"count":           {Type: blockflow.TypeNumber, Default: float64(1)},
			"advancedOptions": {Type: blockflow.TypeJSON},
		},
		Outputs: map[string]blockflow.OutputSpec{
			"images": {Static: &blockflow.TypeDescriptor{Type: blockflow.TypeArray, Items: &blockflow.TypeDescriptor{Type: blockflow.TypeString, Description: "Image URL"}}},
			"metadata": {DependsOn: &blockflow.DependentOutput{
				SubBlock:   "advancedOptions",
				WhenEmpty:  blockflow.TypeDescriptor{Type: blockflow.TypeObject, Description: "Model and revised prompt"},
				WhenFilled: blockflow.TypeDescriptor{Type: blockflow.TypeJSON, Description: "Full provider response"},
			}},
		},
		ToolAccess: []string{"image_generate"},
		Tools:      blockflow.ToolRouter{Default: "image_generate"},
	}
}
