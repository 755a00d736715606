package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var regionProperty = map[string]interface{}{
	"type":        "object",
	"description": "Optional rectangle to analyse; (x1,y1) inclusive, (x2,y2) exclusive",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

var regionNameProperty = map[string]interface{}{
	"type":        "string",
	"description": "Optional named region instead of coordinates",
	"enum": []string{
		"full", "top-left", "top-right", "bottom-left", "bottom-right",
		"top-half", "bottom-half", "left-half", "right-half", "center",
	},
}

// extractProperties are the inputs shared by palette_extract and
// palette_preview.
func extractProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty,
		"max_colours": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum number of quantized colours. Default 16",
			"default":     16,
		},
		"resize_area": map[string]interface{}{
			"type":        "integer",
			"description": "Shrink the image to about this many pixels before quantizing. Default 12544 (112x112); negative disables",
			"default":     12544,
		},
		"targets": map[string]interface{}{
			"type":        "array",
			"description": "Targets to select, in order. Default: all six",
			"items": map[string]interface{}{
				"type": "string",
				"enum": []string{"light_vibrant", "vibrant", "dark_vibrant", "light_muted", "muted", "dark_muted"},
			},
		},
		"resample": map[string]interface{}{
			"type":        "string",
			"description": "Downscaling filter. nearest never blends colours",
			"enum":        []string{"nearest", "linear", "lanczos"},
			"default":     "nearest",
		},
		"no_filters": map[string]interface{}{
			"type":        "boolean",
			"description": "Keep near-black, near-white and skin-tone colours",
			"default":     false,
		},
		"region":      regionProperty,
		"region_name": regionNameProperty,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	previewProps := extractProperties()
	previewProps["chip_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Edge length of each swatch chip in pixels. Default 64",
		"default":     64,
	}
	previewProps["gap"] = map[string]interface{}{
		"type":        "integer",
		"description": "Spacing around chips in pixels. Default 0",
		"default":     0,
	}
	previewProps["background"] = map[string]interface{}{
		"type":        "string",
		"description": "Gap colour as #RRGGBB or #AARRGGBB. Default transparent",
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, bit depth and file size. The decoded image is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact colour of one pixel as hex, ARGB, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Reduce an image or region to its most representative colours by median cut and report each colour's share of the pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colours to return. Default 5",
						"default":     5,
					},
					"region":      regionProperty,
					"region_name": regionNameProperty,
				},
				"required": []string{"path"},
			},
		},

		// Palette Operations
		{
			Name:        "palette_quantize",
			Description: "Quantize an image at full resolution with median cut and return the colour population, most common first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"max_colours": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colours. Default 16",
						"default":     16,
					},
					"filter": map[string]interface{}{
						"type":        "boolean",
						"description": "Drop near-black, near-white and skin-tone colours first",
						"default":     false,
					},
					"region":      regionProperty,
					"region_name": regionNameProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "palette_extract",
			Description: "Extract a theme palette: vibrant and muted swatches in light, normal and dark variants, plus the quantized colour population.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "palette_targets",
			Description: "List the canonical swatch targets with their saturation and lightness ranges and scoring weights.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_preview",
			Description: "Extract a palette and render the selected swatches as a strip of colour chips, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": previewProps,
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
