package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "palette_extract").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.config.Debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if s.config.Debug {
		log.Printf("tool %s args=%s", name, args)
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Palette Operations
	case "palette_quantize":
		return s.handlePaletteQuantize(args)
	case "palette_extract":
		return s.handlePaletteExtract(args)
	case "palette_targets":
		return s.handlePaletteTargets(args)
	case "palette_preview":
		return s.handlePalettePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments. Missing arguments decode as an
// empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// regionArgs is the optional area selector shared by the colour and palette
// tools: either explicit coordinates or a named region, not both.
type regionArgs struct {
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
	RegionName string `json:"region_name,omitempty"`
}

// resolve returns the selected region of img, or nil for the whole image.
func (r regionArgs) resolve(img image.Image) (*imaging.Region, error) {
	switch {
	case r.Region != nil && r.RegionName != "":
		return nil, fmt.Errorf("region and region_name are mutually exclusive")
	case r.Region != nil:
		return &imaging.Region{X1: r.Region.X1, Y1: r.Region.Y1, X2: r.Region.X2, Y2: r.Region.Y2}, nil
	case r.RegionName != "":
		region, err := imaging.NamedRegion(img.Bounds(), r.RegionName)
		if err != nil {
			return nil, err
		}
		return &region, nil
	}
	return nil, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
	regionArgs
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region, err := a.resolve(img)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, region)
}

// === Palette Operation Handlers ===

type paletteQuantizeArgs struct {
	Path       string `json:"path"`
	MaxColours int    `json:"max_colours"`
	Filter     bool   `json:"filter"`
	regionArgs
}

type paletteQuantizeResult struct {
	Colours []imaging.PopulationEntry `json:"colours"`
}

func (s *Server) handlePaletteQuantize(args json.RawMessage) (interface{}, error) {
	var a paletteQuantizeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.MaxColours == 0 {
		a.MaxColours = s.config.MaxColours
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region, err := a.resolve(img)
	if err != nil {
		return nil, err
	}
	colours, err := imaging.QuantizeImage(img, a.MaxColours, region, a.Filter)
	if err != nil {
		return nil, err
	}
	return &paletteQuantizeResult{Colours: colours}, nil
}

type paletteExtractArgs struct {
	Path       string   `json:"path"`
	MaxColours int      `json:"max_colours"`
	ResizeArea int      `json:"resize_area"`
	Targets    []string `json:"targets"`
	Resample   string   `json:"resample"`
	NoFilters  bool     `json:"no_filters"`
	regionArgs
}

// extract loads the image and runs palette extraction with the call's
// options, falling back to the server config.
func (s *Server) extract(a paletteExtractArgs) (*imaging.PaletteResult, error) {
	if a.MaxColours == 0 {
		a.MaxColours = s.config.MaxColours
	}
	if a.ResizeArea == 0 {
		a.ResizeArea = s.config.ResizeArea
	}
	filter, err := imaging.ParseResampleFilter(a.Resample)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region, err := a.resolve(img)
	if err != nil {
		return nil, err
	}

	result, err := imaging.ExtractPalette(img, imaging.PaletteOptions{
		MaxColours: a.MaxColours,
		ResizeArea: a.ResizeArea,
		Targets:    a.Targets,
		Region:     region,
		Resample:   filter,
		NoFilters:  a.NoFilters,
	})
	if err != nil {
		return nil, err
	}
	if s.config.Debug {
		log.Printf("palette %s: %d colours, %d swatches from %dx%d",
			a.Path, len(result.Population), len(result.Swatches), result.SampledWidth, result.SampledHeight)
	}
	return result, nil
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return s.extract(a)
}

type paletteTargetsResult struct {
	Targets []palette.Target `json:"targets"`
}

func (s *Server) handlePaletteTargets(_ json.RawMessage) (interface{}, error) {
	return &paletteTargetsResult{Targets: palette.DefaultTargets()}, nil
}

type palettePreviewArgs struct {
	paletteExtractArgs
	ChipSize   int    `json:"chip_size"`
	Gap        int    `json:"gap"`
	Background string `json:"background"`
}

type palettePreviewResult struct {
	*imaging.PreviewResult
	Swatches []imaging.SwatchResult `json:"swatches"`
}

func (s *Server) handlePalettePreview(args json.RawMessage) (interface{}, error) {
	var a palettePreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.ChipSize == 0 {
		a.ChipSize = imaging.DefaultChipSize
	}

	result, err := s.extract(a.paletteExtractArgs)
	if err != nil {
		return nil, err
	}
	preview, err := imaging.RenderSwatches(result.Swatches, a.ChipSize, a.Gap, a.Background)
	if err != nil {
		return nil, err
	}
	return &palettePreviewResult{PreviewResult: preview, Swatches: result.Swatches}, nil
}
