package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImageFile writes a solid-colour PNG and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return writeTestPNG(t, img)
}

// createPatternFile writes a PNG with red, green, blue and white quadrants
func createPatternFile(t *testing.T, size int) string {
	t.Helper()

	quadrants := []color.RGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 255, 255, 255},
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := 0
			if x >= size/2 {
				i++
			}
			if y >= size/2 {
				i += 2
			}
			img.Set(x, y, quadrants[i])
		}
	}
	return writeTestPNG(t, img)
}

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool sends a tools/call request through the request router
func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeToolResult unpacks the JSON text content of a successful tool call
func decodeToolResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content should hold one entry, got %v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	text, _ := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("failed to decode tool result: %v\n%s", err, text)
	}
}

func expectToolError(t *testing.T, resp *MCPResponse) {
	t.Helper()
	if resp.Error == nil {
		t.Fatal("expected an error response")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	decodeToolResult(t, callTool(t, s, "image_load", map[string]interface{}{"path": imgPath}), &info)

	if info.Width != 100 || info.Height != 80 || info.Format != "png" {
		t.Errorf("got %+v, want 100x80 png", info)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	decodeToolResult(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}), &dims)

	if dims.Width != 200 || dims.Height != 150 {
		t.Errorf("got %dx%d, want 200x150", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, color.RGBA{1, 2, 3, 255})

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"non-existent file", "image_load", map[string]interface{}{"path": "/nonexistent/image.png"}},
		{"missing path", "image_load", map[string]interface{}{}},
		{"unknown tool", "nonexistent_tool", map[string]interface{}{}},
		{"out of bounds sample", "image_sample_color", map[string]interface{}{"path": imgPath, "x": 50, "y": 0}},
		{"wrong argument type", "image_sample_color", map[string]interface{}{"path": imgPath, "x": "left"}},
		{"unknown target", "palette_extract", map[string]interface{}{"path": imgPath, "targets": []string{"neon"}}},
		{"unknown resample", "palette_extract", map[string]interface{}{"path": imgPath, "resample": "bicubic"}},
		{"unknown region name", "palette_quantize", map[string]interface{}{"path": imgPath, "region_name": "middle"}},
		{"bad background", "palette_preview", map[string]interface{}{"path": imgPath, "no_filters": true, "background": "#zz"}},
		{
			"region and region name",
			"image_dominant_colors",
			map[string]interface{}{
				"path":        imgPath,
				"region":      map[string]int{"x1": 0, "y1": 0, "x2": 5, "y2": 5},
				"region_name": "center",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectToolError(t, callTool(t, s, tt.tool, tt.args))
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602 invalid params, got %+v", resp.Error)
	}
}

func TestHandleToolsCall_SampleColor(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{255, 128, 64, 255})

	var result struct {
		Hex  string `json:"hex"`
		ARGB string `json:"argb"`
	}
	decodeToolResult(t, callTool(t, s, "image_sample_color", map[string]interface{}{
		"path": imgPath,
		"x":    50,
		"y":    50,
	}), &result)

	if result.Hex != "#FF8040" || result.ARGB != "#FFFF8040" {
		t.Errorf("got %+v, want #FF8040 / #FFFF8040", result)
	}
}

func TestHandleToolsCall_DominantColors(t *testing.T) {
	s := New()
	imgPath := createPatternFile(t, 100)

	var result struct {
		Colors []struct {
			Hex        string  `json:"hex"`
			Percentage float64 `json:"percentage"`
		} `json:"colors"`
	}
	decodeToolResult(t, callTool(t, s, "image_dominant_colors", map[string]interface{}{"path": imgPath}), &result)
	if len(result.Colors) != 4 {
		t.Errorf("expected 4 colours, got %d", len(result.Colors))
	}

	decodeToolResult(t, callTool(t, s, "image_dominant_colors", map[string]interface{}{
		"path":        imgPath,
		"region_name": "bottom-left",
	}), &result)
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#0000FF" {
		t.Errorf("bottom-left should be pure blue, got %+v", result.Colors)
	}
}

type quantizeResult struct {
	Colours []struct {
		Color struct {
			Hex string `json:"hex"`
		} `json:"color"`
		Population int `json:"population"`
	} `json:"colours"`
}

func TestHandleToolsCall_PaletteQuantize(t *testing.T) {
	s := New()
	imgPath := createPatternFile(t, 40)

	var result quantizeResult
	decodeToolResult(t, callTool(t, s, "palette_quantize", map[string]interface{}{"path": imgPath}), &result)
	if len(result.Colours) != 4 {
		t.Fatalf("expected 4 colours, got %d", len(result.Colours))
	}
	for _, c := range result.Colours {
		if c.Population != 400 {
			t.Errorf("%s population: got %d, want 400", c.Color.Hex, c.Population)
		}
	}

	decodeToolResult(t, callTool(t, s, "palette_quantize", map[string]interface{}{
		"path":   imgPath,
		"filter": true,
		"region": map[string]int{"x1": 20, "y1": 20, "x2": 40, "y2": 40},
	}), &result)
	if len(result.Colours) != 0 {
		t.Errorf("the white quadrant should filter to nothing, got %d colours", len(result.Colours))
	}
}

func TestHandleToolsCall_PaletteQuantizeUsesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxColours = 2
	s := NewWithConfig(cfg)

	var result quantizeResult
	decodeToolResult(t, callTool(t, s, "palette_quantize", map[string]interface{}{"path": createPatternFile(t, 40)}), &result)
	if len(result.Colours) != 2 {
		t.Errorf("expected the configured 2 colours, got %d", len(result.Colours))
	}
}

type extractResult struct {
	SampledWidth int `json:"sampled_width"`
	Swatches     []struct {
		Target string `json:"target"`
		Color  struct {
			Hex string `json:"hex"`
		} `json:"color"`
		Score float64 `json:"score"`
	} `json:"swatches"`
	Population []json.RawMessage `json:"population"`
}

func TestHandleToolsCall_PaletteExtract(t *testing.T) {
	s := New()
	imgPath := createPatternFile(t, 100)

	var result extractResult
	decodeToolResult(t, callTool(t, s, "palette_extract", map[string]interface{}{"path": imgPath}), &result)

	if len(result.Population) != 3 {
		t.Errorf("expected 3 colours after filtering white, got %d", len(result.Population))
	}
	if len(result.Swatches) != 3 {
		t.Errorf("expected 3 swatches, got %d", len(result.Swatches))
	}

	decodeToolResult(t, callTool(t, s, "palette_extract", map[string]interface{}{
		"path":        imgPath,
		"targets":     []string{"Vibrant"},
		"resize_area": 2500,
		"resample":    "linear",
	}), &result)

	if result.SampledWidth != 50 {
		t.Errorf("sampled width: got %d, want 50", result.SampledWidth)
	}
	if len(result.Swatches) != 1 || result.Swatches[0].Target != "vibrant" {
		t.Errorf("expected a single vibrant swatch, got %+v", result.Swatches)
	}
}

func TestHandleToolsCall_PaletteTargets(t *testing.T) {
	s := New()

	var result struct {
		Targets []struct {
			Name             string  `json:"name"`
			TargetLightness  float64 `json:"target_lightness"`
			SaturationWeight float64 `json:"saturation_weight"`
			Exclusive        bool    `json:"exclusive"`
		} `json:"targets"`
	}
	decodeToolResult(t, callTool(t, s, "palette_targets", nil), &result)

	want := []string{"light_vibrant", "vibrant", "dark_vibrant", "light_muted", "muted", "dark_muted"}
	if len(result.Targets) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(result.Targets))
	}
	for i, tgt := range result.Targets {
		if tgt.Name != want[i] {
			t.Errorf("target %d: got %s, want %s", i, tgt.Name, want[i])
		}
		if !tgt.Exclusive || tgt.SaturationWeight != 0.24 {
			t.Errorf("%s: unexpected definition %+v", tgt.Name, tgt)
		}
	}
}

func TestHandleToolsCall_PalettePreview(t *testing.T) {
	s := New()
	imgPath := createPatternFile(t, 100)

	var result struct {
		Width       int      `json:"width"`
		Height      int      `json:"height"`
		ImageBase64 string   `json:"image_base64"`
		MimeType    string   `json:"mime_type"`
		Targets     []string `json:"targets"`
		Swatches    []struct {
			Target string `json:"target"`
		} `json:"swatches"`
	}
	decodeToolResult(t, callTool(t, s, "palette_preview", map[string]interface{}{
		"path":      imgPath,
		"chip_size": 20,
		"gap":       4,
	}), &result)

	// Three swatches: 3*20 + 4*4 wide, 20 + 2*4 tall.
	if result.Width != 76 || result.Height != 28 {
		t.Errorf("dimensions: got %dx%d, want 76x28", result.Width, result.Height)
	}
	if result.MimeType != "image/png" || result.ImageBase64 == "" {
		t.Errorf("expected base64 PNG, got mime %q", result.MimeType)
	}
	if len(result.Targets) != 3 || len(result.Swatches) != 3 {
		t.Errorf("expected 3 chips and 3 swatches, got %d and %d", len(result.Targets), len(result.Swatches))
	}
}
