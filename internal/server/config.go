package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel   = "PALETTE_MCP_LOG_LEVEL"
	EnvMaxColours = "PALETTE_MCP_MAX_COLOURS"
	EnvResizeArea = "PALETTE_MCP_RESIZE_AREA"
)

// Config holds server-wide defaults. Tool arguments override them per call.
type Config struct {
	// Debug logs every request to stderr.
	Debug bool

	// MaxColours is the quantizer limit when a call gives none.
	MaxColours int

	// ResizeArea is the pixel area images are shrunk to before
	// quantization when a call gives none. Negative disables resizing.
	ResizeArea int
}

// DefaultConfig returns the palette package defaults with debug logging off.
func DefaultConfig() Config {
	return Config{
		MaxColours: palette.DefaultMaxColours,
		ResizeArea: palette.DefaultResizeArea,
	}
}

// ConfigFromEnv builds a Config from environment variables, looked up with
// getenv (normally os.Getenv). Unset variables keep their defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Debug = strings.EqualFold(getenv(EnvLogLevel), "debug")

	if v := getenv(EnvMaxColours); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s must be a positive integer, got %q", EnvMaxColours, v)
		}
		cfg.MaxColours = n
	}

	if v := getenv(EnvResizeArea); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n == 0 {
			return cfg, fmt.Errorf("%s must be a non-zero integer, got %q", EnvResizeArea, v)
		}
		cfg.ResizeArea = n
	}

	return cfg, nil
}
