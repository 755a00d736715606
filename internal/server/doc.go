// Package server implements the MCP (Model Context Protocol) server for colour
// palette extraction.
//
// This package provides a JSON-RPC 2.0 server that exposes palette extraction
// and colour inspection through the MCP protocol, so MCP-compatible clients
// can pull theme colours out of images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_color: Get color at pixel
//   - image_dominant_colors: Most representative colours and their share
//
// Palette Operations:
//   - palette_quantize: Median-cut colour population at full resolution
//   - palette_extract: Vibrant and muted swatches plus the population
//   - palette_targets: The canonical swatch targets
//   - palette_preview: Swatches rendered as a PNG strip
//
// The colour and palette tools accept either an explicit region or a named
// region (top-left, center, left-half, ...) to restrict the analysis.
//
// # Configuration
//
// Config carries the defaults used when a call leaves max_colours or
// resize_area unset. ConfigFromEnv reads them from PALETTE_MCP_MAX_COLOURS
// and PALETTE_MCP_RESIZE_AREA; PALETTE_MCP_LOG_LEVEL=debug logs each request.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.NewWithConfig(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
