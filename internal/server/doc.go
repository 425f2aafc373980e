// Package server implements the MCP (Model Context Protocol) server for the
// document scanning tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the scan pipeline
// through the MCP protocol, enabling AI assistants and other MCP-compatible
// clients to turn photos of documents into flat, readable scans.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//   - Logs: structured zerolog output on stderr, never stdout
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
// Region Operations:
//   - image_crop: Extract rectangular region
//   - image_rotate: Rotate by an arbitrary angle
//
// Color Operations:
//   - image_sample_color: Get color at pixel
//
// Document Pipeline:
//   - image_edge_detect: Canny edge map
//   - document_detect: Locate the document boundary
//   - document_crop: Perspective-crop to a flat page
//   - document_enhance: Scan-style enhancement
//   - document_scan: Detect, crop and enhance in one call
//   - document_ocr: Extract text from the scanned page
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A failed detection is not a tool error: document_scan falls back to the
// whole frame and document_detect reports document_found false. Only
// document_crop without explicit corners treats it as an error, since there
// is nothing sensible to crop.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("server exited")
//	}
package server
