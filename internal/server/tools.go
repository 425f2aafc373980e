package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// cornerSchema describes one corner point argument ({x, y}).
func cornerSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": desc,
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "number"},
			"y": map[string]interface{}{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
}

// enhanceProperties are the shared enhancement arguments for document_enhance
// and document_scan.
func enhanceProperties() map[string]interface{} {
	return map[string]interface{}{
		"preset": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"document", "bw"},
			"description": "Named settings preset. 'document' boosts contrast and sharpness for general pages; 'bw' produces a high-contrast black-and-white scan. Explicit settings below override preset fields.",
		},
		"brightness": map[string]interface{}{
			"type":        "number",
			"description": "Brightness adjustment, -100 to 100. Default 0",
		},
		"contrast": map[string]interface{}{
			"type":        "number",
			"description": "Contrast adjustment, -100 to 100. Default 0",
		},
		"saturation": map[string]interface{}{
			"type":        "number",
			"description": "Saturation adjustment, -100 (grayscale) to 100. Default 0",
		},
		"sharpness": map[string]interface{}{
			"type":        "number",
			"description": "Sharpening strength, 0 to 100. Default 0",
		},
		"threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Black-and-white luma threshold, 0-255. Used with black_and_white. Default 128",
		},
		"denoise": map[string]interface{}{
			"type":        "boolean",
			"description": "Apply median denoise before other adjustments. Default false",
		},
		"grayscale": map[string]interface{}{
			"type":        "boolean",
			"description": "Convert to grayscale. Default false",
		},
		"black_and_white": map[string]interface{}{
			"type":        "boolean",
			"description": "Threshold to pure black and white. Default false",
		},
		"auto_enhance": map[string]interface{}{
			"type":        "boolean",
			"description": "Derive extra contrast/brightness from the image histogram. Default false",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Caches the decoded image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
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
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_rotate",
			Description: "Rotate an image by an arbitrary angle (counter-clockwise, degrees) and return it as base64-encoded PNG. The canvas grows to fit the rotated image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Rotation angle in degrees, counter-clockwise. 90, 180, 270 are lossless",
					},
				},
				"required": []string{"path", "angle"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate as hex, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Document Pipeline
		{
			Name:        "image_edge_detect",
			Description: "Run Canny edge detection and return the edge map as base64-encoded PNG. Strong edges are white, weak edges gray, everything else black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold_low": map[string]interface{}{
						"type":        "number",
						"description": "Weak edge gradient threshold. Default 50",
						"default":     50,
					},
					"threshold_high": map[string]interface{}{
						"type":        "number",
						"description": "Strong edge gradient threshold. Default 150",
						"default":     150,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_detect",
			Description: "Detect the document boundary in a photo. Returns the four corner coordinates (in source pixels) and a confidence score; optionally also the edge map and an overlay of the detected quad drawn on the photo.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"include_edge_map": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the Canny edge map as base64 PNG. Default false",
					},
					"include_overlay": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the photo with the detected quad drawn on it as base64 PNG. Default false",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_crop",
			Description: "Perspective-crop a document out of a photo onto a flat rectangular page. Corners may be given explicitly or detected automatically.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"top_left":     cornerSchema("Top-left corner in source pixels. Omit all four corners for auto-detection"),
					"top_right":    cornerSchema("Top-right corner in source pixels"),
					"bottom_left":  cornerSchema("Bottom-left corner in source pixels"),
					"bottom_right": cornerSchema("Bottom-right corner in source pixels"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels. Default: longest horizontal edge of the quad",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels. Default: longest vertical edge of the quad",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_enhance",
			Description: "Apply scan-style enhancement (brightness, contrast, saturation, sharpening, denoise, grayscale or black-and-white) to an image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				}, enhanceProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_scan",
			Description: "Full scan pipeline: detect the document, perspective-crop it flat and enhance it. Falls back to enhancing the whole photo when no document is found. Returns the scanned page as base64-encoded PNG plus detection confidence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				}, enhanceProperties()),
				"required": []string{"path"},
			},
		},
		{
			Name:        "document_ocr",
			Description: "Extract text from a document photo using Tesseract. By default the document is detected, cropped flat and enhanced before OCR; set raw to true to OCR the file as-is.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default 'eng'",
						"default":     "eng",
					},
					"raw": map[string]interface{}{
						"type":        "boolean",
						"description": "Skip detection and enhancement; OCR the original file. Default false",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// mergeProperties combines property maps into one schema properties object.
func mergeProperties(maps ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// handleToolsList responds to the tools/list request
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
