package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/papertrail-labs/docscan-mcp/internal/detection"
	"github.com/papertrail-labs/docscan-mcp/internal/imaging"
	"github.com/papertrail-labs/docscan-mcp/internal/ocr"
	"github.com/papertrail-labs/docscan-mcp/internal/rectify"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "document_scan").
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
		s.log.Warn().Str("tool", params.Name).Err(err).Msg("tool call failed")
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/detection/rectify/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_rotate":
		return s.handleImageRotate(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Document Pipeline
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "document_detect":
		return s.handleDocumentDetect(args)
	case "document_crop":
		return s.handleDocumentCrop(args)
	case "document_enhance":
		return s.handleDocumentEnhance(args)
	case "document_scan":
		return s.handleDocumentScan(args)
	case "document_ocr":
		return s.handleDocumentOCR(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type imageRotateArgs struct {
	Path  string  `json:"path"`
	Angle float64 `json:"angle"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.Rotate(img, a.Angle))
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Document Pipeline Handlers ===

type imageEdgeDetectArgs struct {
	Path          string   `json:"path"`
	ThresholdLow  *float64 `json:"threshold_low"`
	ThresholdHigh *float64 `json:"threshold_high"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	low := detection.DefaultLowThreshold
	high := detection.DefaultHighThreshold
	if a.ThresholdLow != nil {
		low = *a.ThresholdLow
	}
	if a.ThresholdHigh != nil {
		high = *a.ThresholdHigh
	}
	if low > high {
		return nil, fmt.Errorf("threshold_low (%g) must not exceed threshold_high (%g)", low, high)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	edges := detection.CannyEdges(imaging.ToNRGBA(img), low, high)
	return imaging.EncodePNG(edges)
}

type documentDetectArgs struct {
	Path           string `json:"path"`
	IncludeEdgeMap bool   `json:"include_edge_map"`
	IncludeOverlay bool   `json:"include_overlay"`
}

// documentDetectResult is the document_detect tool response.
type documentDetectResult struct {
	DocumentFound bool                 `json:"document_found"`
	Corners       *detection.Quad      `json:"corners,omitempty"`
	Confidence    float64              `json:"confidence"`
	Width         int                  `json:"width"`
	Height        int                  `json:"height"`
	EdgeMap       *imaging.ImageResult `json:"edge_map,omitempty"`
	Overlay       *imaging.ImageResult `json:"overlay,omitempty"`
}

func (s *Server) handleDocumentDetect(args json.RawMessage) (interface{}, error) {
	var a documentDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	det := detection.FindDocument(img)
	bounds := img.Bounds()
	res := &documentDetectResult{
		DocumentFound: det.Corners != nil,
		Corners:       det.Corners,
		Confidence:    det.Confidence,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
	}

	if a.IncludeEdgeMap && det.EdgeMap != nil {
		encoded, err := imaging.EncodePNG(det.EdgeMap)
		if err != nil {
			return nil, err
		}
		res.EdgeMap = encoded
	}
	if a.IncludeOverlay && det.Corners != nil {
		overlay := detection.DrawOverlay(img, *det.Corners, "#00FF00")
		encoded, err := imaging.EncodePNG(overlay)
		if err != nil {
			return nil, err
		}
		res.Overlay = encoded
	}
	return res, nil
}

type pointArg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type documentCropArgs struct {
	Path        string    `json:"path"`
	TopLeft     *pointArg `json:"top_left"`
	TopRight    *pointArg `json:"top_right"`
	BottomLeft  *pointArg `json:"bottom_left"`
	BottomRight *pointArg `json:"bottom_right"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
}

// quad assembles the explicit corner arguments into a Quad. All four corners
// must be present or all absent; a partial set is an error.
func (a *documentCropArgs) quad() (*detection.Quad, error) {
	given := 0
	for _, p := range []*pointArg{a.TopLeft, a.TopRight, a.BottomLeft, a.BottomRight} {
		if p != nil {
			given++
		}
	}
	switch given {
	case 0:
		return nil, nil
	case 4:
		return &detection.Quad{
			TopLeft:     detection.Point{X: a.TopLeft.X, Y: a.TopLeft.Y},
			TopRight:    detection.Point{X: a.TopRight.X, Y: a.TopRight.Y},
			BottomLeft:  detection.Point{X: a.BottomLeft.X, Y: a.BottomLeft.Y},
			BottomRight: detection.Point{X: a.BottomRight.X, Y: a.BottomRight.Y},
		}, nil
	default:
		return nil, fmt.Errorf("got %d corners, need all four or none", given)
	}
}

func (s *Server) handleDocumentCrop(args json.RawMessage) (interface{}, error) {
	var a documentCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	quad, err := a.quad()
	if err != nil {
		return nil, err
	}
	if quad == nil {
		det := detection.FindDocument(img)
		if det.Corners == nil {
			return nil, fmt.Errorf("no document detected in %s; pass explicit corners", a.Path)
		}
		quad = det.Corners
	}

	src := imaging.ToNRGBA(img)
	var page *image.NRGBA
	if a.Width > 0 && a.Height > 0 {
		page = rectify.PerspectiveCropSize(src, *quad, a.Width, a.Height)
	} else {
		page = rectify.PerspectiveCrop(src, *quad)
	}
	return imaging.EncodePNG(page)
}

type enhanceArgs struct {
	Path          string   `json:"path"`
	Preset        string   `json:"preset"`
	Brightness    *float64 `json:"brightness"`
	Contrast      *float64 `json:"contrast"`
	Saturation    *float64 `json:"saturation"`
	Sharpness     *float64 `json:"sharpness"`
	Threshold     *int     `json:"threshold"`
	Denoise       *bool    `json:"denoise"`
	Grayscale     *bool    `json:"grayscale"`
	BlackAndWhite *bool    `json:"black_and_white"`
	AutoEnhance   *bool    `json:"auto_enhance"`
}

// settings resolves the preset and explicit overrides into EnhanceSettings.
// Explicit fields always win over the preset.
func (a *enhanceArgs) settings(defaultPreset string) (imaging.EnhanceSettings, error) {
	preset := a.Preset
	if preset == "" {
		preset = defaultPreset
	}

	var s imaging.EnhanceSettings
	switch preset {
	case "":
		// Start from neutral settings.
	case "document":
		s = imaging.DocumentPreset()
	case "bw":
		s = imaging.BlackAndWhitePreset()
	default:
		return s, fmt.Errorf("unknown preset: %q (want \"document\" or \"bw\")", preset)
	}

	// A zero threshold turns nearly every pixel white, so black_and_white
	// without an explicit cutoff falls back to mid-gray.
	if a.BlackAndWhite != nil && *a.BlackAndWhite && a.Threshold == nil && s.Threshold == 0 {
		s.Threshold = 128
	}

	if a.Brightness != nil {
		s.Brightness = *a.Brightness
	}
	if a.Contrast != nil {
		s.Contrast = *a.Contrast
	}
	if a.Saturation != nil {
		s.Saturation = *a.Saturation
	}
	if a.Sharpness != nil {
		s.Sharpness = *a.Sharpness
	}
	if a.Threshold != nil {
		s.Threshold = *a.Threshold
	}
	if a.Denoise != nil {
		s.Denoise = *a.Denoise
	}
	if a.Grayscale != nil {
		s.Grayscale = *a.Grayscale
	}
	if a.BlackAndWhite != nil {
		s.BlackAndWhite = *a.BlackAndWhite
	}
	if a.AutoEnhance != nil {
		s.AutoEnhance = *a.AutoEnhance
	}
	return s, nil
}

func (s *Server) handleDocumentEnhance(args json.RawMessage) (interface{}, error) {
	var a enhanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	settings, err := a.settings("")
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	enhanced := imaging.Enhance(imaging.ToNRGBA(img), settings)
	return imaging.EncodePNG(enhanced)
}

// documentScanResult is the document_scan tool response. The image fields
// describe the final enhanced page.
type documentScanResult struct {
	imaging.ImageResult
	DocumentFound bool            `json:"document_found"`
	Confidence    float64         `json:"confidence"`
	Corners       *detection.Quad `json:"corners,omitempty"`
}

func (s *Server) handleDocumentScan(args json.RawMessage) (interface{}, error) {
	var a enhanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// Scanning defaults to the document preset; an explicit preset or
	// individual settings still override it.
	settings, err := a.settings("document")
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	src := imaging.ToNRGBA(img)
	det := detection.FindDocument(img)

	page := src
	if det.Corners != nil {
		page = rectify.PerspectiveCrop(src, *det.Corners)
	}
	enhanced := imaging.Enhance(page, settings)
	encoded, err := imaging.EncodePNG(enhanced)
	if err != nil {
		return nil, err
	}

	return &documentScanResult{
		ImageResult:   *encoded,
		DocumentFound: det.Corners != nil,
		Confidence:    det.Confidence,
		Corners:       det.Corners,
	}, nil
}

type documentOCRArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Raw      bool   `json:"raw"`
}

// documentOCRResult wraps the OCR output with the detection outcome for the
// pipeline variant. For raw OCR, DocumentFound is false and Confidence 0.
type documentOCRResult struct {
	*ocr.Result
	DocumentFound bool    `json:"document_found"`
	Confidence    float64 `json:"confidence"`
}

func (s *Server) handleDocumentOCR(args json.RawMessage) (interface{}, error) {
	var a documentOCRArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	if a.Raw {
		res, err := ocr.ExtractText(a.Path, a.Language)
		if err != nil {
			return nil, err
		}
		return &documentOCRResult{Result: res}, nil
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	src := imaging.ToNRGBA(img)
	det := detection.FindDocument(img)

	page := src
	if det.Corners != nil {
		page = rectify.PerspectiveCrop(src, *det.Corners)
	}
	enhanced := imaging.Enhance(page, imaging.DocumentPreset())

	res, err := ocr.ExtractImage(enhanced, a.Language)
	if err != nil {
		return nil, err
	}
	return &documentOCRResult{
		Result:        res,
		DocumentFound: det.Corners != nil,
		Confidence:    det.Confidence,
	}, nil
}
