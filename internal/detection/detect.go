package detection

import (
	"image"

	disintegration "github.com/disintegration/imaging"

	"github.com/papertrail-labs/docscan-mcp/internal/imaging"
)

// Default Canny thresholds for document captures. Low enough to pick up
// paper edges against cluttered backgrounds without drowning the Hough
// accumulator in texture noise.
const (
	DefaultLowThreshold  float64 = 50
	DefaultHighThreshold float64 = 150
)

// maxDetectionSide caps the working resolution of detection. Captures larger
// than this on their longest side are downscaled before edge extraction and
// the resulting corners scaled back up, which keeps the Hough accumulator
// small without visibly moving the detected boundary.
const maxDetectionSide = 800

// FindDocument locates the document boundary in a capture.
//
// The image is downscaled to at most maxDetectionSide on its longest side,
// edge-detected, and searched for a quadrilateral: first with Hough line
// detection, then with the contour fallback when lines are inconclusive.
// Corner coordinates in the result are scaled back to the source image
// dimensions; the edge map stays at working resolution for diagnostics.
//
// A failed detection is not an error: the result carries nil Corners and
// confidence 0, and the caller decides whether to present the original image
// for manual adjustment.
func FindDocument(src image.Image) *Result {
	working := imaging.ToNRGBA(src)
	srcW := working.Bounds().Dx()
	srcH := working.Bounds().Dy()

	if srcW > maxDetectionSide || srcH > maxDetectionSide {
		working = disintegration.Fit(working, maxDetectionSide, maxDetectionSide, disintegration.Lanczos)
	}
	workW := working.Bounds().Dx()
	workH := working.Bounds().Dy()

	edge := CannyEdges(working, DefaultLowThreshold, DefaultHighThreshold)

	corners := findDocumentCorners(edge)
	if corners == nil {
		corners = findDocumentContour(edge)
	}
	if corners == nil {
		return &Result{EdgeMap: edge}
	}

	confidence := CalculateConfidence(corners, workW, workH)

	scaled := corners.scale(float64(srcW)/float64(workW), float64(srcH)/float64(workH))
	return &Result{
		Corners:    &scaled,
		Confidence: confidence,
		EdgeMap:    edge,
	}
}
