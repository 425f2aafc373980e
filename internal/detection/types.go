package detection

import (
	"image"
	"math"
)

// Point is a 2D coordinate in image pixel space. Coordinates are
// floating-point because line intersections and perspective mapping need
// sub-pixel precision.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Quad is a detected document boundary: four corners in the source image.
//
// The corners should form a simple, roughly convex quadrilateral, but no
// invariant is enforced by construction; validity is expressed only through
// the confidence score attached to a detection result.
type Quad struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	BottomLeft  Point `json:"bottom_left"`
	BottomRight Point `json:"bottom_right"`
}

// scale returns a copy of the quad with both coordinates of every corner
// multiplied by the given factors.
func (q Quad) scale(sx, sy float64) Quad {
	s := func(p Point) Point { return Point{X: p.X * sx, Y: p.Y * sy} }
	return Quad{
		TopLeft:     s(q.TopLeft),
		TopRight:    s(q.TopRight),
		BottomLeft:  s(q.BottomLeft),
		BottomRight: s(q.BottomRight),
	}
}

// polarLine is a line in (rho, theta) form: theta is the accumulator angle
// index in degrees [0, 180), rho the perpendicular distance from the origin
// in pixels. votes is the Hough accumulator count that produced the line.
type polarLine struct {
	rho   float64
	theta int
	votes int
}

// Result is the outcome of one document detection call.
type Result struct {
	// Corners is the detected document boundary in source image
	// coordinates, or nil when no plausible quadrilateral was found.
	Corners *Quad

	// Confidence is 0 when Corners is nil, otherwise in (0, 0.95].
	Confidence float64

	// EdgeMap is the intermediate edge image the detection ran on, in the
	// downscaled working resolution. Kept for diagnostics.
	EdgeMap *image.NRGBA
}
