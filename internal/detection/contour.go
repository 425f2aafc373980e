package detection

import (
	"image"
	"math"
)

// minContourSamples is the smallest number of sampled edge pixels for which
// contour-based detection reports a result at all.
const minContourSamples = 100

// findDocumentContour is the fallback used when Hough line detection is
// inconclusive.
//
// Edge pixels with value above 100 (weak edges included) are sampled on a
// stride-3 grid. The image is split into four corner quadrants by thresholds
// at 40%/60% of width and height, and each quadrant contributes the point
// most extreme by the same x+y / x-y criteria used for Hough corner
// selection. If any quadrant is empty, the result degrades to the bounding
// box of all sampled points, padded by 10% of the smaller image dimension.
//
// Returns nil when fewer than minContourSamples edge pixels are found.
// The quadrant thresholds assume the document roughly fills the frame;
// documents tucked into a corner of the capture are a known limitation.
func findDocumentContour(edge *image.NRGBA) *Quad {
	bounds := edge.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	points := make([]Point, 0, (width/3)*(height/3)/4)
	for y := 0; y < height; y += 3 {
		for x := 0; x < width; x += 3 {
			if edge.Pix[y*edge.Stride+x*4] > 100 {
				points = append(points, Point{X: float64(x), Y: float64(y)})
			}
		}
	}
	if len(points) < minContourSamples {
		return nil
	}

	leftMax := 0.4 * float64(width)
	rightMin := 0.6 * float64(width)
	topMax := 0.4 * float64(height)
	bottomMin := 0.6 * float64(height)

	var tl, tr, bl, br []Point
	for _, p := range points {
		switch {
		case p.X < leftMax && p.Y < topMax:
			tl = append(tl, p)
		case p.X > rightMin && p.Y < topMax:
			tr = append(tr, p)
		case p.X < leftMax && p.Y > bottomMin:
			bl = append(bl, p)
		case p.X > rightMin && p.Y > bottomMin:
			br = append(br, p)
		}
	}
	if len(tl) == 0 || len(tr) == 0 || len(bl) == 0 || len(br) == 0 {
		quad := boundingBoxQuad(points, width, height)
		return &quad
	}

	return &Quad{
		TopLeft:     extremePoint(tl, func(p Point) float64 { return -(p.X + p.Y) }),
		TopRight:    extremePoint(tr, func(p Point) float64 { return p.X - p.Y }),
		BottomLeft:  extremePoint(bl, func(p Point) float64 { return p.Y - p.X }),
		BottomRight: extremePoint(br, func(p Point) float64 { return p.X + p.Y }),
	}
}

// extremePoint returns the point maximizing the given score.
func extremePoint(points []Point, score func(Point) float64) Point {
	best := points[0]
	bestScore := score(best)
	for _, p := range points[1:] {
		if s := score(p); s > bestScore {
			best = p
			bestScore = s
		}
	}
	return best
}

// boundingBoxQuad builds an axis-aligned quad from the bounding box of the
// sampled edge points, padded by 10% of the smaller image dimension and
// clamped to the frame.
func boundingBoxQuad(points []Point, width, height int) Quad {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	margin := 0.1 * float64(min(width, height))
	minX = math.Max(0, minX-margin)
	minY = math.Max(0, minY-margin)
	maxX = math.Min(float64(width-1), maxX+margin)
	maxY = math.Min(float64(height-1), maxY+margin)

	return Quad{
		TopLeft:     Point{X: minX, Y: minY},
		TopRight:    Point{X: maxX, Y: minY},
		BottomLeft:  Point{X: minX, Y: maxY},
		BottomRight: Point{X: maxX, Y: maxY},
	}
}
