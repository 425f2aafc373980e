package detection

import (
	"image"
	"math"
	"sort"
)

// findDocumentCorners attempts Hough-based corner detection on an edge map.
//
// Candidate lines are classified by orientation, the strongest four of each
// set are intersected pairwise, and the best axis-consistent quadrilateral is
// selected from the intersection cloud. Returns nil when line detection is
// inconclusive (fewer than two lines in either orientation set, or fewer
// than four plausible intersections); the caller should fall back to
// findDocumentContour.
func findDocumentCorners(edge *image.NRGBA) *Quad {
	bounds := edge.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())

	horizontal, vertical := classifyLines(houghLines(edge))
	if len(horizontal) < 2 || len(vertical) < 2 {
		return nil
	}
	if len(horizontal) > 4 {
		horizontal = horizontal[:4]
	}
	if len(vertical) > 4 {
		vertical = vertical[:4]
	}

	// Intersections slightly outside the frame are kept: a document edge
	// often runs off the capture.
	points := make([]Point, 0, len(horizontal)*len(vertical))
	for _, h := range horizontal {
		for _, v := range vertical {
			p, ok := intersect(h, v)
			if !ok {
				continue
			}
			if p.X < -0.1*width || p.X > 1.1*width || p.Y < -0.1*height || p.Y > 1.1*height {
				continue
			}
			points = append(points, p)
		}
	}
	if len(points) < 4 {
		return nil
	}

	quad := selectCorners(points)
	return &quad
}

// intersect solves the 2x2 linear system of two lines in polar form:
//
//	x*cos(t1) + y*sin(t1) = rho1
//	x*cos(t2) + y*sin(t2) = rho2
//
// Near-parallel lines (determinant close to zero) report no solution; this
// is expected noise in Hough output, not an error.
func intersect(a, b polarLine) (Point, bool) {
	ta := float64(a.theta) * math.Pi / 180
	tb := float64(b.theta) * math.Pi / 180

	cosA, sinA := math.Cos(ta), math.Sin(ta)
	cosB, sinB := math.Cos(tb), math.Sin(tb)

	det := cosA*sinB - sinA*cosB
	if math.Abs(det) < 1e-10 {
		return Point{}, false
	}

	return Point{
		X: (a.rho*sinB - b.rho*sinA) / det,
		Y: (b.rho*cosA - a.rho*cosB) / det,
	}, true
}

// selectCorners picks the best axis-consistent quadrilateral from a noisy
// cloud of intersection points.
//
// Points are ordered by angle around their centroid, then the four extremes
// are chosen: minimum x+y (top-left), maximum x+y (bottom-right), maximum
// x-y (top-right) and maximum y-x (bottom-left).
func selectCorners(points []Point) Quad {
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return math.Atan2(sorted[i].Y-cy, sorted[i].X-cx) < math.Atan2(sorted[j].Y-cy, sorted[j].X-cx)
	})

	quad := Quad{
		TopLeft:     sorted[0],
		TopRight:    sorted[0],
		BottomLeft:  sorted[0],
		BottomRight: sorted[0],
	}
	for _, p := range sorted[1:] {
		if p.X+p.Y < quad.TopLeft.X+quad.TopLeft.Y {
			quad.TopLeft = p
		}
		if p.X+p.Y > quad.BottomRight.X+quad.BottomRight.Y {
			quad.BottomRight = p
		}
		if p.X-p.Y > quad.TopRight.X-quad.TopRight.Y {
			quad.TopRight = p
		}
		if p.Y-p.X > quad.BottomLeft.Y-quad.BottomLeft.X {
			quad.BottomLeft = p
		}
	}
	return quad
}
