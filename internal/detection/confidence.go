package detection

import "math"

// quadArea computes the area of a quadrilateral via the shoelace formula,
// walking the corners in perimeter order.
func quadArea(q Quad) float64 {
	corners := [4]Point{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
	var sum float64
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%4]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// CalculateConfidence scores a detected quadrilateral against the image it
// was found in.
//
// The score is based on the area the quad covers: a document typically fills
// a substantial but not total fraction of a deliberate capture. With
// ratio = area / (width * height):
//   - ratio in (0.1, 0.95): confidence = min(0.9, ratio * 1.5)
//   - otherwise: confidence = 0.3 (implausibly small or frame-filling)
//
// A nil quad scores 0. The returned value is always within [0, 0.95].
// Thresholding the score to decide whether a crop is applied automatically
// is the caller's policy, not enforced here.
func CalculateConfidence(q *Quad, width, height int) float64 {
	if q == nil || width <= 0 || height <= 0 {
		return 0
	}

	ratio := quadArea(*q) / (float64(width) * float64(height))
	if ratio > 0.1 && ratio < 0.95 {
		return math.Min(0.9, ratio*1.5)
	}
	return 0.3
}

// ScoreQuad is a stricter scorer that also penalizes skew: it blends the
// area ratio with how far each interior angle deviates from 90 degrees.
//
// score = 0.5*areaRatio + 0.5*angleScore, with
// angleScore = max(0, 1 - meanAngleDeviation/45). Used where a shape-quality
// judgment is wanted independent of the plain area heuristic.
func ScoreQuad(q Quad, width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	areaRatio := quadArea(q) / (float64(width) * float64(height))

	corners := [4]Point{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
	var totalDeviation float64
	for i := range corners {
		prev := corners[(i+3)%4]
		cur := corners[i]
		next := corners[(i+1)%4]
		totalDeviation += math.Abs(interiorAngle(prev, cur, next) - 90)
	}
	angleScore := math.Max(0, 1-(totalDeviation/4)/45)

	return 0.5*areaRatio + 0.5*angleScore
}

// interiorAngle returns the angle in degrees at vertex b of the path a-b-c.
func interiorAngle(a, b, c Point) float64 {
	v1x, v1y := a.X-b.X, a.Y-b.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y

	dot := v1x*v2x + v1y*v2y
	norm := math.Hypot(v1x, v1y) * math.Hypot(v2x, v2y)
	if norm == 0 {
		return 0
	}
	cos := math.Max(-1, math.Min(1, dot/norm))
	return math.Acos(cos) * 180 / math.Pi
}
