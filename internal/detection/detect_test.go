package detection

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// documentPhoto simulates a capture: a dark background with a bright
// rectangular "page" from (x1,y1) to (x2,y2) exclusive.
func documentPhoto(t *testing.T, width, height, x1, y1, x2, y2 int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{30, 30, 30, 255}
			if x >= x1 && x < x2 && y >= y1 && y < y2 {
				c = color.NRGBA{230, 230, 230, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// assertNear fails unless p is within tol pixels of (x, y).
func assertNear(t *testing.T, name string, p Point, x, y, tol float64) {
	t.Helper()
	if math.Abs(p.X-x) > tol || math.Abs(p.Y-y) > tol {
		t.Errorf("%s: got (%.1f, %.1f), want (%.0f, %.0f) within %.0f px", name, p.X, p.Y, x, y, tol)
	}
}

func TestFindDocument_Rectangle(t *testing.T) {
	img := documentPhoto(t, 400, 400, 80, 80, 320, 320)

	res := FindDocument(img)

	if res.Corners == nil {
		t.Fatal("no document found in a clean rectangle capture")
	}
	if res.EdgeMap == nil {
		t.Fatal("result is missing the edge map")
	}

	const tol = 8
	assertNear(t, "top-left", res.Corners.TopLeft, 80, 80, tol)
	assertNear(t, "top-right", res.Corners.TopRight, 320, 80, tol)
	assertNear(t, "bottom-left", res.Corners.BottomLeft, 80, 320, tol)
	assertNear(t, "bottom-right", res.Corners.BottomRight, 320, 320, tol)

	// The page covers 36% of the frame, well inside the plausible band
	if res.Confidence < 0.5 {
		t.Errorf("confidence too low for a clean capture: %f", res.Confidence)
	}
	if res.Confidence > 0.95 {
		t.Errorf("confidence above cap: %f", res.Confidence)
	}
}

func TestFindDocument_DownscaledCornersMapBack(t *testing.T) {
	// 1600px capture is detected at 800px and corners scaled back up
	img := documentPhoto(t, 1600, 1600, 320, 320, 1280, 1280)

	res := FindDocument(img)

	if res.Corners == nil {
		t.Fatal("no document found in downscaled capture")
	}

	// Tolerance doubles with the 2x working-scale factor
	const tol = 16
	assertNear(t, "top-left", res.Corners.TopLeft, 320, 320, tol)
	assertNear(t, "bottom-right", res.Corners.BottomRight, 1280, 1280, tol)

	// The edge map stays at working resolution
	if res.EdgeMap.Bounds().Dx() != 800 {
		t.Errorf("edge map width: got %d, want 800", res.EdgeMap.Bounds().Dx())
	}
}

func TestFindDocument_UniformImage(t *testing.T) {
	img := grayImage(t, 300, 300, 120)

	res := FindDocument(img)

	if res.Corners != nil {
		t.Errorf("found a document in a featureless image: %+v", res.Corners)
	}
	if res.Confidence != 0 {
		t.Errorf("confidence without detection: got %f, want 0", res.Confidence)
	}
	if res.EdgeMap == nil {
		t.Error("edge map should be returned even when detection fails")
	}
}

func TestFindDocument_ConfidenceWithinRange(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"large page", 40, 40, 360, 360},
		{"medium page", 100, 100, 300, 300},
		{"wide page", 50, 120, 350, 280},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			img := documentPhoto(t, 400, 400, tt.x1, tt.y1, tt.x2, tt.y2)
			res := FindDocument(img)
			if res.Confidence < 0 || res.Confidence > 0.95 {
				t.Errorf("confidence out of range: %f", res.Confidence)
			}
		})
	}
}

func TestClassifyLines(t *testing.T) {
	lines := []polarLine{
		{rho: 10, theta: 0, votes: 100},   // horizontal set
		{rho: 20, theta: 15, votes: 90},   // horizontal set
		{rho: 30, theta: 90, votes: 80},   // vertical set
		{rho: 40, theta: 75, votes: 70},   // vertical set
		{rho: 50, theta: 45, votes: 60},   // discarded
		{rho: 60, theta: 170, votes: 50},  // horizontal set
		{rho: 70, theta: 109, votes: 40},  // vertical set
		{rho: 80, theta: 110, votes: 30},  // discarded (boundary exclusive)
		{rho: 90, theta: 20, votes: 20},   // discarded (boundary exclusive)
	}

	horizontal, vertical := classifyLines(lines)

	if len(horizontal) != 3 {
		t.Errorf("horizontal count: got %d, want 3", len(horizontal))
	}
	if len(vertical) != 3 {
		t.Errorf("vertical count: got %d, want 3", len(vertical))
	}
}

func TestIntersect_Perpendicular(t *testing.T) {
	// x = 50 and y = 80
	a := polarLine{rho: 50, theta: 0}
	b := polarLine{rho: 80, theta: 90}

	p, ok := intersect(a, b)
	if !ok {
		t.Fatal("perpendicular lines should intersect")
	}
	if math.Abs(p.X-50) > 1e-6 || math.Abs(p.Y-80) > 1e-6 {
		t.Errorf("intersection: got (%f, %f), want (50, 80)", p.X, p.Y)
	}
}

func TestIntersect_Parallel(t *testing.T) {
	a := polarLine{rho: 50, theta: 90}
	b := polarLine{rho: 80, theta: 90}

	if _, ok := intersect(a, b); ok {
		t.Error("parallel lines should not intersect")
	}
}

func TestSelectCorners(t *testing.T) {
	points := []Point{
		{X: 10, Y: 12},
		{X: 200, Y: 10},
		{X: 11, Y: 190},
		{X: 198, Y: 195},
		{X: 100, Y: 100}, // interior noise
	}

	quad := selectCorners(points)

	assertNear(t, "top-left", quad.TopLeft, 10, 12, 0.5)
	assertNear(t, "top-right", quad.TopRight, 200, 10, 0.5)
	assertNear(t, "bottom-left", quad.BottomLeft, 11, 190, 0.5)
	assertNear(t, "bottom-right", quad.BottomRight, 198, 195, 0.5)
}

func TestHoughLines_DetectsAxisAlignedLines(t *testing.T) {
	// Edge map with one strong horizontal and one strong vertical line
	edge := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for i := 3; i < len(edge.Pix); i += 4 {
		edge.Pix[i] = 255
	}
	for x := 0; x < 200; x++ {
		edge.Pix[60*edge.Stride+x*4] = 255 // y = 60
	}
	for y := 0; y < 200; y++ {
		edge.Pix[y*edge.Stride+140*4] = 255 // x = 140
	}

	lines := houghLines(edge)
	if len(lines) == 0 {
		t.Fatal("no lines found")
	}

	foundH, foundV := false, false
	for _, l := range lines {
		if l.theta == 90 && math.Abs(l.rho-60) < 2 {
			foundH = true
		}
		if l.theta == 0 && math.Abs(l.rho-140) < 2 {
			foundV = true
		}
	}
	if !foundH {
		t.Error("horizontal line y=60 not found")
	}
	if !foundV {
		t.Error("vertical line x=140 not found")
	}
}

func TestHoughLines_WeakEdgesDoNotVote(t *testing.T) {
	// A line made only of weak (128) edges must not produce candidates
	edge := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for i := 3; i < len(edge.Pix); i += 4 {
		edge.Pix[i] = 255
	}
	for x := 0; x < 200; x++ {
		edge.Pix[100*edge.Stride+x*4] = 128
	}

	if lines := houghLines(edge); len(lines) != 0 {
		t.Errorf("weak edges produced %d candidate lines", len(lines))
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}

	if d := a.Distance(b); d != 5 {
		t.Errorf("distance: got %f, want 5", d)
	}
	if d := a.Distance(a); d != 0 {
		t.Errorf("self distance: got %f, want 0", d)
	}
}
