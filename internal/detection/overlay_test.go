package detection

import (
	"bytes"
	"testing"
)

func TestDrawOverlay_DrawsBoundary(t *testing.T) {
	img := grayImage(t, 100, 100, 40)
	quad := rectQuad(20, 20, 80, 80)

	out := DrawOverlay(img, quad, "#00FF00")

	// Corners and edge midpoints carry the line color
	checks := []struct{ x, y int }{
		{20, 20}, {80, 20}, {20, 80}, {80, 80}, // corners
		{50, 20}, {50, 80}, {20, 50}, {80, 50}, // edge midpoints
	}
	for _, c := range checks {
		px := out.NRGBAAt(c.x, c.y)
		if px.R != 0 || px.G != 255 || px.B != 0 {
			t.Errorf("pixel (%d,%d): got (%d,%d,%d), want (0,255,0)", c.x, c.y, px.R, px.G, px.B)
		}
	}

	// Interior pixels keep the source color
	if px := out.NRGBAAt(50, 50); px.R != 40 {
		t.Errorf("interior pixel changed: got %d, want 40", px.R)
	}
}

func TestDrawOverlay_DoesNotModifySource(t *testing.T) {
	img := grayImage(t, 60, 60, 90)
	before := make([]uint8, len(img.Pix))
	copy(before, img.Pix)

	DrawOverlay(img, rectQuad(10, 10, 50, 50), "#FF0000")

	if !bytes.Equal(before, img.Pix) {
		t.Error("DrawOverlay modified the source image")
	}
}

func TestDrawOverlay_InvalidColorFallsBackToRed(t *testing.T) {
	img := grayImage(t, 60, 60, 90)

	out := DrawOverlay(img, rectQuad(10, 10, 50, 50), "not-a-color")

	px := out.NRGBAAt(10, 10)
	if px.R != 255 || px.G != 0 || px.B != 0 {
		t.Errorf("fallback color: got (%d,%d,%d), want (255,0,0)", px.R, px.G, px.B)
	}
}

func TestDrawOverlay_CornersOutsideFrame(t *testing.T) {
	img := grayImage(t, 50, 50, 90)

	// Must not panic when the quad extends past the canvas
	quad := Quad{
		TopLeft:     Point{X: -20, Y: -20},
		TopRight:    Point{X: 70, Y: -10},
		BottomLeft:  Point{X: -10, Y: 70},
		BottomRight: Point{X: 80, Y: 80},
	}
	out := DrawOverlay(img, quad, "#0000FF")

	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 50 {
		t.Errorf("dimensions changed: got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		r, g, b, a uint8
		wantErr    bool
	}{
		{"red", "#FF0000", 255, 0, 0, 255, false},
		{"green no hash", "00FF00", 0, 255, 0, 255, false},
		{"with alpha", "#11223344", 0x11, 0x22, 0x33, 0x44, false},
		{"lowercase", "#abcdef", 0xAB, 0xCD, 0xEF, 255, false},
		{"empty", "", 0, 0, 0, 0, true},
		{"bad length", "#FFF", 0, 0, 0, 0, true},
		{"not hex", "#GGGGGG", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseHexColor(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q) failed: %v", tt.input, err)
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
				t.Errorf("parseHexColor(%q) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.input, c.R, c.G, c.B, c.A, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}
