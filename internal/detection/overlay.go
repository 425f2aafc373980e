package detection

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
)

// DrawOverlay renders the detected boundary on top of a copy of the source
// image, for visual verification of a detection result.
//
// The quad's edges are drawn as straight lines in the given hex color
// ("#RRGGBB" or "#RRGGBBAA"); an unparseable color falls back to opaque red.
// The source image is never modified.
func DrawOverlay(src image.Image, q Quad, colorHex string) *image.NRGBA {
	lineColor, err := parseHexColor(colorHex)
	if err != nil {
		lineColor = color.NRGBA{R: 255, A: 255}
	}

	bounds := src.Bounds()
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	edges := [4][2]Point{
		{q.TopLeft, q.TopRight},
		{q.TopRight, q.BottomRight},
		{q.BottomRight, q.BottomLeft},
		{q.BottomLeft, q.TopLeft},
	}
	for _, e := range edges {
		drawLine(canvas, e[0], e[1], lineColor)
	}
	return canvas
}

// drawLine draws a straight line between two points by stepping one pixel at
// a time along the longer axis. Points outside the canvas are skipped.
func drawLine(img *image.NRGBA, a, b Point, c color.NRGBA) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
	if steps == 0 {
		steps = 1
	}

	bounds := img.Bounds()
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(a.X + t*(b.X-a.X) + 0.5)
		y := int(a.Y + t*(b.Y-a.Y) + 0.5)
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetNRGBA(x, y, c)
		}
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
