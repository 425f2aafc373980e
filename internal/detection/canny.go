package detection

import (
	"image"
	"math"

	"github.com/papertrail-labs/docscan-mcp/internal/imaging"
)

// CannyEdges performs Canny-style edge detection on an image.
//
// The output is an edge map of the same dimensions where every pixel is one
// of three values, replicated across R/G/B with alpha 255:
//   - 255: strong edge (gradient magnitude >= highThreshold)
//   - 128: weak edge (gradient magnitude >= lowThreshold)
//   - 0: no edge
//
// Parameters:
//   - src: Source image (color or grayscale).
//   - lowThreshold: Gradient magnitude above which a pixel counts as a weak
//     edge. Typical value: 50.
//   - highThreshold: Gradient magnitude above which a pixel counts as a
//     strong edge. Typical value: 150.
//
// # Algorithm
//
//  1. Gaussian blur (3x3 kernel) to suppress sensor noise
//  2. Grayscale conversion (BT.601 luma)
//  3. Sobel gradients: magnitude = sqrt(Gx² + Gy²), direction = atan2(Gy, Gx)
//  4. Non-maximum suppression: the gradient direction is rounded to the
//     nearest of four orientations (0°, 45°, 90°, 135°) and the magnitude is
//     zeroed unless it is >= both neighbors along that orientation
//  5. Double threshold into the 0/128/255 classes above
//
// Hysteresis edge linking is deliberately not performed: the downstream
// consumers (Hough voting and contour sampling) read strong and weak edges
// at different thresholds and were tuned against unlinked output. Border
// pixels (row/column 0 and max) are always 0.
func CannyEdges(src *image.NRGBA, lowThreshold, highThreshold float64) *image.NRGBA {
	gray := imaging.Grayscale(imaging.GaussianBlur(src))

	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Sobel gradients from the gray channel. Border pixels stay zero.
	magnitude := make([]float64, width*height)
	direction := make([]float64, width*height)

	at := func(x, y int) float64 {
		return float64(gray.Pix[y*gray.Stride+x*4])
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			magnitude[y*width+x] = math.Sqrt(gx*gx + gy*gy)
			direction[y*width+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression with the direction quantized to 4 buckets at
	// the +-22.5 degree boundaries.
	suppressed := make([]float64, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			mag := magnitude[y*width+x]
			if mag == 0 {
				continue
			}

			deg := direction[y*width+x] * 180 / math.Pi
			if deg < 0 {
				deg += 180
			}

			var n1, n2 float64
			switch {
			case deg < 22.5 || deg >= 157.5:
				// 0 degrees: horizontal gradient, compare left/right
				n1 = magnitude[y*width+x-1]
				n2 = magnitude[y*width+x+1]
			case deg < 67.5:
				// 45 degrees
				n1 = magnitude[(y-1)*width+x+1]
				n2 = magnitude[(y+1)*width+x-1]
			case deg < 112.5:
				// 90 degrees: vertical gradient, compare above/below
				n1 = magnitude[(y-1)*width+x]
				n2 = magnitude[(y+1)*width+x]
			default:
				// 135 degrees
				n1 = magnitude[(y-1)*width+x-1]
				n2 = magnitude[(y+1)*width+x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y*width+x] = mag
			}
		}
	}

	// Double threshold. Weak edges are retained as-is; no hysteresis linking.
	edge := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v uint8
			switch mag := suppressed[y*width+x]; {
			case mag >= highThreshold:
				v = 255
			case mag >= lowThreshold:
				v = 128
			}
			i := y*edge.Stride + x*4
			edge.Pix[i] = v
			edge.Pix[i+1] = v
			edge.Pix[i+2] = v
			edge.Pix[i+3] = 255
		}
	}
	return edge
}
