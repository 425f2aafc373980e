package rectify

import (
	"image"
	"math"

	"github.com/papertrail-labs/docscan-mcp/internal/detection"
)

// PerspectiveCrop maps the quadrilateral region of src onto an axis-aligned
// output canvas, correcting viewing-angle skew.
//
// Output dimensions are derived from the quad itself: width is the longer of
// the measured top and bottom edges, height the longer of the left and right
// edges, so the shorter pair of edges is never stretched.
func PerspectiveCrop(src *image.NRGBA, q detection.Quad) *image.NRGBA {
	width := int(math.Round(math.Max(
		q.TopLeft.Distance(q.TopRight),
		q.BottomLeft.Distance(q.BottomRight),
	)))
	height := int(math.Round(math.Max(
		q.TopLeft.Distance(q.BottomLeft),
		q.TopRight.Distance(q.BottomRight),
	)))
	return PerspectiveCropSize(src, q, width, height)
}

// PerspectiveCropSize is PerspectiveCrop with explicit output dimensions.
//
// For every destination pixel the normalized coordinates (u, v) are
// interpolated bilinearly across the quad: first along the top and bottom
// edges by u, then between those two points by v. The source is sampled at
// the nearest integer pixel and all four channels are copied. This is a
// direct inverse-mapping rasterizer rather than a full homography, which is
// sufficient because the corners come from document detection, not from
// arbitrary projective input.
//
// Source coordinates that fall outside the image (corners may legitimately
// extend slightly past the frame) leave the destination pixel at its
// zero-initialized, transparent value.
func PerspectiveCropSize(src *image.NRGBA, q detection.Quad, width, height int) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		v := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width)

			topX := q.TopLeft.X + u*(q.TopRight.X-q.TopLeft.X)
			topY := q.TopLeft.Y + u*(q.TopRight.Y-q.TopLeft.Y)
			bottomX := q.BottomLeft.X + u*(q.BottomRight.X-q.BottomLeft.X)
			bottomY := q.BottomLeft.Y + u*(q.BottomRight.Y-q.BottomLeft.Y)

			sx := int(math.Round(topX + v*(bottomX-topX)))
			sy := int(math.Round(topY + v*(bottomY-topY)))
			if sx < 0 || sx >= srcW || sy < 0 || sy >= srcH {
				continue
			}

			si := sy*src.Stride + sx*4
			di := y*dst.Stride + x*4
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
