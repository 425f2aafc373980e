package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// Rotate rotates an image counterclockwise by the given angle in degrees.
//
// The canvas is resized to fit the rotated content, so 90-degree steps swap
// width and height without cropping. Exposed for manual correction of
// captures whose orientation the camera reported wrong.
func Rotate(img image.Image, angle float64) *image.NRGBA {
	rotated := transform.Rotate(img, angle, &transform.RotationOptions{
		ResizeBounds: true,
	})
	return ToNRGBA(rotated)
}
