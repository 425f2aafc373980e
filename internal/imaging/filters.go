package imaging

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

// ToNRGBA converts any image to an 8-bit NRGBA raster.
//
// All filter functions in this package operate on *image.NRGBA so that pixel
// data can be addressed directly through the Pix slice. The returned image is
// always a fresh copy; the input is never aliased.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Grayscale converts an image to grayscale using ITU-R BT.601 luma weights.
//
// The luma value (0.299*R + 0.587*G + 0.114*B) is written to all three color
// channels. The alpha channel is copied through unchanged. Applying Grayscale
// twice yields the same result as applying it once.
func Grayscale(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	copy(dst.Pix, src.Pix)

	for i := 0; i < len(src.Pix); i += 4 {
		l := Luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		dst.Pix[i] = l
		dst.Pix[i+1] = l
		dst.Pix[i+2] = l
	}
	return dst
}

// Luma computes the 8-bit luminance of an RGB triple using BT.601 weights.
func Luma(r, g, b uint8) uint8 {
	l := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if l > 255 {
		l = 255
	}
	return uint8(l + 0.5)
}

// GaussianBlur applies a fixed 3x3 Gaussian kernel to each color channel.
//
// The kernel is:
//
//	1 2 1
//	2 4 2   (divided by 16)
//	1 2 1
//
// Border pixels (row/column 0 and max) are not convolved; they are copied
// verbatim from the source so the output has no undefined border. This
// copy-border policy is shared by every 3x3 convolution in this package
// (blur, sharpen, median) so filters compose predictably. Alpha is copied
// through unchanged.
func GaussianBlur(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	dst := image.NewNRGBA(bounds)
	copy(dst.Pix, src.Pix)

	kernel := [3][3]float64{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			for c := 0; c < 3; c++ {
				var sum float64
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						idx := (y+ky)*src.Stride + (x+kx)*4 + c
						sum += float64(src.Pix[idx]) * kernel[ky+1][kx+1]
					}
				}
				dst.Pix[y*dst.Stride+x*4+c] = uint8(sum/16 + 0.5)
			}
		}
	}
	return dst
}

// Sharpen applies an unsharp-mask kernel blended with the original image.
//
// The convolution kernel is:
//
//	 0 -1  0
//	-1  5 -1
//	 0 -1  0
//
// Each output channel is lerp(original, convolved, amount) clamped to
// [0, 255], where amount is expected in [0, 1]. amount = 0 returns a copy of
// the source; amount = 1 is the full unsharp mask. Border pixels are copied
// from the source, alpha is unchanged.
func Sharpen(src *image.NRGBA, amount float64) *image.NRGBA {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	dst := image.NewNRGBA(bounds)
	copy(dst.Pix, src.Pix)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			for c := 0; c < 3; c++ {
				center := float64(src.Pix[y*src.Stride+x*4+c])
				conv := 5*center -
					float64(src.Pix[(y-1)*src.Stride+x*4+c]) -
					float64(src.Pix[(y+1)*src.Stride+x*4+c]) -
					float64(src.Pix[y*src.Stride+(x-1)*4+c]) -
					float64(src.Pix[y*src.Stride+(x+1)*4+c])
				v := center + (conv-center)*amount
				dst.Pix[y*dst.Stride+x*4+c] = clampByte(v)
			}
		}
	}
	return dst
}

// MedianFilter applies a per-channel 3x3 median filter.
//
// For each interior pixel, the nine neighborhood samples of each color
// channel are sorted and the 5th value (the median) is taken. This removes
// salt-and-pepper noise without blurring edges as aggressively as a Gaussian
// kernel. Border pixels are copied from the source, alpha is unchanged.
func MedianFilter(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	dst := image.NewNRGBA(bounds)
	copy(dst.Pix, src.Pix)

	var window [9]int
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			for c := 0; c < 3; c++ {
				n := 0
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						window[n] = int(src.Pix[(y+ky)*src.Stride+(x+kx)*4+c])
						n++
					}
				}
				samples := window[:]
				sort.Ints(samples)
				dst.Pix[y*dst.Stride+x*4+c] = uint8(samples[4])
			}
		}
	}
	return dst
}

// clampByte constrains a float value to the [0, 255] byte range.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
