package imaging

import (
	"image"
)

// EnhanceSettings holds the adjustment knobs applied by Enhance.
//
// All numeric values are in "slider" units as presented to the user:
//   - Brightness: -100..100, additive (scaled by 2.55 to the byte range)
//   - Contrast: -100..100, standard contrast curve around mid-gray
//   - Saturation: -100..100, where -100 fully desaturates
//   - Sharpness: 0..100, mapped to the Sharpen filter amount
//   - Threshold: 0..255 luma cutoff for black-and-white conversion
//
// EnhanceSettings is a plain value; it carries no identity and is passed by
// value into Enhance.
type EnhanceSettings struct {
	Brightness    float64 `json:"brightness"`
	Contrast      float64 `json:"contrast"`
	Saturation    float64 `json:"saturation"`
	Sharpness     float64 `json:"sharpness"`
	Threshold     int     `json:"threshold"`
	Denoise       bool    `json:"denoise"`
	Grayscale     bool    `json:"grayscale"`
	BlackAndWhite bool    `json:"black_and_white"`
	AutoEnhance   bool    `json:"auto_enhance"`
}

// DocumentPreset returns enhancement settings tuned for photographed
// documents: moderate desaturation, contrast and sharpening on top of the
// automatic histogram correction.
func DocumentPreset() EnhanceSettings {
	return EnhanceSettings{
		Brightness:  5,
		Contrast:    15,
		Saturation:  -30,
		Sharpness:   30,
		AutoEnhance: true,
	}
}

// BlackAndWhitePreset returns settings for a high-contrast black-and-white
// document rendition: full desaturation and a fixed luma threshold.
func BlackAndWhitePreset() EnhanceSettings {
	return EnhanceSettings{
		Contrast:      20,
		Saturation:    -100,
		Sharpness:     20,
		Threshold:     140,
		BlackAndWhite: true,
	}
}

// Enhance applies the configured adjustments to an image and returns a new
// image of the same dimensions.
//
// Stages run in a fixed order, each conditionally applied:
//
//  1. Auto-enhance: derive extra contrast/brightness from the luma histogram
//     of the unmodified input (see autoAdjust).
//  2. Per-pixel pass: brightness, then contrast, then saturation, computed in
//     floating point with a single clamp to [0, 255] at the end of the chain.
//  3. Grayscale: overwrite R/G/B with luma.
//  4. Black-and-white: 255 where luma is strictly greater than Threshold,
//     else 0.
//  5. Sharpen with amount = Sharpness/100 when Sharpness > 0.
//  6. Median denoise when Denoise is set.
//
// Every stage reads the committed output of the previous stage, so results
// are equivalent to sequential application of the individual filters. Alpha
// is preserved throughout.
func Enhance(src *image.NRGBA, settings EnhanceSettings) *image.NRGBA {
	if settings.AutoEnhance {
		extraContrast, extraBrightness := autoAdjust(src)
		settings.Contrast += extraContrast
		settings.Brightness += extraBrightness
	}

	img := applyColorAdjustments(src, settings)

	if settings.Grayscale {
		img = Grayscale(img)
	}

	if settings.BlackAndWhite {
		img = applyThreshold(img, settings.Threshold)
	}

	if settings.Sharpness > 0 {
		img = Sharpen(img, settings.Sharpness/100)
	}

	if settings.Denoise {
		img = MedianFilter(img)
	}

	return img
}

// autoAdjust derives contrast and brightness corrections from the 256-bin
// luma histogram of the input image.
//
// The 5th and 95th percentile intensities bound the useful dynamic range. A
// range narrower than 200 adds (200-range)/4 contrast; a 5th percentile above
// 30 (a murky, underexposed-looking image whose darkest tones are lifted)
// adds (low-30)/2 brightness.
func autoAdjust(src *image.NRGBA) (contrast, brightness float64) {
	var histogram [256]int
	total := 0
	for i := 0; i < len(src.Pix); i += 4 {
		histogram[Luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])]++
		total++
	}
	if total == 0 {
		return 0, 0
	}

	low, high := 0, 255
	cum := 0
	for i := 0; i < 256; i++ {
		cum += histogram[i]
		if cum >= total*5/100 {
			low = i
			break
		}
	}
	cum = 0
	for i := 0; i < 256; i++ {
		cum += histogram[i]
		if cum >= total*95/100 {
			high = i
			break
		}
	}

	if r := high - low; r < 200 {
		contrast = float64(200-r) / 4
	}
	if low > 30 {
		brightness = float64(low-30) / 2
	}
	return contrast, brightness
}

// applyColorAdjustments runs the fused brightness/contrast/saturation pass.
//
// Per channel: add Brightness*2.55, apply the standard contrast curve
// factor*(v-128)+128 with factor = 259*(c+255)/(255*(259-c)), then pull the
// channel toward or away from the luma of the adjusted pixel by
// 1+Saturation/100. Channels are clamped once after the full chain.
func applyColorAdjustments(src *image.NRGBA, s EnhanceSettings) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)

	offset := s.Brightness * 2.55
	factor := 259 * (s.Contrast + 255) / (255 * (259 - s.Contrast))
	satFactor := 1 + s.Saturation/100

	for i := 0; i < len(src.Pix); i += 4 {
		r := factor*(float64(src.Pix[i])+offset-128) + 128
		g := factor*(float64(src.Pix[i+1])+offset-128) + 128
		b := factor*(float64(src.Pix[i+2])+offset-128) + 128

		gray := 0.299*r + 0.587*g + 0.114*b
		r = gray + satFactor*(r-gray)
		g = gray + satFactor*(g-gray)
		b = gray + satFactor*(b-gray)

		dst.Pix[i] = clampByte(r)
		dst.Pix[i+1] = clampByte(g)
		dst.Pix[i+2] = clampByte(b)
	}
	return dst
}

// applyThreshold converts the image to pure black and white. Pixels whose
// luma is strictly greater than threshold become white; everything else,
// including luma exactly at the threshold, becomes black.
func applyThreshold(src *image.NRGBA, threshold int) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)

	for i := 0; i < len(src.Pix); i += 4 {
		var v uint8
		if int(Luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])) > threshold {
			v = 255
		}
		dst.Pix[i] = v
		dst.Pix[i+1] = v
		dst.Pix[i+2] = v
	}
	return dst
}
