package imaging

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestDocumentPreset(t *testing.T) {
	p := DocumentPreset()

	if !p.AutoEnhance {
		t.Error("document preset should enable auto-enhance")
	}
	if p.Saturation >= 0 {
		t.Error("document preset should desaturate")
	}
	if p.Sharpness <= 0 {
		t.Error("document preset should sharpen")
	}
	if p.BlackAndWhite {
		t.Error("document preset should not threshold")
	}
}

func TestBlackAndWhitePreset(t *testing.T) {
	p := BlackAndWhitePreset()

	if !p.BlackAndWhite {
		t.Error("bw preset should enable black-and-white")
	}
	if p.Saturation != -100 {
		t.Errorf("bw preset saturation: got %f, want -100", p.Saturation)
	}
	if p.Threshold <= 0 || p.Threshold > 255 {
		t.Errorf("bw preset threshold out of range: %d", p.Threshold)
	}
}

func TestEnhance_NeutralSettingsUnchanged(t *testing.T) {
	src := uniformNRGBA(t, 12, 12, color.NRGBA{80, 120, 160, 255})

	out := Enhance(src, EnhanceSettings{})

	if !bytes.Equal(out.Pix, src.Pix) {
		t.Error("neutral settings changed the image")
	}
}

func TestEnhance_PreservesDimensions(t *testing.T) {
	src := uniformNRGBA(t, 31, 19, color.NRGBA{100, 100, 100, 255})

	out := Enhance(src, DocumentPreset())

	if out.Bounds().Dx() != 31 || out.Bounds().Dy() != 19 {
		t.Errorf("dimensions: got %dx%d, want 31x19", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestEnhance_BrightnessRaisesLuma(t *testing.T) {
	src := uniformNRGBA(t, 10, 10, color.NRGBA{100, 100, 100, 255})

	out := Enhance(src, EnhanceSettings{Brightness: 20})

	got := out.NRGBAAt(5, 5)
	if got.R <= 100 {
		t.Errorf("brightness did not raise value: got %d", got.R)
	}
	// +20 brightness adds 51 to each channel
	if got.R != 151 {
		t.Errorf("brightened value: got %d, want 151", got.R)
	}
}

func TestEnhance_ContrastSpreadsAroundMidGray(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{60, 60, 60, 255})
	src.SetNRGBA(1, 0, color.NRGBA{200, 200, 200, 255})

	out := Enhance(src, EnhanceSettings{Contrast: 40})

	dark := out.NRGBAAt(0, 0).R
	bright := out.NRGBAAt(1, 0).R
	if dark >= 60 {
		t.Errorf("dark pixel should get darker: got %d", dark)
	}
	if bright <= 200 {
		t.Errorf("bright pixel should get brighter: got %d", bright)
	}
}

func TestEnhance_FullDesaturationEqualsGray(t *testing.T) {
	src := uniformNRGBA(t, 8, 8, color.NRGBA{200, 50, 30, 255})

	out := Enhance(src, EnhanceSettings{Saturation: -100})

	got := out.NRGBAAt(4, 4)
	if got.R != got.G || got.G != got.B {
		t.Errorf("desaturated channels differ: (%d,%d,%d)", got.R, got.G, got.B)
	}
}

func TestEnhance_Grayscale(t *testing.T) {
	src := uniformNRGBA(t, 8, 8, color.NRGBA{255, 0, 0, 255})

	out := Enhance(src, EnhanceSettings{Grayscale: true})

	got := out.NRGBAAt(4, 4)
	if got.R != got.G || got.G != got.B {
		t.Errorf("grayscale channels differ: (%d,%d,%d)", got.R, got.G, got.B)
	}
}

func TestEnhance_BlackAndWhiteThreshold(t *testing.T) {
	tests := []struct {
		name string
		gray uint8
		want uint8
	}{
		{"below threshold", 127, 0},
		{"exactly threshold", 128, 0},
		{"above threshold", 129, 255},
		{"black", 0, 0},
		{"white", 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := uniformNRGBA(t, 5, 5, color.NRGBA{tt.gray, tt.gray, tt.gray, 255})

			out := Enhance(src, EnhanceSettings{BlackAndWhite: true, Threshold: 128})

			got := out.NRGBAAt(2, 2)
			if got.R != tt.want || got.G != tt.want || got.B != tt.want {
				t.Errorf("luma %d with threshold 128: got (%d,%d,%d), want %d",
					tt.gray, got.R, got.G, got.B, tt.want)
			}
		})
	}
}

func TestEnhance_BlackAndWhiteOnlyTwoValues(t *testing.T) {
	src := createPatternNRGBA()

	out := Enhance(src, EnhanceSettings{BlackAndWhite: true, Threshold: 140})

	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0 && out.Pix[i] != 255 {
			t.Fatalf("pixel %d is %d, want 0 or 255", i/4, out.Pix[i])
		}
	}
}

// createPatternNRGBA returns a small gradient image with varied luma.
func createPatternNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x * 16)
			img.SetNRGBA(x, y, color.NRGBA{v, uint8(y * 16), v, 255})
		}
	}
	return img
}

func TestEnhance_AutoEnhanceLowContrast(t *testing.T) {
	// A murky low-contrast image: everything between 100 and 140
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := uint8(100 + (x+y)%40)
			src.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}

	out := Enhance(src, EnhanceSettings{AutoEnhance: true})

	// Auto-enhance should stretch the range: min gets darker or max brighter
	var gotMin, gotMax uint8 = 255, 0
	var srcMin, srcMax uint8 = 255, 0
	for i := 0; i < len(out.Pix); i += 4 {
		gotMin = min(gotMin, out.Pix[i])
		gotMax = max(gotMax, out.Pix[i])
		srcMin = min(srcMin, src.Pix[i])
		srcMax = max(srcMax, src.Pix[i])
	}

	if int(gotMax)-int(gotMin) <= int(srcMax)-int(srcMin) {
		t.Errorf("auto-enhance did not widen the range: src [%d,%d], got [%d,%d]",
			srcMin, srcMax, gotMin, gotMax)
	}
}

func TestEnhance_AutoEnhanceWellExposedUnchanged(t *testing.T) {
	// Full-range image: dark and bright pixels already present
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := uint8((x * 255) / 19)
			src.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}

	out := Enhance(src, EnhanceSettings{AutoEnhance: true})

	// Range is already >= 200 and shadows are dark, so nothing to correct
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Error("auto-enhance modified a well-exposed image")
	}
}

func TestEnhance_PreservesAlpha(t *testing.T) {
	src := uniformNRGBA(t, 6, 6, color.NRGBA{90, 90, 90, 200})

	out := Enhance(src, DocumentPreset())

	if out.NRGBAAt(3, 3).A != 200 {
		t.Errorf("alpha: got %d, want 200", out.NRGBAAt(3, 3).A)
	}
}

func TestEnhance_DoesNotModifyInput(t *testing.T) {
	src := createPatternNRGBA()
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	Enhance(src, BlackAndWhitePreset())

	if !bytes.Equal(before, src.Pix) {
		t.Error("Enhance modified the input image")
	}
}
