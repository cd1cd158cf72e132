package term437

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyCRTGlowPreservesBounds(t *testing.T) {
	src := NewImage()
	out := ApplyCRTGlow(src)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("ApplyCRTGlow bounds = %v, want %v", out.Bounds(), src.Bounds())
	}
}

func TestApplyCRTGlowDoesNotMutateSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.SetRGBA(4, 4, color.RGBA{R: 0xFF, A: 0xFF})
	before := src.RGBAAt(0, 0)

	_ = ApplyCRTGlow(src)

	if after := src.RGBAAt(0, 0); after != before {
		t.Fatalf("ApplyCRTGlow mutated its source image: %+v -> %+v", before, after)
	}
}

func TestApplyCRTGlowFlatFieldIsUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill := color.RGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xFF}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, fill)
		}
	}

	out := ApplyCRTGlow(src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := out.RGBAAt(x, y); got != fill {
				t.Fatalf("flat field blurred at (%d,%d): got %+v, want %+v", x, y, got, fill)
			}
		}
	}
}

func TestApplyCRTGlowSpreadsASinglePixel(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 9, 9))
	black := color.RGBA{A: 0xFF}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			src.SetRGBA(x, y, black)
		}
	}
	src.SetRGBA(4, 4, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	out := ApplyCRTGlow(src)

	center := out.RGBAAt(4, 4)
	if center.R == 0xFF {
		t.Fatalf("center pixel not spread by blur: %+v", center)
	}
	neighbor := out.RGBAAt(5, 4)
	if neighbor.R == 0 {
		t.Fatalf("blur did not spread any energy to a neighboring pixel: %+v", neighbor)
	}
}
