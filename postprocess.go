package term437

import (
	"image"
	"image/color"
)

// crtBlurWeights is the 5-tap separable gaussian kernel the original's
// WebGL fragment shader used for its CRT blur pass (postprocess.rs's
// BLUR_FRAGMENT_SHADER: offsets -2,-1,0,1,2 with these exact weights).
var crtBlurWeights = [5]float64{0.06, 0.24, 0.40, 0.24, 0.06}

// ApplyCRTGlow returns a new image that is src run through the same
// two-pass separable blur the original applied to every rendered frame
// before it reached the screen (postprocess.rs: horizontal pass into an
// intermediate texture, then a vertical pass back out, both reusing the
// identical 5-tap kernel; out-of-bounds samples clamp to the edge pixel,
// matching the shader's CLAMP_TO_EDGE texture wrap mode).
//
// This is a pure function over a rendered frame, not a Renderer method:
// Render's contract is the damage-diffed sharp image spec.md §4.3
// describes, and reblurring that buffer in place would break the
// idempotence property of spec.md §8 (blurring a blur is not a no-op). A
// caller that wants the CRT look applies ApplyCRTGlow to a copy of the
// rendered frame just before display or export, the same split the
// original keeps between its offscreen sharp canvas and its visible
// blurred canvas.
func ApplyCRTGlow(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	horizontal := blurPass(src, bounds, 1, 0)
	vertical := blurPass(horizontal, bounds, 0, 1)
	return vertical
}

// blurPass runs the 5-tap kernel along (dx, dy) — (1,0) for horizontal,
// (0,1) for vertical — producing a new RGBA image the same size as bounds.
func blurPass(src *image.RGBA, bounds image.Rectangle, dx, dy int) *image.RGBA {
	out := image.NewRGBA(bounds)
	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for tap := -2; tap <= 2; tap++ {
				sx := clampInt(x+tap*dx, w-1)
				sy := clampInt(y+tap*dy, h-1)
				sr, sg, sb, sa := src.RGBAAt(bounds.Min.X+sx, bounds.Min.Y+sy).RGBA()
				weight := crtBlurWeights[tap+2]
				r += float64(sr>>8) * weight
				g += float64(sg>>8) * weight
				b += float64(sb>>8) * weight
				a += float64(sa>>8) * weight
			}
			out.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, rgbaFromFloats(r, g, b, a))
		}
	}
	return out
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func rgbaFromFloats(r, g, b, a float64) color.RGBA {
	return color.RGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(a)}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
