package term437

import "testing"

func TestRenderImageDimensions(t *testing.T) {
	img := NewImage()
	b := img.Bounds()
	if b.Dx() != ImageWidth || b.Dy() != ImageHeight {
		t.Fatalf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), ImageWidth, ImageHeight)
	}
}

func TestRenderIdempotentSecondPaintNoOp(t *testing.T) {
	buf := NewBuffer()
	buf.Write('H')
	buf.Write('i')
	r := NewRenderer(VGAPalette)
	img := NewImage()
	r.Render(img, buf)

	before := make([]byte, len(img.Pix))
	copy(before, img.Pix)

	r.Render(img, buf)
	for i := range before {
		if before[i] != img.Pix[i] {
			t.Fatalf("second render without mutation changed pixel byte %d", i)
		}
	}
	if buf.Damage.DirtyRow(0) {
		t.Fatalf("damage not cleared after paint")
	}
}

func TestWriteAfterRenderDamagesOnlyItsRow(t *testing.T) {
	buf := NewBuffer()
	r := NewRenderer(VGAPalette)
	img := NewImage()
	r.Render(img, buf) // first full paint clears all damage

	buf.MoveTo(5, 0)
	buf.Write('A')
	if buf.Damage.DirtyRow(0) {
		t.Fatalf("row 0 marked dirty by a write to row 5")
	}
	if !buf.Damage.DirtyRow(5) {
		t.Fatalf("row 5 not marked dirty by a write to row 5")
	}
}

func TestResolveColorsBoldBrightensOnlyLowFg(t *testing.T) {
	r := NewRenderer(VGAPalette)
	cell := Cell{Glyph: 'A', Fg: 1, Bg: 0, Attrs: AttrBold}
	fg, _ := r.resolveColors(cell)
	if fg != VGAPalette[9] {
		t.Fatalf("bold fg1 resolved to %+v, want palette[9]", fg)
	}

	cell2 := Cell{Glyph: 'A', Fg: 9, Bg: 0, Attrs: AttrBold}
	fg2, _ := r.resolveColors(cell2)
	if fg2 != VGAPalette[9] {
		t.Fatalf("bold fg9 (already bright) resolved to %+v, want palette[9] unchanged", fg2)
	}
}

func TestResolveColorsConcealMatchesBackground(t *testing.T) {
	r := NewRenderer(VGAPalette)
	cell := Cell{Glyph: 'A', Fg: 1, Bg: 4, Attrs: AttrConceal}
	fg, bg := r.resolveColors(cell)
	if fg != bg {
		t.Fatalf("concealed fg %+v != bg %+v", fg, bg)
	}
}

func TestResolveColorsICEColorsBrightensBackgroundInsteadOfBlinking(t *testing.T) {
	r := NewRenderer(VGAPalette)
	r.ICEColors = true
	r.BlinkOn = false // would normally hide the glyph; ICEColors must override that
	cell := Cell{Glyph: 'A', Fg: 7, Bg: 1, Attrs: AttrBlink}
	fg, bg := r.resolveColors(cell)
	if bg != VGAPalette[9] {
		t.Fatalf("ICEColors blink bg1 resolved to %+v, want palette[9]", bg)
	}
	if fg != VGAPalette[7] {
		t.Fatalf("ICEColors must not hide foreground: got %+v", fg)
	}
}

func TestResolveColorsBlinkWithoutICEColorsStillHidesOnBlinkOff(t *testing.T) {
	r := NewRenderer(VGAPalette)
	r.BlinkOn = false
	cell := Cell{Glyph: 'A', Fg: 7, Bg: 1, Attrs: AttrBlink}
	fg, bg := r.resolveColors(cell)
	if fg != bg {
		t.Fatalf("non-ICE blink with BlinkOn=false should hide glyph, got fg=%+v bg=%+v", fg, bg)
	}
}
