package term437

import (
	"image"
	"image/color"
)

// Scale is the per-glyph-pixel expansion factor: each font bit becomes a
// ScaleX x ScaleY solid block, per spec.md §4.3 ("8x3 horizontal, 14x4
// vertical scale").
const (
	ScaleX = 3
	ScaleY = 4

	// CellPxW and CellPxH are one cell's footprint in the output image.
	CellPxW = FontWidth * ScaleX  // 24
	CellPxH = FontHeight * ScaleY // 56

	// ImageWidth and ImageHeight are the renderer's fixed output size.
	ImageWidth  = Cols * CellPxW // 1920
	ImageHeight = Rows * CellPxH // 1400
)

// NewImage allocates the RGBA surface a Renderer paints into.
func NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, ImageWidth, ImageHeight))
}

// Renderer paints a Buffer's damaged cells into an RGBA image using a
// Palette, following the embedded bitmap font. It never fails: any glyph
// 0..255 and any attribute combination maps to valid colors (spec.md
// §4.3's failure semantics).
type Renderer struct {
	Palette Palette

	// BlinkOn is the renderer's view of the optional 2Hz blink phase
	// (spec.md §9's Open Question: "blink cadence ... suggested, not
	// contractual"). A host with no animation clock simply never sets this
	// to false, which spec.md §4.3 describes as rendering blink "as off" —
	// i.e. indistinguishable from non-blinking text. A host driving a
	// clock toggles this roughly twice a second to animate it.
	BlinkOn bool

	// ICEColors reinterprets SGR blink as a static bright background
	// instead of a blinking foreground, per a source file's SAUCE iCE
	// colors flag (SPEC_FULL.md's SUPPLEMENTED FEATURES, internal/sauce).
	ICEColors bool
}

// NewRenderer returns a Renderer with blink defaulted to its "on" (visible)
// phase, matching the no-clock behavior spec.md describes.
func NewRenderer(pal Palette) *Renderer {
	return &Renderer{Palette: pal, BlinkOn: true}
}

// Render repaints every cell the buffer's damage set marks dirty, plus the
// cursor's previous and current cell so the cursor overlay follows it, then
// clears the damage. Calling Render twice with no intervening buffer
// mutation is a no-op the second time (spec.md §8's idempotence property):
// damage is empty, so the loop below does nothing.
func (r *Renderer) Render(img *image.RGBA, buf *Buffer) {
	for row := 0; row < Rows; row++ {
		if !buf.Damage.DirtyRow(row) {
			continue
		}
		for col := 0; col < Cols; col++ {
			r.paintCell(img, buf, row, col)
		}
	}
	if buf.Damage.CursorMoved() {
		pr, pc := buf.Damage.PrevCursor()
		if !buf.Damage.DirtyRow(pr) {
			r.paintCell(img, buf, pr, pc)
		}
		if !buf.Damage.DirtyRow(buf.Cursor.Row) {
			r.paintCell(img, buf, buf.Cursor.Row, buf.Cursor.Col)
		}
	}
	buf.Damage.Clear(buf.Cursor.Row, buf.Cursor.Col)
}

func (r *Renderer) paintCell(img *image.RGBA, buf *Buffer, row, col int) {
	cell := buf.Grid.At(row, col)
	fg, bg := r.resolveColors(cell)

	isCursor := buf.CursorVisible && row == buf.Cursor.Row && col == buf.Cursor.Col
	if isCursor {
		fg, bg = bg, fg
	}

	bitmap := Glyph(cell.Glyph)
	baseX := col * CellPxW
	baseY := row * CellPxH
	underlineFrom := FontHeight - 2

	for fr := 0; fr < FontHeight; fr++ {
		rowBits := bitmap[fr]
		forceUnderline := cell.Attrs.Has(AttrUnderline) && fr >= underlineFrom
		for fc := 0; fc < FontWidth; fc++ {
			on := rowBits&(1<<uint(FontWidth-1-fc)) != 0
			px := bg
			if on || forceUnderline {
				px = fg
			}
			fillBlock(img, baseX+fc*ScaleX, baseY+fr*ScaleY, px)
		}
	}
}

// resolveColors turns a cell's stored palette indices and attributes into
// concrete RGB values. Reverse video is resolved earlier, at write time
// (Buffer.stamp swaps fg/bg into the cell directly, per spec.md §4.1's "on
// write: if reverse set, swap fg/bg on stamped cell") — the Attrs.Reverse
// bit a cell carries afterward is informational and not reapplied here, so
// a cell is never double-reversed. Bold-brighten and conceal are resolved
// here, at paint time, per spec.md §4.3 and §9 ("the logical attribute
// stays distinct so clearing bold restores dim color").
func (r *Renderer) resolveColors(cell Cell) (fg, bg RGB) {
	fgIdx, bgIdx := cell.Fg, cell.Bg
	if cell.Attrs.Has(AttrBold) && fgIdx < 8 {
		fgIdx += 8
	}
	fg = r.Palette[fgIdx&0x0F]
	bg = r.Palette[bgIdx&0x0F]
	if cell.Attrs.Has(AttrConceal) {
		fg = bg
	}
	if cell.Attrs.Has(AttrBlink) {
		if r.ICEColors {
			if bgIdx < 8 {
				bg = r.Palette[(bgIdx+8)&0x0F]
			}
		} else if !r.BlinkOn {
			fg = bg
		}
	}
	return fg, bg
}

func fillBlock(img *image.RGBA, x, y int, c RGB) {
	col := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	for dy := 0; dy < ScaleY; dy++ {
		for dx := 0; dx < ScaleX; dx++ {
			img.SetRGBA(x+dx, y+dy, col)
		}
	}
}
