package term437

// FontWidth and FontHeight are the fixed EGA glyph-cell dimensions spec.md's
// renderer builds on: 8 pixels wide, 14 rows tall, 1 bit per pixel.
const (
	FontWidth  = 8
	FontHeight = 14
)

// glyphBitmap is one 8x14 bitmap, one byte per row, bit 7 the leftmost
// column. A set bit paints the cell's foreground color, a clear bit the
// background color (spec.md §4.3).
type glyphBitmap [FontHeight]byte

// font holds the full 256-glyph CP437 table, indexed directly by codepoint.
// Unlike a system font loaded by name, this table is a fixed part of the
// engine: any byte value is a valid index and always resolves to some
// bitmap, so the renderer can never fail on an out-of-range glyph (spec.md
// §4.3's "renderer never fails" clause).
var font [256]glyphBitmap

func init() {
	for i := range font {
		font[i] = glyphPlaceholder
	}
	for i, rows := range asciiFont8x8 {
		font[0x20+i] = expandRows8to14(rows)
	}
	buildBoxDrawingGlyphs()
	buildBlockGlyphs()
	font[0x00] = glyphBitmap{}
}

// Glyph returns the bitmap for a CP437 codepoint.
func Glyph(code byte) glyphBitmap {
	return font[code]
}

// glyphPlaceholder fills codepoints this table does not have a dedicated
// shape for (0x01-0x1F, the whole accented-letter range 0x80-0xAF, the
// mixed single/double box-drawing glyphs, and 0xE0-0xFF) with a light,
// legible dot pattern rather than either
// a blank cell or a solid block, so unimplemented glyphs remain visually
// distinct from both space and full-block.
var glyphPlaceholder = func() glyphBitmap {
	var g glyphBitmap
	for r := 0; r < FontHeight; r++ {
		if r%2 == 0 {
			g[r] = 0b10101010
		} else {
			g[r] = 0b01010101
		}
	}
	return g
}()

// expandRows8to14 lifts an 8-row bitmap into the 14-row EGA cell, centered
// with three blank rows above and three below (descenders get none, which
// matches how the real 8x8 font has no descending glyphs to begin with).
func expandRows8to14(rows [8]byte) glyphBitmap {
	var g glyphBitmap
	for i, b := range rows {
		g[3+i] = b
	}
	return g
}

// buildBoxDrawingGlyphs synthesizes the single/double line and corner
// glyphs CP437 art relies on (roughly 0xB3-0xDA) from simple geometric
// rules: a centered vertical stroke, a mid-height horizontal stroke, and
// the four corner/junction combinations, rather than 70-some hand-entered
// literal bitmaps. Every stroke is one pixel wide: the double-line glyphs
// reuse the single-line shapes, and the mixed single/double glyphs are not
// built here (they keep the placeholder).
func buildBoxDrawingGlyphs() {
	const midCol = 1 << (FontWidth - 1 - 4) // column 4, centered-ish for an 8px cell
	const midRow = 6

	vLine := func() glyphBitmap {
		var g glyphBitmap
		for r := 0; r < FontHeight; r++ {
			g[r] = midCol
		}
		return g
	}
	hLine := func() glyphBitmap {
		var g glyphBitmap
		g[midRow] = 0xFF
		return g
	}
	cross := func(up, down, left, right bool) glyphBitmap {
		var g glyphBitmap
		for r := 0; r < FontHeight; r++ {
			if (up && r <= midRow) || (down && r >= midRow) {
				g[r] |= midCol
			}
		}
		if left || right {
			var rowBits byte
			if left {
				rowBits |= 0xF0 | midCol
			}
			if right {
				rowBits |= 0x0F | midCol
			}
			g[midRow] = rowBits
		}
		return g
	}

	// 0xB3 vertical single, 0xBA vertical double (approximated as the same
	// stroke; CP437's double-line variants are a refinement this table does
	// not distinguish from their single-line counterparts).
	font[0xB3] = vLine()
	font[0xBA] = vLine()

	// 0xC4 horizontal single, 0xCD horizontal double.
	font[0xC4] = hLine()
	font[0xCD] = hLine()

	// Corners and T-junctions, single-line set.
	font[0xDA] = cross(false, true, false, true)  // top-left corner ┌
	font[0xBF] = cross(false, true, true, false)  // top-right corner ┐
	font[0xC0] = cross(true, false, false, true)  // bottom-left corner └
	font[0xD9] = cross(true, false, true, false)  // bottom-right corner ┘
	font[0xC3] = cross(true, true, false, true)   // left T ├
	font[0xB4] = cross(true, true, true, false)   // right T ┤
	font[0xC2] = cross(false, true, true, true)   // top T ┬
	font[0xC1] = cross(true, false, true, true)   // bottom T ┴
	font[0xC5] = cross(true, true, true, true)    // cross ┼

	// Double-line set reuses the single-line shapes; see note above.
	font[0xC9] = font[0xDA]
	font[0xBB] = font[0xBF]
	font[0xC8] = font[0xC0]
	font[0xBC] = font[0xD9]
	font[0xCC] = font[0xC3]
	font[0xB9] = font[0xB4]
	font[0xCB] = font[0xC2]
	font[0xCA] = font[0xC1]
	font[0xCE] = font[0xC5]
}

// buildBlockGlyphs synthesizes the shade and block-element glyphs
// (0xB0-0xB2 light/medium/dark shade, 0xDB full block, 0xDC/0xDD/0xDE/0xDF
// half blocks) procedurally from their defining fill ratio or split point.
func buildBlockGlyphs() {
	shade := func(density int) glyphBitmap {
		var g glyphBitmap
		for r := 0; r < FontHeight; r++ {
			var row byte
			for c := 0; c < FontWidth; c++ {
				if (r*FontWidth+c)%4 < density {
					row |= 1 << uint(FontWidth-1-c)
				}
			}
			g[r] = row
		}
		return g
	}
	font[0xB0] = shade(1) // light shade, ~25%
	font[0xB1] = shade(2) // medium shade, ~50%
	font[0xB2] = shade(3) // dark shade, ~75%

	full := glyphBitmap{}
	for r := range full {
		full[r] = 0xFF
	}
	font[0xDB] = full // full block

	lowerHalf := glyphBitmap{}
	for r := FontHeight / 2; r < FontHeight; r++ {
		lowerHalf[r] = 0xFF
	}
	font[0xDC] = lowerHalf // lower half block

	leftHalf := glyphBitmap{}
	for r := range leftHalf {
		leftHalf[r] = 0xF0
	}
	font[0xDD] = leftHalf // left half block

	rightHalf := glyphBitmap{}
	for r := range rightHalf {
		rightHalf[r] = 0x0F
	}
	font[0xDE] = rightHalf // right half block

	upperHalf := glyphBitmap{}
	for r := 0; r < FontHeight/2; r++ {
		upperHalf[r] = 0xFF
	}
	font[0xDF] = upperHalf // upper half block
}

// asciiFont8x8 is the well-known public-domain 8x8 bitmap font for the
// printable ASCII range 0x20-0x7E, reused here as the base for CP437's
// identical ASCII subset before expansion into the 14-row EGA cell.
var asciiFont8x8 = [0x7F - 0x20 + 1][8]byte{
	0x20 - 0x20: {}, // space
	'!' - 0x20:  {0x18, 0x3C, 0x3C, 0x18, 0x18, 0x00, 0x18, 0x00},
	'"' - 0x20:  {0x36, 0x36, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'#' - 0x20:  {0x36, 0x36, 0x7F, 0x36, 0x7F, 0x36, 0x36, 0x00},
	'$' - 0x20:  {0x0C, 0x3E, 0x03, 0x1E, 0x30, 0x1F, 0x0C, 0x00},
	'%' - 0x20:  {0x00, 0x63, 0x33, 0x18, 0x0C, 0x66, 0x63, 0x00},
	'&' - 0x20:  {0x1C, 0x36, 0x1C, 0x6E, 0x3B, 0x33, 0x6E, 0x00},
	'\'' - 0x20: {0x18, 0x18, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00},
	'(' - 0x20:  {0x0C, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0C, 0x00},
	')' - 0x20:  {0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x18, 0x30, 0x00},
	'*' - 0x20:  {0x00, 0x66, 0x3C, 0xFF, 0x3C, 0x66, 0x00, 0x00},
	'+' - 0x20:  {0x00, 0x0C, 0x0C, 0x3F, 0x0C, 0x0C, 0x00, 0x00},
	',' - 0x20:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C, 0x06},
	'-' - 0x20:  {0x00, 0x00, 0x00, 0x3F, 0x00, 0x00, 0x00, 0x00},
	'.' - 0x20:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C, 0x00},
	'/' - 0x20:  {0x60, 0x30, 0x18, 0x0C, 0x06, 0x03, 0x01, 0x00},
	'0' - 0x20:  {0x3E, 0x63, 0x73, 0x7B, 0x6F, 0x67, 0x3E, 0x00},
	'1' - 0x20:  {0x0C, 0x0E, 0x0C, 0x0C, 0x0C, 0x0C, 0x3F, 0x00},
	'2' - 0x20:  {0x1E, 0x33, 0x30, 0x1C, 0x06, 0x33, 0x3F, 0x00},
	'3' - 0x20:  {0x1E, 0x33, 0x30, 0x1C, 0x30, 0x33, 0x1E, 0x00},
	'4' - 0x20:  {0x38, 0x3C, 0x36, 0x33, 0x7F, 0x30, 0x78, 0x00},
	'5' - 0x20:  {0x3F, 0x03, 0x1F, 0x30, 0x30, 0x33, 0x1E, 0x00},
	'6' - 0x20:  {0x1C, 0x06, 0x03, 0x1F, 0x33, 0x33, 0x1E, 0x00},
	'7' - 0x20:  {0x3F, 0x33, 0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x00},
	'8' - 0x20:  {0x1E, 0x33, 0x33, 0x1E, 0x33, 0x33, 0x1E, 0x00},
	'9' - 0x20:  {0x1E, 0x33, 0x33, 0x3E, 0x30, 0x18, 0x0E, 0x00},
	':' - 0x20:  {0x00, 0x0C, 0x0C, 0x00, 0x00, 0x0C, 0x0C, 0x00},
	';' - 0x20:  {0x00, 0x0C, 0x0C, 0x00, 0x00, 0x0C, 0x0C, 0x06},
	'<' - 0x20:  {0x18, 0x0C, 0x06, 0x03, 0x06, 0x0C, 0x18, 0x00},
	'=' - 0x20:  {0x00, 0x00, 0x3F, 0x00, 0x3F, 0x00, 0x00, 0x00},
	'>' - 0x20:  {0x06, 0x0C, 0x18, 0x30, 0x18, 0x0C, 0x06, 0x00},
	'?' - 0x20:  {0x1E, 0x33, 0x30, 0x18, 0x0C, 0x00, 0x0C, 0x00},
	'@' - 0x20:  {0x3E, 0x63, 0x7B, 0x7B, 0x7B, 0x03, 0x1E, 0x00},
	'A' - 0x20:  {0x0C, 0x1E, 0x33, 0x33, 0x3F, 0x33, 0x33, 0x00},
	'B' - 0x20:  {0x3F, 0x66, 0x66, 0x3E, 0x66, 0x66, 0x3F, 0x00},
	'C' - 0x20:  {0x3C, 0x66, 0x03, 0x03, 0x03, 0x66, 0x3C, 0x00},
	'D' - 0x20:  {0x1F, 0x36, 0x66, 0x66, 0x66, 0x36, 0x1F, 0x00},
	'E' - 0x20:  {0x7F, 0x46, 0x16, 0x1E, 0x16, 0x46, 0x7F, 0x00},
	'F' - 0x20:  {0x7F, 0x46, 0x16, 0x1E, 0x16, 0x06, 0x0F, 0x00},
	'G' - 0x20:  {0x3C, 0x66, 0x03, 0x03, 0x73, 0x66, 0x7C, 0x00},
	'H' - 0x20:  {0x33, 0x33, 0x33, 0x3F, 0x33, 0x33, 0x33, 0x00},
	'I' - 0x20:  {0x1E, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C, 0x1E, 0x00},
	'J' - 0x20:  {0x78, 0x30, 0x30, 0x30, 0x33, 0x33, 0x1E, 0x00},
	'K' - 0x20:  {0x67, 0x66, 0x36, 0x1E, 0x36, 0x66, 0x67, 0x00},
	'L' - 0x20:  {0x0F, 0x06, 0x06, 0x06, 0x46, 0x66, 0x7F, 0x00},
	'M' - 0x20:  {0x63, 0x77, 0x7F, 0x7F, 0x6B, 0x63, 0x63, 0x00},
	'N' - 0x20:  {0x63, 0x67, 0x6F, 0x7B, 0x73, 0x63, 0x63, 0x00},
	'O' - 0x20:  {0x1C, 0x36, 0x63, 0x63, 0x63, 0x36, 0x1C, 0x00},
	'P' - 0x20:  {0x3F, 0x66, 0x66, 0x3E, 0x06, 0x06, 0x0F, 0x00},
	'Q' - 0x20:  {0x1E, 0x33, 0x33, 0x33, 0x3B, 0x1E, 0x38, 0x00},
	'R' - 0x20:  {0x3F, 0x66, 0x66, 0x3E, 0x36, 0x66, 0x67, 0x00},
	'S' - 0x20:  {0x1E, 0x33, 0x07, 0x0E, 0x38, 0x33, 0x1E, 0x00},
	'T' - 0x20:  {0x3F, 0x2D, 0x0C, 0x0C, 0x0C, 0x0C, 0x1E, 0x00},
	'U' - 0x20:  {0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0x3F, 0x00},
	'V' - 0x20:  {0x33, 0x33, 0x33, 0x33, 0x33, 0x1E, 0x0C, 0x00},
	'W' - 0x20:  {0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00},
	'X' - 0x20:  {0x63, 0x63, 0x36, 0x1C, 0x1C, 0x36, 0x63, 0x00},
	'Y' - 0x20:  {0x33, 0x33, 0x33, 0x1E, 0x0C, 0x0C, 0x1E, 0x00},
	'Z' - 0x20:  {0x7F, 0x63, 0x31, 0x18, 0x4C, 0x66, 0x7F, 0x00},
	'[' - 0x20:  {0x1E, 0x06, 0x06, 0x06, 0x06, 0x06, 0x1E, 0x00},
	'\\' - 0x20: {0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x40, 0x00},
	']' - 0x20:  {0x1E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x1E, 0x00},
	'^' - 0x20:  {0x08, 0x1C, 0x36, 0x63, 0x00, 0x00, 0x00, 0x00},
	'_' - 0x20:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF},
	'`' - 0x20:  {0x0C, 0x0C, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00},
	'a' - 0x20:  {0x00, 0x00, 0x1E, 0x30, 0x3E, 0x33, 0x6E, 0x00},
	'b' - 0x20:  {0x07, 0x06, 0x06, 0x3E, 0x66, 0x66, 0x3B, 0x00},
	'c' - 0x20:  {0x00, 0x00, 0x1E, 0x33, 0x03, 0x33, 0x1E, 0x00},
	'd' - 0x20:  {0x38, 0x30, 0x30, 0x3E, 0x33, 0x33, 0x6E, 0x00},
	'e' - 0x20:  {0x00, 0x00, 0x1E, 0x33, 0x3F, 0x03, 0x1E, 0x00},
	'f' - 0x20:  {0x1C, 0x36, 0x06, 0x0F, 0x06, 0x06, 0x0F, 0x00},
	'g' - 0x20:  {0x00, 0x00, 0x6E, 0x33, 0x33, 0x3E, 0x30, 0x1F},
	'h' - 0x20:  {0x07, 0x06, 0x36, 0x6E, 0x66, 0x66, 0x67, 0x00},
	'i' - 0x20:  {0x0C, 0x00, 0x0E, 0x0C, 0x0C, 0x0C, 0x1E, 0x00},
	'j' - 0x20:  {0x30, 0x00, 0x30, 0x30, 0x30, 0x33, 0x33, 0x1E},
	'k' - 0x20:  {0x07, 0x06, 0x66, 0x36, 0x1E, 0x36, 0x67, 0x00},
	'l' - 0x20:  {0x0E, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C, 0x1E, 0x00},
	'm' - 0x20:  {0x00, 0x00, 0x33, 0x7F, 0x7F, 0x6B, 0x63, 0x00},
	'n' - 0x20:  {0x00, 0x00, 0x1F, 0x33, 0x33, 0x33, 0x33, 0x00},
	'o' - 0x20:  {0x00, 0x00, 0x1E, 0x33, 0x33, 0x33, 0x1E, 0x00},
	'p' - 0x20:  {0x00, 0x00, 0x3B, 0x66, 0x66, 0x3E, 0x06, 0x0F},
	'q' - 0x20:  {0x00, 0x00, 0x6E, 0x33, 0x33, 0x3E, 0x30, 0x78},
	'r' - 0x20:  {0x00, 0x00, 0x3B, 0x6E, 0x66, 0x06, 0x0F, 0x00},
	's' - 0x20:  {0x00, 0x00, 0x3E, 0x03, 0x1E, 0x30, 0x1F, 0x00},
	't' - 0x20:  {0x08, 0x0C, 0x3E, 0x0C, 0x0C, 0x2C, 0x18, 0x00},
	'u' - 0x20:  {0x00, 0x00, 0x33, 0x33, 0x33, 0x33, 0x6E, 0x00},
	'v' - 0x20:  {0x00, 0x00, 0x33, 0x33, 0x33, 0x1E, 0x0C, 0x00},
	'w' - 0x20:  {0x00, 0x00, 0x63, 0x6B, 0x7F, 0x7F, 0x36, 0x00},
	'x' - 0x20:  {0x00, 0x00, 0x63, 0x36, 0x1C, 0x36, 0x63, 0x00},
	'y' - 0x20:  {0x00, 0x00, 0x33, 0x33, 0x33, 0x3E, 0x30, 0x1F},
	'z' - 0x20:  {0x00, 0x00, 0x3F, 0x19, 0x0C, 0x26, 0x3F, 0x00},
	'{' - 0x20:  {0x38, 0x0C, 0x0C, 0x07, 0x0C, 0x0C, 0x38, 0x00},
	'|' - 0x20:  {0x18, 0x18, 0x18, 0x00, 0x18, 0x18, 0x18, 0x00},
	'}' - 0x20:  {0x07, 0x0C, 0x0C, 0x38, 0x0C, 0x0C, 0x07, 0x00},
	'~' - 0x20:  {0x6E, 0x3B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}
