package term437

import "fmt"

// RGB is one opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Palette is a 16-entry color table indexed by the low 4 bits of a Cell's
// Fg or Bg (0-7 normal, 8-15 bright).
type Palette [16]RGB

// bright applies the classic "+0x55 per nonzero channel, bright black is
// 0x55,0x55,0x55" EGA/VGA brightening rule used to derive entries 8-15 from
// 0-7.
func bright(c RGB) RGB {
	lift := func(v uint8) uint8 {
		if v == 0 {
			return 0x55
		}
		return v + 0x55
	}
	if c == (RGB{}) {
		return RGB{0x55, 0x55, 0x55}
	}
	return RGB{lift(c.R), lift(c.G), lift(c.B)}
}

func baseSixteen() [8]RGB {
	return [8]RGB{
		{0x00, 0x00, 0x00}, // black
		{0xAA, 0x00, 0x00}, // red
		{0x00, 0xAA, 0x00}, // green
		{0xAA, 0x55, 0x00}, // yellow (brown)
		{0x00, 0x00, 0xAA}, // blue
		{0xAA, 0x00, 0xAA}, // magenta
		{0x00, 0xAA, 0xAA}, // cyan
		{0xAA, 0xAA, 0xAA}, // light grey
	}
}

func makeSixteenPalette() Palette {
	base := baseSixteen()
	var p Palette
	for i, c := range base {
		p[i] = c
		p[i+8] = bright(c)
	}
	return p
}

// VGAPalette and CGAPalette are the two 16-entry palettes spec.md names.
// On real EGA/VGA hardware the 16-color text-mode table is identical
// between the two adapters; they are kept as distinct named values here so
// Options.Palette selects between two concrete tables, matching spec.md §6's
// "palette (CGA|VGA, default VGA)" option, and so a future divergence (e.g.
// a CGA-composite variant) has somewhere to live without touching callers.
var (
	VGAPalette = makeSixteenPalette()
	CGAPalette = makeSixteenPalette()
)

// ParsePaletteName resolves the "CGA"/"VGA" option string spec.md §6
// describes. An unrecognized name is a configuration error per spec.md §7.
func ParsePaletteName(name string) (Palette, error) {
	switch name {
	case "", "VGA", "vga":
		return VGAPalette, nil
	case "CGA", "cga":
		return CGAPalette, nil
	default:
		return Palette{}, fmt.Errorf("term437: unknown palette %q", name)
	}
}
