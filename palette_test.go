package term437

import "testing"

func TestPaletteBaseSixteenValues(t *testing.T) {
	want := []RGB{
		{0x00, 0x00, 0x00}, {0xAA, 0x00, 0x00}, {0x00, 0xAA, 0x00}, {0xAA, 0x55, 0x00},
		{0x00, 0x00, 0xAA}, {0xAA, 0x00, 0xAA}, {0x00, 0xAA, 0xAA}, {0xAA, 0xAA, 0xAA},
	}
	for i, c := range want {
		if VGAPalette[i] != c {
			t.Fatalf("VGAPalette[%d] = %+v, want %+v", i, VGAPalette[i], c)
		}
	}
}

func TestPaletteBrightVariants(t *testing.T) {
	if VGAPalette[8] != (RGB{0x55, 0x55, 0x55}) {
		t.Fatalf("bright black = %+v, want 0x55,0x55,0x55", VGAPalette[8])
	}
	if VGAPalette[9] != (RGB{0xFF, 0x55, 0x55}) {
		t.Fatalf("bright red = %+v, want 0xFF,0x55,0x55", VGAPalette[9])
	}
}

func TestParsePaletteNameDefaultsToVGA(t *testing.T) {
	p, err := ParsePaletteName("")
	if err != nil || p != VGAPalette {
		t.Fatalf("empty palette name did not default to VGA")
	}
}

func TestParsePaletteNameRejectsUnknown(t *testing.T) {
	if _, err := ParsePaletteName("ega"); err == nil {
		t.Fatalf("expected an error for an unknown palette name")
	}
}
