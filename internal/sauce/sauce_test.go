package sauce

import "testing"

func buildRecord(title, author, group string, flags byte) []byte {
	b := make([]byte, recordSize)
	copy(b[0:5], id)
	copy(b[5:7], "00")
	copy(b[7:42], title)
	copy(b[42:62], author)
	copy(b[62:82], group)
	b[105] = flags
	return b
}

func TestParseFindsTrailer(t *testing.T) {
	data := append([]byte("artwork bytes here"), buildRecord("Cool Art", "Someone", "A Group", 0x01)...)
	rec, ok := Parse(data)
	if !ok {
		t.Fatalf("expected a SAUCE record to be found")
	}
	if rec.Title != "Cool Art" || rec.Author != "Someone" || rec.Group != "A Group" {
		t.Fatalf("parsed fields = %+v", rec)
	}
	if !rec.ICEColors {
		t.Fatalf("expected ICEColors true for flags 0x01")
	}
}

func TestParseNoTrailer(t *testing.T) {
	if _, ok := Parse([]byte("just some plain ansi art, no trailer")); ok {
		t.Fatalf("expected no SAUCE record to be found")
	}
}

func TestParseTooShort(t *testing.T) {
	if _, ok := Parse([]byte("short")); ok {
		t.Fatalf("expected false for input shorter than a record")
	}
}
