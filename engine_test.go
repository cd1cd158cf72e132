package term437

import (
	"context"
	"testing"
)

func TestNewRejectsUnknownPalette(t *testing.T) {
	_, err := New(Options{Palette: "notareal palette"})
	if err == nil {
		t.Fatalf("expected a ConfigurationError for an unknown palette")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("error type = %T, want *ConfigurationError", err)
	}
}

func TestNewRejectsNegativeScrollback(t *testing.T) {
	_, err := New(Options{ScrollbackLines: -1})
	if err == nil {
		t.Fatalf("expected a ConfigurationError for negative scrollback_lines")
	}
}

func TestDisposeWritesDisconnectMessageAndLocksEngine(t *testing.T) {
	e := newTestEngine(t)
	feed(e, "hello")
	e.Dispose()

	want := "Server Disconnected"
	for i := 0; i < len(want); i++ {
		if got := e.Buffer.Grid.At(Rows-1, i).Glyph; got != want[i] {
			t.Fatalf("disconnect message byte %d = %q, want %q", i, got, want[i])
		}
	}
	if e.Buffer.Pen != DefaultPen() {
		t.Fatalf("pen after Dispose = %+v, want default", e.Buffer.Pen)
	}

	before := e.Buffer.Grid.At(0, 0)
	feed(e, "ignored")
	if e.Buffer.Grid.At(0, 0) != before {
		t.Fatalf("Feed after Dispose mutated the grid")
	}
}

func TestPlayImmediatePaintsOnce(t *testing.T) {
	e := newTestEngine(t)
	paints := 0
	e.Play(context.Background(), []byte("hello"), func() { paints++ })
	if paints != 1 {
		t.Fatalf("immediate Play painted %d times, want 1", paints)
	}
	if e.Buffer.Grid.At(0, 0).Glyph != 'h' {
		t.Fatalf("immediate Play did not feed data")
	}
}
