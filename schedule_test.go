package term437

import (
	"context"
	"testing"
	"time"
)

func TestPlaybackImmediateReleasesAllAtOnce(t *testing.T) {
	s := &Scheduler{BPS: 0}
	data := make([]byte, 240)
	pb := s.Schedule(data)
	got := pb.Tick(0)
	if len(got) != len(data) {
		t.Fatalf("immediate tick released %d bytes, want %d", len(got), len(data))
	}
	if !pb.Done() {
		t.Fatalf("playback not done after immediate release")
	}
}

func TestPlaybackBaudPacing(t *testing.T) {
	// 2400 bps -> 240 bytes/sec -> at 500ms, at most 120 bytes consumed;
	// at 1100ms, all 240 bytes consumed (spec.md §8 scenario 6).
	s := &Scheduler{BPS: 2400}
	data := make([]byte, 240)
	pb := s.Schedule(data)

	released := pb.Tick(500 * time.Millisecond)
	if len(released) > 120 {
		t.Fatalf("at 500ms released %d bytes, want <= 120", len(released))
	}

	more := pb.Tick(1100 * time.Millisecond)
	total := len(released) + len(more)
	if total != 240 {
		t.Fatalf("at 1100ms total released = %d, want 240", total)
	}
	if !pb.Done() {
		t.Fatalf("playback not done at 1100ms for a 240 byte buffer at 2400bps")
	}
}

func TestPlaybackRunStopsOnCancel(t *testing.T) {
	s := &Scheduler{BPS: 300}
	data := make([]byte, 10000) // long enough to outlast the cancellation below
	pb := s.Schedule(data)

	ctx, cancel := context.WithCancel(context.Background())
	paints := 0
	done := make(chan struct{})
	go func() {
		pb.Run(ctx, time.Millisecond, func([]byte) {}, func() { paints++ })
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()
	<-done

	if pb.Done() {
		t.Fatalf("a 10000 byte buffer at 300bps should not finish within a few ms")
	}
}
