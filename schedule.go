package term437

import (
	"context"
	"time"
)

// Scheduler computes baud-rate playback timing for a byte buffer: spec.md
// §4.4's model of bytes-per-second = bps/10 (8 data bits plus one start and
// one stop bit per byte). A zero BPS means immediate: Playback releases the
// whole buffer on its first Tick.
type Scheduler struct {
	BPS int
}

// Schedule returns a Playback over data using the scheduler's configured
// baud rate.
func (s *Scheduler) Schedule(data []byte) *Playback {
	return &Playback{data: data, bps: s.BPS}
}

// Playback tracks how much of a byte buffer has been released to the
// parser so far.
type Playback struct {
	data     []byte
	bps      int
	consumed int
}

// Tick releases every byte whose full transmission time has passed by
// elapsed, and returns the newly released bytes (possibly none). With
// bpsPerMs = bps/10000, byte i is released once (i+1) / bpsPerMs
// milliseconds have elapsed, so after elapsed ms the first
// int(elapsed * bpsPerMs) bytes are out (2400 bps: 120 bytes at 500ms).
func (pb *Playback) Tick(elapsed time.Duration) []byte {
	if pb.Done() {
		return nil
	}
	if pb.bps <= 0 {
		out := pb.data[pb.consumed:]
		pb.consumed = len(pb.data)
		return out
	}
	elapsedMs := float64(elapsed) / float64(time.Millisecond)
	bpsPerMs := float64(pb.bps) / 10000.0
	target := int(elapsedMs * bpsPerMs)
	if target > len(pb.data) {
		target = len(pb.data)
	}
	if target <= pb.consumed {
		return nil
	}
	out := pb.data[pb.consumed:target]
	pb.consumed = target
	return out
}

// Done reports whether every byte has been released.
func (pb *Playback) Done() bool {
	return pb.consumed >= len(pb.data)
}

// DefaultFrameInterval is the pacing the ticker loop below drives feed/paint
// at when a host doesn't supply its own animation clock. It has no bearing
// on the baud math itself, only on how often Tick gets a chance to advance.
const DefaultFrameInterval = 16 * time.Millisecond

// Run drives a Playback to completion on a ticker, calling feed with each
// tick's newly released bytes (skipped when empty) and paint exactly once
// per tick, until the playback finishes or ctx is canceled. This is the
// scheduler's concrete host loop, grounded on the teacher's
// RenderLoop (a time.Ticker plus a stop channel); ctx cancellation plays
// the stop channel's role, so "clearing container or starting new render"
// (spec.md §4.4) is a single ctx cancel with no further tick running after
// it.
func (pb *Playback) Run(ctx context.Context, frameInterval time.Duration, feed func([]byte), paint func()) {
	start := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			chunk := pb.Tick(now.Sub(start))
			if len(chunk) > 0 {
				feed(chunk)
			}
			paint()
			if pb.Done() {
				return
			}
		}
	}
}
