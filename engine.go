package term437

import (
	"context"
	"image"
)

// Engine is the top-level entry point spec.md §6 describes: a Buffer,
// Parser, Renderer and Scheduler wired together behind Feed/Dispose/Render,
// plus the outbound DSR/DA response queue a networking collaborator drains.
// One Engine owns one container's worth of state for its whole lifetime;
// multiple Engines never communicate (spec.md §5).
type Engine struct {
	Buffer    *Buffer
	Parser    *Parser
	Renderer  *Renderer
	Scheduler *Scheduler

	bps      int
	disposed bool
}

// New validates opts and constructs a fully wired Engine, or returns a
// ConfigurationError with no Engine created (spec.md §7: "no partial engine
// created").
func New(opts Options) (*Engine, error) {
	pal, err := opts.Validate()
	if err != nil {
		return nil, err
	}
	buf := NewBuffer()
	renderer := NewRenderer(pal)
	renderer.ICEColors = opts.ICEColors
	return &Engine{
		Buffer:    buf,
		Parser:    NewParser(buf),
		Renderer:  renderer,
		Scheduler: &Scheduler{BPS: opts.BPS},
		bps:       opts.BPS,
	}, nil
}

// Feed delivers bytes to the parser in order. Once Dispose has run, Feed is
// a no-op: a disposed Engine is read-only (spec.md §6/§7).
func (e *Engine) Feed(data []byte) {
	if e.disposed {
		return
	}
	e.Parser.Feed(data)
}

// TakeResponses drains the outbound DSR/DA response queue a networking
// collaborator must forward to the remote end (spec.md §6).
func (e *Engine) TakeResponses() []byte {
	return e.Parser.TakeResponses()
}

// Dispose implements the networking collaborator's disconnect contract
// (spec.md §6): position the cursor at row 24 col 0, reset the pen to
// defaults, write the literal message "Server Disconnected", then lock the
// engine against further Feed calls. This is a state transition, not an
// error — the core does no I/O itself, so it has no failure to report
// (spec.md §7).
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.Buffer.MoveTo(Rows-1, 0)
	e.Buffer.Pen.Reset()
	const msg = "Server Disconnected"
	for i := 0; i < len(msg); i++ {
		e.Buffer.Write(msg[i])
	}
}

// Disposed reports whether Dispose has run.
func (e *Engine) Disposed() bool {
	return e.disposed
}

// NewImage allocates the RGBA surface Render paints into.
func (e *Engine) NewImage() *image.RGBA {
	return NewImage()
}

// Render paints the buffer's current damage into img.
func (e *Engine) Render(img *image.RGBA) {
	e.Renderer.Render(img, e.Buffer)
}

// Play drives data through the engine at the configured baud rate, calling
// paint after each chunk becomes visible. With no baud rate configured, the
// whole buffer is fed synchronously and paint is called exactly once
// (spec.md §4.4: "When bps unset: feed entire buffer synchronously in one
// shot, paint once."); otherwise playback is paced by a ticker until ctx is
// canceled or the buffer is exhausted, matching the scheduler's host loop.
func (e *Engine) Play(ctx context.Context, data []byte, paint func()) {
	if e.bps <= 0 {
		e.Feed(data)
		paint()
		return
	}
	pb := e.Scheduler.Schedule(data)
	pb.Run(ctx, DefaultFrameInterval, e.Feed, paint)
}
