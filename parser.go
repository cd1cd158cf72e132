package term437

import "strconv"

// parserState is the three-state machine spec.md §3/§4.1 describes: Ground,
// Escape, CSI. There is no OSC state and no UTF-8 decoding here — spec.md's
// Non-goals rule out a Unicode input path, so every Ground-state byte that
// isn't one of the six recognized control codes (ESC, BS, HT, LF, CR, BEL)
// is a direct CP437 glyph
// index, never a multi-byte sequence start.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
)

const maxParams = 16

// Parser is the byte-driven state machine that turns a stream of CP437
// bytes and ANSI/VT100 escape sequences into mutations of a Buffer. It is
// lossless for every sequence spec.md's CSI/SGR tables recognize and
// silently discards anything else without leaking partial state (spec.md
// §4.1's failure semantics).
type Parser struct {
	buf   *Buffer
	state parserState

	params       [maxParams]int
	paramPresent [maxParams]bool
	curIdx       int // index of the param currently being accumulated
	atStart      bool
	private      byte

	responses []byte
}

// NewParser returns a parser that mutates buf.
func NewParser(buf *Buffer) *Parser {
	return &Parser{buf: buf}
}

// Feed processes data in strict order. A full call to Feed is one
// uninterrupted unit (spec.md §5): no mutation from a later byte in data is
// visible before an earlier one's.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.feedByte(b)
	}
}

// TakeResponses drains and clears the outbound DSR/DA response queue a
// networking collaborator is expected to forward to the remote end
// (spec.md §6).
func (p *Parser) TakeResponses() []byte {
	if len(p.responses) == 0 {
		return nil
	}
	out := p.responses
	p.responses = nil
	return out
}

func (p *Parser) feedByte(b byte) {
	switch p.state {
	case stateGround:
		p.feedGround(b)
	case stateEscape:
		p.feedEscape(b)
	case stateCSI:
		p.feedCSI(b)
	}
}

func (p *Parser) feedGround(b byte) {
	switch b {
	case 0x1B: // ESC
		p.state = stateEscape
	case 0x08: // BS
		p.buf.Backspace()
	case 0x09: // HT
		p.buf.Tab()
	case 0x0A: // LF
		p.buf.LineFeed()
	case 0x0D: // CR
		p.buf.CarriageReturn()
	case 0x07: // BEL
		// ignored per spec.md §4.1
	default:
		p.buf.Write(b)
	}
}

func (p *Parser) feedEscape(b byte) {
	if b == '[' {
		p.resetParams()
		p.state = stateCSI
		return
	}
	// Any other byte after ESC is unrecognized here: drop it and return to
	// Ground without mutating anything (spec.md §4.1).
	p.state = stateGround
}

func (p *Parser) resetParams() {
	p.params = [maxParams]int{}
	p.paramPresent = [maxParams]bool{}
	p.curIdx = 0
	p.atStart = true
	p.private = 0
}

func (p *Parser) feedCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.atStart = false
		if p.curIdx < maxParams {
			p.paramPresent[p.curIdx] = true
			v := p.params[p.curIdx]*10 + int(b-'0')
			if v > 65535 {
				v = 65535
			}
			p.params[p.curIdx] = v
		}
		// Digits past the 16th param are silently dropped (spec.md §3).
	case b == ';':
		p.atStart = false
		if p.curIdx < maxParams-1 {
			p.curIdx++
		} else {
			p.curIdx = maxParams // overflow sentinel: further digits dropped
		}
	case b == '?' && p.atStart:
		p.private = '?'
		p.atStart = false
	case b >= 0x40 && b <= 0x7E:
		p.dispatch(b)
		p.state = stateGround
	default:
		// Outside every recognized CSI transition: drop the sequence and
		// return to Ground without mutation (spec.md §4.1).
		p.state = stateGround
	}
}

// paramCount returns how many param slots were touched, capped at 16.
func (p *Parser) paramCount() int {
	n := p.curIdx + 1
	if n > maxParams {
		n = maxParams
	}
	return n
}

// param returns param i, or def if i is beyond what was sent or that slot
// was never given any digits ("omitted" per spec.md §3).
func (p *Parser) param(i, def int) int {
	if i < 0 || i >= maxParams || !p.paramPresent[i] {
		return def
	}
	return p.params[i]
}

func (p *Parser) dispatch(final byte) {
	switch final {
	case 'A':
		p.buf.CursorUp(p.param(0, 1))
	case 'B':
		p.buf.CursorDown(p.param(0, 1))
	case 'C':
		p.buf.CursorForward(p.param(0, 1))
	case 'D':
		p.buf.CursorBack(p.param(0, 1))
	case 'H', 'f':
		row := p.param(0, 1)
		col := p.param(1, 1)
		p.buf.MoveTo(row-1, col-1)
	case 'J':
		p.dispatchErase(p.param(0, 0))
	case 'K':
		p.dispatchEraseLine(p.param(0, 0))
	case 's':
		p.buf.SaveCursor()
	case 'u':
		p.buf.RestoreCursor()
	case 'n':
		p.dispatchDSR(p.param(0, 0))
	case 'c':
		p.queueResponse("\x1b[?1;0c")
	case 'h':
		p.dispatchMode(true)
	case 'l':
		p.dispatchMode(false)
	case 'm':
		p.dispatchSGR()
	}
}

func (p *Parser) dispatchErase(mode int) {
	switch mode {
	case 0:
		p.buf.EraseDisplay(EraseCursorToEnd)
	case 1:
		p.buf.EraseDisplay(EraseStartToCursor)
	case 2:
		p.buf.EraseDisplay(EraseEntireDisplay)
	}
}

func (p *Parser) dispatchEraseLine(mode int) {
	switch mode {
	case 0:
		p.buf.EraseLine(EraseLineCursorToEOL)
	case 1:
		p.buf.EraseLine(EraseLineBOLToCursor)
	case 2:
		p.buf.EraseLine(EraseLineEntire)
	}
}

func (p *Parser) dispatchDSR(code int) {
	switch code {
	case 6:
		row := p.buf.Cursor.Row + 1
		col := p.buf.Cursor.Col + 1
		p.queueResponse("\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "R")
	case 5:
		p.queueResponse("\x1b[0n")
	}
}

func (p *Parser) dispatchMode(set bool) {
	if p.private != '?' {
		return
	}
	if p.param(0, 0) == 25 {
		p.buf.SetCursorVisible(set)
	}
}

func (p *Parser) dispatchSGR() {
	n := p.paramCount()
	if n == 1 && !p.paramPresent[0] {
		// "ESC[m" with no digits at all means "ESC[0m".
		p.applySGR(0)
		return
	}
	for i := 0; i < n; i++ {
		p.applySGR(p.param(i, 0))
	}
}

func (p *Parser) applySGR(code int) {
	pen := &p.buf.Pen
	switch {
	case code == 0:
		pen.Reset()
	case code == 1:
		pen.Attrs |= AttrBold
	case code == 2:
		pen.Attrs |= AttrDim
	case code == 4:
		pen.Attrs |= AttrUnderline
	case code == 5:
		pen.Attrs |= AttrBlink
	case code == 7:
		pen.Attrs |= AttrReverse
	case code == 8:
		pen.Attrs |= AttrConceal
	case code == 22:
		pen.Attrs &^= AttrBold | AttrDim
	case code == 24:
		pen.Attrs &^= AttrUnderline
	case code == 25:
		pen.Attrs &^= AttrBlink
	case code == 27:
		pen.Attrs &^= AttrReverse
	case code == 39:
		pen.Fg = DefaultFg
	case code == 49:
		pen.Bg = DefaultBg
	case code >= 30 && code <= 37:
		pen.Fg = uint8(code - 30)
	case code >= 40 && code <= 47:
		pen.Bg = uint8(code - 40)
	case code >= 90 && code <= 97:
		pen.Fg = uint8(code-90) + 8
	case code >= 100 && code <= 107:
		pen.Bg = uint8(code-100) + 8
	}
}

func (p *Parser) queueResponse(s string) {
	p.responses = append(p.responses, []byte(s)...)
}
