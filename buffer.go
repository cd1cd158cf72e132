package term437

// Buffer is the screen-buffer module of spec.md §3/§4.2: an 80x25 Grid, the
// cursor, the saved-cursor slot, the current pen, cursor visibility, and
// damage tracking, all mutated only through the primitive operations below.
//
// Unlike the teacher buffer this is adapted from, Buffer carries no mutex.
// spec.md §5 mandates a single-threaded cooperative core with "no
// parallelism and no locking" — all mutation happens on the host's main
// thread, driven by Parser.Feed or these methods directly.
type Buffer struct {
	Grid          *Grid
	Cursor        Cursor
	Saved         SavedCursor
	Pen           Pen
	Damage        *Damage
	CursorVisible bool
}

// NewBuffer returns a freshly initialized buffer: default cells, cursor at
// (0,0) with pending-wrap clear, default pen, cursor visible, everything
// damaged.
func NewBuffer() *Buffer {
	return &Buffer{
		Grid:          NewGrid(),
		Pen:           DefaultPen(),
		Damage:        NewDamage(),
		CursorVisible: true,
	}
}

// --- cursor positioning ---

// MoveTo sets the cursor to an absolute, clamped (row, col) and clears
// pending-wrap, matching CSI H/f semantics.
func (b *Buffer) MoveTo(row, col int) {
	b.Cursor.Row = clamp(row, Rows-1)
	b.Cursor.Col = clamp(col, Cols-1)
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// CursorUp moves the cursor up n rows, clamped at row 0 (CSI A).
func (b *Buffer) CursorUp(n int) {
	b.Cursor.Row = clamp(b.Cursor.Row-n, Rows-1)
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// CursorDown moves the cursor down n rows, clamped at the last row (CSI B).
func (b *Buffer) CursorDown(n int) {
	b.Cursor.Row = clamp(b.Cursor.Row+n, Rows-1)
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// CursorForward moves the cursor right n columns, clamped at the last
// column (CSI C).
func (b *Buffer) CursorForward(n int) {
	b.Cursor.Col = clamp(b.Cursor.Col+n, Cols-1)
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// CursorBack moves the cursor left n columns, clamped at column 0 (CSI D).
func (b *Buffer) CursorBack(n int) {
	b.Cursor.Col = clamp(b.Cursor.Col-n, Cols-1)
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// --- control characters (Ground state) ---

// Backspace moves the cursor left one column, clamped (BS, 0x08).
func (b *Buffer) Backspace() {
	b.CursorBack(1)
}

// Tab advances the cursor to the next multiple of 8, clamped to column 79
// (HT, 0x09).
func (b *Buffer) Tab() {
	next := (b.Cursor.Col/8 + 1) * 8
	b.Cursor.Col = clamp(next, Cols-1)
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// CarriageReturn sets the column to 0 (CR, 0x0D).
func (b *Buffer) CarriageReturn() {
	b.Cursor.Col = 0
	b.Cursor.PendingWrap = false
	b.Damage.MarkCursor()
}

// LineFeed moves the cursor down one row, scrolling if it was already on
// the last row (LF, 0x0A).
func (b *Buffer) LineFeed() {
	if b.Cursor.Row == Rows-1 {
		b.ScrollUp(1)
		b.Damage.MarkCursor()
		return
	}
	b.Cursor.Row++
	b.Damage.MarkCursor()
}

// --- writing ---

// Write stamps glyph at the cursor using the current pen, then advances the
// cursor per the pending-wrap rule (spec.md §4.1): writing column 79 sets
// PendingWrap instead of moving past it; the next Write clears PendingWrap,
// performs an implicit CR+LF, and only then writes.
func (b *Buffer) Write(glyph byte) {
	if b.Cursor.PendingWrap {
		b.Cursor.PendingWrap = false
		b.CarriageReturn()
		b.LineFeed()
	}
	b.stamp(glyph)
	if b.Cursor.Col == Cols-1 {
		b.Cursor.PendingWrap = true
		return
	}
	b.Cursor.Col++
}

func (b *Buffer) stamp(glyph byte) {
	pen := b.Pen
	if pen.Attrs.Has(AttrReverse) {
		pen.Fg, pen.Bg = pen.Bg, pen.Fg
	}
	cell := FromPen(glyph, pen)
	b.Grid.Set(b.Cursor.Row, b.Cursor.Col, cell)
	b.Damage.MarkRow(b.Cursor.Row)
}

// --- erase ---

// EraseDisplayMode selects which part of the screen CSI J clears.
type EraseDisplayMode int

const (
	EraseCursorToEnd EraseDisplayMode = iota
	EraseStartToCursor
	EraseEntireDisplay
)

// EraseDisplay implements CSI J. The cursor position is never changed by
// any mode, per spec.md §4.1.
func (b *Buffer) EraseDisplay(mode EraseDisplayMode) {
	d := DefaultCell()
	switch mode {
	case EraseCursorToEnd:
		b.eraseRange(b.Cursor.Row, b.Cursor.Col, Rows-1, Cols-1, d)
	case EraseStartToCursor:
		b.eraseRange(0, 0, b.Cursor.Row, b.Cursor.Col, d)
	case EraseEntireDisplay:
		b.Grid.Reset()
		b.Damage.MarkAll()
	}
}

// eraseRange clears cells from (fromRow, fromCol) to (toRow, toCol)
// inclusive, in row-major reading order.
func (b *Buffer) eraseRange(fromRow, fromCol, toRow, toCol int, fill Cell) {
	for r := fromRow; r <= toRow; r++ {
		startCol, endCol := 0, Cols-1
		if r == fromRow {
			startCol = fromCol
		}
		if r == toRow {
			endCol = toCol
		}
		for c := startCol; c <= endCol; c++ {
			b.Grid.Set(r, c, fill)
		}
		b.Damage.MarkRow(r)
	}
}

// EraseLineMode selects which part of the current line CSI K clears.
type EraseLineMode int

const (
	EraseLineCursorToEOL EraseLineMode = iota
	EraseLineBOLToCursor
	EraseLineEntire
)

// EraseLine implements CSI K.
func (b *Buffer) EraseLine(mode EraseLineMode) {
	d := DefaultCell()
	row := b.Cursor.Row
	switch mode {
	case EraseLineCursorToEOL:
		for c := b.Cursor.Col; c < Cols; c++ {
			b.Grid.Set(row, c, d)
		}
	case EraseLineBOLToCursor:
		for c := 0; c <= b.Cursor.Col; c++ {
			b.Grid.Set(row, c, d)
		}
	case EraseLineEntire:
		for c := 0; c < Cols; c++ {
			b.Grid.Set(row, c, d)
		}
	}
	b.Damage.MarkRow(row)
}

// --- scroll ---

// ScrollUp discards row 0, shifts every other row up by one, and fills the
// new bottom row with default cells, marking every row damaged (spec.md
// §4.1's scroll rule).
func (b *Buffer) ScrollUp(n int) {
	for i := 0; i < n; i++ {
		b.Grid.ScrollUp(DefaultCell())
	}
	b.Damage.MarkAll()
}

// --- pen / SGR ---

// SetPen replaces the current pen wholesale. The parser does not call it:
// SGR handling mutates the Pen's fields directly.
func (b *Buffer) SetPen(p Pen) {
	b.Pen = p
}

// ResetPen resets the pen to defaults (SGR 0).
func (b *Buffer) ResetPen() {
	b.Pen.Reset()
}

// --- save/restore ---

// SaveCursor snapshots position, pending-wrap and the current pen (CSI s).
// Unlike the teacher this is adapted from, the saved pen is part of the
// snapshot: spec.md §3/§8 requires ESC[u to restore "both cursor and pen
// exactly".
func (b *Buffer) SaveCursor() {
	b.Saved = SavedCursor{Cursor: b.Cursor, Pen: b.Pen, IsSet: true}
}

// RestoreCursor restores the saved cursor and pen (CSI u). If nothing was
// ever saved, it restores to (0,0) with the default pen, per spec.md §4.1.
func (b *Buffer) RestoreCursor() {
	if !b.Saved.IsSet {
		b.Cursor = Cursor{}
		b.Pen = DefaultPen()
		b.Damage.MarkCursor()
		return
	}
	b.Cursor = b.Saved.Cursor
	b.Pen = b.Saved.Pen
	b.Damage.MarkCursor()
}

// --- visibility ---

// SetCursorVisible implements CSI ?25h/l. It never mutates the grid, only
// the render-time hint (spec.md §9).
func (b *Buffer) SetCursorVisible(visible bool) {
	b.CursorVisible = visible
}
