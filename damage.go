package term437

// Damage tracks which rows have a cell whose visible value changed since
// the last paint, plus a separate cursor-moved flag. spec.md §4.2: "Every
// mutation changing a cell's visible value sets row-damage bit; cursor
// moves set a separate cursor_damage flag (not cell damage) so the renderer
// repaints old and new cursor positions." Per-row granularity is the
// coarser of the two options spec.md §3 allows ("per-row (25 bits) or
// per-cell (2000 bits)"); per-cell is a drop-in refinement, not required for
// correctness (spec.md §4.3 design note).
type Damage struct {
	rows       [Rows]bool
	cursor     bool
	prevCursor [2]int // row, col of the cursor at the last paint
}

// NewDamage returns a Damage with every row marked dirty, matching the
// "all cells dirty initially" invariant of spec.md §3.
func NewDamage() *Damage {
	d := &Damage{}
	d.MarkAll()
	return d
}

// MarkRow marks a single row dirty.
func (d *Damage) MarkRow(row int) {
	d.rows[row] = true
}

// MarkAll marks every row dirty (used on ESC[2J-style full repaints and on
// first paint).
func (d *Damage) MarkAll() {
	for i := range d.rows {
		d.rows[i] = true
	}
}

// MarkCursor flags that the cursor moved since the last paint.
func (d *Damage) MarkCursor() {
	d.cursor = true
}

// DirtyRow reports whether row needs repainting.
func (d *Damage) DirtyRow(row int) bool {
	return d.rows[row]
}

// CursorMoved reports whether the cursor moved since the last paint.
func (d *Damage) CursorMoved() bool {
	return d.cursor
}

// Clear resets all dirty state after a paint, per spec.md §4.3's damage
// discipline ("damage cleared after paint").
func (d *Damage) Clear(cursorRow, cursorCol int) {
	for i := range d.rows {
		d.rows[i] = false
	}
	d.cursor = false
	d.prevCursor = [2]int{cursorRow, cursorCol}
}

// PrevCursor returns the cursor position as of the last Clear call, so the
// renderer can repaint the cell the cursor used to occupy.
func (d *Damage) PrevCursor() (row, col int) {
	return d.prevCursor[0], d.prevCursor[1]
}
