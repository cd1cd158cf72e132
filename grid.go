package term437

// Cols and Rows are the engine's fixed logical dimensions. spec.md's data
// model (§3) fixes these for the engine's lifetime: no resize, no reflow.
const (
	Cols = 80
	Rows = 25

	// CellCount is the invariant grid length spec.md §3 calls out by name.
	CellCount = Cols * Rows
)

// Grid is the 80x25 cell array, stored row-major so cells[row*Cols+col]
// addresses (row, col) directly.
type Grid struct {
	cells [CellCount]Cell
}

// NewGrid returns a grid filled with DefaultCell.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset fills every cell with DefaultCell.
func (g *Grid) Reset() {
	d := DefaultCell()
	for i := range g.cells {
		g.cells[i] = d
	}
}

func index(row, col int) int {
	return row*Cols + col
}

// At returns the cell at (row, col). Callers must keep row/col in range;
// Buffer is responsible for clamping before calling into Grid.
func (g *Grid) At(row, col int) Cell {
	return g.cells[index(row, col)]
}

// Set writes a cell at (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[index(row, col)] = c
}

// Row returns a slice view of one row's cells (Cols entries).
func (g *Grid) Row(row int) []Cell {
	start := index(row, 0)
	return g.cells[start : start+Cols]
}

// ScrollUp discards row 0, shifts rows 1..Rows-1 up by one, and fills the
// new bottom row with fill (spec.md §4.1's scroll rule: "discard row 0,
// shift rows 1..24 -> 0..23, fill row 24 with defaults").
func (g *Grid) ScrollUp(fill Cell) {
	copy(g.cells[0:], g.cells[Cols:])
	last := g.Row(Rows - 1)
	for i := range last {
		last[i] = fill
	}
}
