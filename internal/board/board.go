package board

// Board is a sparse playing surface indexed by coordinate. A coordinate is
// either absent (a hole) or present as a cell, and a present cell is empty
// or occupied by a single piece; there is no third state. Shape and content
// are controlled separately: cells are created and destroyed with AddCell
// and RemoveCell, pieces come and go with SetPiece, and placement never
// creates cells.
//
// A Board is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access themselves.
type Board struct {
	// cells holds every existing coordinate. A nil value is an empty
	// cell; a non-nil value is the occupying piece, owned by the board.
	cells map[Coord]*Piece
}

// NewBoard creates a board with no cells: every coordinate is a hole.
func NewBoard() *Board {
	return &Board{cells: make(map[Coord]*Piece)}
}

// CellExists reports whether a cell exists at (row, col).
func (b *Board) CellExists(row, col int) bool {
	_, ok := b.cells[Coord{row, col}]
	return ok
}

// AddCell creates an empty cell at (row, col). It returns false without
// modifying the board if the cell already exists; in particular an
// existing occupant is never disturbed.
func (b *Board) AddCell(row, col int) bool {
	c := Coord{row, col}
	if _, ok := b.cells[c]; ok {
		return false
	}
	b.cells[c] = nil
	return true
}

// RemoveCell deletes the cell at (row, col), discarding any occupying
// piece. It returns false if no cell exists there.
func (b *Board) RemoveCell(row, col int) bool {
	c := Coord{row, col}
	if _, ok := b.cells[c]; !ok {
		return false
	}
	delete(b.cells, c)
	return true
}

// GetPiece returns the piece occupying (row, col), or nil if the cell is
// empty or does not exist. The two cases are indistinguishable here;
// callers that need to tell them apart must check CellExists first.
func (b *Board) GetPiece(row, col int) *Piece {
	return b.cells[Coord{row, col}]
}

// SetPiece places piece on the cell at (row, col), replacing any previous
// occupant; a nil piece empties the cell. The board stores its own copy,
// so later changes to the caller's value never reach the board. It returns
// false without modifying the board if the cell does not exist: placing on
// a hole is rejected, not auto-created.
func (b *Board) SetPiece(row, col int, piece *Piece) bool {
	c := Coord{row, col}
	if _, ok := b.cells[c]; !ok {
		return false
	}
	if piece == nil {
		b.cells[c] = nil
		return true
	}
	p := *piece
	b.cells[c] = &p
	return true
}

// Bounds returns the minimal bounding rectangle over all existing cells.
// A board with no cells has zero bounds; the empty set is a special case,
// not a min/max computation.
func (b *Board) Bounds() Bounds {
	if len(b.cells) == 0 {
		return Bounds{}
	}
	first := true
	var bounds Bounds
	for c := range b.cells {
		if first {
			bounds = Bounds{MinRow: c.Row, MaxRow: c.Row, MinCol: c.Col, MaxCol: c.Col}
			first = false
			continue
		}
		if c.Row < bounds.MinRow {
			bounds.MinRow = c.Row
		}
		if c.Row > bounds.MaxRow {
			bounds.MaxRow = c.Row
		}
		if c.Col < bounds.MinCol {
			bounds.MinCol = c.Col
		}
		if c.Col > bounds.MaxCol {
			bounds.MaxCol = c.Col
		}
	}
	return bounds
}

// AllCells returns every existing coordinate. The order is unspecified and
// may differ between calls.
func (b *Board) AllCells() []Coord {
	coords := make([]Coord, 0, len(b.cells))
	for c := range b.cells {
		coords = append(coords, c)
	}
	return coords
}

// CellCount returns the number of existing cells.
func (b *Board) CellCount() int {
	return len(b.cells)
}

// Clear removes every cell, returning the board to all holes.
func (b *Board) Clear() {
	b.cells = make(map[Coord]*Piece)
}

// place creates the piece and puts it on an existing cell. Setup helper.
func (b *Board) place(row, col int, kind Kind, colour Colour) {
	p := NewPiece(kind, colour)
	b.SetPiece(row, col, &p)
}
