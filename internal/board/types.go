// Package board provides the core board model: piece definitions and a
// sparse, coordinate-indexed surface that supports irregular shapes. Cells
// exist at arbitrary integer coordinates and coordinates without a cell are
// holes, so crosses, diagonals and other non-rectangular boards need no
// special handling.
package board

import "fmt"

// Colour represents the colour of a piece.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece kind.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Coord addresses a single cell by row and column. Both are arbitrary
// signed integers; nothing restricts them to the 8x8 range.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate in "(row, col)" form.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Bounds is the minimal axis-aligned rectangle covering a set of cells.
type Bounds struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Width returns the number of columns the bounds span.
func (b Bounds) Width() int {
	return b.MaxCol - b.MinCol + 1
}

// Height returns the number of rows the bounds span.
func (b Bounds) Height() int {
	return b.MaxRow - b.MinRow + 1
}
