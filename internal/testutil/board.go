// Package testutil provides shared test utilities for the chess-editor
// project: assertion helpers built on go-cmp and board fixtures so tests
// can build common shapes without repeating setup loops.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-editor-go/internal/board"
)

// BoardWithCells returns a board holding exactly the given cells, all
// empty.
func BoardWithCells(coords ...board.Coord) *board.Board {
	b := board.NewBoard()
	for _, c := range coords {
		b.AddCell(c.Row, c.Col)
	}
	return b
}

// RectBoard returns a board covering every coordinate in the inclusive
// row and column ranges.
func RectBoard(minRow, maxRow, minCol, maxCol int) *board.Board {
	b := board.NewBoard()
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			b.AddCell(row, col)
		}
	}
	return b
}

// CrossBoard returns the sample cross shape with no pieces placed:
// a 9x9 coordinate range minus the four 3x3 corner blocks.
func CrossBoard() *board.Board {
	b := board.NewBoard()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if (row <= 2 || row >= 6) && (col <= 2 || col >= 6) {
				continue
			}
			b.AddCell(row, col)
		}
	}
	return b
}

// DiagonalBoard returns a thick diagonal staircase with no pieces: cells
// (i,i), (i,i+1) and (i+1,i) for i in 0..6.
func DiagonalBoard() *board.Board {
	b := board.NewBoard()
	for i := 0; i < 7; i++ {
		b.AddCell(i, i)
		b.AddCell(i, i+1)
		b.AddCell(i+1, i)
	}
	return b
}

// MustSetPiece places a new piece of the given kind and colour, failing
// the test if the target cell does not exist.
func MustSetPiece(t *testing.T, b *board.Board, row, col int, kind board.Kind, colour board.Colour) {
	t.Helper()
	p := board.NewPiece(kind, colour)
	if !b.SetPiece(row, col, &p) {
		t.Fatalf("SetPiece(%d, %d, %v %v) = false; cell does not exist", row, col, colour, kind)
	}
}
