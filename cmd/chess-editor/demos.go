// demos.go - The example boards the binary displays
package main

import (
	"github.com/lgbarn/chess-editor-go/internal/board"
)

// demo is one displayable example: a title, a line of commentary for
// verbose mode and a builder for the board itself.
type demo struct {
	title      string
	commentary string
	build      func() *board.Board
}

// demos returns the examples in display order.
func demos() []demo {
	return []demo{
		{
			title:      "Standard board",
			commentary: "The classic 8x8 grid with the standard starting arrangement.",
			build:      standardBoard,
		},
		{
			title:      "Irregular cross",
			commentary: "A 9x9 range with the four corner blocks missing; holes are not cells.",
			build:      irregularBoard,
		},
		{
			title:      "Custom diagonal",
			commentary: "A staircase built cell by cell; coordinates need not form a rectangle.",
			build:      diagonalBoard,
		},
	}
}

func standardBoard() *board.Board {
	b := board.NewBoard()
	b.SetupStandardPosition()
	return b
}

func irregularBoard() *board.Board {
	b := board.NewBoard()
	b.SetupIrregularExample()
	return b
}

// diagonalBoard builds a thick diagonal staircase one cell at a time and
// scatters three pieces along it.
func diagonalBoard() *board.Board {
	b := board.NewBoard()
	for i := 0; i < 7; i++ {
		b.AddCell(i, i)
		b.AddCell(i, i+1)
		b.AddCell(i+1, i)
	}
	place(b, 0, 0, board.King, board.White)
	place(b, 3, 3, board.Queen, board.Black)
	place(b, 6, 6, board.King, board.Black)
	return b
}

func place(b *board.Board, row, col int, kind board.Kind, colour board.Colour) {
	p := board.NewPiece(kind, colour)
	b.SetPiece(row, col, &p)
}
