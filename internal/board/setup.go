package board

// backRank is the piece order of a back rank, from the queenside rook to
// the kingside rook.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupStandardPosition clears the board, creates the full 8x8 grid on
// rows and columns 0-7 and places the standard starting arrangement:
// black's back rank on row 0 and pawns on row 1, white's pawns on row 6
// and back rank on row 7.
func (b *Board) SetupStandardPosition() {
	b.Clear()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b.AddCell(row, col)
		}
	}
	for col, kind := range backRank {
		b.place(0, col, kind, Black)
		b.place(1, col, Pawn, Black)
		b.place(6, col, Pawn, White)
		b.place(7, col, kind, White)
	}
}

// SetupIrregularExample clears the board and builds the sample cross
// shape: a 9x9 coordinate range with the four 3x3 corner blocks left as
// holes. Five pieces go on top: a white king in the centre and a queen or
// rook at the tip of each arm.
func (b *Board) SetupIrregularExample() {
	b.Clear()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if crossCorner(row, col) {
				continue
			}
			b.AddCell(row, col)
		}
	}
	b.place(4, 4, King, White)
	b.place(0, 4, Queen, Black)
	b.place(8, 4, Queen, White)
	b.place(4, 0, Rook, Black)
	b.place(4, 8, Rook, White)
}

// crossCorner reports whether (row, col) falls in one of the four 3x3
// corner blocks omitted from the sample cross.
func crossCorner(row, col int) bool {
	return (row <= 2 || row >= 6) && (col <= 2 || col >= 6)
}
