package board

import (
	"github.com/lgbarn/chess-editor-go/internal/errors"
)

// Piece is an immutable piece value combining a kind and a colour. Two
// pieces with the same kind and colour are interchangeable; a Piece has no
// identity beyond those two fields.
type Piece struct {
	kind   Kind
	colour Colour
}

// NewPiece returns the piece with the given kind and colour.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{kind: kind, colour: colour}
}

// Kind returns the piece's kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Colour returns the piece's colour.
func (p Piece) Colour() Colour {
	return p.colour
}

// Equal reports whether two pieces have the same kind and colour.
func (p Piece) Equal(other Piece) bool {
	return p.kind == other.kind && p.colour == other.colour
}

// symbols maps [colour][kind] to the Unicode chess glyph. Each of the
// twelve combinations has its own glyph.
var symbols = [2][NumKinds]string{
	Black: {King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟"},
	White: {King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙"},
}

// Symbol returns the display glyph for the piece's colour and kind.
// It panics with a wrapped errors.ErrUnknownPiece if the piece holds
// values outside the two enumerations, which cannot happen for pieces
// built from the Colour and Kind constants.
func (p Piece) Symbol() string {
	if p.colour < Black || p.colour > White || p.kind < King || p.kind >= NumKinds {
		panic(errors.Wrapf(errors.ErrUnknownPiece, "colour %d kind %d", int(p.colour), int(p.kind)))
	}
	return symbols[p.colour][p.kind]
}

// Letter returns the letter representation of the piece: uppercase for
// white, lowercase for black. Useful where the Unicode glyphs cannot be
// displayed.
func (p Piece) Letter() byte {
	l := p.kind.Letter()
	if p.colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the piece's display glyph.
func (p Piece) String() string {
	return p.Symbol()
}
