//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// Piece is a colored piece kind: empty, or one of {king,queen,rook,bishop,
// knight,pawn} x {white,black} - 13 variants tagged as (color<<3 | kind).
type Piece int8

// Piece constants. Color is encoded in bit 3.
//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PieceNone   Piece = 0 // 0b0000
	WhiteKing   Piece = 1 // 0b0001
	WhitePawn   Piece = 2 // 0b0010
	WhiteKnight Piece = 3 // 0b0011
	WhiteBishop Piece = 4 // 0b0100
	WhiteRook   Piece = 5 // 0b0101
	WhiteQueen  Piece = 6 // 0b0110

	BlackKing   Piece = 9  // 0b1001
	BlackPawn   Piece = 10 // 0b1010
	BlackKnight Piece = 11 // 0b1011
	BlackBishop Piece = 12 // 0b1100
	BlackRook   Piece = 13 // 0b1101
	BlackQueen  Piece = 14 // 0b1110

	PieceLength Piece = 16
)

var pieceToString = string("-KPNBRQ--kpnbrq-")

// String returns the FEN piece letter for p ("-" for PieceNone or an
// otherwise unused slot).
func (p Piece) String() string {
	return string(pieceToString[p])
}

// MakePiece composes a Piece from a color and a piece kind. MakePiece(c,
// PtNone) always yields PieceNone regardless of c.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of p. Meaningless for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece kind of p, PtNone for PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid reports whether p is one of the 12 colored piece variants.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}
