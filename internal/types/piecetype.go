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

// PieceType is a piece kind irrespective of color, plus the PtNone sentinel.
type PieceType int8

// Piece kind constants.
//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone   PieceType = 0
	King     PieceType = 1 // non sliding
	Pawn     PieceType = 2 // non sliding
	Knight   PieceType = 3 // non sliding
	Bishop   PieceType = 4 // sliding
	Rook     PieceType = 5 // sliding
	Queen    PieceType = 6 // sliding
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"NoPiece", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// Str returns a word-length label for the piece kind.
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("-KPNBRQ")

// Char returns the FEN/SAN letter for the piece kind ("-" for PtNone).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// IsValid reports whether pt is one of the six real piece kinds (excludes PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// pieceCharToType maps a FEN/SAN piece letter (uppercase) back to its kind.
var pieceCharToType = map[byte]PieceType{
	'K': King,
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
}

// PieceTypeFromChar returns the piece kind for an uppercase piece letter,
// or PtNone if c is not one of KPNBRQ.
func PieceTypeFromChar(c byte) PieceType {
	if pt, ok := pieceCharToType[c]; ok {
		return pt
	}
	return PtNone
}
