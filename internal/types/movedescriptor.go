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

// UnspecifiedFile and UnspecifiedRank mark a MoveDescriptor field the
// token did not supply - SAN frequently omits the from-square entirely.
const (
	UnspecifiedFile int8 = -1
	UnspecifiedRank int8 = -1
)

// MoveDescriptor is the value-typed result of the move-token parser (§4.7).
// It is produced by copy from a textual token and carries no reference to
// any board state; a token like "Nf3" is syntactically complete without
// ever consulting where the knights stand.
type MoveDescriptor struct {
	// Token is the original textual input, unmodified.
	Token string

	// Piece is the moving piece kind, or PtNone if never determined.
	Piece PieceType

	// Promotion is the promotion piece kind, or PtNone if this is not a
	// promoting move.
	Promotion PieceType

	FromFile int8
	FromRank int8
	ToFile   int8
	ToRank   int8

	KingsideCastle  bool
	QueensideCastle bool
	Null            bool
	Invalid         bool
	DrawOffered     bool
	EnPassant       bool
	Capture         bool
	Check           bool
	Checkmate       bool
}

// NewMoveDescriptor returns a MoveDescriptor for token with every square
// field unspecified, ready for a parser to fill in the fields it discovers.
func NewMoveDescriptor(token string) MoveDescriptor {
	return MoveDescriptor{
		Token:     token,
		FromFile:  UnspecifiedFile,
		FromRank:  UnspecifiedRank,
		ToFile:    UnspecifiedFile,
		ToRank:    UnspecifiedRank,
		Piece:     PtNone,
		Promotion: PtNone,
	}
}
