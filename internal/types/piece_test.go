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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	type args struct {
		c  Color
		pt PieceType
	}
	tests := []struct {
		name string
		args args
		want Piece
	}{
		{"white king", args{White, King}, WhiteKing},
		{"black king", args{Black, King}, BlackKing},
		{"white knight", args{White, Knight}, WhiteKnight},
		{"black knight", args{Black, Knight}, BlackKnight},
		{"none stays none regardless of color", args{Black, PtNone}, PieceNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakePiece(tt.args.c, tt.args.pt))
		})
	}
}

func TestPieceColorOf(t *testing.T) {
	assert.Equal(t, White, WhiteKing.ColorOf())
	assert.Equal(t, White, WhiteQueen.ColorOf())
	assert.Equal(t, Black, BlackKing.ColorOf())
	assert.Equal(t, Black, BlackPawn.ColorOf())
}

func TestPieceTypeOf(t *testing.T) {
	assert.Equal(t, King, WhiteKing.TypeOf())
	assert.Equal(t, King, BlackKing.TypeOf())
	assert.Equal(t, Pawn, WhitePawn.TypeOf())
	assert.Equal(t, Queen, BlackQueen.TypeOf())
	assert.Equal(t, PtNone, PieceNone.TypeOf())
}

func TestPieceIsValid(t *testing.T) {
	assert.True(t, WhiteKing.IsValid())
	assert.True(t, BlackQueen.IsValid())
	assert.False(t, PieceNone.IsValid())
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "K", WhiteKing.String())
	assert.Equal(t, "k", BlackKing.String())
	assert.Equal(t, "Q", WhiteQueen.String())
	assert.Equal(t, "n", BlackKnight.String())
	assert.Equal(t, "-", PieceNone.String())
}
