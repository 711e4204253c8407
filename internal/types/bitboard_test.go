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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvilchess/movecore/internal/config"
)

func TestMain(m *testing.M) {
	config.Setup()
	if !Initialized() {
		Init()
	}
	os.Exit(m.Run())
}

func TestBitboardConstants(t *testing.T) {
	assert.Equal(t, Bitboard(0), BbZero)
	assert.Equal(t, Bitboard(0xFF), Rank1Bb)
	assert.Equal(t, Rank1Bb<<8, Rank2Bb)
	assert.Equal(t, FileABb<<7, FileHBb)
	assert.Equal(t, ^FileABb, NotFileABb)
	assert.Equal(t, ^LightSquaresBb, DarkSquaresBb)
}

func TestBitboardPushPop(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))

	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))

	b2 := PushSquare(BbZero, SqA1)
	assert.Equal(t, SqA1.Bb(), b2)

	b2 = PopSquare(b2, SqA1)
	assert.Equal(t, BbZero, b2)
}

func TestBitboardHas(t *testing.T) {
	b := Rank4Bb
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
}

func TestBitboardString(t *testing.T) {
	s := Rank1Bb.String()
	assert.Len(t, s, 64)
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000011111111", s)
}

func TestBitboardStringBoard(t *testing.T) {
	s := SqE4.Bb().StringBoard()
	assert.Contains(t, s, "+---+---+---+---+---+---+---+---+")
	assert.Contains(t, s, "X")
}

func TestBitboardLsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())

	b := FileBBb
	assert.Equal(t, SqB1, b.Lsb())
	assert.Equal(t, SqB8, b.Msb())

	b = Rank3Bb
	assert.Equal(t, SqA3, b.Lsb())
	assert.Equal(t, SqH3, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := BbZero
	assert.Equal(t, SqNone, b.PopLsb())

	b = SqA1.Bb() | SqD1.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, SqD1, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestBitboardPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 8, Rank1Bb.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
}

func TestBitboardShift(t *testing.T) {
	tests := []struct {
		name string
		b    Bitboard
		d    Direction
		want Bitboard
	}{
		{"north off board vanishes", Rank8Bb, North, BbZero},
		{"south off board vanishes", Rank1Bb, South, BbZero},
		{"east off h-file does not wrap to a-file", FileHBb, East, BbZero},
		{"west off a-file does not wrap to h-file", FileABb, West, BbZero},
		{"north shifts a rank up", Rank4Bb, North, Rank5Bb},
		{"south shifts a rank down", Rank4Bb, South, Rank3Bb},
		{"east shifts a file right", FileABb, East, FileBBb},
		{"west shifts a file left", FileBBb, West, FileABb},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftBitboard(tt.b, tt.d))
		})
	}
}

func TestBitboardKnightShift(t *testing.T) {
	// a knight on d4 reaches exactly 8 squares
	knight := GetPseudoAttacks(Knight, SqD4)
	assert.Equal(t, 8, knight.PopCount())
	assert.True(t, knight.Has(SqB3))
	assert.True(t, knight.Has(SqF5))
	assert.False(t, knight.Has(SqD4))
}

func TestFileDistance(t *testing.T) {
	assert.Equal(t, 0, FileDistance(FileA, FileA))
	assert.Equal(t, 7, FileDistance(FileA, FileH))
	assert.Equal(t, 7, FileDistance(FileH, FileA))
}

func TestRankDistance(t *testing.T) {
	assert.Equal(t, 0, RankDistance(Rank1, Rank1))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqA1, SqA1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqA8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqF5))
	assert.Equal(t, 0, SquareDistance(SqNone, SqA1))
}

func TestGetPseudoAttacksKing(t *testing.T) {
	// a king in the corner attacks exactly 3 squares
	assert.Equal(t, 3, GetPseudoAttacks(King, SqA1).PopCount())
	// a king in the center attacks exactly 8 squares
	assert.Equal(t, 8, GetPseudoAttacks(King, SqE4).PopCount())
}

func TestGetPawnAttacks(t *testing.T) {
	white := GetPawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	assert.Equal(t, 2, white.PopCount())

	black := GetPawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
	assert.Equal(t, 2, black.PopCount())

	// a pawn on the a-file has only one capture square
	assert.Equal(t, 1, GetPawnAttacks(White, SqA4).PopCount())
}

func TestSlidingAttackRook(t *testing.T) {
	// rook on e4, empty board: full rank + file minus its own square
	attack := SlidingAttack(RookDirections, SqE4, BbZero)
	want := (Rank4Bb | FileEBb) &^ SqE4.Bb()
	assert.Equal(t, want, attack)
}

func TestSlidingAttackRookBlocked(t *testing.T) {
	// rook on e4 blocked by a pawn on e6 going north - stops at and includes e6
	occ := SqE6.Bb()
	attack := SlidingAttack(RookDirections, SqE4, occ)
	assert.True(t, attack.Has(SqE5))
	assert.True(t, attack.Has(SqE6))
	assert.False(t, attack.Has(SqE7))
}

func TestSlidingAttackBishop(t *testing.T) {
	attack := SlidingAttack(BishopDirections, SqE4, BbZero)
	assert.True(t, attack.Has(SqA8))
	assert.True(t, attack.Has(SqH1))
	assert.False(t, attack.Has(SqE5))
}

func TestBishopRookAttacksMatchSlidingAttack(t *testing.T) {
	occ := SqD5.Bb() | SqG7.Bb()
	assert.Equal(t, SlidingAttack(BishopDirections, SqE4, occ), BishopAttacks(SqE4, occ))
	assert.Equal(t, SlidingAttack(RookDirections, SqE4, occ), RookAttacks(SqE4, occ))
}

func TestGetAttacksBbMatchesMagicTable(t *testing.T) {
	occ := SqE6.Bb() | SqC4.Bb()
	assert.Equal(t, RookAttacks(SqE4, occ), GetAttacksBb(Rook, SqE4, occ))
	assert.Equal(t, BishopAttacks(SqE4, occ), GetAttacksBb(Bishop, SqE4, occ))
	assert.Equal(t, BishopAttacks(SqE4, occ)|RookAttacks(SqE4, occ), GetAttacksBb(Queen, SqE4, occ))
	assert.Equal(t, GetPseudoAttacks(King, SqE4), GetAttacksBb(King, SqE4, occ))
}

func TestGetAttacksBbPanicsOnPawn(t *testing.T) {
	assert.Panics(t, func() {
		GetAttacksBb(Pawn, SqE4, BbZero)
	})
}

func TestSquareMasks(t *testing.T) {
	assert.Equal(t, FileABb|FileBBb|FileCBb|FileDBb, SqE4.FilesWestMask())
	assert.Equal(t, FileFBb|FileGBb|FileHBb, SqE4.FilesEastMask())
	assert.Equal(t, FileDBb|FileFBb, SqE4.NeighbourFilesMask())

	assert.Equal(t, BbAll&^FileABb, SqA4.FilesEastMask())
	assert.Equal(t, BbAll&^FileHBb, SqH4.FilesWestMask())

	assert.Equal(t, Rank5Bb|Rank6Bb|Rank7Bb|Rank8Bb, SqH4.RanksNorthMask())
	assert.Equal(t, Rank1Bb|Rank2Bb|Rank3Bb, SqH4.RanksSouthMask())
}

func TestSquareRay(t *testing.T) {
	assert.Equal(t, Rank1Bb&^SqA1.Bb(), SqA1.Ray(E))
	assert.Equal(t, FileABb&^SqA1.Bb(), SqA1.Ray(N))
	assert.Equal(t, BbZero, SqA1.Ray(W))
	assert.Equal(t, BbZero, SqA1.Ray(S))
}

func TestIntermediate(t *testing.T) {
	// on the same rank
	assert.Equal(t, SqC1.Bb()|SqD1.Bb()|SqE1.Bb(), Intermediate(SqB1, SqF1))
	// adjacent squares share no intermediate squares
	assert.Equal(t, BbZero, Intermediate(SqB1, SqC1))
	// not aligned at all
	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3))
	// order does not matter
	assert.Equal(t, Intermediate(SqB1, SqF1), Intermediate(SqF1, SqB1))
}

func TestCastleMasks(t *testing.T) {
	assert.Equal(t, SqF1.Bb()|SqG1.Bb()|SqH1.Bb(), KingSideCastleMask(White))
	assert.Equal(t, SqD1.Bb()|SqC1.Bb()|SqB1.Bb()|SqA1.Bb(), QueenSideCastleMask(White))
	assert.Equal(t, SqF8.Bb()|SqG8.Bb()|SqH8.Bb(), KingSideCastleMask(Black))
}

func TestGetCastlingRights(t *testing.T) {
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingWhiteOOO, GetCastlingRights(SqA1))
	assert.Equal(t, CastlingWhiteOO, GetCastlingRights(SqH1))
	assert.Equal(t, CastlingNone, GetCastlingRights(SqE4))
}

func TestSquareColorBb(t *testing.T) {
	white := SquareColorBb(White)
	black := SquareColorBb(Black)
	assert.Equal(t, BbAll, white|black)
	assert.Equal(t, BbZero, white&black)
	assert.Equal(t, 32, white.PopCount())
}

func BenchmarkSquareBb(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SqE4.Bb()
	}
}
