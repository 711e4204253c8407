/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/anvilchess/movecore/internal/types"
)

func TestNewBoardStateIsStartPosition(t *testing.T) {
	b, err := NewBoardState()
	require.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingAny, b.CastlingRights())
	assert.Equal(t, SqNone, b.EnPassantSquare())
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, 1, b.FullMoveNumber())
	assert.True(t, b.LegalForPlay())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
	assert.Equal(t, WhiteRook, b.GetPiece(SqA1))
	assert.Equal(t, BlackQueen, b.GetPiece(SqD8))
	assert.Equal(t, PieceNone, b.GetPiece(SqE4))
}

func TestParseFENRoundTrip(t *testing.T) {
	b, err := ParseFEN(StartFen)
	require.NoError(t, err)
	assert.Equal(t, StartFen, b.Fen())
	assert.Equal(t, StartFen, b.SourceFen())
}

func TestParseFENTrailingFieldsOptional(t *testing.T) {
	b, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 w")
	require.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingNone, b.CastlingRights())
	assert.Equal(t, SqNone, b.EnPassantSquare())
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, 1, b.FullMoveNumber())
}

func TestParseFENEnPassant(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	assert.Equal(t, SqD6, b.EnPassantSquare())
}

func TestParseFENCastlingRights(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(t, b.CastlingRights().Has(CastlingWhiteOO))
	assert.True(t, b.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, b.CastlingRights().Has(CastlingBlackOO))
	assert.True(t, b.CastlingRights().Has(CastlingBlackOOO))
}

func TestParseFENInvalidPiecePlacement(t *testing.T) {
	_, err := ParseFEN("xxxxxxxx/8/8/8/8/8/8/8 w - - 0 1")
	require.Error(t, err)
	_, ok := err.(*InvalidFEN)
	assert.True(t, ok)
}

func TestParseFENRankNotEightFiles(t *testing.T) {
	_, err := ParseFEN("pppppppp/8/8/8/8/8/8/7 w - - 0 1")
	assert.Error(t, err)
}

func TestParseFENEmptyRecord(t *testing.T) {
	_, err := ParseFEN("   ")
	assert.Error(t, err)
}

func TestParseFENBadSideToMove(t *testing.T) {
	_, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 x - - 0 1")
	assert.Error(t, err)
}

func TestParseFENBadEnPassant(t *testing.T) {
	_, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 w - e9 0 1")
	assert.Error(t, err)
}

func TestParseFENBadHalfMoveClock(t *testing.T) {
	_, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 w - - -1 1")
	assert.Error(t, err)
}

func TestParseFENBadFullMoveNumber(t *testing.T) {
	_, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 0")
	assert.Error(t, err)
}

func TestParseFENFailureClearsState(t *testing.T) {
	b, err := ParseFEN("not a fen")
	require.Error(t, err)
	assert.Equal(t, PieceNone, b.GetPiece(SqA1))
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, 0, b.FullMoveNumber())
	assert.Equal(t, SqNone, b.EnPassantSquare())
}

func TestParseFENIrregularKingCountIsAcceptedButFlagged(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.LegalForPlay())
	assert.Equal(t, SqNone, b.KingSquare(Black))
}

func TestBoardStateOccupiedBitboards(t *testing.T) {
	b, err := NewBoardState()
	require.NoError(t, err)
	assert.Equal(t, Rank1Bb|Rank2Bb, b.OccupiedBb(White))
	assert.Equal(t, Rank7Bb|Rank8Bb, b.OccupiedBb(Black))
	assert.Equal(t, Rank1Bb|Rank2Bb|Rank7Bb|Rank8Bb, b.OccupiedAll())
}

func TestBoardStateString(t *testing.T) {
	b, err := NewBoardState()
	require.NoError(t, err)
	s := b.String()
	assert.Contains(t, s, "a b c d e f g h")
}
