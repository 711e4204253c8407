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

// Package types holds the bitboard representation, the square/piece/color
// model, and the precomputed attack tables the rest of the module is built
// on. Tables are computed once by Init and are read-only afterwards.
package types

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/anvilchess/movecore/internal/util"
)

// Bitboard is a 64 bit unsigned int with one bit per square.
type Bitboard uint64

// Various constant bitboards.
//noinspection GoUnusedConst
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)

	// NotFileABb etc. are the negated single/double file masks used by the
	// directional shifts below to discard bits that would wrap around an edge.
	NotFileABb  Bitboard = ^FileABb
	NotFileHBb  Bitboard = ^FileHBb
	NotFileABBb Bitboard = ^(FileABb | FileBBb)
	NotFileGHBb Bitboard = ^(FileGBb | FileHBb)

	DiagA1H8Bb Bitboard = 0x8040201008040201
	DiagA8H1Bb Bitboard = 0x0102040810204080

	LightSquaresBb Bitboard = 0x55AA55AA55AA55AA
	DarkSquaresBb  Bitboard = ^LightSquaresBb

	KingsideBb  Bitboard = FileEBb | FileFBb | FileGBb | FileHBb
	QueensideBb Bitboard = FileABb | FileBBb | FileCBb | FileDBb

	CenterFilesBb   Bitboard = FileDBb | FileEBb
	CenterRanksBb   Bitboard = Rank4Bb | Rank5Bb
	CenterSquaresBb Bitboard = CenterFilesBb & CenterRanksBb
)

// Bb returns the singleton bitboard for sq via the precomputed table.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the bit for s in b and returns the result.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s in *b in place.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s in b and returns the result.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s in *b in place.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether the bit for s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard shifts every set bit of b one square in direction d,
// masking off bits that would wrap around the file(s) they pass through.
// Knight-shaped directions compose the same masks as their component steps.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b << 1) & NotFileABb
	case West:
		return (b >> 1) & NotFileHBb
	case Northeast:
		return (b << 9) & NotFileABb
	case Southeast:
		return (b >> 7) & NotFileABb
	case Southwest:
		return (b >> 9) & NotFileHBb
	case Northwest:
		return (b << 7) & NotFileHBb
	case NN:
		return b << 16
	case SS:
		return b >> 16
	case NNE:
		return (b << 17) & NotFileABb
	case NNW:
		return (b << 15) & NotFileHBb
	case SSE:
		return (b >> 15) & NotFileABb
	case SSW:
		return (b >> 17) & NotFileHBb
	case NEE:
		return (b << 10) & NotFileABBb
	case NWW:
		return (b << 6) & NotFileGHBb
	case SEE:
		return (b >> 6) & NotFileABBb
	case SWW:
		return (b >> 10) & NotFileGHBb
	}
	return b
}

// Lsb returns the square of the least significant set bit, SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least significant set square from *b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the 64 raw bits, MSB first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// FileDistance returns the absolute file distance between f1 and f2.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute rank distance between r1 and r2.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between s1 and s2.
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// GetAttacksBb returns the attack bitboard for a piece of kind pt (not
// Pawn) on sq given the full board occupancy. Sliders look up the
// magic-indexed table (§4.5); King and Knight use the precomputed
// leaper table and ignore occupied.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		panic("GetAttacksBb called with PieceType Pawn - use GetPawnAttacks")
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].Index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].Index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].Index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].Index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the precomputed King, Knight, Bishop, Rook or
// Queen attack bitboard for sq, as if on an empty board. Pawn attacks are
// not in this table; use GetPawnAttacks.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the precomputed pawn-capture attack bitboard for
// a pawn of color c on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// SlidingAttack walks outward from sq in each of the given ray directions,
// stopping a ray at the board edge or as soon as the just-added square
// intersects occupied (the blocker square itself is included). This is the
// on-the-fly generator of §4.3: used during magic table construction and
// candidate verification, and available directly for callers that want a
// reference implementation to check a lookup result against.
func SlidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// BishopDirections are the four diagonal ray directions a bishop slides along.
var BishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// RookDirections are the four orthogonal ray directions a rook slides along.
var RookDirections = [4]Direction{North, East, South, West}

// BishopAttacks is the on-the-fly bishop attack generator (§4.3).
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return SlidingAttack(BishopDirections, sq, occupied)
}

// RookAttacks is the on-the-fly rook attack generator (§4.3).
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return SlidingAttack(RookDirections, sq, occupied)
}

// FilesWestMask returns all squares strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard { return filesWestMask[sq] }

// FilesEastMask returns all squares strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard { return filesEastMask[sq] }

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard { return neighbourFilesMask[sq] }

// RanksNorthMask returns all squares strictly north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard { return ranksNorthMask[sq] }

// RanksSouthMask returns all squares strictly south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard { return ranksSouthMask[sq] }

// Ray returns the squares from sq outward in the given orientation, on an
// empty board (stops at the edge).
func (sq Square) Ray(o Orientation) Bitboard { return rays[o][sq] }

// Intermediate returns the squares strictly between sq1 and sq2 if they
// share a rank, file, or diagonal; BbZero otherwise.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// KingSideCastleMask returns the kingside squares (excluding the king's own
// square) relevant to castling for color c.
func KingSideCastleMask(c Color) Bitboard { return kingSideCastleMask[c] }

// QueenSideCastleMask returns the queenside squares (excluding the king's
// own square) relevant to castling for color c.
func QueenSideCastleMask(c Color) Bitboard { return queenSideCastleMask[c] }

// GetCastlingRights returns which castling rights are voided when a piece
// moves onto or off of sq (e.g. a king or rook leaving its home square).
func GetCastlingRights(sq Square) CastlingRights { return castlingRights[sq] }

// SquareColorBb returns all squares of the given "square color" (light or
// dark), e.g. to find same-colored bishops.
func SquareColorBb(c Color) Bitboard { return squaresBb[c] }

// ////////////////////
// precomputed tables and initialization
// ////////////////////

var (
	sqBb [SqLength]Bitboard

	squareDistance [SqLength][SqLength]int

	pawnAttacks   [ColorLength][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	rays [8][SqLength]Bitboard

	intermediate [SqLength][SqLength]Bitboard

	kingSideCastleMask  [ColorLength]Bitboard
	queenSideCastleMask [ColorLength]Bitboard
	castlingRights      [SqLength]CastlingRights

	squaresBb [ColorLength]Bitboard

	tablesInitialized = util.NewBool(false)
)

// Init builds the leaper attack tables, the named masks, and the
// magic-indexed slider attack tables. It must run to completion before any
// attack query; afterwards every table here is treated as immutable. Safe
// to call more than once: only the first caller to win the CAS runs the
// precompute, and every other call returns at once, without waiting for
// that precompute to finish.
func Init() {
	if !tablesInitialized.CAS(false, true) {
		return
	}
	squareBitboardsPreCompute()
	castleMasksPreCompute()
	squareDistancePreCompute()
	neighbourMasksPreCompute()
	pseudoAttacksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	squareColorsPreCompute()
	initMagicBitboards()
}

// Initialized reports whether Init has been called. The flag is set when
// the first Init call starts its precompute, not when the precompute ends.
func Initialized() bool {
	return tablesInitialized.Load()
}

// initMagicBitboards runs the magic search for both slider kinds. This
// port carries no compiled-in fallback magic table (§4.5's "precomputed
// table... may be compiled in" clause is optional); exhaustion is
// therefore the terminal "engine aborts initialization" case of §7, not a
// recoverable one - Init panics rather than returning a half-built table.
func initMagicBitboards() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	if err := initMagics(&rookTable, &rookMagics, &RookDirections, Rook); err != nil {
		panic(err)
	}
	if err := initMagics(&bishopTable, &bishopMagics, &BishopDirections, Bishop); err != nil {
		panic(err)
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(uint64(1) << sq)
	}
}

func squareColorsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black] |= sqBb[sq]
		} else {
			squaresBb[White] |= sqBb[sq]
		}
	}
}

func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBb := sqBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBb != BbZero {
					intermediate[from][to] |= rays[Orientation(o)][from] &^ rays[Orientation(o)][to] &^ toBb
				}
			}
		}
	}
}

func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func neighbourMasksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[sq] |= FileABb << j
			}
			if 7-j > f {
				filesEastMask[sq] |= FileABb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[sq] |= Rank1Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[sq] |= Rank1Bb << (8 * j)
			}
		}
		if f > 0 {
			fileWestMask[sq] = FileABb << (f - 1)
		}
		if f < 7 {
			fileEastMask[sq] = FileABb << (f + 1)
		}
		neighbourFilesMask[sq] = fileEastMask[sq] | fileWestMask[sq]
	}
}

func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] = util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

// pseudoAttacksPreCompute fills the leaper tables of §4.2: King, Knight,
// and per-color Pawn attacks, by walking the fixed step tables for White
// and mirroring them for Black via Color.Direction().
func pseudoAttacksPreCompute() {
	var steps = map[PieceType][]Direction{
		King:   {Northwest, North, Northeast, East, Southeast, South, Southwest, West},
		Pawn:   {Northwest, Northeast},
		Knight: {NNE, NNW, SSE, SSW, NEE, NWW, SEE, SWW},
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for s := SqA1; s <= SqH8; s++ {
				for _, step := range steps[pt] {
					to := Square(int(s) + c.Direction()*int(step))
					if to.IsValid() && squareDistance[s][to] < 3 {
						if pt == Pawn {
							pawnAttacks[c][s] |= sqBb[to]
						} else {
							pseudoAttacks[pt][s] |= sqBb[to]
						}
					}
				}
			}
		}
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Bishop][sq] = SlidingAttack(BishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = SlidingAttack(RookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}
