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

// Package attacks aggregates the core's per-square attack tables into a
// whole-position view: for each color, the union of all piece attacks, the
// attacker list per target square, mobility counts, and pawn-attack
// bitboards. It is a pure consumer of the board query interface (§6) - it
// never generates or applies moves, and never consults legality.
package attacks

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anvilchess/movecore/internal/position"
	. "github.com/anvilchess/movecore/internal/types"
)

var printer = message.NewPrinter(language.English)

// Attacks holds the attack sets computed for one board state. A zero value
// is unusable; construct with New.
type Attacks struct {
	// sourceFen identifies the position these attacks were computed for, so
	// a caller can skip recomputation when recomputing for the same state.
	sourceFen string

	// From holds, per color and per occupied from-square, the bitboard of
	// squares that piece attacks or defends.
	From [ColorLength][SqLength]Bitboard
	// To holds, per color and per target square, the bitboard of that
	// color's own squares from which a piece attacks the target - the
	// per-square attacker list.
	To [ColorLength][SqLength]Bitboard
	// All holds, per color, the union of every piece's attacks.
	All [ColorLength]Bitboard
	// Piece holds, per color and per piece kind, the union of that piece
	// kind's attacks.
	Piece [ColorLength][PtLength]Bitboard
	// Mobility holds, per color, the sum of attacked squares not occupied
	// by the attacker's own side.
	Mobility [ColorLength]int
	// Pawns holds, per color, the squares attacked by at least one pawn.
	Pawns [ColorLength]Bitboard
	// PawnsDouble holds, per color, the squares attacked by two pawns at
	// once.
	PawnsDouble [ColorLength]Bitboard
}

// New returns an empty Attacks ready for Compute.
func New() *Attacks {
	return &Attacks{}
}

// Clear resets every field without reallocating, matching the shape of a
// fresh *Attacks returned by New.
func (a *Attacks) Clear() {
	a.sourceFen = ""
	for sq := 0; sq < SqLength; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	a.All[White] = BbZero
	a.All[Black] = BbZero
	a.Mobility[White] = 0
	a.Mobility[Black] = 0
	a.Pawns[White] = 0
	a.Pawns[Black] = 0
	a.PawnsDouble[White] = 0
	a.PawnsDouble[Black] = 0
}

// Compute fills a from b. If a was last computed from the same source FEN,
// the call is a no-op - this only helps when a caller reuses the same
// *Attacks across repeated queries against an unchanged board.
func (a *Attacks) Compute(b *position.BoardState) {
	if b.SourceFen() != "" && b.SourceFen() == a.sourceFen {
		return
	}
	a.Clear()
	a.sourceFen = b.SourceFen()
	a.nonPawnAttacks(b)
	a.pawnAttacks(b)
}

func (a *Attacks) nonPawnAttacks(b *position.BoardState) {
	ptList := [5]PieceType{King, Knight, Bishop, Rook, Queen}
	allPieces := b.OccupiedAll()

	for c := White; c <= Black; c++ {
		myPieces := b.OccupiedBb(c)
		for _, pt := range ptList {
			for pieces := b.PiecesBb(c, pt); pieces != BbZero; {
				psq := pieces.PopLsb()
				atk := GetAttacksBb(pt, psq, allPieces)
				a.From[c][psq] = atk
				a.Piece[c][pt] |= atk
				a.All[c] |= atk
				for tmp := atk; tmp != BbZero; {
					toSq := tmp.PopLsb()
					a.To[c][toSq].PushSquare(psq)
				}
				a.Mobility[c] += (atk &^ myPieces).PopCount()
			}
		}
	}
}

func (a *Attacks) pawnAttacks(b *position.BoardState) {
	wp := b.PiecesBb(White, Pawn)
	bp := b.PiecesBb(Black, Pawn)
	a.Pawns[White] = ShiftBitboard(wp, Northwest) | ShiftBitboard(wp, Northeast)
	a.Pawns[Black] = ShiftBitboard(bp, Southwest) | ShiftBitboard(bp, Southeast)
	a.PawnsDouble[White] = ShiftBitboard(wp, Northwest) & ShiftBitboard(wp, Northeast)
	a.PawnsDouble[Black] = ShiftBitboard(bp, Southwest) & ShiftBitboard(bp, Southeast)
}

// String renders mobility and per-color attacked-square counts for
// diagnostic logging, with locale-aware grouping of the larger counts.
func (a *Attacks) String() string {
	return printer.Sprintf(
		"white: mobility=%d attacked=%d pawn-attacked=%d | black: mobility=%d attacked=%d pawn-attacked=%d",
		a.Mobility[White], a.All[White].PopCount(), a.Pawns[White].PopCount(),
		a.Mobility[Black], a.All[Black].PopCount(), a.Pawns[Black].PopCount(),
	)
}

// AttacksTo returns the attackers of color on square, read off the already
// computed per-square attacker list plus a direct pawn-attack lookup (pawn
// attacks are stored as aggregate squares-attacked, not per-attacker, so
// they are recomputed here instead of read from To).
func (a *Attacks) AttacksTo(b *position.BoardState, square Square, color Color) Bitboard {
	pawnAttackers := GetPawnAttacks(color.Flip(), square) & b.PiecesBb(color, Pawn)
	return pawnAttackers | (a.To[color][square] & b.OccupiedBb(color))
}
