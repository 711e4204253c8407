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
	"fmt"

	"github.com/anvilchess/movecore/internal/config"
)

// MaxMagicCandidates is 1<<28, the same value as the default of
// config.MagicMaxCandidates. The discovery loops do not read this constant:
// initMagics stops at config.MagicMaxCandidates and SearchSquareMagic at
// its maxCandidates argument.
const MaxMagicCandidates = 1 << 28

// MagicSearchExhausted is returned by initMagics and SearchSquareMagic when
// the retry bound is exceeded without finding a valid magic multiplier.
type MagicSearchExhausted struct {
	Square Square
	Piece  PieceType
	Tries  int
}

func (e *MagicSearchExhausted) Error() string {
	return fmt.Sprintf("magic search exhausted for %s on %s after %d tries", e.Piece.Str(), e.Square, e.Tries)
}

// Magic holds the per-square magic bitboard entry: the blocker mask, the
// magic multiplier, the shift, and the slice of this square's attack table.
// Taken from Stockfish; see https://www.chessprogramming.org/Magic_Bitboards.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

// Index computes the table slot for a given occupancy (§4.5 runtime query):
// relevant = occupied & mask; index = (relevant * number) >> shift.
func (m *Magic) Index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

// initMagics computes the magic number and fills the attack table for
// every square, for one slider kind (identified by its four ray directions).
// Optimal PRNG seeds, chosen empirically, pick a valid magic in the
// fewest draws; they are indexed by the rank of the square being solved.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction, piece PieceType) error {
	seeds := config.MagicSeeds
	for i := range seeds {
		seeds[i] ^= config.MagicSeed
	}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = SlidingAttack(*directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler trick: enumerate every subset of mask (§4.4) and
		// record its true attack set via the on-the-fly generator.
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = SlidingAttack(*directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := NewPrnG(seeds[sq.RankOf()])
		tries := 0
		for i := 0; i < size; {
			for m.Number = 0; ; {
				if tries >= config.MagicMaxCandidates {
					return &MagicSearchExhausted{Square: sq, Piece: piece, Tries: tries}
				}
				m.Number = Bitboard(rng.SparseRand())
				tries++
				if ((m.Number * m.Mask) >> 56).PopCount() >= 6 {
					break
				}
			}

			// A candidate is accepted only if it maps every occupancy in
			// this square's subset list to a slot that either has never
			// been written this trial, or was written with the identical
			// attack set (legitimate sharing, not a collision).
			cnt++
			for i = 0; i < size; i++ {
				idx := m.Index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
	return nil
}

// SearchSquareMagic finds a magic multiplier and fills a standalone attack
// table for one (piece kind, square) pair, with no reference to any other
// square's state. It duplicates the per-square kernel of initMagics rather
// than sharing it, because initMagics packs every square's attacks into one
// contiguous backing slice (cache locality for the production table) while
// this one hands back an independently owned slice sized to just this
// square - the shape cmd/magicgen's parallel dispatch (§11.4) needs, since
// concurrent workers cannot safely share one growing backing array.
func SearchSquareMagic(sq Square, directions *[4]Direction, piece PieceType, seed uint64, maxCandidates int) (Magic, error) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var m Magic

	edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())
	m.Mask = SlidingAttack(*directions, sq, BbZero) &^ edges
	m.Shift = uint(64 - m.Mask.PopCount())

	size := 0
	b := Bitboard(0)
	for {
		occupancy[size] = b
		reference[size] = SlidingAttack(*directions, sq, b)
		size++
		b = (b - m.Mask) & m.Mask
		if b == 0 {
			break
		}
	}
	m.Attacks = make([]Bitboard, size)

	rng := NewPrnG(seed)
	tries := 0
	cnt := 0
	for i := 0; i < size; {
		for m.Number = 0; ; {
			if tries >= maxCandidates {
				return Magic{}, &MagicSearchExhausted{Square: sq, Piece: piece, Tries: tries}
			}
			m.Number = Bitboard(rng.SparseRand())
			tries++
			if ((m.Number * m.Mask) >> 56).PopCount() >= 6 {
				break
			}
		}

		cnt++
		for i = 0; i < size; i++ {
			idx := m.Index(occupancy[i])
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				m.Attacks[idx] = reference[i]
			} else if m.Attacks[idx] != reference[i] {
				break
			}
		}
	}
	return m, nil
}

// PrnG is a deterministic 64-bit xorshift64star pseudo-random generator
// (§4.8), seeded for reproducible magic search. Based on public-domain code
// by Sebastiano Vigna (2014): outputs 64-bit numbers, passes Dieharder and
// SmallCrush, no warm-up required, period 2^64-1.
type PrnG struct {
	s uint64
}

// NewPrnG creates a generator seeded with seed. A fixed seed gives a
// reproducible magic table; a time/pid-derived seed does not.
func NewPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

// Rand64 draws the next 64-bit value from the stream.
func (r *PrnG) Rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// SparseRand draws a candidate biased toward few set bits (on average an
// eighth of its bits are set), which empirically yields valid magics in
// fewer trials than a uniformly random draw.
func (r *PrnG) SparseRand() uint64 {
	return r.Rand64() & r.Rand64() & r.Rand64()
}
