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

// Package position holds the board-state representation (§3) and its FEN
// parser (§4.6): an 8x8 mailbox kept in lockstep with a 12-bitboard set, one
// bitboard per (color, piece kind). Move legality, check detection, search
// and evaluation are downstream consumers of this state and live outside
// this core.
package position

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anvilchess/movecore/internal/applog"
	. "github.com/anvilchess/movecore/internal/types"
)

var logger = applog.GetLog()

// StartFen is the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// BoardState aggregates everything §3 calls out: the mailbox, the derived
// bitboard set, side to move, castling rights, en-passant target, the two
// move counters, and the FEN this state was built from (an advisory copy,
// not authoritative - nothing re-derives the board from it after entry).
type BoardState struct {
	board    [SqLength]Piece
	piecesBb [ColorLength][PtLength]Bitboard
	occupied [ColorLength]Bitboard

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int

	kingSquare [ColorLength]Square

	sourceFen string

	// legalForPlay is false when a parsed position violates the king-count
	// invariant of §3 (e.g. a test FEN missing a king). The parser still
	// populates and returns the state; only downstream legality checking
	// (out of scope here) would reject it outright.
	legalForPlay bool
}

// NewBoardState returns the standard chess starting position.
func NewBoardState() (*BoardState, error) {
	return ParseFEN(StartFen)
}

// ParseFEN builds a BoardState from a FEN record (§4.6). On malformed
// input it returns an *InvalidFEN error and a state with an empty
// mailbox, no castling rights, no en-passant target, and both counters
// zero.
func ParseFEN(fen string) (*BoardState, error) {
	b := &BoardState{enPassantSquare: SqNone, kingSquare: [ColorLength]Square{SqNone, SqNone}}
	if err := b.setup(fen); err != nil {
		*b = BoardState{enPassantSquare: SqNone, kingSquare: [ColorLength]Square{SqNone, SqNone}}
		return b, err
	}
	b.sourceFen = fen
	b.checkKingInvariant()
	return b, nil
}

func (b *BoardState) putPiece(pc Piece, sq Square) {
	b.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	b.piecesBb[c][pt] = PushSquare(b.piecesBb[c][pt], sq)
	b.occupied[c] = PushSquare(b.occupied[c], sq)
	if pt == King {
		b.kingSquare[c] = sq
	}
}

func (b *BoardState) checkKingInvariant() {
	b.legalForPlay = b.piecesBb[White][King].PopCount() == 1 && b.piecesBb[Black][King].PopCount() == 1
	for c := White; c <= Black; c++ {
		if b.piecesBb[c][King].PopCount() != 1 {
			b.kingSquare[c] = SqNone
		}
	}
	if !b.legalForPlay {
		logger.Warningf("position %q has an irregular king count; accepted but not legal for play", b.sourceFen)
	}
}

// regex for the piece-placement field (rank layout).
var regexFenPos = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)

// regex for the side-to-move field.
var regexWorB = regexp.MustCompile(`^[wb]$`)

// regex for the castling-rights field.
var regexCastlingRights = regexp.MustCompile(`^(K?Q?k?q?|-)$`)

// regex for the en-passant field.
var regexEnPassant = regexp.MustCompile(`^([a-h][36]|-)$`)

// setup walks a FEN record field by field, applying defaults for any
// trailing field that is missing, per §4.6's "tolerant of trailing
// whitespace" and its six-field layout.
func (b *BoardState) setup(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return &InvalidFEN{Fen: fen, Reason: "empty record"}
	}

	if !regexFenPos.MatchString(fields[0]) {
		return &InvalidFEN{Fen: fen, Reason: "piece placement contains invalid characters"}
	}

	sq := SqA8
	file := 0
	for _, c := range fields[0] {
		switch {
		case c == '/':
			if file != 8 {
				return &InvalidFEN{Fen: fen, Reason: "rank does not cover exactly 8 files"}
			}
			sq = sq.To(South).To(South)
			file = 0
		case c >= '1' && c <= '8':
			n := int(c - '0')
			sq = Square(int(sq) + n)
			file += n
		default:
			pt := PieceTypeFromChar(byte(toUpper(c)))
			if pt == PtNone {
				return &InvalidFEN{Fen: fen, Reason: "unknown piece character"}
			}
			if file >= 8 || !sq.IsValid() {
				return &InvalidFEN{Fen: fen, Reason: "piece placement runs past the end of a rank or the board"}
			}
			color := White
			if c >= 'a' && c <= 'z' {
				color = Black
			}
			b.putPiece(MakePiece(color, pt), sq)
			sq++
			file++
		}
	}
	if file != 8 {
		return &InvalidFEN{Fen: fen, Reason: "last rank does not cover exactly 8 files"}
	}

	// defaults for everything below; FEN records may omit trailing fields
	b.sideToMove = White
	b.fullMoveNumber = 1

	if len(fields) >= 2 {
		if !regexWorB.MatchString(fields[1]) {
			return &InvalidFEN{Fen: fen, Reason: "side to move must be 'w' or 'b'"}
		}
		if fields[1] == "b" {
			b.sideToMove = Black
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return &InvalidFEN{Fen: fen, Reason: "castling rights contain invalid characters"}
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					b.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					b.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					b.castlingRights.Add(CastlingBlackOO)
				case 'q':
					b.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}

	if len(fields) >= 4 {
		if !regexEnPassant.MatchString(fields[3]) {
			return &InvalidFEN{Fen: fen, Reason: "en-passant target is not a3..h3/a6..h6 or '-'"}
		}
		if fields[3] != "-" {
			b.enPassantSquare = MakeSquare(fields[3])
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return &InvalidFEN{Fen: fen, Reason: "halfmove clock is not a non-negative integer"}
		}
		b.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return &InvalidFEN{Fen: fen, Reason: "fullmove number is not a positive integer"}
		}
		b.fullMoveNumber = n
	}

	return nil
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Fen re-emits this state as a FEN record (§8 property 7: round-tripping
// it through ParseFEN again yields an equivalent state).
func (b *BoardState) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := b.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}

	sb.WriteString(" ")
	sb.WriteString(b.sideToMove.Str())
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}

// GetPiece returns the piece on sq, or PieceNone for an empty square.
func (b *BoardState) GetPiece(sq Square) Piece { return b.board[sq] }

// PiecesBb returns the bitboard for one (color, piece kind) pair.
func (b *BoardState) PiecesBb(c Color, pt PieceType) Bitboard { return b.piecesBb[c][pt] }

// OccupiedBb returns the bitboard of all squares occupied by color c.
func (b *BoardState) OccupiedBb(c Color) Bitboard { return b.occupied[c] }

// OccupiedAll returns the bitboard of all occupied squares.
func (b *BoardState) OccupiedAll() Bitboard { return b.occupied[White] | b.occupied[Black] }

// SideToMove returns the color to move next.
func (b *BoardState) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the active castling-rights flags.
func (b *BoardState) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (b *BoardState) EnPassantSquare() Square { return b.enPassantSquare }

// HalfMoveClock returns the halfmove clock (§3; rule enforcement is a
// caller concern, see the open question in the design notes).
func (b *BoardState) HalfMoveClock() int { return b.halfMoveClock }

// FullMoveNumber returns the fullmove number.
func (b *BoardState) FullMoveNumber() int { return b.fullMoveNumber }

// KingSquare returns the square of color c's king, or SqNone if this
// state's king-count invariant (§3) does not hold for that color.
func (b *BoardState) KingSquare(c Color) Square { return b.kingSquare[c] }

// LegalForPlay reports whether both kings are present exactly once. A
// FEN built from an irregular test position still parses (§3, §9 open
// question) but is flagged here rather than silently treated as normal.
func (b *BoardState) LegalForPlay() bool { return b.legalForPlay }

// SourceFen returns the FEN string this state was parsed from.
func (b *BoardState) SourceFen() string { return b.sourceFen }

// String renders the board as an 8x8 grid for debugging/display.
func (b *BoardState) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(strconv.Itoa(int(r) + 1))
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			pc := b.board[SquareOf(f, r)]
			if pc == PieceNone {
				sb.WriteString("- ")
			} else {
				sb.WriteString(pc.String())
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
