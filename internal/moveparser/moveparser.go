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

// Package moveparser turns a textual move token - SAN, long algebraic, or
// UCI - into a types.MoveDescriptor (§4.7). It never consults a board: a
// token is either syntactically well-formed or it is marked invalid, and
// nothing here ever looks up what piece actually stands on a square.
package moveparser

import (
	"strings"

	. "github.com/anvilchess/movecore/internal/types"
)

var nullTokens = map[string]bool{
	"(null)": true, "00-00": true, "null": true, "0000": true,
	"pass": true, "@@@@": true, "any": true, "z0": true,
	"<>": true, "--": true, "$0": true,
}

// Parse decodes token into a MoveDescriptor, following the pipeline of
// §4.7: null-move detection, annotation stripping, castling, promotion,
// en-passant suffix, a validity precheck, then shape classification. A
// token that cannot be fully decoded comes back with Invalid set and no
// further guarantees about its other fields.
func Parse(token string) MoveDescriptor {
	md := NewMoveDescriptor(token)

	s := strings.TrimSpace(token)
	if nullTokens[strings.ToLower(s)] {
		md.Null = true
		return md
	}

	s = stripAnnotations(s, &md)
	if md.Invalid {
		return md
	}

	if tryCastling(s, &md) {
		return md
	}

	s = stripPromotion(s, &md)
	s = stripEnPassantSuffix(s, &md)

	if !validResidualChars(s) {
		md.Invalid = true
		return md
	}

	if !classifyShape(s, &md) {
		md.Invalid = true
	}
	return md
}

// longest-match-first so "!!!" is consumed before "!!", and "!!" before "!".
var evalSymbols = []string{
	"!!!", "???", "(!)", "(?)", "+/-", "+/=", "-/+", "=/+",
	"!!", "??", "!?", "?!", "TN", "!", "?",
}

var endOfGameMarks = []string{"1-0", "0-1", "1/2-1/2", "white resigns", "black resigns"}

// stripAnnotations removes PGN-style annotation suffixes and decorations,
// setting the flags they encode, and returns the residual move text.
func stripAnnotations(s string, md *MoveDescriptor) string {
	s = strings.TrimSpace(s)

	for _, mark := range endOfGameMarks {
		if strings.EqualFold(s, mark) {
			md.Invalid = true
			return ""
		}
	}

	// evaluation symbols and positional marks may trail the move text;
	// strip every one found, longest pattern first, repeating until none
	// remain (a token may carry more than one, e.g. "e4!!?").
	changed := true
	for changed {
		changed = false
		for _, sym := range evalSymbols {
			if strings.HasSuffix(s, sym) {
				s = strings.TrimSuffix(s, sym)
				changed = true
			}
		}
	}

	if strings.HasSuffix(s, "(=)") {
		s = strings.TrimSuffix(s, "(=)")
		md.DrawOffered = true
	}

	// checkmate suffixes before check suffixes: "#" and "mate" are
	// unambiguous; "++" historically denotes double check leading to mate
	// and is listed under both - record it as both.
	switch {
	case strings.HasSuffix(s, "#"):
		s = strings.TrimSuffix(s, "#")
		md.Checkmate = true
	case strings.HasSuffix(s, "mate"):
		s = strings.TrimSuffix(s, "mate")
		md.Checkmate = true
	case strings.HasSuffix(s, "++"):
		s = strings.TrimSuffix(s, "++")
		md.Check = true
		md.Checkmate = true
	default:
		for _, suf := range []string{"dbl. ch.", "dis. ch.", "ch.", "ch", "+"} {
			if strings.HasSuffix(s, suf) {
				s = strings.TrimSuffix(s, suf)
				md.Check = true
				break
			}
		}
	}

	// a trailing bare "=" that never attached to a promotion letter is
	// decoration, not part of the move text (promotions are stripped
	// later, in stripPromotion, once the string ends in a piece letter).
	s = strings.TrimSuffix(s, "=")

	return strings.TrimSpace(s)
}

// tryCastling matches queenside before kingside, per §4.7 step 3 - the
// kingside pattern is a prefix of the queenside one and must not shadow it.
func tryCastling(s string, md *MoveDescriptor) bool {
	upper := strings.ToUpper(s)
	switch {
	case upper == "O-O-O" || upper == "0-0-0":
		md.QueensideCastle = true
		md.Piece = King
		return true
	case upper == "O-O" || upper == "0-0":
		md.KingsideCastle = true
		md.Piece = King
		return true
	default:
		return false
	}
}

func isFile(b byte) bool { return b >= 'a' && b <= 'h' }
func isRank(b byte) bool { return b >= '1' && b <= '8' }
func isRank18(b byte) bool { return b == '1' || b == '8' }

func fileIndex(b byte) int8 { return int8(b - 'a') }
func rankIndex(b byte) int8 { return int8(b - '1') }

var promoPieceLetters = map[byte]PieceType{'Q': Queen, 'R': Rook, 'B': Bishop, 'N': Knight}

// stripPromotion implements §4.7 step 4: "<square>[=|(|/]?<piece>" with
// the destination on rank 1 or 8. It removes the separator and piece
// letter from s, leaving the rest of the token (e.g. "e8" or "exd8") for
// ordinary shape classification in step 7. The letter 'b' is ambiguous
// with bishop: in the no-separator form it is only taken as a promotion
// piece because it is, by construction, the last character of the token -
// a 'b' earlier in the string (a file letter) is untouched.
func stripPromotion(s string, md *MoveDescriptor) string {
	n := len(s)

	// separated form: ...<file><rank>[=(/]<piece>
	if n >= 4 {
		sep := s[n-2]
		last := s[n-1]
		if strings.ContainsRune("=(/", rune(sep)) {
			if pc, ok := promoPieceLetters[toUpperByte(last)]; ok {
				if isFile(s[n-4]) && isRank18(s[n-3]) {
					md.Promotion = pc
					return s[:n-2]
				}
			}
		}
	}

	// bare form: ...<file><rank><piece>, no separator
	if n >= 3 {
		last := s[n-1]
		if pc, ok := promoPieceLetters[toUpperByte(last)]; ok {
			if isFile(s[n-3]) && isRank18(s[n-2]) {
				md.Promotion = pc
				return s[:n-1]
			}
		}
	}

	return s
}

func toUpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func stripEnPassantSuffix(s string, md *MoveDescriptor) string {
	lower := strings.ToLower(s)
	for _, suf := range []string{"e.p.", "ep.", "ep"} {
		if strings.HasSuffix(lower, suf) {
			md.EnPassant = true
			return s[:len(s)-len(suf)]
		}
	}
	return s
}

const residualAlphabet = "KQBNRabcdefghx12345678-"

func validResidualChars(s string) bool {
	pieceLetters := 0
	captures := 0
	for _, c := range s {
		if !strings.ContainsRune(residualAlphabet, c) {
			return false
		}
		if strings.ContainsRune("KQBNR", c) {
			pieceLetters++
		}
		if c == 'x' {
			captures++
		}
	}
	return pieceLetters <= 1 && captures <= 1
}

var sanPieceLetters = map[byte]PieceType{'K': King, 'Q': Queen, 'R': Rook, 'B': Bishop, 'N': Knight}

// classifyShape implements §4.7 step 7: UCI, SAN non-capture, and SAN
// capture shapes. md.Promotion/md.EnPassant, if any, were already set by
// earlier steps; this only locates the piece kind and the square fields.
func classifyShape(s string, md *MoveDescriptor) bool {
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		return false
	}

	if idx := strings.IndexByte(s, 'x'); idx >= 0 {
		md.Capture = true
		return classifySanCapture(s[:idx], s[idx+1:], md)
	}

	if isUciShape(s) {
		md.Piece = Pawn // a bare UCI from-token carries no piece letter; inferred pawn per §8 example
		md.FromFile = fileIndex(s[0])
		md.FromRank = rankIndex(s[1])
		md.ToFile = fileIndex(s[2])
		md.ToRank = rankIndex(s[3])
		return true
	}

	return classifySanNonCapture(s, md)
}

func isUciShape(s string) bool {
	return len(s) == 4 && isFile(s[0]) && isRank(s[1]) && isFile(s[2]) && isRank(s[3])
}

// classifySanNonCapture handles lengths 2 (pawn push) through 5 (piece
// move with a two-dimension disambiguator).
func classifySanNonCapture(s string, md *MoveDescriptor) bool {
	switch len(s) {
	case 2:
		if !isFile(s[0]) || !isRank(s[1]) {
			return false
		}
		md.Piece = Pawn
		md.ToFile = fileIndex(s[0])
		md.ToRank = rankIndex(s[1])
		return true
	case 3:
		pc, ok := sanPieceLetters[s[0]]
		if !ok || !isFile(s[1]) || !isRank(s[2]) {
			return false
		}
		md.Piece = pc
		md.ToFile = fileIndex(s[1])
		md.ToRank = rankIndex(s[2])
		return true
	case 4:
		pc, ok := sanPieceLetters[s[0]]
		if !ok || !isFile(s[2]) || !isRank(s[3]) {
			return false
		}
		md.Piece = pc
		switch {
		case isFile(s[1]):
			md.FromFile = fileIndex(s[1])
		case isRank(s[1]):
			md.FromRank = rankIndex(s[1])
		default:
			return false
		}
		md.ToFile = fileIndex(s[2])
		md.ToRank = rankIndex(s[3])
		return true
	case 5:
		pc, ok := sanPieceLetters[s[0]]
		if !ok || !isFile(s[1]) || !isRank(s[2]) || !isFile(s[3]) || !isRank(s[4]) {
			return false
		}
		md.Piece = pc
		md.FromFile = fileIndex(s[1])
		md.FromRank = rankIndex(s[2])
		md.ToFile = fileIndex(s[3])
		md.ToRank = rankIndex(s[4])
		return true
	default:
		return false
	}
}

// classifySanCapture handles the "x"-split shape: a 1-3 symbol left token
// (moving piece and optional disambiguator) and a 1-2 symbol right token
// (destination file and optional rank).
func classifySanCapture(left, right string, md *MoveDescriptor) bool {
	if len(right) < 1 || len(right) > 2 || !isFile(right[0]) {
		return false
	}
	md.ToFile = fileIndex(right[0])
	if len(right) == 2 {
		if !isRank(right[1]) {
			return false
		}
		md.ToRank = rankIndex(right[1])
	}

	switch len(left) {
	case 1:
		if isFile(left[0]) {
			md.Piece = Pawn
			md.FromFile = fileIndex(left[0])
			return true
		}
		if pc, ok := sanPieceLetters[left[0]]; ok {
			md.Piece = pc
			return true
		}
		return false
	case 2:
		pc, ok := sanPieceLetters[left[0]]
		if !ok {
			return false
		}
		md.Piece = pc
		switch {
		case isFile(left[1]):
			md.FromFile = fileIndex(left[1])
		case isRank(left[1]):
			md.FromRank = rankIndex(left[1])
		default:
			return false
		}
		return true
	case 3:
		pc, ok := sanPieceLetters[left[0]]
		if !ok || !isFile(left[1]) || !isRank(left[2]) {
			return false
		}
		md.Piece = pc
		md.FromFile = fileIndex(left[1])
		md.FromRank = rankIndex(left[2])
		return true
	default:
		return false
	}
}
