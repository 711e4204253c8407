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

// Package fixtures loads named opening positions from a TOML file, for use
// by tests and by cmd/magicgen as a set of smoke-test positions to sanity
// check a newly discovered magic against the on-the-fly generator (§8.3)
// before printing it.
package fixtures

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/anvilchess/movecore/internal/position"
	"github.com/anvilchess/movecore/internal/util"
)

// DefaultFile is the fixture file used when a caller does not name one.
const DefaultFile = "./fixtures/openings.toml"

// Set is a named collection of opening positions loaded from a TOML file.
// The zero value is an empty set.
type Set struct {
	Openings map[string]string `toml:"openings"`
}

// Load reads path and decodes its "openings" table into a Set. Every value
// must be a well-formed FEN; Load fails fast rather than returning a Set
// with entries that would blow up later at Position().
func Load(path string) (*Set, error) {
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}

	var s Set
	if _, err := toml.DecodeFile(resolved, &s); err != nil {
		return nil, fmt.Errorf("fixtures: decoding %s: %w", resolved, err)
	}

	for name, fen := range s.Openings {
		if _, err := position.ParseFEN(fen); err != nil {
			return nil, fmt.Errorf("fixtures: opening %q: %w", name, err)
		}
	}

	return &s, nil
}

// Names returns the fixture names in s, suitable for iteration in a
// table-driven test.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Openings))
	for name := range s.Openings {
		names = append(names, name)
	}
	return names
}

// Position parses and returns the board state for the named fixture. The
// FEN was already validated at Load time, so the only possible error here
// is an unknown name.
func (s *Set) Position(name string) (*position.BoardState, error) {
	fen, ok := s.Openings[name]
	if !ok {
		return nil, fmt.Errorf("fixtures: unknown opening %q", name)
	}
	return position.ParseFEN(fen)
}
