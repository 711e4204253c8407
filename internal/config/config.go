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

// Package config holds globally available configuration variables which are
// either set by defaults or read from a TOML config file. This core has no
// search or evaluation configuration of its own; it only configures logging
// and the magic-number search (§4.5, §4.8).
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/anvilchess/movecore/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level, can be overwritten by the config file.
	LogLevel = 5

	// TestLogLevel defines the test log level.
	TestLogLevel = 5

	// MagicSeeds are the per-rank xorshift64star seeds the magic search
	// draws from (§4.5, §4.8), indexed by the square's rank. These are the
	// values Stockfish ships; they pick a valid magic in the fewest draws.
	MagicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	// MagicSeed is XORed into every entry of MagicSeeds before a search,
	// so a deterministic build can reproduce one magic table and a
	// non-deterministic one (seed derived from time/pid) can reproduce none.
	MagicSeed uint64 = 0

	// MagicMaxCandidates bounds the discovery loop of §4.5. Exceeding it
	// without finding a valid magic reports MagicSearchExhausted.
	MagicMaxCandidates = 1 << 28

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log   logConfiguration
	Magic magicConfiguration
}

// Setup reads the configuration file and applies its settings, falling
// back to the defaults above for anything the file does not specify.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupMagic()
	initialized = true
}
