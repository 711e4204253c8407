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

// Command magicgen runs the magic-number discovery loop (§4.5) standalone,
// across all 128 (square, slider kind) pairs in parallel, and prints the
// discovered magics as a Go source fragment. It sanity-checks every magic
// against a handful of real opening positions before printing, comparing
// the magic-indexed lookup to the on-the-fly generator (§8.3).
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/anvilchess/movecore/internal/applog"
	"github.com/anvilchess/movecore/internal/config"
	"github.com/anvilchess/movecore/internal/fixtures"
	. "github.com/anvilchess/movecore/internal/types"
	"github.com/frankkopp/workerpool"
)

var log = applog.GetMagicLog()

// job identifies one unit of work: find the magic for one slider kind on
// one square.
type job struct {
	piece      PieceType
	square     Square
	directions *[4]Direction
}

// result pairs a job with its outcome. err is non-nil on search exhaustion.
type result struct {
	job   job
	magic Magic
	err   error
}

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	workers := flag.Int("workers", 8, "number of concurrent magic-search workers")
	candidates := flag.Int("maxcandidates", 0, "candidate retry bound per square (0 = config default)")
	cpuProfile := flag.Bool("cpuprofile", false, "profile the discovery loop with pkg/profile")
	fixtureFile := flag.String("fixtures", fixtures.DefaultFile, "path to opening-position fixtures used for sanity checking")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	maxCandidates := config.MagicMaxCandidates
	if *candidates > 0 {
		maxCandidates = *candidates
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	jobs := buildJobs()
	log.Infof("dispatching %d magic searches across %d workers", len(jobs), *workers)

	results, err := runJobs(jobs, *workers, maxCandidates)
	if err != nil {
		log.Criticalf("magic search failed: %v", err)
		os.Exit(1)
	}

	bishopMagics, rookMagics := collect(results)

	if err := sanityCheck(*fixtureFile, bishopMagics, rookMagics); err != nil {
		log.Criticalf("sanity check failed: %v", err)
		os.Exit(1)
	}

	printMagics("bishopMagicNumbers", bishopMagics)
	printMagics("rookMagicNumbers", rookMagics)
}

func buildJobs() []job {
	jobs := make([]job, 0, 128)
	for sq := SqA1; sq <= SqH8; sq++ {
		jobs = append(jobs, job{Bishop, sq, &BishopDirections})
		jobs = append(jobs, job{Rook, sq, &RookDirections})
	}
	return jobs
}

// runJobs dispatches every job onto a bounded worker pool. Each job gets
// its own PRNG seed derived the same way the sequential init path derives
// one (§4.8, §5 "per-worker PRNG state") - workers share no mutable state.
func runJobs(jobs []job, workerCount int, maxCandidates int) ([]result, error) {
	pool := workerpool.New(workerCount)
	defer pool.StopWait()

	var (
		mu      sync.Mutex
		results = make([]result, 0, len(jobs))
		eg      errgroup.Group
	)

	for _, j := range jobs {
		j := j
		eg.Go(func() error {
			done := make(chan struct{})
			var r result
			pool.Submit(func() {
				defer close(done)
				seeds := config.MagicSeeds
				for i := range seeds {
					seeds[i] ^= config.MagicSeed
				}
				m, err := SearchSquareMagic(j.square, j.directions, j.piece, seeds[j.square.RankOf()], maxCandidates)
				r = result{job: j, magic: m, err: err}
			})
			<-done
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return r.err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func collect(results []result) (bishop, rook [SqLength]Magic) {
	for _, r := range results {
		switch r.job.piece {
		case Bishop:
			bishop[r.job.square] = r.magic
		case Rook:
			rook[r.job.square] = r.magic
		}
	}
	return
}

// sanityCheck re-derives attacks for every fixture position via both the
// discovered magic table and the on-the-fly generator and compares them,
// per §8.3.
func sanityCheck(fixtureFile string, bishopMagics, rookMagics [SqLength]Magic) error {
	set, err := fixtures.Load(fixtureFile)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	for _, name := range set.Names() {
		b, err := set.Position(name)
		if err != nil {
			return fmt.Errorf("opening %q: %w", name, err)
		}
		occ := b.OccupiedAll()
		for sq := SqA1; sq <= SqH8; sq++ {
			bm := &bishopMagics[sq]
			want := SlidingAttack(BishopDirections, sq, occ&bm.Mask)
			if got := bm.Attacks[bm.Index(occ)]; got != want {
				return fmt.Errorf("opening %q: bishop magic mismatch on %s", name, sq)
			}
			rm := &rookMagics[sq]
			want = SlidingAttack(RookDirections, sq, occ&rm.Mask)
			if got := rm.Attacks[rm.Index(occ)]; got != want {
				return fmt.Errorf("opening %q: rook magic mismatch on %s", name, sq)
			}
		}
	}
	return nil
}

func printMagics(varName string, magics [SqLength]Magic) {
	fmt.Printf("var %s = [64]uint64{\n", varName)
	for sq := SqA1; sq <= SqH8; sq++ {
		fmt.Printf("\t0x%016X,\n", uint64(magics[sq].Number))
	}
	fmt.Println("}")
}
