// Copyright 2026 go-cordic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cordic

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SearchBuilder picks, for every address, the direction sequence whose
// engine output is closest in phase to the target angle. Each address costs
// one engine run per candidate, so a full table is O(Length^2): build it
// offline, never on the rotation path.
type SearchBuilder struct {
	// Workers bounds the addresses searched concurrently.
	// Zero means GOMAXPROCS.
	Workers int
}

// Kind returns KindSearch.
func (SearchBuilder) Kind() Kind { return KindSearch }

// Entry scans every candidate for address n and returns the first one with
// the smallest residual phase.
func (SearchBuilder) Entry(cfg Config, n int) (Entry, error) {
	x := referenceVector(cfg, n)

	best := Entry(0)
	bestErr := math.Inf(1)
	for v := range candidates(cfg) {
		if err := phaseError(RotateRaw(x, Entry(v), cfg.Stages)); err < bestErr {
			bestErr = err
			best = Entry(v)
		}
	}
	return best, nil
}

func (b SearchBuilder) table(ctx context.Context, cfg Config) ([]Entry, error) {
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	entries := make([]Entry, cfg.Length())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for n := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := b.Entry(cfg, n)
			entries[n] = e
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Residual returns the phase error left by candidate v at address n, the
// quantity SearchBuilder minimizes.
func Residual(cfg Config, n int, v Entry) float64 {
	return phaseError(RotateRaw(referenceVector(cfg, n), v, cfg.Stages))
}

// candidates returns how many entry values are searched. Values from
// 2^(Stages+1) on alias smaller ones (the engine reads bits 0..Stages only)
// and can never be strictly better, so the scan stops there.
func candidates(cfg Config) int {
	return min(cfg.Length(), 1<<cfg.EntryBits())
}

// referenceVector returns the full-scale vector at angle -theta(n). Rotating
// it by the right entry aligns it with the positive real axis.
func referenceVector(cfg Config, n int) Vector {
	scale := float64(int64(1)<<(cfg.Width-1) - 1)
	theta := -float64(n) * rotationStep(cfg)
	return Vector{
		Re: int64(math.Floor(scale * math.Cos(theta))),
		Im: int64(math.Floor(scale * math.Sin(theta))),
	}
}

func phaseError(v Vector) float64 {
	return math.Abs(math.Atan2(float64(v.Im), float64(v.Re)))
}
