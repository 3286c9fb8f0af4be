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

package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-cordic/cordic"
	"github.com/ajroetker/go-cordic/cordic/fixedpoint"
)

// Rotate writes eng.RotateAddr(in[i], addrs[i]) to out[i] and returns the
// number of elements processed, the shortest of the three slices.
func Rotate(eng *cordic.Engine, in []cordic.Vector, addrs []int, out []cordic.Vector) int {
	n := min(len(in), len(addrs), len(out))
	for i := range n {
		out[i] = eng.RotateAddr(in[i], addrs[i])
	}
	return n
}

// RotateCompensated is Rotate followed by gain compensation.
func RotateCompensated(eng *cordic.Engine, comp *cordic.Compensator, in []cordic.Vector, addrs []int, out []cordic.Vector) int {
	n := min(len(in), len(addrs), len(out))
	for i := range n {
		out[i] = comp.Compensate(eng.RotateAddr(in[i], addrs[i]))
	}
	return n
}

// RotateSoA rotates re[i] + j*im[i] by addrs[i] in place. Lanes are processed
// in groups: each stage is applied to the whole group before the next stage,
// so the inner loop is the same shift-add on every lane.
func RotateSoA(eng *cordic.Engine, re, im []int64, addrs []int) {
	n := min(len(re), len(im), len(addrs))
	lanes := Lanes()
	rom := eng.Rom()
	acc := eng.Format()
	stages := eng.Config().Stages

	entries := make([]cordic.Entry, lanes)

	i := 0
	for ; i+lanes <= n; i += lanes {
		a := re[i : i+lanes]
		b := im[i : i+lanes]
		for j := range lanes {
			entries[j] = rom.At(addrs[i+j])
			if entries[j].Flip() {
				a[j], b[j] = acc.Wrap(-a[j]), acc.Wrap(-b[j])
			}
		}
		for u := 1; u <= stages; u++ {
			shift := uint(u - 1)
			for j := range lanes {
				sa := fixedpoint.Shr(a[j], shift)
				sb := fixedpoint.Shr(b[j], shift)
				if entries[j].Dir(u) {
					a[j], b[j] = acc.Wrap(a[j]+sb), acc.Wrap(b[j]-sa)
				} else {
					a[j], b[j] = acc.Wrap(a[j]-sb), acc.Wrap(b[j]+sa)
				}
			}
		}
	}

	// Scalar tail
	for ; i < n; i++ {
		v := eng.RotateAddr(cordic.Vector{Re: re[i], Im: im[i]}, addrs[i])
		re[i], im[i] = v.Re, v.Im
	}
}

// ParallelRotate is RotateCompensated spread over up to workers goroutines,
// one block at a time. comp may be nil to skip compensation. workers <= 0
// means GOMAXPROCS. Each block writes a disjoint range of out, so the result
// does not depend on scheduling.
func ParallelRotate(ctx context.Context, eng *cordic.Engine, comp *cordic.Compensator, in []cordic.Vector, addrs []int, out []cordic.Vector, workers int) error {
	n := min(len(in), len(addrs), len(out))
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, block := range blockRanges(n, BlockSize()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start, end := block[0], block[1]
			if comp == nil {
				Rotate(eng, in[start:end], addrs[start:end], out[start:end])
			} else {
				RotateCompensated(eng, comp, in[start:end], addrs[start:end], out[start:end])
			}
			return nil
		})
	}
	return g.Wait()
}

// blockRanges splits [0, n) into [start, end) ranges of at most size elements.
func blockRanges(n, size int) [][2]int {
	return lo.Map(lo.Chunk(lo.Range(n), size), func(chunk []int, _ int) [2]int {
		return [2]int{chunk[0], chunk[len(chunk)-1] + 1}
	})
}

// Addresses quantizes angles to ROM addresses. A NaN or infinite angle
// fails the whole slice with the index of the offending angle.
func Addresses(q cordic.Quantizer, angles []float64) ([]int, error) {
	addrs := make([]int, len(angles))
	for i, theta := range angles {
		n, err := q.Address(theta)
		if err != nil {
			return nil, fmt.Errorf("angle %d: %w", i, err)
		}
		addrs[i] = n
	}
	return addrs, nil
}
