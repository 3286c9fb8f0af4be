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
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

var (
	romCache  sync.Map // cacheKey -> *Rom
	romFlight singleflight.Group
	romBuilds atomic.Int64
)

func cacheKey(cfg Config, kind Kind) string {
	return fmt.Sprintf("%v/%v/F%d", kind, cfg, cfg.GainBits)
}

// Cached returns the ROM of (cfg, kind), building it on first use. Concurrent
// first callers share a single build; afterwards every caller gets the same
// read-only table without locking. The shared build does not stop when the
// caller that started it is cancelled: ctx only bounds how long this caller
// waits.
func Cached(ctx context.Context, cfg Config, kind Kind) (*Rom, error) {
	cfg = cfg.WithDefaults()
	key := cacheKey(cfg, kind)
	if rom, ok := romCache.Load(key); ok {
		return rom.(*Rom), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := BuilderFor(kind)
	if err != nil {
		return nil, err
	}
	ch := romFlight.DoChan(key, func() (any, error) {
		if rom, ok := romCache.Load(key); ok {
			return rom, nil
		}
		romBuilds.Add(1)
		rom, err := Build(context.WithoutCancel(ctx), cfg, b)
		if err != nil {
			return nil, err
		}
		romCache.Store(key, rom)
		return rom, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Rom), nil
	}
}

// CachedEngine returns an engine over the cached ROM of (cfg, kind).
func CachedEngine(ctx context.Context, cfg Config, kind Kind) (*Engine, error) {
	rom, err := Cached(ctx, cfg, kind)
	if err != nil {
		return nil, err
	}
	return NewEngine(rom), nil
}
