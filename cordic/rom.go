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
	"slices"
	"strings"
)

// Kind names a ROM construction algorithm.
type Kind int

const (
	// KindAnalytic decomposes each angle against the arctangent table.
	KindAnalytic Kind = iota
	// KindSearch keeps the direction sequence with minimal engine phase error.
	KindSearch
)

// Kinds lists every known kind.
var Kinds = []Kind{KindAnalytic, KindSearch}

func (k Kind) String() string {
	switch k {
	case KindAnalytic:
		return "analytic"
	case KindSearch:
		return "search"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the kind names and the short names of generated files:
// "const" for analytic tables and "ml" for searched ones.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "analytic", "const", "cst":
		return KindAnalytic, nil
	case "search", "ml", "mc":
		return KindSearch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrKind, s)
}

// Builder produces the ROM entry of one address.
type Builder interface {
	Kind() Kind
	Entry(cfg Config, n int) (Entry, error)
}

// tableBuilder is implemented by builders that fill a whole table at once.
type tableBuilder interface {
	table(ctx context.Context, cfg Config) ([]Entry, error)
}

// BuilderFor returns the default builder of a kind.
func BuilderFor(k Kind) (Builder, error) {
	switch k {
	case KindAnalytic:
		return AnalyticBuilder{}, nil
	case KindSearch:
		return SearchBuilder{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrKind, k)
}

// Build validates cfg and runs b over every address. The returned Rom is
// complete and never written again.
func Build(ctx context.Context, cfg Config, b Builder) (*Rom, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var entries []Entry
	if tb, ok := b.(tableBuilder); ok {
		var err error
		if entries, err = tb.table(ctx, cfg); err != nil {
			return nil, fmt.Errorf("build %v rom %v: %w", b.Kind(), cfg, err)
		}
	} else {
		entries = make([]Entry, cfg.Length())
		for n := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			e, err := b.Entry(cfg, n)
			if err != nil {
				return nil, fmt.Errorf("build %v rom %v: address %d: %w", b.Kind(), cfg, n, err)
			}
			entries[n] = e
		}
	}
	return &Rom{cfg: cfg, kind: b.Kind(), entries: entries}, nil
}

// MustBuild is like Build but panics on error. It is meant for tables of
// static configurations initialized at program start.
func MustBuild(cfg Config, b Builder) *Rom {
	rom, err := Build(context.Background(), cfg, b)
	if err != nil {
		panic(err)
	}
	return rom
}

// Rom is a read-only table from address to Entry.
type Rom struct {
	cfg     Config
	kind    Kind
	entries []Entry
}

// NewRom wraps existing entries, for example a table loaded from a file.
// The entries are copied.
func NewRom(cfg Config, kind Kind, entries []Entry) (*Rom, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(entries) != cfg.Length() {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrRomLength, len(entries), cfg.Length())
	}
	limit := Entry(uint(1)<<cfg.EntryBits() - 1)
	for n, e := range entries {
		if e > limit {
			return nil, fmt.Errorf("%w: address %d holds %d, %d stages", ErrEntryBits, n, e, cfg.Stages)
		}
	}
	return &Rom{cfg: cfg, kind: kind, entries: slices.Clone(entries)}, nil
}

// Config returns the configuration the table was built for.
func (r *Rom) Config() Config { return r.cfg }

// Kind returns the algorithm that built the table.
func (r *Rom) Kind() Kind { return r.kind }

// Len returns the number of entries.
func (r *Rom) Len() int { return len(r.entries) }

// At returns the entry of addr, taken modulo Len so that any counter value
// addresses the table the way a truncated hardware address would.
func (r *Rom) At(addr int) Entry {
	n := len(r.entries)
	return r.entries[((addr%n)+n)%n]
}

// Entries returns a copy of the table.
func (r *Rom) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Bytes returns the table as raw bytes, one right-aligned entry per byte.
func (r *Rom) Bytes() []byte {
	out := make([]byte, len(r.entries))
	for i, e := range r.entries {
		out[i] = byte(e)
	}
	return out
}

// Equal reports whether both tables hold the same entries.
func (r *Rom) Equal(other *Rom) bool {
	if r == nil || other == nil {
		return r == other
	}
	return slices.Equal(r.entries, other.entries)
}
