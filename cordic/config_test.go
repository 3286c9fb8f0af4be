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
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"default", func(*Config) {}, nil},
		{"min stages", func(c *Config) { c.Stages = MinStages }, nil},
		{"max stages", func(c *Config) { c.Stages = MaxStages }, nil},
		{"one stage", func(c *Config) { c.Stages = 1 }, ErrStages},
		{"eight stages", func(c *Config) { c.Stages = 8 }, ErrStages},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrWidth},
		{"too wide", func(c *Config) { c.Width = 45 }, ErrWidth},
		{"int bits above width", func(c *Config) { c.IntBits = 17 }, ErrIntBits},
		{"negative int bits", func(c *Config) { c.IntBits = -1 }, ErrIntBits},
		{"zero quant", func(c *Config) { c.Quant = 0 }, ErrQuant},
		{"divider 1", func(c *Config) { c.Divider = 1 }, nil},
		{"divider 8", func(c *Config) { c.Divider = 8 }, nil},
		{"divider 3", func(c *Config) { c.Divider = 3 }, ErrDivider},
		{"divider 6", func(c *Config) { c.Divider = 6 }, ErrDivider},
		{"zero divider", func(c *Config) { c.Divider = 0 }, ErrDivider},
		{"zero gain bits", func(c *Config) { c.GainBits = 0 }, ErrGainBits},
		{"17 gain bits", func(c *Config) { c.GainBits = 17 }, ErrGainBits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{Width: 12, IntBits: 2, Stages: 4, Quant: 16}.WithDefaults()
	if cfg.Divider != DefaultDivider || cfg.GainBits != DefaultGainBits {
		t.Fatalf("WithDefaults() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestConfigDerived(t *testing.T) {
	tests := []struct {
		quant, divider int
		wantLen        int
		wantAddr       int
	}{
		{64, 2, 256, 8},
		{48, 2, 192, 8},
		{64, 4, 512, 9},
		{1, 1, 2, 1},
		{3, 1, 6, 3},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Quant, cfg.Divider = tt.quant, tt.divider
		if got := cfg.Length(); got != tt.wantLen {
			t.Errorf("Q%d D%d: Length() = %d, want %d", tt.quant, tt.divider, got, tt.wantLen)
		}
		if got := cfg.AddrWidth(); got != tt.wantAddr {
			t.Errorf("Q%d D%d: AddrWidth() = %d, want %d", tt.quant, tt.divider, got, tt.wantAddr)
		}
	}

	cfg := DefaultConfig()
	if got := cfg.String(); got != "W16_I4_S6_Q64_D2" {
		t.Errorf("String() = %q", got)
	}
	if got := cfg.OutFormat().String(); got != "18.6" {
		t.Errorf("OutFormat() = %s, want 18.6", got)
	}
	if got := cfg.EntryBits(); got != 7 {
		t.Errorf("EntryBits() = %d, want 7", got)
	}
}

func TestQuantizer(t *testing.T) {
	q, err := NewQuantizer(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := q.Step(), math.Pi/128; math.Abs(got-want) > 1e-15 {
		t.Errorf("Step() = %v, want %v", got, want)
	}

	tests := []struct {
		name  string
		theta float64
		want  int
	}{
		{"zero", 0, 0},
		{"address 169", q.Angle(169), 169},
		{"rounds up", q.Step() * 10.6, 11},
		{"rounds down", q.Step() * 10.4, 10},
		{"full turn wraps", 2 * math.Pi, 0},
		{"negative step", -q.Step(), 255},
		{"negative half turn", -math.Pi, 128},
		{"two turns", 4*math.Pi + q.Step()*3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.Address(tt.theta)
			if err != nil {
				t.Fatalf("Address(%v): %v", tt.theta, err)
			}
			if got != tt.want {
				t.Errorf("Address(%v) = %d, want %d", tt.theta, got, tt.want)
			}
		})
	}

	for _, theta := range []float64{1e300, -1e300, 1e18} {
		if got, err := q.Address(theta); err != nil || got < 0 || got >= 256 {
			t.Errorf("Address(%v) = %d, %v; want an address in [0, 256)", theta, got, err)
		}
	}
	for _, theta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := q.Address(theta); !errors.Is(err, ErrAngleRange) {
			t.Errorf("Address(%v) error = %v, want ErrAngleRange", theta, err)
		}
	}

	if got := q.Inverse(0); got != 0 {
		t.Errorf("Inverse(0) = %d, want 0", got)
	}
	if got := q.Inverse(1); got != 255 {
		t.Errorf("Inverse(1) = %d, want 255", got)
	}
	for _, n := range []int{3, 64, 169, 255} {
		if got, _ := q.Address(-q.Angle(n)); got != q.Inverse(n) {
			t.Errorf("Address(-Angle(%d)) = %d, want Inverse = %d", n, got, q.Inverse(n))
		}
	}

	addrs := q.Addresses()
	if len(addrs) != 256 || addrs[0] != 0 || addrs[255] != 255 {
		t.Errorf("Addresses() = %d entries [%d..%d]", len(addrs), addrs[0], addrs[len(addrs)-1])
	}
}

func TestNewQuantizerRejects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Divider = 5
	if _, err := NewQuantizer(cfg); !errors.Is(err, ErrDivider) {
		t.Fatalf("NewQuantizer() = %v, want ErrDivider", err)
	}
}
