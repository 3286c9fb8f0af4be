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
	"math"
	"testing"
)

// Kn for 1..7 stages, prod(1 ./ abs(1 + 1j * 2.^(-(0:X)))).
var knReference = []float64{
	0.70710678118655, 0.632455532033680, 0.613571991077900,
	0.608833912517750, 0.607648256256170, 0.607351770141300, 0.607277644093530,
}

func TestGain(t *testing.T) {
	for i, want := range knReference {
		stages := i + 1
		if got := Gain(stages); math.Abs(got-want) > 1e-12 {
			t.Errorf("Gain(%d) = %.15f, want %.15f", stages, got, want)
		}
		if got := ProcessingGain(stages) * Gain(stages); math.Abs(got-1) > 1e-15 {
			t.Errorf("ProcessingGain(%d) * Gain(%d) = %v", stages, stages, got)
		}
	}
}

func TestCompensatorMultiplier(t *testing.T) {
	tests := []struct {
		stages, gainBits int
		want             int64
	}{
		{6, 4, 9},
		{6, 3, 4},
		{2, 4, 10},
		{7, 8, 155},
		{6, 16, 39803},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Stages, cfg.GainBits = tt.stages, tt.gainBits
		c := NewCompensator(cfg)
		if got := c.Multiplier(); got != tt.want {
			t.Errorf("S%d F%d: Multiplier() = %d, want %d", tt.stages, tt.gainBits, got, tt.want)
		}
		if c.FracBits() != uint(tt.gainBits) {
			t.Errorf("FracBits() = %d, want %d", c.FracBits(), tt.gainBits)
		}
		// The quantized gain never exceeds Kn and is within one LSB of it.
		if e := c.Error(); e < 0 || e >= math.Ldexp(1, -tt.gainBits) {
			t.Errorf("S%d F%d: Error() = %v", tt.stages, tt.gainBits, e)
		}
	}
}

func TestCompensate(t *testing.T) {
	c := NewCompensator(DefaultConfig())
	tests := []struct {
		in, want Vector
	}{
		{Vector{0, 0}, Vector{0, 0}},
		{Vector{16, -16}, Vector{9, -9}},
		{Vector{-3445, -5798}, Vector{-1938, -3262}},
		// The shift floors: -1 * 9 >> 4 is -1, not 0.
		{Vector{-1, 1}, Vector{-1, 0}},
	}
	for _, tt := range tests {
		if got := c.Compensate(tt.in); got != tt.want {
			t.Errorf("Compensate(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompensateFullScale(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCompensator(cfg)
	out := cfg.OutFormat()
	// The widest engine outputs do not wrap in the compensator.
	for _, x := range []int64{out.Min(), out.Max()} {
		got := c.Compensate(Vector{x, x})
		want := (x * c.Multiplier()) >> c.FracBits()
		if got.Re != want || got.Im != want {
			t.Errorf("Compensate(%d) = %v, want %d", x, got, want)
		}
	}
}

func TestCompensatedGainError(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCompensator(cfg)
	rom := MustBuild(cfg, AnalyticBuilder{})
	eng := NewEngine(rom)
	x := Vector{Re: 8192}
	got := c.Compensate(eng.RotateAddr(x, 0)).Complex()
	mag := math.Hypot(real(got), imag(got))
	wantMag := 8192 * c.Factor() / Gain(cfg.Stages)
	if math.Abs(mag-wantMag) > 10 {
		t.Errorf("compensated magnitude %.1f, want %.1f", mag, wantMag)
	}
}
