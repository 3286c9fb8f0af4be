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
	"fmt"

	"modernc.org/mathutil"

	"github.com/ajroetker/go-cordic/cordic/fixedpoint"
)

// Stage count limits. An entry is one byte: a flip bit and up to 7 stage bits.
const (
	MinStages = 2
	MaxStages = 7
)

// Defaults applied by WithDefaults to zero fields.
const (
	DefaultDivider  = 2
	DefaultGainBits = 4
)

// MaxGainBits bounds the fractional bits of the quantized gain.
const MaxGainBits = 16

// Guard bits added to the input width to size the rotation accumulator.
const guardBits = 2

var (
	ErrStages     = errors.New("cordic: stage count out of range")
	ErrWidth      = errors.New("cordic: invalid input width")
	ErrIntBits    = errors.New("cordic: invalid integer bit count")
	ErrQuant      = errors.New("cordic: quantization must be positive")
	ErrDivider    = errors.New("cordic: divider must be a power of 2")
	ErrGainBits   = errors.New("cordic: invalid gain fractional bits")
	ErrAngleRange = errors.New("cordic: rotation must be inside ]-2*pi; 2*pi]")
	ErrRomLength  = errors.New("cordic: rom length does not match configuration")
	ErrEntryBits  = errors.New("cordic: rom entry uses bits beyond the stage count")
	ErrKind       = errors.New("cordic: unknown rom kind")
)

// Config is the fixed numeric configuration of a rotator. It is a plain value:
// copy it freely, it never changes once a ROM is built from it.
type Config struct {
	Width    int // input word width W, sign included
	IntBits  int // integer bits I of the input word
	Stages   int // CORDIC stages N
	Quant    int // angle steps per half turn divided by Divider
	Divider  int // sub-range divider D, a power of 2
	GainBits int // fractional bits of the quantized reciprocal gain
}

// DefaultConfig returns the W16 I4, 6 stages, Q64, D2 configuration.
func DefaultConfig() Config {
	return Config{
		Width:    16,
		IntBits:  4,
		Stages:   6,
		Quant:    64,
		Divider:  DefaultDivider,
		GainBits: DefaultGainBits,
	}
}

// WithDefaults fills zero Divider and GainBits with their defaults.
func (c Config) WithDefaults() Config {
	if c.Divider == 0 {
		c.Divider = DefaultDivider
	}
	if c.GainBits == 0 {
		c.GainBits = DefaultGainBits
	}
	return c
}

// Validate checks every field. The returned error wraps one of the Err*
// sentinels.
func (c Config) Validate() error {
	if c.Stages < MinStages || c.Stages > MaxStages {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrStages, c.Stages, MinStages, MaxStages)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: inputs can't be on %d bits", ErrWidth, c.Width)
	}
	if c.Width+guardBits+MaxGainBits > fixedpoint.MaxWidth {
		return fmt.Errorf("%w: %d bits leave no room for the accumulator", ErrWidth, c.Width)
	}
	if c.IntBits < 0 || c.IntBits > c.Width {
		return fmt.Errorf("%w: %d for a %d-bit input", ErrIntBits, c.IntBits, c.Width)
	}
	if c.Quant <= 0 {
		return fmt.Errorf("%w: got %d", ErrQuant, c.Quant)
	}
	if c.Divider <= 0 || mathutil.PopCount(c.Divider) != 1 {
		return fmt.Errorf("%w: got %d", ErrDivider, c.Divider)
	}
	if c.GainBits < 1 || c.GainBits > MaxGainBits {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrGainBits, c.GainBits, MaxGainBits)
	}
	return nil
}

// Length returns the number of ROM entries, 2*D*Q: one full turn in steps of
// (pi/D)/Q.
func (c Config) Length() int {
	return 2 * c.Divider * c.Quant
}

// AddrWidth returns the bit width of a ROM address, the width of Length-1.
func (c Config) AddrWidth() int {
	return mathutil.BitLen(c.Length() - 1)
}

// EntryBits returns the number of meaningful bits of an entry.
func (c Config) EntryBits() int {
	return c.Stages + 1
}

// InFormat returns the fixed-point format of the input components.
func (c Config) InFormat() fixedpoint.Format {
	return fixedpoint.Format{Width: uint(c.Width), IntBits: uint(c.IntBits)}
}

// OutFormat returns the format of the rotation accumulator and output, the
// input format widened by two guard bits.
func (c Config) OutFormat() fixedpoint.Format {
	return c.InFormat().Widen(guardBits)
}

// String renders the configuration as W16_I4_S6_Q64_D2.
func (c Config) String() string {
	return fmt.Sprintf("W%d_I%d_S%d_Q%d_D%d", c.Width, c.IntBits, c.Stages, c.Quant, c.Divider)
}
