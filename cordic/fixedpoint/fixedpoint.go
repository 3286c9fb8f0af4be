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

package fixedpoint

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest register a Format may describe.
const MaxWidth = 62

// ErrFormat is returned by Validate for an unusable format.
var ErrFormat = errors.New("fixedpoint: invalid format")

// Format is a two's complement fixed-point word layout.
type Format struct {
	Width   uint // total bits, sign included
	IntBits uint // integer bits, sign included
}

// Validate reports whether the format can be represented.
func (f Format) Validate() error {
	if f.Width == 0 || f.Width > MaxWidth {
		return fmt.Errorf("%w: width %d outside [1, %d]", ErrFormat, f.Width, MaxWidth)
	}
	if f.IntBits > f.Width {
		return fmt.Errorf("%w: %d integer bits exceed width %d", ErrFormat, f.IntBits, f.Width)
	}
	return nil
}

// FracBits returns the number of fractional bits.
func (f Format) FracBits() uint {
	return f.Width - f.IntBits
}

// Scale returns 2^FracBits, the raw value of 1.0.
func (f Format) Scale() int64 {
	return int64(1) << f.FracBits()
}

// Min returns the most negative raw value.
func (f Format) Min() int64 {
	return -(int64(1) << (f.Width - 1))
}

// Max returns the most positive raw value.
func (f Format) Max() int64 {
	return int64(1)<<(f.Width-1) - 1
}

// Fits reports whether x is representable without wrapping.
func (f Format) Fits(x int64) bool {
	return x >= f.Min() && x <= f.Max()
}

// Wrap truncates x to Width bits and sign-extends the result, which is what
// assigning x to a register of this format does.
func (f Format) Wrap(x int64) int64 {
	shift := 64 - f.Width
	return (x << shift) >> shift
}

// Saturate clamps x to [Min, Max].
func (f Format) Saturate(x int64) int64 {
	if x < f.Min() {
		return f.Min()
	}
	if x > f.Max() {
		return f.Max()
	}
	return x
}

// FromFloat converts v to a raw word, truncating toward zero and wrapping
// to the register width.
func (f Format) FromFloat(v float64) int64 {
	return f.Wrap(int64(v * float64(f.Scale())))
}

// ToFloat converts a raw word to its real value.
func (f Format) ToFloat(x int64) float64 {
	return float64(x) / float64(f.Scale())
}

// Widen returns a format with extra integer bits and the same fractional
// bits, the usual sizing of an accumulator.
func (f Format) Widen(bits uint) Format {
	return Format{Width: f.Width + bits, IntBits: f.IntBits + bits}
}

// String renders the format as W.I, e.g. "18.6".
func (f Format) String() string {
	return fmt.Sprintf("%d.%d", f.Width, f.IntBits)
}

// Shr is an arithmetic right shift: negative values floor toward -Inf, so
// Shr(-1, 3) == -1 and not 0 as a division would give.
func Shr(x int64, s uint) int64 {
	return x >> s
}

// Bit extracts bit i of a packed word.
func Bit(word uint64, i uint) bool {
	return (word>>i)&1 == 1
}
