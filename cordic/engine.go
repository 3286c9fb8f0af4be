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
	"github.com/ajroetker/go-cordic/cordic/fixedpoint"
)

// Vector is a pair of raw fixed-point words sharing one format.
type Vector struct {
	Re, Im int64
}

// Complex returns the raw words as a complex number.
func (v Vector) Complex() complex128 {
	return complex(float64(v.Re), float64(v.Im))
}

// Engine rotates vectors with the entries of one ROM. It holds no mutable
// state: a single Engine may be shared by any number of goroutines.
type Engine struct {
	rom  *Rom
	cfg  Config
	in   fixedpoint.Format
	acc  fixedpoint.Format
	gain float64
}

// NewEngine returns the rotation engine of rom.
func NewEngine(rom *Rom) *Engine {
	cfg := rom.Config()
	return &Engine{
		rom:  rom,
		cfg:  cfg,
		in:   cfg.InFormat(),
		acc:  cfg.OutFormat(),
		gain: Gain(cfg.Stages),
	}
}

// Rom returns the table the engine reads.
func (e *Engine) Rom() *Rom { return e.rom }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Format returns the accumulator and output format, two bits wider than the
// input.
func (e *Engine) Format() fixedpoint.Format { return e.acc }

// Rotate applies entry to v. Every intermediate value is held in the
// accumulator format, as in the hardware register; for inputs of the
// configured width it never wraps. The result is larger than the exact
// rotation by the processing gain 1/Kn.
func (e *Engine) Rotate(v Vector, entry Entry) Vector {
	a, b := v.Re, v.Im
	if entry.Flip() {
		a, b = e.acc.Wrap(-a), e.acc.Wrap(-b)
	}

	for u := 1; u <= e.cfg.Stages; u++ {
		sa := fixedpoint.Shr(a, uint(u-1))
		sb := fixedpoint.Shr(b, uint(u-1))
		if entry.Dir(u) {
			a, b = e.acc.Wrap(a+sb), e.acc.Wrap(b-sa)
		} else {
			a, b = e.acc.Wrap(a-sb), e.acc.Wrap(b+sa)
		}
	}
	return Vector{Re: a, Im: b}
}

// RotateAddr rotates v by the angle of ROM address addr.
func (e *Engine) RotateAddr(v Vector, addr int) Vector {
	return e.Rotate(v, e.rom.At(addr))
}

// RotateComplex is the real-valued model of the engine: x is quantized to the
// input format (truncating), rotated, and the output is scaled by the exact
// gain Kn and returned as a real value.
func (e *Engine) RotateComplex(x complex128, addr int) complex128 {
	v := Vector{
		Re: e.in.FromFloat(real(x)),
		Im: e.in.FromFloat(imag(x)),
	}
	out := e.RotateAddr(v, addr)
	return complex(
		e.acc.ToFloat(out.Re)*e.gain,
		e.acc.ToFloat(out.Im)*e.gain,
	)
}

// RotateRaw is the unbounded integer form of Rotate: no register width, no
// wrapping. Builders use it to evaluate candidates.
func RotateRaw(v Vector, entry Entry, stages int) Vector {
	a, b := v.Re, v.Im
	if entry.Flip() {
		a, b = -a, -b
	}

	for u := 1; u <= stages; u++ {
		sa := fixedpoint.Shr(a, uint(u-1))
		sb := fixedpoint.Shr(b, uint(u-1))
		sigma := entry.Sign(u)
		a, b = a+sigma*sb, b-sigma*sa
	}
	return Vector{Re: a, Im: b}
}
