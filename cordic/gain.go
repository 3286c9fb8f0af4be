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

	"github.com/ajroetker/go-cordic/cordic/fixedpoint"
)

// Gain returns Kn, the inverse of the magnitude growth of a stages-stage
// rotation:
//
//	Kn = prod_{k=0..stages-1} 1/sqrt(1 + 2^-2k)
//
// It does not depend on the rotation directions.
func Gain(stages int) float64 {
	k := 1.0
	for i := range stages {
		k /= math.Sqrt(1 + math.Ldexp(1, -2*i))
	}
	return k
}

// ProcessingGain returns 1/Kn, the growth of the raw engine output.
func ProcessingGain(stages int) float64 {
	return 1 / Gain(stages)
}

// Compensator removes the processing gain with a quantized multiplier:
// floor(Kn * 2^GainBits), applied as a multiply and a right shift.
type Compensator struct {
	kn       int64
	fracBits uint
	gain     float64
	acc      fixedpoint.Format
	out      fixedpoint.Format
}

// NewCompensator returns the compensator of cfg. cfg is assumed valid.
func NewCompensator(cfg Config) *Compensator {
	cfg = cfg.WithDefaults()
	gain := Gain(cfg.Stages)
	frac := uint(cfg.GainBits)
	return &Compensator{
		kn:       int64(gain * float64(int64(1)<<frac)),
		fracBits: frac,
		gain:     gain,
		acc:      cfg.OutFormat().Widen(frac),
		out:      cfg.OutFormat(),
	}
}

// Compensate scales both components by the quantized gain. The product is
// held in an accumulator GainBits wider than the engine output, so it never
// wraps; the shift truncates toward -Inf.
func (c *Compensator) Compensate(v Vector) Vector {
	return Vector{
		Re: c.scale(v.Re),
		Im: c.scale(v.Im),
	}
}

func (c *Compensator) scale(x int64) int64 {
	tmp := c.acc.Wrap(x * c.kn)
	return c.out.Wrap(fixedpoint.Shr(tmp, c.fracBits))
}

// Multiplier returns the quantized gain word.
func (c *Compensator) Multiplier() int64 { return c.kn }

// FracBits returns the fractional bits of the multiplier.
func (c *Compensator) FracBits() uint { return c.fracBits }

// Factor returns the real value of the quantized gain.
func (c *Compensator) Factor() float64 {
	return float64(c.kn) / float64(int64(1)<<c.fracBits)
}

// Error returns Kn - Factor. A compensated output is short of the exact
// rotation by Error/Kn of its magnitude, plus one LSB of final truncation.
func (c *Compensator) Error() float64 {
	return c.gain - c.Factor()
}
