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
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Quantizer maps ROM addresses to the angles they represent and back.
type Quantizer struct {
	cfg  Config
	step float64
}

// NewQuantizer validates cfg and returns its angle grid.
func NewQuantizer(cfg Config) (Quantizer, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Quantizer{}, err
	}
	return Quantizer{cfg: cfg, step: rotationStep(cfg)}, nil
}

func rotationStep(cfg Config) float64 {
	return math.Pi / float64(cfg.Divider) / float64(cfg.Quant)
}

// Config returns the configuration the grid was built for.
func (q Quantizer) Config() Config { return q.cfg }

// Step returns the rotation step (pi/D)/Q in radians.
func (q Quantizer) Step() float64 { return q.step }

// Length returns the number of addresses.
func (q Quantizer) Length() int { return q.cfg.Length() }

// Angle returns the angle of address n, n*Step.
func (q Quantizer) Angle(n int) float64 {
	return float64(n) * q.step
}

// Address returns round(theta/Step) modulo Length, always in [0, Length).
// Negative angles wrap, so Address(-Angle(n)) addresses the inverse rotation.
// NaN and infinite angles have no address and return ErrAngleRange.
func (q Quantizer) Address(theta float64) (int, error) {
	steps := math.Round(theta / q.step)
	if math.IsNaN(steps) || math.IsInf(steps, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrAngleRange, theta)
	}
	length := float64(q.Length())
	idx := math.Mod(steps, length)
	if idx < 0 {
		idx += length
	}
	return int(idx), nil
}

// Inverse returns the address of the rotation undoing address n.
func (q Quantizer) Inverse(n int) int {
	length := q.Length()
	return ((length-n)%length + length) % length
}

// Addresses returns every address in increasing order.
func (q Quantizer) Addresses() []int {
	return lo.Range(q.Length())
}
