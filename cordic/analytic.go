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
)

const (
	twoPi  = 2 * math.Pi
	halfPi = math.Pi / 2
)

// atanTable holds atan(2^-k) for k = 0..27. Only the first Stages entries
// are used.
var atanTable = [28]float64{
	0.78539816339745, 0.46364760900081, 0.24497866312686, 0.12435499454676,
	0.06241880999596, 0.03123983343027, 0.01562372862048, 0.00781234106010,
	0.00390623013197, 0.00195312251648, 0.00097656218956, 0.00048828121119,
	0.00024414062015, 0.00012207031189, 0.00006103515617, 0.00003051757812,
	0.00001525878906, 0.00000762939453, 0.00000381469727, 0.00000190734863,
	0.00000095367432, 0.00000047683716, 0.00000023841858, 0.00000011920929,
	0.00000005960464, 0.00000002980232, 0.00000001490116, 0.00000000745058,
}

// AnalyticBuilder derives each entry by decomposing the angle into
// micro-rotations in float64 arithmetic. The result depends only on Stages
// and the angle grid, not on the input width.
type AnalyticBuilder struct{}

// Kind returns KindAnalytic.
func (AnalyticBuilder) Kind() Kind { return KindAnalytic }

// Entry decomposes the angle of address n.
func (AnalyticBuilder) Entry(cfg Config, n int) (Entry, error) {
	e, _, err := Decompose(float64(n)*rotationStep(cfg), cfg.Stages)
	return e, err
}

// Decompose returns the entry rotating by theta with the given number of
// stages, and the residual angle the entry leaves uncorrected. theta must be
// in ]-2*pi, 2*pi].
func Decompose(theta float64, stages int) (Entry, float64, error) {
	if !(theta > -twoPi && theta <= twoPi) {
		return 0, 0, fmt.Errorf("%w: got %v", ErrAngleRange, theta)
	}

	// ]-pi, pi]
	if theta <= -math.Pi || theta > math.Pi {
		if theta < 0 {
			theta += twoPi
		} else {
			theta -= twoPi
		}
	}

	var e Entry
	// The stages cover about +-1.74 rad: a half turn brings theta into
	// [-pi/2, pi/2] and is done by negating the input.
	if theta < -halfPi || theta > halfPi {
		e |= 1 << FlipBit
		if theta > 0 {
			theta -= math.Pi
		} else {
			theta += math.Pi
		}
	}

	for u := 1; u <= stages; u++ {
		sigma := 1.0
		if theta < 0 {
			sigma = -1.0
			e |= 1 << u
		}
		theta -= sigma * atanTable[u-1]
	}
	return e, theta, nil
}
