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

import "github.com/ajroetker/go-cordic/cordic/fixedpoint"

// Entry is one ROM word: bit 0 is the flip (pre-negation) decision and bit u,
// 1 <= u <= Stages, the direction of stage u. A set stage bit selects the
// clockwise micro-rotation.
type Entry uint8

// FlipBit is the bit index of the flip decision.
const FlipBit = 0

// Flip reports whether the input vector is negated before the first stage.
func (e Entry) Flip() bool {
	return fixedpoint.Bit(uint64(e), FlipBit)
}

// Dir reports the direction bit of stage u (1-based).
func (e Entry) Dir(u int) bool {
	return fixedpoint.Bit(uint64(e), uint(u))
}

// Sign returns the sigma of stage u: +1 for a set bit, -1 otherwise.
func (e Entry) Sign(u int) int64 {
	if e.Dir(u) {
		return 1
	}
	return -1
}

// MSBFirst returns e in the mirrored layout: flip at bit 7, stage u at bit
// 7-u.
func (e Entry) MSBFirst(stages int) Entry {
	var out Entry
	if e.Flip() {
		out |= 1 << 7
	}
	for u := 1; u <= stages; u++ {
		if e.Dir(u) {
			out |= 1 << (7 - u)
		}
	}
	return out
}

// EntryFromMSBFirst converts a mirrored-layout byte to an Entry.
func EntryFromMSBFirst(b uint8, stages int) Entry {
	var out Entry
	if fixedpoint.Bit(uint64(b), 7) {
		out |= 1 << FlipBit
	}
	for u := 1; u <= stages; u++ {
		if fixedpoint.Bit(uint64(b), uint(7-u)) {
			out |= 1 << u
		}
	}
	return out
}
