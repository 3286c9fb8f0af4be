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

// Package cordic rotates fixed-point vectors by quantized angles with the
// CORDIC shift-add algorithm, the way a hardware pipeline does it: every angle
// of a configuration is looked up in a precomputed ROM whose entries hold the
// direction of each micro-rotation, and the rotation itself is only
// arithmetic shifts, additions and one final constant multiplication.
//
// # Configuration
//
// A Config fixes the input word (Width, IntBits), the number of stages (2 to
// 7), and the angle grid: the half turn pi/Divider is split into Quant steps,
// so a ROM holds 2*Divider*Quant entries and covers one full turn.
//
//	cfg := cordic.DefaultConfig() // W16 I4, 6 stages, 64 steps, divider 2
//	q, _ := cordic.NewQuantizer(cfg)
//	addr, _ := q.Address(math.Pi / 3)
//
// # ROM Construction
//
// Two builders produce the table, both behind the Builder interface:
//
//   - AnalyticBuilder decomposes each angle against the arctangent table,
//     folding it into [-pi/2, pi/2] first. Cheap and closed-form.
//   - SearchBuilder tries every direction sequence on the real engine and
//     keeps the one whose output phase error is smallest. Quadratic in the
//     ROM length, but it accounts for the truncation of the shifts.
//
// Build runs a builder once; Cached does the same behind a process-wide
// build-once cache. A Rom is immutable and safe for concurrent readers.
//
// # Entry Layout
//
// Entries are LSB-first: bit 0 negates the input vector (a half-turn), bit u
// selects the direction of stage u. A set stage bit is a clockwise
// micro-rotation:
//
//	A' = A + (B >> (u-1))
//	B' = B - (A >> (u-1))
//
// and a clear bit the counter-clockwise one. Tables using the MSB-first
// layout (flip at bit 7) convert with EntryFromMSBFirst.
//
// # Rotation
//
// Engine.Rotate applies one entry to a vector in an accumulator two bits
// wider than the input, which is enough for every input of the configured
// width. The output carries the processing gain 1/Kn (about 1.647); a
// Compensator removes it with a short fixed-point multiply:
//
//	rom := cordic.MustBuild(cfg, cordic.AnalyticBuilder{})
//	eng := cordic.NewEngine(rom)
//	comp := cordic.NewCompensator(cfg)
//	out := comp.Compensate(eng.RotateAddr(cordic.Vector{Re: 4096}, addr))
//
// # Accuracy
//
// The angular error is bounded by the last micro-rotation, atan(2^-(N-1)),
// plus half a quantization step. The magnitude error is dominated by the
// quantized gain: for N=6 with 4 fractional bits the multiplier is 9/16
// against Kn = 0.6073, so the compensated output is about 7.4% short of the
// exact rotation (see Compensator.Error). Raise GainBits to shrink it; 8 bits
// give 155/256, 0.3% short. Combined with the angular error, outputs stay
// within 3% of the output full scale 2^(W+1) for any input of the
// configured width.
package cordic
