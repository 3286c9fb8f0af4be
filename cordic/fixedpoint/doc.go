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

// Package fixedpoint models the signed fixed-point words of a synthesis target:
// a two's complement integer of a declared total width, of which a declared
// number of bits are integer bits and the rest are fractional bits.
//
// Values are carried as raw int64 words. A Format describes how to interpret
// them and how hardware registers of that format behave: Wrap truncates to
// the register width (the default behavior of an undersized register),
// Saturate clamps, and Shr is the arithmetic right shift that floors toward
// negative infinity.
//
// # Example Usage
//
//	in := fixedpoint.Format{Width: 16, IntBits: 4} // 4.12
//	raw := in.FromFloat(1.5)                        // 6144
//	f := in.ToFloat(raw)                            // 1.5
//
// Width is limited to MaxWidth so that the sum or product of two words of
// the same format never overflows int64 in intermediate arithmetic.
package fixedpoint
