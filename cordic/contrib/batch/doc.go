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

// Package batch rotates many vectors with one cordic.Engine.
//
// Rotations are independent pure functions of (vector, address), so a batch
// can be split freely. The package offers three shapes of the same work:
//
//   - Rotate and RotateCompensated: one pass over array-of-structs input.
//   - RotateSoA: structure-of-arrays input, processed a block of lanes at a
//     time with the stage loop outside the lane loop, the layout a SIMD
//     target wants.
//   - ParallelRotate: blocks spread over goroutines.
//
// All three give bit-identical results to calling Engine.RotateAddr on every
// element.
//
// # Block sizing
//
// Every path runs the same portable Go loop; there is no assembly. The
// dispatch level detected at startup with golang.org/x/sys/cpu (AVX-512,
// AVX2, NEON, or scalar) only sizes the work: the number of lanes RotateSoA
// groups per stage step and the number of vectors per ParallelRotate block,
// chosen so a group fills one vector register if the compiler vectorizes
// it. The level never changes results. Setting CORDIC_NO_SIMD forces the
// scalar sizing.
//
// # Example Usage
//
//	eng, _ := cordic.CachedEngine(ctx, cordic.DefaultConfig(), cordic.KindSearch)
//	comp := cordic.NewCompensator(eng.Config())
//	out := make([]cordic.Vector, len(in))
//	err := batch.ParallelRotate(ctx, eng, comp, in, addrs, out, 0)
package batch
