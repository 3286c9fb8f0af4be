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

package batch

import (
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
)

// DispatchLevel is the vector extension the batch block size is tuned for.
// It is a sizing heuristic: the rotation loop is the same Go code at every
// level.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchNEON
	DispatchAVX2
	DispatchAVX512
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "scalar"
	}
}

// groupsPerBlock is the number of lane groups in one block.
const groupsPerBlock = 64

var (
	currentLevel DispatchLevel
	currentWidth int // bytes
	currentName  string
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

// NoSimdEnv reports whether CORDIC_NO_SIMD is set to a non-empty value.
func NoSimdEnv() bool {
	return os.Getenv("CORDIC_NO_SIMD") != ""
}

func detectCPUFeatures() {
	switch runtime.GOARCH {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
			currentLevel, currentWidth = DispatchAVX512, 64
		case cpu.X86.HasAVX2:
			currentLevel, currentWidth = DispatchAVX2, 32
		default:
			// SSE2 is baseline for all amd64 CPUs.
			currentLevel, currentWidth = DispatchSSE2, 16
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			currentLevel, currentWidth = DispatchNEON, 16
		} else {
			setScalarMode()
			return
		}
	default:
		setScalarMode()
		return
	}
	currentName = currentLevel.String()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte lanes even in scalar mode for consistency
	currentName = "scalar"
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector width in bytes.
func CurrentWidth() int { return currentWidth }

// CurrentName returns the dispatch level name.
func CurrentName() string { return currentName }

// Lanes returns how many int64 components fit one vector register.
func Lanes() int { return currentWidth / 8 }

// BlockSize returns the number of vectors processed per block.
func BlockSize() int { return Lanes() * groupsPerBlock }
