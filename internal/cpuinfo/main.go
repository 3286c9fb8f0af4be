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

// Command cpuinfo prints the batch rotation dispatch chosen for this machine
// and the CPU features it was derived from.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-cordic/cordic/contrib/batch"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	fmt.Printf("Batch dispatch level: %s\n", batch.CurrentLevel())
	fmt.Printf("Batch dispatch width: %d bytes (%d int64 lanes)\n", batch.CurrentWidth(), batch.Lanes())
	fmt.Printf("Batch block size:     %d vectors\n", batch.BlockSize())
	if batch.NoSimdEnv() {
		fmt.Printf("CORDIC_NO_SIMD=%q forces scalar dispatch\n", os.Getenv("CORDIC_NO_SIMD"))
	}
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Println("no vector feature detection for this architecture")
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v (selects neon)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:      %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v (selects sse2)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX2:     %v (selects avx2)\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v (with BW, selects avx512)\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasBMI2:     %v\n", cpu.X86.HasBMI2)
	fmt.Printf("  HasPOPCNT:   %v\n", cpu.X86.HasPOPCNT)
}
