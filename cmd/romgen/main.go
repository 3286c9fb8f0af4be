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

// Command romgen builds CORDIC rotation ROMs and writes them as C++ headers,
// raw text tables or Go source.
//
// Usage:
//
//	romgen generate --kind search --stages 6 --format header
//	romgen check --kind analytic --gain-bits 8
//	romgen manifest --file romgen.yaml
//	romgen info
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "romgen: %v\n", err)
		os.Exit(1)
	}
}
