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

// Package romfile reads and writes persisted CORDIC ROMs.
//
// Three formats are supported:
//
//   - a C++ header declaring the table as a constexpr array in namespace
//     cordic_roms, for hardware-synthesis flows;
//   - a raw text file with one zero-padded decimal entry per line, suitable
//     for memory initialization and for loading back with [ReadRaw];
//   - a Go source file declaring the table as a package-level array.
//
// Entries are written in canonical order (bit 0 is the flip flag, bit u is
// stage u) and are never re-encoded.
package romfile
