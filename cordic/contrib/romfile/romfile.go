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

package romfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-cordic/cordic"
)

// Format selects the persisted representation of a ROM.
type Format string

const (
	FormatHeader Format = "header"
	FormatRaw    Format = "raw"
	FormatGo     Format = "go"
)

// Formats lists the supported formats.
var Formats = []Format{FormatHeader, FormatRaw, FormatGo}

// ErrFormat is returned for an unknown format name.
var ErrFormat = errors.New("romfile: unknown format")

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats, f) {
		return "", fmt.Errorf("%w %q", ErrFormat, s)
	}
	return f, nil
}

// Ext returns the file extension used for f.
func (f Format) Ext() string {
	switch f {
	case FormatHeader:
		return "hpp"
	case FormatRaw:
		return "txt"
	default:
		return "go"
	}
}

// kindTag is the short name the generated artifacts use for each builder.
func kindTag(k cordic.Kind) string {
	if k == cordic.KindSearch {
		return "ml"
	}
	return "const"
}

// Name returns the table identifier for a ROM, <kind>_<W>_<N>_<Q>_<D>.
func Name(cfg cordic.Config, kind cordic.Kind) string {
	cfg = cfg.WithDefaults()
	return fmt.Sprintf("%s_%d_%d_%d_%d", kindTag(kind), cfg.Width, cfg.Stages, cfg.Quant, cfg.Divider)
}

// FileName returns the conventional file name for a ROM in format f,
// for example rom_cordic_ml_W16_S6_Q64.hpp.
func FileName(cfg cordic.Config, kind cordic.Kind, f Format) string {
	cfg = cfg.WithDefaults()
	name := fmt.Sprintf("rom_cordic_%s_W%d_S%d_Q%d", kindTag(kind), cfg.Width, cfg.Stages, cfg.Quant)
	if cfg.Divider != cordic.DefaultDivider {
		name += fmt.Sprintf("_D%d", cfg.Divider)
	}
	if f == FormatGo {
		name = strings.ToLower(name) + "_gen"
	}
	return name + "." + f.Ext()
}

// Write encodes rom in format f. fileName is only used by the header banner;
// pkg is only used by the Go format.
func Write(w io.Writer, rom *cordic.Rom, f Format, fileName, pkg string) error {
	switch f {
	case FormatHeader:
		return WriteHeader(w, rom, fileName)
	case FormatRaw:
		return WriteRaw(w, rom)
	case FormatGo:
		return WriteGo(w, rom, pkg)
	}
	return fmt.Errorf("%w %q", ErrFormat, string(f))
}

// writeValues writes the entries eight per line, "%3d, " separated. The last
// entry has no separator.
func writeValues(buf *bytes.Buffer, entries []cordic.Entry, indent string) {
	buf.WriteString(indent)
	last := len(entries) - 1
	for i, e := range entries[:last] {
		if i&7 == 0 && i != 0 {
			buf.WriteString("\n" + indent)
		}
		fmt.Fprintf(buf, "%3d, ", uint16(e))
	}
	fmt.Fprintf(buf, "%3d", uint16(entries[last]))
}

// WriteHeader writes rom as a C++ header.
func WriteHeader(w io.Writer, rom *cordic.Rom, fileName string) error {
	cfg := rom.Config()
	name := Name(cfg, rom.Kind())
	guard := "CORDIC_ROMS_" + strings.ToUpper(name)
	if fileName == "" {
		fileName = FileName(cfg, rom.Kind(), FormatHeader)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/** @file %s\n * THIS FILE IS GENERATED AUTOMATICALY, DO NOT EDIT IT!\n */\n", fileName)
	fmt.Fprintf(&buf, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(&buf, "#include <cstdint>\n\n")
	fmt.Fprintf(&buf, "namespace cordic_roms {\n\n")
	fmt.Fprintf(&buf, "constexpr uint64_t %s_size = %d;\n\n", name, rom.Len())
	fmt.Fprintf(&buf, "constexpr uint8_t  %s[%d] = {\n", name, rom.Len())
	writeValues(&buf, rom.Entries(), "  ")
	buf.WriteString("};\n")
	fmt.Fprintf(&buf, "\n} // namespace cordic_roms\n\n")
	fmt.Fprintf(&buf, "#endif // %s\n\n", guard)

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteRaw writes one zero-padded entry per line, followed by a blank line.
func WriteRaw(w io.Writer, rom *cordic.Rom) error {
	var buf bytes.Buffer
	for _, e := range rom.Entries() {
		fmt.Fprintf(&buf, "%03d\n", uint16(e))
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// goIdent turns a table name such as ml_16_6_64_2 into an exported Go
// identifier, Ml16_6_64_2.
func goIdent(name string) string {
	kind, rest, _ := strings.Cut(name, "_")
	return cases.Title(language.English).String(kind) + rest
}

// WriteGo writes rom as a Go source file in package pkg.
func WriteGo(w io.Writer, rom *cordic.Rom, pkg string) error {
	if pkg == "" {
		pkg = "roms"
	}
	cfg := rom.Config()
	ident := goIdent(Name(cfg, rom.Kind()))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by romgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %sSize is the number of entries in %s.\n", ident, ident)
	fmt.Fprintf(&buf, "const %sSize = %d\n\n", ident, rom.Len())
	fmt.Fprintf(&buf, "// %s is the %v ROM for %v.\n", ident, rom.Kind(), cfg)
	fmt.Fprintf(&buf, "var %s = [%sSize]uint8{\n", ident, ident)
	writeValues(&buf, rom.Entries(), "\t")
	buf.WriteString(",\n}\n")

	src, err := imports.Process(FileName(cfg, rom.Kind(), FormatGo), buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format go source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// ReadRaw parses a raw ROM file for cfg. Blank lines are ignored. The entry
// count must match cfg.Length and every entry must fit cfg.EntryBits.
func ReadRaw(r io.Reader, cfg cordic.Config, kind cordic.Kind) (*cordic.Rom, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entries := make([]cordic.Entry, 0, cfg.Length())
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("romfile: line %d: %w", line, err)
		}
		entries = append(entries, cordic.Entry(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("romfile: %w", err)
	}
	return cordic.NewRom(cfg, kind, entries)
}
