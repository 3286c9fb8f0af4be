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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cordic/cordic"
	"github.com/ajroetker/go-cordic/cordic/contrib/romfile"
)

type generateOptions struct {
	romOptions
	format  string
	out     string
	pkg     string
	verbose bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build one ROM and write it to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}
	fs := cmd.Flags()
	opts.addFlags(fs)
	fs.StringVar(&opts.format, "format", string(romfile.FormatHeader), "output format: header|raw|go")
	fs.StringVarP(&opts.out, "out", "o", "", "output file, - for stdout (default rom_cordic_<kind>_W<w>_S<n>_Q<q>.<ext>)")
	fs.StringVar(&opts.pkg, "package", "roms", "package name for the go format")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "print derived configuration values")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	format, err := romfile.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	rom, err := opts.build(cmd.Context())
	if err != nil {
		return err
	}
	if opts.verbose {
		describe(cmd.ErrOrStderr(), rom)
	}

	filename := opts.out
	if filename == "" {
		filename = romfile.FileName(rom.Config(), rom.Kind(), format)
	}
	if filename == "-" {
		return romfile.Write(cmd.OutOrStdout(), rom, format, "", opts.pkg)
	}
	return writeRomFile(cmd, rom, format, filename, opts.pkg)
}

func writeRomFile(cmd *cobra.Command, rom *cordic.Rom, format romfile.Format, filename, pkg string) error {
	var buf bytes.Buffer
	if err := romfile.Write(&buf, rom, format, filepath.Base(filename), pkg); err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write rom: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", filename)
	return nil
}
