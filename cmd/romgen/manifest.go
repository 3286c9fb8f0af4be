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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-cordic/cordic"
	"github.com/ajroetker/go-cordic/cordic/contrib/romfile"
)

// Manifest lists the ROMs to generate in one run.
//
//	dir: roms
//	package: roms
//	roms:
//	  - {kind: search, stages: 6, format: header}
//	  - {kind: analytic, stages: 4, quant: 32, format: raw}
type Manifest struct {
	Dir     string          `yaml:"dir"`
	Package string          `yaml:"package"`
	Workers int             `yaml:"workers"`
	Roms    []ManifestEntry `yaml:"roms"`
}

// ManifestEntry is one ROM of a Manifest. Fields left out of the YAML take
// the values of cordic.DefaultConfig; an explicit zero is kept. The format
// defaults to header.
type ManifestEntry struct {
	Kind     string `yaml:"kind"`
	Format   string `yaml:"format"`
	Out      string `yaml:"out"`
	Width    int    `yaml:"width"`
	IntBits  int    `yaml:"int_bits"`
	Stages   int    `yaml:"stages"`
	Quant    int    `yaml:"quant"`
	Divider  int    `yaml:"divider"`
	GainBits int    `yaml:"gain_bits"`
}

// UnmarshalYAML decodes the node over the default configuration.
func (e *ManifestEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain ManifestEntry
	def := cordic.DefaultConfig()
	p := plain{
		Width:    def.Width,
		IntBits:  def.IntBits,
		Stages:   def.Stages,
		Quant:    def.Quant,
		Divider:  def.Divider,
		GainBits: def.GainBits,
	}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = ManifestEntry(p)
	return nil
}

// Config returns the entry's configuration.
func (e ManifestEntry) Config() cordic.Config {
	return cordic.Config{
		Width:    e.Width,
		IntBits:  e.IntBits,
		Stages:   e.Stages,
		Quant:    e.Quant,
		Divider:  e.Divider,
		GainBits: e.GainBits,
	}
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Roms) == 0 {
		return nil, fmt.Errorf("manifest %s lists no roms", path)
	}
	return &m, nil
}

func newManifestCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Generate every ROM listed in a YAML manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := LoadManifest(file)
			if err != nil {
				return err
			}
			return runManifest(cmd, m)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "romgen.yaml", "manifest file")
	return cmd
}

func runManifest(cmd *cobra.Command, m *Manifest) error {
	pkg := m.Package
	if pkg == "" {
		pkg = "roms"
	}
	for i, e := range m.Roms {
		kind := e.Kind
		if kind == "" {
			kind = cordic.KindAnalytic.String()
		}
		format, err := romfile.ParseFormat(orDefault(e.Format, string(romfile.FormatHeader)))
		if err != nil {
			return fmt.Errorf("rom %d: %w", i, err)
		}

		opts := romOptions{cfg: e.Config(), kind: kind, workers: m.Workers}
		rom, err := opts.build(cmd.Context())
		if err != nil {
			return fmt.Errorf("rom %d: %w", i, err)
		}

		filename := orDefault(e.Out, romfile.FileName(rom.Config(), rom.Kind(), format))
		if m.Dir != "" && !filepath.IsAbs(filename) {
			filename = filepath.Join(m.Dir, filename)
		}
		if err := writeRomFile(cmd, rom, format, filename, pkg); err != nil {
			return fmt.Errorf("rom %d: %w", i, err)
		}
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
