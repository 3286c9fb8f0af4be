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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-cordic/cordic"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "romgen",
		Short:         "Generate CORDIC rotation ROMs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newManifestCmd(),
		newInfoCmd(),
	)
	return root
}

// romOptions holds the flags shared by every command that builds a ROM.
type romOptions struct {
	cfg     cordic.Config
	kind    string
	workers int
}

func (o *romOptions) addFlags(fs *pflag.FlagSet) {
	def := cordic.DefaultConfig()
	kinds := lo.Map(cordic.Kinds, func(k cordic.Kind, _ int) string { return k.String() })

	fs.IntVar(&o.cfg.Width, "width", def.Width, "input word width in bits, sign included")
	fs.IntVar(&o.cfg.IntBits, "int-bits", def.IntBits, "integer bits of the input word")
	fs.IntVar(&o.cfg.Stages, "stages", def.Stages, "number of CORDIC stages")
	fs.IntVar(&o.cfg.Quant, "quant", def.Quant, "angle steps per sub-range")
	fs.IntVar(&o.cfg.Divider, "divider", def.Divider, "half-turn divider, a power of 2")
	fs.IntVar(&o.cfg.GainBits, "gain-bits", def.GainBits, "fractional bits of the gain multiplier")
	fs.StringVar(&o.kind, "kind", cordic.KindAnalytic.String(), "ROM builder: "+strings.Join(kinds, "|"))
	fs.IntVar(&o.workers, "workers", 0, "search builder parallelism (0 = GOMAXPROCS)")
}

func (o *romOptions) builder() (cordic.Builder, error) {
	kind, err := cordic.ParseKind(o.kind)
	if err != nil {
		return nil, err
	}
	if kind == cordic.KindSearch {
		return cordic.SearchBuilder{Workers: o.workers}, nil
	}
	return cordic.BuilderFor(kind)
}

func (o *romOptions) build(ctx context.Context) (*cordic.Rom, error) {
	b, err := o.builder()
	if err != nil {
		return nil, err
	}
	return cordic.Build(ctx, o.cfg, b)
}

// describe writes the derived values of rom's configuration.
func describe(w io.Writer, rom *cordic.Rom) {
	cfg := rom.Config()
	comp := cordic.NewCompensator(cfg)

	worst := 0.0
	for n := range rom.Len() {
		worst = max(worst, cordic.Residual(cfg, n, rom.At(n)))
	}

	fmt.Fprintf(w, "Config:        %v (%v)\n", cfg, rom.Kind())
	fmt.Fprintf(w, "Length:        %d entries, %d address bits\n", cfg.Length(), cfg.AddrWidth())
	fmt.Fprintf(w, "Entry bits:    %d\n", cfg.EntryBits())
	fmt.Fprintf(w, "Formats:       in %v, out %v\n", cfg.InFormat(), cfg.OutFormat())
	fmt.Fprintf(w, "Gain Kn:       %.6f, multiplier %d/2^%d (error %.4f)\n",
		cordic.Gain(cfg.Stages), comp.Multiplier(), comp.FracBits(), comp.Error())
	fmt.Fprintf(w, "Max residual:  %.6f rad\n", worst)
}
