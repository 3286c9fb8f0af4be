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
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cordic/cordic"
)

type checkOptions struct {
	romOptions
	out string
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Rotate a unit vector through every address and report the error",
		Long: `Check rotates the unit vector through every ROM address, compensates
the gain and writes one "re, im" line per address, normalized to 1.0. The
largest distance to the exact rotation is printed at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, &opts)
		},
	}
	fs := cmd.Flags()
	opts.addFlags(fs)
	fs.StringVarP(&opts.out, "out", "o", "", "result file, - for stdout (default result_<kind>_W<w>_S<n>_Q<q>.dat)")
	return cmd
}

// checkResult is the outcome of one sweep over every address.
type checkResult struct {
	points     []complex128
	worst      float64
	worstAddr  int
	worstAngle float64
}

// sweep rotates the unit vector by every address of rom. Points are
// normalized by the input scale; worst is the largest distance to
// exp(j*theta(n)).
func sweep(rom *cordic.Rom) (checkResult, error) {
	cfg := rom.Config()
	q, err := cordic.NewQuantizer(cfg)
	if err != nil {
		return checkResult{}, err
	}
	eng := cordic.NewEngine(rom)
	comp := cordic.NewCompensator(cfg)
	unit := cordic.Vector{Re: cfg.InFormat().Scale()}
	scale := float64(unit.Re)

	res := checkResult{points: make([]complex128, rom.Len())}
	for n := range rom.Len() {
		v := comp.Compensate(eng.RotateAddr(unit, n))
		p := complex(float64(v.Re)/scale, float64(v.Im)/scale)
		res.points[n] = p
		if d := cmplx.Abs(p - cmplx.Rect(1, q.Angle(n))); d > res.worst {
			res.worst, res.worstAddr, res.worstAngle = d, n, q.Angle(n)
		}
	}
	return res, nil
}

func writeCheck(w io.Writer, res checkResult) error {
	bw := bufio.NewWriter(w)
	for _, p := range res.points {
		fmt.Fprintf(bw, "%g, %g\n", real(p), imag(p))
	}
	return bw.Flush()
}

func checkFileName(rom *cordic.Rom) string {
	cfg := rom.Config()
	tag := "const"
	if rom.Kind() == cordic.KindSearch {
		tag = "MC"
	}
	return fmt.Sprintf("result_%s_W%d_S%d_Q%d.dat", tag, cfg.Width, cfg.Stages, cfg.Quant)
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	rom, err := opts.build(cmd.Context())
	if err != nil {
		return err
	}
	res, err := sweep(rom)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	filename := opts.out
	if filename == "" {
		filename = checkFileName(rom)
	}
	if filename == "-" {
		if err := writeCheck(out, res); err != nil {
			return err
		}
	} else {
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("create result file: %w", err)
		}
		if err := writeCheck(f, res); err != nil {
			f.Close()
			return fmt.Errorf("write results: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Fprintf(out, "Generated: %s\n", filename)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%v %v: worst error %.4f at address %d (%.1f deg)\n",
		rom.Kind(), rom.Config(), res.worst, res.worstAddr, res.worstAngle*180/math.Pi)
	return nil
}
