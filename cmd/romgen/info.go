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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cordic/cordic/contrib/batch"
)

func newInfoCmd() *cobra.Command {
	var opts romOptions
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the derived values of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rom, err := opts.build(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			describe(out, rom)
			fmt.Fprintf(out, "Batch dispatch: %s, %d lanes, %d vectors per block\n",
				batch.CurrentName(), batch.Lanes(), batch.BlockSize())
			return nil
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}
