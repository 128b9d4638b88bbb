// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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
	"time"

	"github.com/spf13/cobra"

	"github.com/maypok86/ringdeque/internal/harness"
	"github.com/maypok86/ringdeque/internal/stats"
)

type runFlags struct {
	config       string
	seed         string
	rounds       int
	minOps       int
	maxOps       int
	lowWater     int
	highWater    int
	initialFill  int
	distinct     bool
	verifyEvery  int
	maxAvgOpTime time.Duration
}

func newRunCmd(g *globalFlags) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a randomized push/pop stream against the reference deque",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := f.options(cmd)
			if err != nil {
				return err
			}
			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			counter := stats.NewCounter()
			o.Recorder = counter
			o.Logger = logger

			report, err := harness.Run(cmd.Context(), *o)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"seed=%d ops=%d len=%d cap=%d resizes=%d avg_op_time=%s fingerprint=%#x\n",
				report.Seed,
				report.Ops,
				report.Len,
				report.Cap,
				report.Stats.Resizes(),
				report.Stats.AverageOpTime(),
				report.Fingerprint,
			)
			if err != nil {
				return err
			}
			return g.printMetrics(cmd.OutOrStdout(), counter)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "YAML scenario file")
	flags.StringVar(&f.seed, "seed", "", "seed string of the operation stream")
	flags.IntVar(&f.rounds, "rounds", 0, "number of rounds")
	flags.IntVar(&f.minOps, "min-ops", 0, "minimum operations per round")
	flags.IntVar(&f.maxOps, "max-ops", 0, "maximum operations per round")
	flags.IntVar(&f.lowWater, "low-water", 0, "size below which only pushes are generated")
	flags.IntVar(&f.highWater, "high-water", 0, "size at which only pops are generated")
	flags.IntVar(&f.initialFill, "initial-fill", 0, "elements pushed before the first round")
	flags.BoolVar(&f.distinct, "distinct", false, "never push the same value twice")
	flags.IntVar(&f.verifyEvery, "verify-every", 0, "full verification period in operations")
	flags.DurationVar(&f.maxAvgOpTime, "max-avg-op-time", 0, "fail when the mean operation time exceeds this budget")
	return cmd
}

// options loads the config file if any and applies explicitly set flags on top of it.
func (f *runFlags) options(cmd *cobra.Command) (*harness.Options, error) {
	o := &harness.Options{}
	if f.config != "" {
		var err error
		o, err = harness.LoadFromFile(f.config)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", f.config, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		o.Seed = f.seed
	}
	if flags.Changed("rounds") {
		o.Rounds = f.rounds
	}
	if flags.Changed("min-ops") {
		o.MinOpsPerRound = f.minOps
	}
	if flags.Changed("max-ops") {
		o.MaxOpsPerRound = f.maxOps
	}
	if flags.Changed("low-water") {
		o.LowWater = f.lowWater
	}
	if flags.Changed("high-water") {
		o.HighWater = f.highWater
	}
	if flags.Changed("initial-fill") {
		o.InitialFill = f.initialFill
	}
	if flags.Changed("distinct") {
		o.Distinct = f.distinct
	}
	if flags.Changed("verify-every") {
		o.VerifyEvery = f.verifyEvery
	}
	if flags.Changed("max-avg-op-time") {
		o.MaxAverageOpTime = f.maxAvgOpTime
	}
	return o, nil
}
