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

	"github.com/spf13/cobra"

	"github.com/maypok86/ringdeque/internal/harness"
	"github.com/maypok86/ringdeque/internal/stats"
)

func newScenarioCmd(g *globalFlags) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "scenario [name...]",
		Short: "Run built-in deterministic scenarios (all of them by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, s := range harness.Scenarios() {
					if _, err := fmt.Fprintf(out, "%-12s %s\n", s.Name, s.Description); err != nil {
						return err
					}
				}
				return nil
			}

			scenarios := harness.Scenarios()
			if len(args) > 0 {
				scenarios = scenarios[:0]
				for _, name := range args {
					s, ok := harness.FindScenario(name)
					if !ok {
						return fmt.Errorf("unknown scenario %q", name)
					}
					scenarios = append(scenarios, s)
				}
			}

			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			counter := stats.NewCounter()
			for _, s := range scenarios {
				if err := s.Run(cmd.Context(), counter, logger); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "ok   %s\n", s.Name); err != nil {
					return err
				}
			}
			return g.printMetrics(out, counter)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list scenarios and exit")
	return cmd
}
