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

// Command dequecheck cross-checks the ring deque against a reference implementation.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/maypok86/ringdeque/internal/harness"
	"github.com/maypok86/ringdeque/internal/metrics"
	"github.com/maypok86/ringdeque/internal/stats"
)

type globalFlags struct {
	logLevel string
	metrics  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	rootCmd := &cobra.Command{
		Use:          "dequecheck",
		Short:        "Cross-check the ring deque against a reference deque",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&g.metrics, "metrics", false, "print harness metrics after the command")

	rootCmd.AddCommand(newRunCmd(&g), newScenarioCmd(&g))
	return rootCmd
}

func (g *globalFlags) logger(w io.Writer) (harness.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.logLevel, err)
	}
	return harness.NewLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))), nil
}

// printMetrics writes every counter gathered from the harness stats as "name value" lines.
func (g *globalFlags) printMetrics(w io.Writer, counter *stats.Counter) error {
	if !g.metrics {
		return nil
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(metrics.NewCollector("ringdeque", "harness", counter)); err != nil {
		return err
	}
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if _, err := fmt.Fprintf(w, "%s %g\n", mf.GetName(), m.GetCounter().GetValue()); err != nil {
				return err
			}
		}
	}
	return nil
}
