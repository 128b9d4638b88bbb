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

// Package harness cross-checks ringdeque.Deque against a reference deque with
// reproducible random operation streams and fixed scenarios.
package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/maypok86/ringdeque/internal/stats"
)

// ErrTooSlow means that the mean time of a deque operation exceeded Options.MaxAverageOpTime.
var ErrTooSlow = errors.New("harness: deque operations are too slow")

// Report summarizes a run.
type Report struct {
	Seed        uint64
	Ops         int
	Len         int
	Cap         int
	Fingerprint uint64
	Stats       stats.Stats
}

// Run executes a randomized run described by o.
//
// Every operation is checked against the reference immediately, and the whole deque
// is verified at the end of every round. The run stops at the first failure or when
// ctx is done.
func Run(ctx context.Context, o Options) (Report, error) {
	o.setDefaults()
	if err := o.validate(); err != nil {
		return Report{}, err
	}

	seed := SeedFromString(o.Seed)
	gen := NewGenerator(seed, &o)
	checker := NewChecker(o.Recorder)
	report := Report{Seed: seed}

	finish := func(err error) (Report, error) {
		report.Len = checker.Len()
		report.Cap = checker.Deque().Cap()
		report.Fingerprint = checker.Fingerprint()
		report.Stats = o.Recorder.Snapshot()
		if err != nil {
			o.Logger.Error(ctx, "run failed", err)
		}
		return report, err
	}

	o.Logger.Info(ctx, "starting run",
		"seed", o.Seed,
		"rounds", o.Rounds,
		"low_water", o.LowWater,
		"high_water", o.HighWater,
		"distinct", o.Distinct,
	)

	apply := func(op Op) error {
		if err := checker.Apply(op); err != nil {
			return fmt.Errorf("op %d: %w", report.Ops, err)
		}
		report.Ops++
		if o.VerifyEvery > 0 && report.Ops%o.VerifyEvery == 0 {
			if err := checker.Verify(); err != nil {
				return fmt.Errorf("op %d: %w", report.Ops, err)
			}
		}
		return nil
	}

	for i := 0; i < o.InitialFill; i++ {
		if err := apply(Op{Kind: PushBack, Value: gen.Value()}); err != nil {
			return finish(err)
		}
	}
	if err := checker.Verify(); err != nil {
		return finish(fmt.Errorf("initial fill: %w", err))
	}

	for round := 0; round < o.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		n := gen.RoundLength()
		for i := 0; i < n; i++ {
			if err := apply(gen.Next(checker.Len())); err != nil {
				return finish(fmt.Errorf("round %d: %w", round, err))
			}
		}
		if err := checker.Verify(); err != nil {
			return finish(fmt.Errorf("round %d: %w", round, err))
		}
	}

	if o.MaxAverageOpTime > 0 {
		if avg := o.Recorder.Snapshot().AverageOpTime(); avg > o.MaxAverageOpTime {
			return finish(fmt.Errorf("%w: %s per operation, budget %s", ErrTooSlow, avg, o.MaxAverageOpTime))
		}
	}

	report, err := finish(nil)
	o.Logger.Info(ctx, "run finished",
		"ops", report.Ops,
		"len", report.Len,
		"cap", report.Cap,
		"resizes", report.Stats.Resizes(),
		"avg_op_time", report.Stats.AverageOpTime().String(),
	)
	return report, err
}
