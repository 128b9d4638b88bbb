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

package harness

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/maypok86/ringdeque/internal/stats"
)

const (
	defaultSeed           = "ringdeque"
	defaultRounds         = 100
	defaultMinOpsPerRound = 100
	defaultMaxOpsPerRound = 500
	defaultLowWater       = 100
	defaultHighWater      = 1 << 13
)

// Options configure a randomized run of the harness.
type Options struct {
	// Seed makes the run reproducible. It is hashed into the seed of the random source.
	//
	// Defaults to "ringdeque".
	Seed string
	// Rounds is the number of rounds. The deque is fully verified at the end of every round.
	Rounds int
	// MinOpsPerRound and MaxOpsPerRound bound the number of operations in a round.
	// The actual number is drawn uniformly from [MinOpsPerRound, MaxOpsPerRound].
	MinOpsPerRound int
	MaxOpsPerRound int
	// LowWater is the length below which the generator only pushes.
	LowWater int
	// HighWater is the length at which the generator only pops.
	HighWater int
	// InitialFill is the number of elements pushed to the back before the first round.
	InitialFill int
	// Distinct makes every generated value unique within the run.
	Distinct bool
	// VerifyEvery additionally verifies the deque after every VerifyEvery operations.
	// Zero means verification only happens at the end of each round.
	VerifyEvery int
	// MaxAverageOpTime fails the run if the mean time of a deque operation exceeds it.
	// Zero disables the check.
	MaxAverageOpTime time.Duration
	// Recorder accumulates statistics of the run. A new Counter is used if nil.
	Recorder *stats.Counter
	// Logger is used for progress and failure reporting.
	//
	// Logging is disabled by default.
	Logger Logger
}

func (o *Options) validate() error {
	if o.Rounds < 0 {
		return errors.New("harness: rounds should be positive")
	}
	if o.MinOpsPerRound < 0 || o.MaxOpsPerRound < 0 {
		return errors.New("harness: ops per round should be positive")
	}
	if o.MinOpsPerRound > o.MaxOpsPerRound {
		return errors.New("harness: min ops per round is greater than max ops per round")
	}
	if o.LowWater < 0 {
		return errors.New("harness: low water should be positive")
	}
	if o.HighWater <= o.LowWater {
		return errors.New("harness: high water should be greater than low water")
	}
	if o.InitialFill < 0 || o.InitialFill > o.HighWater {
		return errors.New("harness: initial fill should be between zero and high water")
	}
	if o.VerifyEvery < 0 {
		return errors.New("harness: verify every should be positive")
	}
	if o.MaxAverageOpTime < 0 {
		return errors.New("harness: max average op time should be positive")
	}
	return nil
}

func (o *Options) setDefaults() {
	if o.Seed == "" {
		o.Seed = defaultSeed
	}
	if o.Rounds == 0 {
		o.Rounds = defaultRounds
	}
	if o.MinOpsPerRound == 0 && o.MaxOpsPerRound == 0 {
		o.MinOpsPerRound = defaultMinOpsPerRound
		o.MaxOpsPerRound = defaultMaxOpsPerRound
	}
	if o.LowWater == 0 && o.HighWater == 0 {
		o.LowWater = defaultLowWater
	}
	if o.HighWater == 0 {
		o.HighWater = max(defaultHighWater, o.LowWater+1)
	}
	if o.Recorder == nil {
		o.Recorder = stats.NewCounter()
	}
	if o.Logger == nil {
		o.Logger = &NoopLogger{}
	}
}

// scenario is the YAML representation of Options.
type scenario struct {
	Seed             string `yaml:"seed"`
	Rounds           int    `yaml:"rounds"`
	MinOpsPerRound   int    `yaml:"min_ops_per_round"`
	MaxOpsPerRound   int    `yaml:"max_ops_per_round"`
	LowWater         int    `yaml:"low_water"`
	HighWater        int    `yaml:"high_water"`
	InitialFill      int    `yaml:"initial_fill"`
	Distinct         bool   `yaml:"distinct"`
	VerifyEvery      int    `yaml:"verify_every"`
	MaxAverageOpTime string `yaml:"max_average_op_time"`
}

// LoadFromFile reads Options from a YAML scenario file.
//
// Recorder and Logger are left unset.
func LoadFromFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes Options from YAML.
func Parse(data []byte) (*Options, error) {
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("harness: decode scenario: %w", err)
	}

	o := &Options{
		Seed:           s.Seed,
		Rounds:         s.Rounds,
		MinOpsPerRound: s.MinOpsPerRound,
		MaxOpsPerRound: s.MaxOpsPerRound,
		LowWater:       s.LowWater,
		HighWater:      s.HighWater,
		InitialFill:    s.InitialFill,
		Distinct:       s.Distinct,
		VerifyEvery:    s.VerifyEvery,
	}
	if s.MaxAverageOpTime != "" {
		d, err := time.ParseDuration(s.MaxAverageOpTime)
		if err != nil {
			return nil, fmt.Errorf("harness: max_average_op_time: %w", err)
		}
		o.MaxAverageOpTime = d
	}
	return o, nil
}
