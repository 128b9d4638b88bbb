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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	var o Options
	o.setDefaults()
	require.NoError(t, o.validate())
	require.Equal(t, defaultSeed, o.Seed)
	require.Equal(t, defaultRounds, o.Rounds)
	require.Equal(t, defaultMinOpsPerRound, o.MinOpsPerRound)
	require.Equal(t, defaultMaxOpsPerRound, o.MaxOpsPerRound)
	require.Equal(t, defaultLowWater, o.LowWater)
	require.Equal(t, defaultHighWater, o.HighWater)
	require.NotNil(t, o.Recorder)
	require.IsType(t, &NoopLogger{}, o.Logger)
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{name: "negative rounds", opts: Options{Rounds: -1}},
		{name: "min over max", opts: Options{MinOpsPerRound: 10, MaxOpsPerRound: 5}},
		{name: "negative ops", opts: Options{MinOpsPerRound: -1, MaxOpsPerRound: 5}},
		{name: "negative low water", opts: Options{LowWater: -1, HighWater: 10}},
		{name: "high below low", opts: Options{LowWater: 10, HighWater: 10}},
		{name: "fill over high water", opts: Options{LowWater: 1, HighWater: 10, InitialFill: 11}},
		{name: "negative verify", opts: Options{VerifyEvery: -1}},
		{name: "negative budget", opts: Options{MaxAverageOpTime: -time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := tt.opts
			o.setDefaults()
			require.Error(t, o.validate())
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	o, err := Parse([]byte(`
seed: nightly
rounds: 20
min_ops_per_round: 10
max_ops_per_round: 40
low_water: 5
high_water: 64
initial_fill: 32
distinct: true
verify_every: 7
max_average_op_time: 6us
`))
	require.NoError(t, err)
	require.Equal(t, &Options{
		Seed:             "nightly",
		Rounds:           20,
		MinOpsPerRound:   10,
		MaxOpsPerRound:   40,
		LowWater:         5,
		HighWater:        64,
		InitialFill:      32,
		Distinct:         true,
		VerifyEvery:      7,
		MaxAverageOpTime: 6 * time.Microsecond,
	}, o)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("max_average_op_time: soon\n"))
	require.Error(t, err)

	_, err = Parse([]byte("rounds: [1, 2\n"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: file\nrounds: 3\n"), 0o600))

	o, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "file", o.Seed)
	require.Equal(t, 3, o.Rounds)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
