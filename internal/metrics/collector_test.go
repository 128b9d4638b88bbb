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

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/maypok86/ringdeque/internal/stats"
)

var names = []string{
	"test_deque_push_front_total",
	"test_deque_push_back_total",
	"test_deque_pop_front_total",
	"test_deque_pop_back_total",
	"test_deque_noop_pops_total",
	"test_deque_grows_total",
	"test_deque_shrinks_total",
	"test_deque_verifications_total",
	"test_deque_op_seconds_total",
}

func TestCollector_Describe(t *testing.T) {
	t.Parallel()

	collector := NewCollector("test", "deque", stats.NewCounter())
	descsCh := make(chan *prometheus.Desc, len(names))
	collector.Describe(descsCh)
	close(descsCh)

	require.Len(t, descsCh, len(names))
	for desc := range descsCh {
		require.Contains(t, desc.String(), "test_deque_")
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	counter := stats.NewCounter()
	counter.RecordPush(true, time.Second)
	counter.RecordPush(false, time.Second)
	counter.RecordPush(false, time.Second)
	counter.RecordPop(true, false, time.Second)
	counter.RecordResize(2, 4)
	counter.RecordVerification()

	collector := NewCollector("test", "deque", counter)
	require.Equal(t, len(names), testutil.CollectAndCount(collector, names...))

	expected := `
# HELP test_deque_push_back_total Number of push_back operations.
# TYPE test_deque_push_back_total counter
test_deque_push_back_total 2
# HELP test_deque_noop_pops_total Number of pops of an empty deque.
# TYPE test_deque_noop_pops_total counter
test_deque_noop_pops_total 1
# HELP test_deque_grows_total Number of times the buffer capacity doubled.
# TYPE test_deque_grows_total counter
test_deque_grows_total 1
# HELP test_deque_op_seconds_total Total wall time spent in deque operations.
# TYPE test_deque_op_seconds_total counter
test_deque_op_seconds_total 4
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"test_deque_push_back_total",
		"test_deque_noop_pops_total",
		"test_deque_grows_total",
		"test_deque_op_seconds_total",
	)
	require.NoError(t, err)
}

func TestCollector_Register(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(NewCollector("test", "deque", stats.NewCounter())))

	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, len(names))
}
