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

// Package metrics exposes harness statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maypok86/ringdeque/internal/stats"
)

// StatsProvider provides harness statistics.
type StatsProvider interface {
	Snapshot() stats.Stats
}

// Collector collects statistics from a harness run and exposes them to Prometheus.
type Collector struct {
	provider          StatsProvider
	pushFrontsDesc    *prometheus.Desc
	pushBacksDesc     *prometheus.Desc
	popFrontsDesc     *prometheus.Desc
	popBacksDesc      *prometheus.Desc
	noopPopsDesc      *prometheus.Desc
	growsDesc         *prometheus.Desc
	shrinksDesc       *prometheus.Desc
	verificationsDesc *prometheus.Desc
	opSecondsDesc     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - push_front_total
// - push_back_total
// - pop_front_total
// - pop_back_total
// - noop_pops_total
// - grows_total
// - shrinks_total
// - verifications_total
// - op_seconds_total
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}
	return &Collector{
		provider:          provider,
		pushFrontsDesc:    desc("push_front_total", "Number of push_front operations."),
		pushBacksDesc:     desc("push_back_total", "Number of push_back operations."),
		popFrontsDesc:     desc("pop_front_total", "Number of pop_front operations."),
		popBacksDesc:      desc("pop_back_total", "Number of pop_back operations."),
		noopPopsDesc:      desc("noop_pops_total", "Number of pops of an empty deque."),
		growsDesc:         desc("grows_total", "Number of times the buffer capacity doubled."),
		shrinksDesc:       desc("shrinks_total", "Number of times the buffer capacity halved."),
		verificationsDesc: desc("verifications_total", "Number of full comparisons with the reference deque."),
		opSecondsDesc:     desc("op_seconds_total", "Total wall time spent in deque operations."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.pushFrontsDesc
	descs <- c.pushBacksDesc
	descs <- c.popFrontsDesc
	descs <- c.popBacksDesc
	descs <- c.noopPopsDesc
	descs <- c.growsDesc
	descs <- c.shrinksDesc
	descs <- c.verificationsDesc
	descs <- c.opSecondsDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Snapshot()
	counter := func(desc *prometheus.Desc, v float64) {
		metrics <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, v)
	}
	counter(c.pushFrontsDesc, float64(s.PushFronts))
	counter(c.pushBacksDesc, float64(s.PushBacks))
	counter(c.popFrontsDesc, float64(s.PopFronts))
	counter(c.popBacksDesc, float64(s.PopBacks))
	counter(c.noopPopsDesc, float64(s.NoopPops))
	counter(c.growsDesc, float64(s.Grows))
	counter(c.shrinksDesc, float64(s.Shrinks))
	counter(c.verificationsDesc, float64(s.Verifications))
	counter(c.opSecondsDesc, s.TotalOpTime.Seconds())
}
