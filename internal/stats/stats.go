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

// Package stats accumulates counters about operations the harness ran against a deque.
package stats

import (
	"math"
	"time"
)

// Stats is a snapshot of a Counter.
type Stats struct {
	PushFronts    uint64
	PushBacks     uint64
	PopFronts     uint64
	PopBacks      uint64
	NoopPops      uint64
	Grows         uint64
	Shrinks       uint64
	Verifications uint64
	TotalOpTime   time.Duration
}

// Pushes returns the number of pushes at either end.
func (s Stats) Pushes() uint64 {
	return checkedAdd(s.PushFronts, s.PushBacks)
}

// Pops returns the number of pops at either end, including pops of an empty deque.
func (s Stats) Pops() uint64 {
	return checkedAdd(s.PopFronts, s.PopBacks)
}

// Ops returns the number of timed operations.
//
// NOTE: the values of the metrics are undefined in case of overflow.
func (s Stats) Ops() uint64 {
	return checkedAdd(s.Pushes(), s.Pops())
}

// Resizes returns the number of reallocations observed.
func (s Stats) Resizes() uint64 {
	return checkedAdd(s.Grows, s.Shrinks)
}

// AverageOpTime returns the mean wall time of one operation.
func (s Stats) AverageOpTime() time.Duration {
	ops := s.Ops()
	if ops == 0 {
		return 0
	}
	if ops > uint64(math.MaxInt64) {
		return s.TotalOpTime / time.Duration(math.MaxInt64)
	}
	//nolint:gosec // overflow is handled above
	return s.TotalOpTime / time.Duration(ops)
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
