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

package stats

import (
	"math"
	"sync/atomic"
	"time"
)

// Counter is a goroutine-safe recorder of harness statistics.
//
// The harness itself is single-threaded, but a metrics collector may take snapshots
// from another goroutine while a run is in progress.
type Counter struct {
	pushFronts    atomic.Uint64
	pushBacks     atomic.Uint64
	popFronts     atomic.Uint64
	popBacks      atomic.Uint64
	noopPops      atomic.Uint64
	grows         atomic.Uint64
	shrinks       atomic.Uint64
	verifications atomic.Uint64
	totalOpTime   atomic.Uint64
}

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	totalOpTime := c.totalOpTime.Load()
	if totalOpTime > uint64(math.MaxInt64) {
		totalOpTime = uint64(math.MaxInt64)
	}
	return Stats{
		PushFronts:    c.pushFronts.Load(),
		PushBacks:     c.pushBacks.Load(),
		PopFronts:     c.popFronts.Load(),
		PopBacks:      c.popBacks.Load(),
		NoopPops:      c.noopPops.Load(),
		Grows:         c.grows.Load(),
		Shrinks:       c.shrinks.Load(),
		Verifications: c.verifications.Load(),
		//nolint:gosec // overflow is handled above
		TotalOpTime: time.Duration(totalOpTime),
	}
}

// RecordPush records a push at the front or at the back that took d.
func (c *Counter) RecordPush(front bool, d time.Duration) {
	if front {
		c.pushFronts.Add(1)
	} else {
		c.pushBacks.Add(1)
	}
	c.addTime(d)
}

// RecordPop records a pop at the front or at the back that took d.
// ok is false when the deque was empty and the pop did nothing.
func (c *Counter) RecordPop(front, ok bool, d time.Duration) {
	if front {
		c.popFronts.Add(1)
	} else {
		c.popBacks.Add(1)
	}
	if !ok {
		c.noopPops.Add(1)
	}
	c.addTime(d)
}

// RecordResize records a capacity change from oldCap to newCap.
func (c *Counter) RecordResize(oldCap, newCap int) {
	switch {
	case newCap > oldCap:
		c.grows.Add(1)
	case newCap < oldCap:
		c.shrinks.Add(1)
	}
}

// RecordVerification records a full comparison of the deque against the reference.
func (c *Counter) RecordVerification() {
	c.verifications.Add(1)
}

func (c *Counter) addTime(d time.Duration) {
	if d < 0 {
		return
	}
	//nolint:gosec // d is not negative
	c.totalOpTime.Add(uint64(d))
}
