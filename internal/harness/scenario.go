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
	"context"
	"fmt"
	"slices"

	"github.com/maypok86/ringdeque/internal/stats"
)

// Scenario is a fixed, deterministic sequence of operations with expectations.
type Scenario struct {
	Name        string
	Description string
	run         func(c *Checker) error
}

// Scenarios returns all built-in scenarios.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "front-back",
			Description: "push_back 1,2,3, pop_front, push_front 0 gives [0 2 3]",
			run:         frontBack,
		},
		{
			Name:        "order",
			Description: "push_back keeps insertion order, push_front reverses it",
			run:         order,
		},
		{
			Name:        "pop-empty",
			Description: "pops of an empty deque are no-ops",
			run:         popEmpty,
		},
		{
			Name:        "grow-shrink",
			Description: "1000 push_back then 992 pop_back doubles and halves the capacity",
			run:         growShrink,
		},
		{
			Name:        "round-trip",
			Description: "2^k+1 pushes then pops down to 2^(k-2) keep order across resizes",
			run:         roundTrip,
		},
	}
}

// FindScenario returns the built-in scenario with the given name.
func FindScenario(name string) (Scenario, bool) {
	idx := slices.IndexFunc(Scenarios(), func(s Scenario) bool {
		return s.Name == name
	})
	if idx < 0 {
		return Scenario{}, false
	}
	return Scenarios()[idx], true
}

// Run executes the scenario on a fresh Checker. recorder and logger may be nil.
func (s Scenario) Run(ctx context.Context, recorder *stats.Counter, logger Logger) error {
	if logger == nil {
		logger = &NoopLogger{}
	}
	c := NewChecker(recorder)
	if err := s.run(c); err != nil {
		err = fmt.Errorf("scenario %s: %w", s.Name, err)
		logger.Error(ctx, "scenario failed", err)
		return err
	}
	if err := c.Verify(); err != nil {
		err = fmt.Errorf("scenario %s: %w", s.Name, err)
		logger.Error(ctx, "scenario failed", err)
		return err
	}
	logger.Info(ctx, "scenario passed", "name", s.Name, "len", c.Len(), "cap", c.Deque().Cap())
	return nil
}

func applyAll(c *Checker, ops ...Op) error {
	for _, op := range ops {
		if err := c.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

func expectSequence(c *Checker, want []uint64) error {
	if got := c.Deque().Slice(); !slices.Equal(got, want) {
		return fmt.Errorf("%w: sequence %v, want %v", ErrMismatch, got, want)
	}
	return nil
}

func frontBack(c *Checker) error {
	err := applyAll(c,
		Op{Kind: PushBack, Value: 1},
		Op{Kind: PushBack, Value: 2},
		Op{Kind: PushBack, Value: 3},
		Op{Kind: PopFront},
		Op{Kind: PushFront, Value: 0},
	)
	if err != nil {
		return err
	}
	if err := expectSequence(c, []uint64{0, 2, 3}); err != nil {
		return err
	}
	d := c.Deque()
	if d.Len() != 3 || d.Front() != 0 || d.Back() != 3 {
		return fmt.Errorf("%w: len %d front %d back %d", ErrMismatch, d.Len(), d.Front(), d.Back())
	}
	return nil
}

func order(c *Checker) error {
	const n = 300
	want := make([]uint64, 0, 2*n)
	for i := uint64(0); i < n; i++ {
		if err := c.Apply(Op{Kind: PushBack, Value: i}); err != nil {
			return err
		}
		want = append(want, i)
	}
	if err := expectSequence(c, want); err != nil {
		return err
	}
	for i := uint64(n); i < 2*n; i++ {
		if err := c.Apply(Op{Kind: PushFront, Value: i}); err != nil {
			return err
		}
		want = slices.Insert(want, 0, i)
	}
	return expectSequence(c, want)
}

func popEmpty(c *Checker) error {
	err := applyAll(c,
		Op{Kind: PopFront},
		Op{Kind: PopBack},
		Op{Kind: PushBack, Value: 7},
		Op{Kind: PopFront},
		Op{Kind: PopFront},
		Op{Kind: PopBack},
	)
	if err != nil {
		return err
	}
	if d := c.Deque(); d.Len() != 0 || d.Cap() != 2 {
		return fmt.Errorf("%w: len %d cap %d after draining", ErrMismatch, d.Len(), d.Cap())
	}
	return nil
}

// resizeStep checks that a capacity change is exactly one doubling or halving.
func resizeStep(oldCap, newCap int) error {
	if newCap == oldCap || newCap == oldCap*2 || newCap*2 == oldCap {
		return nil
	}
	return fmt.Errorf("%w: capacity changed from %d to %d", ErrInvariant, oldCap, newCap)
}

func growShrink(c *Checker) error {
	d := c.Deque()
	capacity := d.Cap()
	for i := uint64(0); i < 1000; i++ {
		if err := c.Apply(Op{Kind: PushBack, Value: i}); err != nil {
			return err
		}
		if err := resizeStep(capacity, d.Cap()); err != nil {
			return err
		}
		capacity = d.Cap()
	}
	if capacity < 1000 {
		return fmt.Errorf("%w: capacity %d after 1000 pushes", ErrInvariant, capacity)
	}
	if err := c.Verify(); err != nil {
		return err
	}

	grown := capacity
	for i := 0; i < 992; i++ {
		if err := c.Apply(Op{Kind: PopBack}); err != nil {
			return err
		}
		if err := resizeStep(capacity, d.Cap()); err != nil {
			return err
		}
		capacity = d.Cap()
	}
	if d.Len() != 8 {
		return fmt.Errorf("%w: len %d after pops, want 8", ErrMismatch, d.Len())
	}
	if capacity >= grown || capacity < 2 {
		return fmt.Errorf("%w: capacity %d did not shrink from %d", ErrInvariant, capacity, grown)
	}
	return nil
}

func roundTrip(c *Checker) error {
	const k = 10
	d := c.Deque()
	for i := uint64(0); i < 1<<k+1; i++ {
		if err := c.Apply(Op{Kind: PushBack, Value: i}); err != nil {
			return err
		}
	}
	grown := d.Cap()
	for i := 0; d.Len() > 1<<(k-2); i++ {
		op := Op{Kind: PopBack}
		if i%2 == 0 {
			op.Kind = PopFront
		}
		if err := c.Apply(op); err != nil {
			return err
		}
	}
	if d.Cap() >= grown {
		return fmt.Errorf("%w: capacity %d did not shrink from %d", ErrInvariant, d.Cap(), grown)
	}
	return nil
}
