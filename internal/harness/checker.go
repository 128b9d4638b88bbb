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
	"iter"
	"time"

	"github.com/gammazero/deque"

	"github.com/maypok86/ringdeque"
	"github.com/maypok86/ringdeque/internal/stats"
	"github.com/maypok86/ringdeque/internal/xmath"
)

var (
	// ErrMismatch means that the deque and the reference model disagree.
	ErrMismatch = errors.New("harness: deque does not match the reference")
	// ErrInvariant means that the deque broke one of its structural invariants.
	ErrInvariant = errors.New("harness: deque invariant violated")
)

// Checker applies operations to a ringdeque.Deque and to an independent reference
// deque in lockstep and compares them.
type Checker struct {
	deque       *ringdeque.Deque[uint64]
	reference   *deque.Deque[uint64]
	fingerprint *Fingerprinter[uint64]
	recorder    *stats.Counter
}

// NewChecker returns a Checker over two empty deques. recorder may be nil.
func NewChecker(recorder *stats.Counter) *Checker {
	if recorder == nil {
		recorder = stats.NewCounter()
	}
	return &Checker{
		deque:       ringdeque.New[uint64](),
		reference:   deque.New[uint64](),
		fingerprint: NewFingerprinter[uint64](),
		recorder:    recorder,
	}
}

// Deque returns the deque under test.
func (c *Checker) Deque() *ringdeque.Deque[uint64] {
	return c.deque
}

// Len returns the length of the deque under test.
func (c *Checker) Len() int {
	return c.deque.Len()
}

// Apply performs op on both deques and checks the cheap observable state:
// the popped value, the length and both ends.
func (c *Checker) Apply(op Op) error {
	oldCap := c.deque.Cap()

	switch op.Kind {
	case PushFront, PushBack:
		start := time.Now()
		if op.Kind == PushFront {
			c.deque.PushFront(op.Value)
		} else {
			c.deque.PushBack(op.Value)
		}
		c.recorder.RecordPush(op.Kind.IsFront(), time.Since(start))

		if op.Kind == PushFront {
			c.reference.PushFront(op.Value)
		} else {
			c.reference.PushBack(op.Value)
		}
	case PopFront, PopBack:
		var (
			got uint64
			ok  bool
		)
		start := time.Now()
		if op.Kind == PopFront {
			got, ok = c.deque.PopFront()
		} else {
			got, ok = c.deque.PopBack()
		}
		c.recorder.RecordPop(op.Kind.IsFront(), ok, time.Since(start))

		if c.reference.Len() == 0 {
			if ok {
				return fmt.Errorf("%w: %s on empty deque returned %d", ErrMismatch, op, got)
			}
			break
		}
		var want uint64
		if op.Kind == PopFront {
			want = c.reference.PopFront()
		} else {
			want = c.reference.PopBack()
		}
		if !ok || got != want {
			return fmt.Errorf("%w: %s returned (%d, %t), want %d", ErrMismatch, op, got, ok, want)
		}
	default:
		return fmt.Errorf("harness: unknown operation %s", op)
	}

	if newCap := c.deque.Cap(); newCap != oldCap {
		c.recorder.RecordResize(oldCap, newCap)
	}
	return c.checkEnds(op)
}

func (c *Checker) checkEnds(op Op) error {
	if c.deque.Len() != c.reference.Len() {
		return fmt.Errorf("%w: length %d after %s, want %d", ErrMismatch, c.deque.Len(), op, c.reference.Len())
	}
	if c.reference.Len() == 0 {
		return nil
	}
	if got, want := c.deque.Front(), c.reference.Front(); got != want {
		return fmt.Errorf("%w: front %d after %s, want %d", ErrMismatch, got, op, want)
	}
	if got, want := c.deque.Back(), c.reference.Back(); got != want {
		return fmt.Errorf("%w: back %d after %s, want %d", ErrMismatch, got, op, want)
	}
	return nil
}

// Verify compares the whole deque with the reference through every access path
// (indexing, forward and reverse iteration) and checks the structural invariants.
func (c *Checker) Verify() error {
	c.recorder.RecordVerification()

	if err := c.checkInvariants(); err != nil {
		return err
	}
	n := c.reference.Len()
	if c.deque.Len() != n {
		return fmt.Errorf("%w: length %d, want %d", ErrMismatch, c.deque.Len(), n)
	}

	for i := 0; i < n; i++ {
		if got, want := c.deque.At(i), c.reference.At(i); got != want {
			return fmt.Errorf("%w: At(%d) = %d, want %d", ErrMismatch, i, got, want)
		}
	}

	visited := 0
	for it, end := c.deque.CBegin(), c.deque.CEnd(); it.Less(end); it.Next() {
		if visited >= n {
			return fmt.Errorf("%w: forward iteration visits more than %d elements", ErrMismatch, n)
		}
		if got, want := it.Value(), c.reference.At(visited); got != want {
			return fmt.Errorf("%w: forward iteration element %d = %d, want %d", ErrMismatch, visited, got, want)
		}
		visited++
	}
	if visited != n {
		return fmt.Errorf("%w: forward iteration visited %d elements, want %d", ErrMismatch, visited, n)
	}

	visited = 0
	for it, end := c.deque.CRBegin(), c.deque.CREnd(); it.Less(end); it.Next() {
		if visited >= n {
			return fmt.Errorf("%w: reverse iteration visits more than %d elements", ErrMismatch, n)
		}
		if got, want := it.Value(), c.reference.At(n-1-visited); got != want {
			return fmt.Errorf("%w: reverse iteration element %d = %d, want %d", ErrMismatch, visited, got, want)
		}
		visited++
	}
	if visited != n {
		return fmt.Errorf("%w: reverse iteration visited %d elements, want %d", ErrMismatch, visited, n)
	}

	if err := c.checkDistances(); err != nil {
		return err
	}

	if got, want := c.fingerprint.Sum(c.deque.Values()), c.fingerprint.Sum(c.referenceValues()); got != want {
		return fmt.Errorf("%w: fingerprint %x, want %x", ErrMismatch, got, want)
	}
	return nil
}

// Fingerprint returns the fingerprint of the deque under test.
func (c *Checker) Fingerprint() uint64 {
	return c.fingerprint.Sum(c.deque.Values())
}

func (c *Checker) referenceValues() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < c.reference.Len(); i++ {
			if !yield(c.reference.At(i)) {
				return
			}
		}
	}
}

func (c *Checker) checkInvariants() error {
	size, capacity := c.deque.Len(), c.deque.Cap()
	if !xmath.IsPowerOf2(capacity) || capacity < ringdeque.MinCapacity {
		return fmt.Errorf("%w: capacity %d is not a power of two of at least %d", ErrInvariant, capacity, ringdeque.MinCapacity)
	}
	if size >= capacity {
		return fmt.Errorf("%w: length %d does not fit capacity %d", ErrInvariant, size, capacity)
	}
	//nolint:gosec // size is never negative
	if uint64(capacity) < xmath.RoundUpPowerOf264(uint64(size)+1) {
		return fmt.Errorf("%w: capacity %d is too small for length %d", ErrInvariant, capacity, size)
	}
	if quarter := capacity >> 2; quarter > ringdeque.MinCapacity && size <= quarter {
		return fmt.Errorf("%w: capacity %d should have shrunk at length %d", ErrInvariant, capacity, size)
	}
	return nil
}

// checkDistances samples iterator pairs and checks that distances are antisymmetric
// and agree with logical offsets.
func (c *Checker) checkDistances() error {
	n := c.deque.Len()
	begin, end := c.deque.Begin(), c.deque.End()
	if d := end.Diff(begin); d != n {
		return fmt.Errorf("%w: end - begin = %d, want %d", ErrMismatch, d, n)
	}
	step := n/16 + 1
	for i := 0; i <= n; i += step {
		it := begin.Add(i)
		if d := it.Diff(begin); d != i {
			return fmt.Errorf("%w: (begin + %d) - begin = %d", ErrMismatch, i, d)
		}
		if it.Diff(end) != -end.Diff(it) {
			return fmt.Errorf("%w: distance between %d and end is not antisymmetric", ErrMismatch, i)
		}
		if i < n && it.Value() != c.reference.At(i) {
			return fmt.Errorf("%w: *(begin + %d) = %d, want %d", ErrMismatch, i, it.Value(), c.reference.At(i))
		}
	}
	return nil
}
