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

// Package ringdeque provides a generic double-ended queue backed by a circular buffer.
//
// Deque supports amortized O(1) push and pop at both ends, O(1) indexing and
// random-access iterators. Its storage is a single power-of-two sized array that
// doubles when it would become full and halves when it drops to a quarter, so
// elements are never allocated one by one.
//
// There is no bounds checking beyond what Go does for slice access: reading from an
// empty deque, indexing outside [0, Len()) or using an iterator after the deque was
// resized is a caller error and its result is unspecified. Popping from an empty deque
// is a no-op.
//
// Deque is not safe for concurrent use.
package ringdeque

import (
	"iter"

	"github.com/maypok86/ringdeque/internal/ring"
)

// MinCapacity is the capacity of an empty deque. A deque never shrinks below it.
const MinCapacity = ring.MinCapacity

// Deque is a double-ended queue.
//
// The zero value is an empty deque ready to use. Copying a Deque value shares its
// storage; use Clone or Assign for an independent copy.
type Deque[T any] struct {
	buf *ring.Buffer[T]
}

// New returns an empty deque with the minimum capacity allocated.
func New[T any]() *Deque[T] {
	return &Deque[T]{
		buf: ring.New[T](),
	}
}

func (d *Deque[T]) ring() *ring.Buffer[T] {
	if d.buf == nil {
		d.buf = ring.New[T]()
	}
	return d.buf
}

// Clone returns a deep copy of d.
func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{
		buf: d.ring().Clone(),
	}
}

// Assign makes d a copy of src. Assigning a deque to itself does nothing.
//
// All iterators into d are invalidated.
func (d *Deque[T]) Assign(src *Deque[T]) {
	if d == src {
		return
	}
	d.ring().Assign(src.ring())
}

// Clear removes all elements and releases the storage down to the minimum capacity.
func (d *Deque[T]) Clear() {
	d.ring().Clear()
}

// Len returns the number of elements in d.
func (d *Deque[T]) Len() int {
	return d.ring().Len()
}

// Cap returns the number of slots currently allocated. It is always a power of two.
func (d *Deque[T]) Cap() int {
	return d.ring().Cap()
}

// Empty reports whether d has no elements.
func (d *Deque[T]) Empty() bool {
	return d.ring().Empty()
}

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) {
	d.ring().PushFront(v)
}

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) {
	d.ring().PushBack(v)
}

// PopFront removes and returns the first element. On an empty deque it does nothing
// and reports false.
func (d *Deque[T]) PopFront() (T, bool) {
	return d.ring().PopFront()
}

// PopBack removes and returns the last element. On an empty deque it does nothing
// and reports false.
func (d *Deque[T]) PopBack() (T, bool) {
	return d.ring().PopBack()
}

// Front returns the first element. d must not be empty.
func (d *Deque[T]) Front() T {
	return *d.ring().Front()
}

// Back returns the last element. d must not be empty.
func (d *Deque[T]) Back() T {
	return *d.ring().Back()
}

// FrontPtr returns a pointer to the first element. d must not be empty.
func (d *Deque[T]) FrontPtr() *T {
	return d.ring().Front()
}

// BackPtr returns a pointer to the last element. d must not be empty.
func (d *Deque[T]) BackPtr() *T {
	return d.ring().Back()
}

// At returns the i-th element counting from the front. i must be in [0, Len()).
func (d *Deque[T]) At(i int) T {
	return *d.ring().At(i)
}

// AtPtr returns a pointer to the i-th element. i must be in [0, Len()).
func (d *Deque[T]) AtPtr(i int) *T {
	return d.ring().At(i)
}

// Set replaces the i-th element. i must be in [0, Len()).
func (d *Deque[T]) Set(i int, v T) {
	*d.ring().At(i) = v
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	b := d.ring()
	return Iterator[T]{c: cursor[T]{buf: b, pos: b.FrontIndex()}}
}

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	b := d.ring()
	return Iterator[T]{c: cursor[T]{buf: b, pos: b.BackIndex()}}
}

// CBegin returns a read-only iterator at the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return d.Begin().Const()
}

// CEnd returns a read-only iterator one past the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return d.End().Const()
}

// RBegin returns a reverse iterator at the last element.
func (d *Deque[T]) RBegin() ReverseIterator[Iterator[T], T] {
	return NewReverseIterator[Iterator[T], T](d.End())
}

// REnd returns a reverse iterator one before the first element.
func (d *Deque[T]) REnd() ReverseIterator[Iterator[T], T] {
	return NewReverseIterator[Iterator[T], T](d.Begin())
}

// CRBegin returns a read-only reverse iterator at the last element.
func (d *Deque[T]) CRBegin() ReverseIterator[ConstIterator[T], T] {
	return NewReverseIterator[ConstIterator[T], T](d.CEnd())
}

// CREnd returns a read-only reverse iterator one before the first element.
func (d *Deque[T]) CREnd() ReverseIterator[ConstIterator[T], T] {
	return NewReverseIterator[ConstIterator[T], T](d.CBegin())
}

// All returns an iterator over indices and elements from front to back.
//
// d must not be resized while the sequence is being consumed.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for it, end := d.CBegin(), d.CEnd(); it.Less(end); it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over indices and elements from back to front.
//
// d must not be resized while the sequence is being consumed.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := d.Len() - 1
		for it, end := d.CRBegin(), d.CREnd(); it.Less(end); it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the elements of d in order in a new slice.
func (d *Deque[T]) Slice() []T {
	res := make([]T, 0, d.Len())
	for v := range d.Values() {
		res = append(res, v)
	}
	return res
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *Deque[T1], b *Deque[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}
