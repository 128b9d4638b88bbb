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

package ringdeque

import "github.com/maypok86/ringdeque/internal/ring"

// RandomAccess is implemented by the position iterators of a Deque. It is the
// set of operations ReverseIterator needs from the iterator it adapts.
type RandomAccess[I, T any] interface {
	// Add returns an iterator moved n positions forward. n may be negative.
	Add(n int) I
	// Diff returns the signed logical distance from other to the receiver.
	Diff(other I) int
	// Value returns the element at the current position.
	Value() T
	// At returns the element n positions away from the current one without moving.
	At(n int) T
}

// cursor is a position in a ring.Buffer. It never changes the buffer, only its own slot.
//
// Positions are physical slots; comparisons use the logical offset from the
// buffer's current front, so end (the slot after the last element) orders after
// every element even when the elements wrap around the array.
type cursor[T any] struct {
	buf *ring.Buffer[T]
	pos uint
}

func (c cursor[T]) add(n int) cursor[T] {
	return cursor[T]{
		buf: c.buf,
		pos: c.buf.Modulus().Add(c.pos, n),
	}
}

func (c cursor[T]) diff(other cursor[T]) int {
	return c.buf.Offset(c.pos) - other.buf.Offset(other.pos)
}

func (c cursor[T]) compare(other cursor[T]) int {
	d := c.diff(other)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (c cursor[T]) slot() *T {
	return c.buf.Slot(c.pos)
}

// Iterator is a mutable random-access position in a Deque.
//
// An Iterator is a view: it does not keep the Deque alive in any useful sense and
// is invalidated by every operation that changes the Deque's capacity
// (pushes and pops that resize, Clear, Assign). Using an invalidated iterator, or mixing
// iterators of different deques, is not detected and gives meaningless results.
type Iterator[T any] struct {
	c cursor[T]
}

// Next moves the iterator one position forward.
func (it *Iterator[T]) Next() {
	it.c = it.c.add(1)
}

// Prev moves the iterator one position back.
func (it *Iterator[T]) Prev() {
	it.c = it.c.add(-1)
}

// Advance moves the iterator n positions forward. n may be negative.
func (it *Iterator[T]) Advance(n int) {
	it.c = it.c.add(n)
}

// Add returns an iterator n positions forward.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{c: it.c.add(n)}
}

// Sub returns an iterator n positions back.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return Iterator[T]{c: it.c.add(-n)}
}

// Diff returns it - other, the signed number of positions between the iterators.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.c.diff(other.c)
}

// Compare returns -1, 0 or +1 depending on whether it is before, at, or after other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	return it.c.compare(other.c)
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.Diff(other) == 0
}

func (it Iterator[T]) NotEqual(other Iterator[T]) bool {
	return it.Diff(other) != 0
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Diff(other) < 0
}

func (it Iterator[T]) LessOrEqual(other Iterator[T]) bool {
	return it.Diff(other) <= 0
}

func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return it.Diff(other) > 0
}

func (it Iterator[T]) GreaterOrEqual(other Iterator[T]) bool {
	return it.Diff(other) >= 0
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T {
	return *it.c.slot()
}

// Ptr returns a pointer to the element at the iterator. The pointer is valid until
// the Deque's capacity changes.
func (it Iterator[T]) Ptr() *T {
	return it.c.slot()
}

// Set replaces the element at the iterator.
func (it Iterator[T]) Set(v T) {
	*it.c.slot() = v
}

// At returns the element n positions away, as it[n] would.
func (it Iterator[T]) At(n int) T {
	return *it.c.add(n).slot()
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

// ConstIterator is the read-only counterpart of Iterator.
// It follows the same validity rules.
type ConstIterator[T any] struct {
	c cursor[T]
}

func (it *ConstIterator[T]) Next() {
	it.c = it.c.add(1)
}

func (it *ConstIterator[T]) Prev() {
	it.c = it.c.add(-1)
}

func (it *ConstIterator[T]) Advance(n int) {
	it.c = it.c.add(n)
}

func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{c: it.c.add(n)}
}

func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return ConstIterator[T]{c: it.c.add(-n)}
}

func (it ConstIterator[T]) Diff(other ConstIterator[T]) int {
	return it.c.diff(other.c)
}

func (it ConstIterator[T]) Compare(other ConstIterator[T]) int {
	return it.c.compare(other.c)
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.Diff(other) == 0
}

func (it ConstIterator[T]) NotEqual(other ConstIterator[T]) bool {
	return it.Diff(other) != 0
}

func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return it.Diff(other) < 0
}

func (it ConstIterator[T]) LessOrEqual(other ConstIterator[T]) bool {
	return it.Diff(other) <= 0
}

func (it ConstIterator[T]) Greater(other ConstIterator[T]) bool {
	return it.Diff(other) > 0
}

func (it ConstIterator[T]) GreaterOrEqual(other ConstIterator[T]) bool {
	return it.Diff(other) >= 0
}

func (it ConstIterator[T]) Value() T {
	return *it.c.slot()
}

func (it ConstIterator[T]) At(n int) T {
	return *it.c.add(n).slot()
}

// ReverseIterator walks a Deque from back to front on top of a forward iterator.
//
// It stores the forward iterator one past the element it refers to, so
// RBegin wraps End and REnd wraps Begin.
type ReverseIterator[I RandomAccess[I, T], T any] struct {
	base I
}

// NewReverseIterator returns a ReverseIterator that refers to the element before base.
func NewReverseIterator[I RandomAccess[I, T], T any](base I) ReverseIterator[I, T] {
	return ReverseIterator[I, T]{base: base}
}

// Base returns the underlying forward iterator, which is one position after the element
// the reverse iterator refers to.
func (r ReverseIterator[I, T]) Base() I {
	return r.base
}

func (r *ReverseIterator[I, T]) Next() {
	r.base = r.base.Add(-1)
}

func (r *ReverseIterator[I, T]) Prev() {
	r.base = r.base.Add(1)
}

func (r *ReverseIterator[I, T]) Advance(n int) {
	r.base = r.base.Add(-n)
}

func (r ReverseIterator[I, T]) Add(n int) ReverseIterator[I, T] {
	return ReverseIterator[I, T]{base: r.base.Add(-n)}
}

func (r ReverseIterator[I, T]) Sub(n int) ReverseIterator[I, T] {
	return ReverseIterator[I, T]{base: r.base.Add(n)}
}

func (r ReverseIterator[I, T]) Diff(other ReverseIterator[I, T]) int {
	return other.base.Diff(r.base)
}

func (r ReverseIterator[I, T]) Compare(other ReverseIterator[I, T]) int {
	d := r.Diff(other)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (r ReverseIterator[I, T]) Equal(other ReverseIterator[I, T]) bool {
	return r.Diff(other) == 0
}

func (r ReverseIterator[I, T]) NotEqual(other ReverseIterator[I, T]) bool {
	return r.Diff(other) != 0
}

func (r ReverseIterator[I, T]) Less(other ReverseIterator[I, T]) bool {
	return r.Diff(other) < 0
}

func (r ReverseIterator[I, T]) LessOrEqual(other ReverseIterator[I, T]) bool {
	return r.Diff(other) <= 0
}

func (r ReverseIterator[I, T]) Greater(other ReverseIterator[I, T]) bool {
	return r.Diff(other) > 0
}

func (r ReverseIterator[I, T]) GreaterOrEqual(other ReverseIterator[I, T]) bool {
	return r.Diff(other) >= 0
}

func (r ReverseIterator[I, T]) Value() T {
	return r.base.At(-1)
}

func (r ReverseIterator[I, T]) At(n int) T {
	return r.base.At(-n - 1)
}
