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

// Package ring implements the circular buffer that backs ringdeque.Deque.
package ring

import (
	"slices"

	"github.com/maypok86/ringdeque/internal/xmath"
)

// Buffer is a dynamically resized circular buffer.
//
// Live elements occupy the slots [front, back) walking circularly, and
// back == (front + size) mod capacity. The capacity is a power of two and at least
// MinCapacity. The buffer grows before a push would fill it, so size < capacity
// whenever no operation is in progress.
//
// Every resize allocates a new array and relinearizes the elements into it, which
// invalidates all outstanding positions and element pointers.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	buf   []T
	front uint
	back  uint
	size  int
}

// New returns an empty Buffer with MinCapacity slots.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{
		buf: make([]T, MinCapacity),
	}
}

// Clone returns a deep copy of the buffer, including its capacity and the physical
// position of every element.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{
		buf:   slices.Clone(b.buf),
		front: b.front,
		back:  b.back,
		size:  b.size,
	}
}

// Assign replaces the contents of b with a copy of src. Assigning a buffer to itself
// does nothing.
func (b *Buffer[T]) Assign(src *Buffer[T]) {
	if b == src {
		return
	}
	if len(b.buf) != len(src.buf) {
		b.buf = make([]T, len(src.buf))
	}
	copy(b.buf, src.buf)
	b.front = src.front
	b.back = src.back
	b.size = src.size
}

// Clear drops all elements and reallocates the storage at MinCapacity.
func (b *Buffer[T]) Clear() {
	b.buf = make([]T, MinCapacity)
	b.front = 0
	b.back = 0
	b.size = 0
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.size == 0
}

// PushFront inserts v before the first element.
func (b *Buffer[T]) PushFront(v T) {
	if shouldGrow(b.size, len(b.buf)) {
		b.resize(nextCapacity(grow, len(b.buf)))
	}
	b.front = b.Modulus().Prev(b.front)
	b.buf[b.front] = v
	b.size++
}

// PushBack inserts v after the last element.
func (b *Buffer[T]) PushBack(v T) {
	if shouldGrow(b.size, len(b.buf)) {
		b.resize(nextCapacity(grow, len(b.buf)))
	}
	b.buf[b.back] = v
	b.back = b.Modulus().Next(b.back)
	b.size++
}

// PopFront removes and returns the first element.
// It reports false and leaves the buffer untouched when it is empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	v := b.buf[b.front]
	b.buf[b.front] = zero
	b.front = b.Modulus().Next(b.front)
	b.size--
	b.shrinkIfNeeded()
	return v, true
}

// PopBack removes and returns the last element.
// It reports false and leaves the buffer untouched when it is empty.
func (b *Buffer[T]) PopBack() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	b.back = b.Modulus().Prev(b.back)
	v := b.buf[b.back]
	b.buf[b.back] = zero
	b.size--
	b.shrinkIfNeeded()
	return v, true
}

// Front returns a pointer to the first element. The buffer must not be empty.
func (b *Buffer[T]) Front() *T {
	return &b.buf[b.front]
}

// Back returns a pointer to the last element. The buffer must not be empty.
func (b *Buffer[T]) Back() *T {
	return &b.buf[b.Modulus().Prev(b.back)]
}

// At returns a pointer to the element at logical index i, counted from the front.
//
// Only 0 <= i < Len() is meaningful. Other indices are not checked and yield
// an arbitrary slot.
func (b *Buffer[T]) At(i int) *T {
	return &b.buf[b.Physical(i)]
}

// Modulus returns the index arithmetic for the current capacity.
func (b *Buffer[T]) Modulus() xmath.Modulus {
	return xmath.NewModulus(len(b.buf))
}

// FrontIndex returns the physical slot of the first element.
func (b *Buffer[T]) FrontIndex() uint {
	return b.front
}

// BackIndex returns the physical slot one past the last element.
func (b *Buffer[T]) BackIndex() uint {
	return b.back
}

// Physical maps a logical offset from the front to a physical slot.
func (b *Buffer[T]) Physical(offset int) uint {
	return b.Modulus().Add(b.front, offset)
}

// Offset maps a physical slot to its logical offset from the front.
func (b *Buffer[T]) Offset(pos uint) int {
	return b.Modulus().Distance(b.front, pos)
}

// Slot returns a pointer to the physical slot pos.
func (b *Buffer[T]) Slot(pos uint) *T {
	return &b.buf[pos]
}

func (b *Buffer[T]) shrinkIfNeeded() {
	if shouldShrink(b.size, len(b.buf)) {
		b.resize(nextCapacity(shrink, len(b.buf)))
	}
}

// resize moves the elements into a new array of the given capacity so that the
// first element lands in slot 0.
func (b *Buffer[T]) resize(capacity int) {
	buf := make([]T, capacity)
	front := int(b.front)
	if front+b.size <= len(b.buf) {
		copy(buf, b.buf[front:front+b.size])
	} else {
		n := copy(buf, b.buf[front:])
		copy(buf[n:], b.buf[:b.size-n])
	}
	b.buf = buf
	b.front = 0
	//nolint:gosec // size is never negative
	b.back = uint(b.size)
}
