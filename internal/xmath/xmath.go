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

// Package xmath holds the integer helpers shared by the ring buffer and its iterators.
package xmath

// Modulus performs wrap-around index arithmetic for a ring whose length is a power of two.
//
// All position math of the ring buffer and of the iterators goes through Modulus,
// so both agree on how a position wraps.
type Modulus uint

// NewModulus returns the Modulus for a ring of the given capacity.
//
// capacity must be a power of two. A zero capacity is allowed and behaves as an empty ring
// where every position is 0.
func NewModulus(capacity int) Modulus {
	//nolint:gosec // capacity is never negative
	return Modulus(capacity)
}

// Capacity returns the ring length.
func (m Modulus) Capacity() int {
	//nolint:gosec // there is no overflow
	return int(m)
}

func (m Modulus) mask() uint {
	if m == 0 {
		return 0
	}
	return uint(m) - 1
}

// Add returns pos moved by n slots. n may be negative.
//
// uint(n) wraps negative values modulo 2^64, which is a multiple of every power of two,
// so masking gives the same result as a mathematical modulo.
func (m Modulus) Add(pos uint, n int) uint {
	//nolint:gosec // wrap-around is intended
	return (pos + uint(n)) & m.mask()
}

// Next returns the position following pos.
func (m Modulus) Next(pos uint) uint {
	return (pos + 1) & m.mask()
}

// Prev returns the position preceding pos.
func (m Modulus) Prev(pos uint) uint {
	return (pos - 1) & m.mask()
}

// Distance returns how many steps forward it takes to get from "from" to "to".
func (m Modulus) Distance(from, to uint) int {
	//nolint:gosec // the result is less than the capacity
	return int((to - from) & m.mask())
}

// IsPowerOf2 reports whether v is a power of two.
func IsPowerOf2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// RoundUpPowerOf264 is based on https://graphics.stanford.edu/~seander/bithacks.html#RoundUpPowerOf2.
func RoundUpPowerOf264(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
