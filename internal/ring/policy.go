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

package ring

// MinCapacity is the smallest capacity a Buffer ever allocates.
const MinCapacity = 2

type direction uint8

const (
	stay direction = iota
	grow
	shrink
)

// shouldGrow reports whether pushing one more element would fill the buffer.
//
// The buffer grows before such a push, so at rest size < capacity always holds.
func shouldGrow(size, capacity int) bool {
	return size+1 >= capacity
}

// shouldShrink reports whether the buffer dropped to a quarter of its capacity.
//
// Growing at full and shrinking at a quarter (never at half) keeps alternating
// push/pop at a boundary from reallocating on every call.
func shouldShrink(size, capacity int) bool {
	quarter := capacity >> 2
	return quarter > MinCapacity && size == quarter
}

// nextCapacity returns the capacity after a resize in the given direction.
// The result is always a power of two and never less than MinCapacity.
func nextCapacity(d direction, capacity int) int {
	switch d {
	case grow:
		return max(capacity<<1, MinCapacity)
	case shrink:
		return max(capacity>>1, MinCapacity)
	default:
		return capacity
	}
}
