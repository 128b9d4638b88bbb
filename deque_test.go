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

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maypok86/ringdeque/internal/xmath"
)

func TestDeque_ZeroValue(t *testing.T) {
	t.Parallel()

	var d Deque[string]
	require.Equal(t, 0, d.Len())
	require.True(t, d.Empty())
	require.Equal(t, 2, d.Cap())
	require.True(t, d.Begin().Equal(d.End()))

	_, ok := d.PopFront()
	require.False(t, ok)

	d.PushBack("foo")
	require.Equal(t, "foo", d.Front())
	require.Equal(t, "foo", d.Back())
}

func TestDeque_FrontBack(t *testing.T) {
	t.Parallel()

	d := New[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	d.PopFront()
	d.PushFront(0)

	require.Equal(t, []int{0, 2, 3}, d.Slice())
	require.Equal(t, 3, d.Len())
	require.Equal(t, 0, d.Front())
	require.Equal(t, 3, d.Back())

	*d.FrontPtr() = 10
	*d.BackPtr() = 30
	require.Equal(t, []int{10, 2, 30}, d.Slice())
}

func TestDeque_SizeIdentity(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	d := New[int]()
	expected := 0
	for i := 0; i < 10000; i++ {
		switch r.IntN(4) {
		case 0:
			d.PushBack(i)
			expected++
		case 1:
			d.PushFront(i)
			expected++
		case 2:
			if _, ok := d.PopBack(); ok {
				expected--
			}
		case 3:
			if _, ok := d.PopFront(); ok {
				expected--
			}
		}
		require.Equal(t, expected, d.Len())
		require.GreaterOrEqual(t, d.Len(), 0)
	}
}

func TestDeque_OrderPreservation(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 5, 64, 65, 1000} {
		back := New[int]()
		front := New[int]()
		for i := 0; i < n; i++ {
			back.PushBack(i * 3)
			front.PushFront(i * 3)
		}
		for i := 0; i < n; i++ {
			require.Equal(t, i*3, back.At(i))
			require.Equal(t, (n-1-i)*3, front.At(i))
		}
	}
}

func TestDeque_GrowShrinkScenario(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 0; i < 1000; i++ {
		d.PushBack(i)
	}
	require.GreaterOrEqual(t, d.Cap(), 1000)
	require.True(t, xmath.IsPowerOf2(d.Cap()))

	for i := 0; i < 992; i++ {
		d.PopBack()
	}
	require.Equal(t, 8, d.Len())
	require.True(t, xmath.IsPowerOf2(d.Cap()))
	require.GreaterOrEqual(t, d.Cap(), 2)
	require.Less(t, d.Cap(), 1000)
	require.LessOrEqual(t, d.Cap(), 4*d.Len())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, d.Slice())
}

func TestDeque_Set(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 0; i < 1000; i++ {
		d.PushBack(i)
		d.Set(i, i+50)
	}
	for i := 0; i < d.Len(); i++ {
		require.Equal(t, i+50, d.At(i))
	}
	*d.AtPtr(3) = -3
	require.Equal(t, -3, d.At(3))
}

func TestDeque_Clear(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 0; i < 100; i++ {
		d.PushBack(i)
	}
	d.Clear()
	require.Equal(t, 0, d.Len())
	require.Equal(t, 2, d.Cap())
	require.Empty(t, d.Slice())

	d.PushFront(1)
	require.Equal(t, []int{1}, d.Slice())
}

func TestDeque_Clone(t *testing.T) {
	t.Parallel()

	d := New[string]()
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		d.PushBack(s)
	}
	c := d.Clone()
	require.True(t, Equal(d, c))
	require.Equal(t, d.Cap(), c.Cap())

	c.Set(0, "z")
	c.PopBack()
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, d.Slice())
	require.Equal(t, []string{"z", "b", "c", "d"}, c.Slice())
	require.False(t, Equal(d, c))
}

func TestDeque_Assign(t *testing.T) {
	t.Parallel()

	src := New[int]()
	for i := 0; i < 20; i++ {
		src.PushFront(i)
	}
	dst := New[int]()
	dst.PushBack(100)
	dst.Assign(src)
	require.True(t, Equal(src, dst))

	dst.PushBack(-1)
	require.Equal(t, 20, src.Len())
	require.Equal(t, 21, dst.Len())

	dst.Assign(dst)
	require.Equal(t, 21, dst.Len())
	require.Equal(t, -1, dst.Back())
}

func TestDeque_EqualFunc(t *testing.T) {
	t.Parallel()

	a := New[int]()
	b := New[string]()
	for i, s := range []string{"0", "1", "2"} {
		a.PushBack(i)
		b.PushBack(s)
	}
	eq := func(x int, y string) bool {
		return string(rune('0'+x)) == y
	}
	require.True(t, EqualFunc(a, b, eq))
	b.PopFront()
	require.False(t, EqualFunc(a, b, eq))
}

func TestDeque_RangeIterators(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 0; i < 10; i++ {
		d.PushFront(i)
	}
	for i := 0; i < 3; i++ {
		d.PopBack()
		d.PushBack(100 + i)
	}
	expected := d.Slice()

	var forward []int
	for i, v := range d.All() {
		require.Equal(t, len(forward), i)
		require.Equal(t, d.At(i), v)
		forward = append(forward, v)
	}
	require.Equal(t, expected, forward)

	var backward []int
	for i, v := range d.Backward() {
		require.Equal(t, d.Len()-1-len(backward), i)
		require.Equal(t, d.At(i), v)
		backward = append(backward, v)
	}
	slices.Reverse(backward)
	require.Equal(t, expected, backward)

	require.Equal(t, expected, slices.Collect(d.Values()))

	var firstTwo []int
	for v := range d.Values() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	require.Equal(t, expected[:2], firstTwo)
}

func TestDeque_StructElements(t *testing.T) {
	t.Parallel()

	type pair struct {
		first, second int
	}
	d := New[pair]()
	for i := 0; i < 100; i++ {
		d.PushBack(pair{first: i, second: -i})
	}
	for it := d.Begin(); it.Less(d.End()); it.Next() {
		require.Equal(t, it.Ptr().first, it.At(0).first)
		require.Equal(t, it.Ptr().second, it.At(0).second)
		it.Ptr().second = 0
	}
	for v := range d.Values() {
		require.Equal(t, 0, v.second)
	}
}

func TestDeque_CrossCheck(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(42, 7))
	d := New[uint64]()
	var expected []uint64
	for round := 0; round < 50; round++ {
		ops := r.IntN(401) + 100
		for i := 0; i < ops; i++ {
			push := len(expected) < 100 || r.IntN(2) == 0
			front := r.IntN(2) == 0
			switch {
			case push && front:
				v := r.Uint64()
				expected = slices.Insert(expected, 0, v)
				d.PushFront(v)
			case push:
				v := r.Uint64()
				expected = append(expected, v)
				d.PushBack(v)
			case front:
				expected = expected[1:]
				d.PopFront()
			default:
				expected = expected[:len(expected)-1]
				d.PopBack()
			}
		}
		require.Equal(t, len(expected), d.Len())
		require.Equal(t, expected, d.Slice())
		require.Less(t, d.Len(), d.Cap())
	}
}

func BenchmarkDeque_PushBack(b *testing.B) {
	d := New[int]()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
	}
}

func BenchmarkDeque_Serial(b *testing.B) {
	d := New[int]()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
	}
	for i := 0; i < b.N; i++ {
		d.PopFront()
	}
}

func BenchmarkDeque_SerialReverse(b *testing.B) {
	d := New[int]()
	for i := 0; i < b.N; i++ {
		d.PushFront(i)
	}
	for i := 0; i < b.N; i++ {
		d.PopBack()
	}
}

func BenchmarkDeque_Iterate(b *testing.B) {
	d := New[int]()
	for i := 0; i < 1<<16; i++ {
		d.PushFront(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for it, end := d.CBegin(), d.CEnd(); it.Less(end); it.Next() {
			sum += it.Value()
		}
		_ = sum
	}
}
