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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maypok86/ringdeque/internal/stats"
)

func TestChecker_ApplyAndVerify(t *testing.T) {
	t.Parallel()

	recorder := stats.NewCounter()
	c := NewChecker(recorder)
	g := newTestGenerator(11, Options{LowWater: 0, HighWater: 300})
	for i := 0; i < 5000; i++ {
		require.NoError(t, c.Apply(g.Next(c.Len())))
		if i%250 == 0 {
			require.NoError(t, c.Verify())
		}
	}
	require.NoError(t, c.Verify())

	s := recorder.Snapshot()
	require.Equal(t, uint64(5000), s.Ops())
	require.Positive(t, s.Grows)
	require.Positive(t, s.Shrinks)
	require.Equal(t, uint64(21), s.Verifications)
}

func TestChecker_PopEmpty(t *testing.T) {
	t.Parallel()

	recorder := stats.NewCounter()
	c := NewChecker(recorder)
	require.NoError(t, c.Apply(Op{Kind: PopFront}))
	require.NoError(t, c.Apply(Op{Kind: PopBack}))
	require.NoError(t, c.Verify())
	require.Equal(t, uint64(2), recorder.Snapshot().NoopPops)
}

func TestChecker_DetectsMismatch(t *testing.T) {
	t.Parallel()

	c := NewChecker(nil)
	for i := uint64(0); i < 20; i++ {
		require.NoError(t, c.Apply(Op{Kind: PushBack, Value: i}))
	}
	require.NoError(t, c.Verify())

	// corrupt the deque under test behind the reference's back.
	c.Deque().Set(10, 1000)
	require.ErrorIs(t, c.Verify(), ErrMismatch)

	c.Deque().Set(10, 10)
	require.NoError(t, c.Verify())

	c.Deque().Set(19, 1000)
	require.ErrorIs(t, c.Apply(Op{Kind: PopBack}), ErrMismatch)
}

func TestChecker_DetectsLengthMismatch(t *testing.T) {
	t.Parallel()

	c := NewChecker(nil)
	require.NoError(t, c.Apply(Op{Kind: PushFront, Value: 1}))
	c.Deque().PushBack(2)
	require.ErrorIs(t, c.Verify(), ErrMismatch)
	require.ErrorIs(t, c.Apply(Op{Kind: PushBack, Value: 3}), ErrMismatch)
}

func TestChecker_UnknownOp(t *testing.T) {
	t.Parallel()

	c := NewChecker(nil)
	require.Error(t, c.Apply(Op{Kind: OpKind(42)}))
}

func TestChecker_Fingerprint(t *testing.T) {
	t.Parallel()

	c := NewChecker(nil)
	empty := c.Fingerprint()
	require.NoError(t, c.Apply(Op{Kind: PushBack, Value: 1}))
	require.NotEqual(t, empty, c.Fingerprint())
}
