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
	"fmt"
	"math/rand/v2"

	"github.com/dolthub/swiss"
	"github.com/zeebo/xxh3"
)

// OpKind is the kind of a deque mutation.
type OpKind uint8

const (
	PushFront OpKind = iota
	PushBack
	PopFront
	PopBack
)

func (k OpKind) String() string {
	switch k {
	case PushFront:
		return "push_front"
	case PushBack:
		return "push_back"
	case PopFront:
		return "pop_front"
	case PopBack:
		return "pop_back"
	default:
		return fmt.Sprintf("OpKind(%d)", k)
	}
}

// IsPush reports whether the kind inserts an element.
func (k OpKind) IsPush() bool {
	return k == PushFront || k == PushBack
}

// IsFront reports whether the kind works on the front end.
func (k OpKind) IsFront() bool {
	return k == PushFront || k == PopFront
}

// Op is a single deque mutation. Value is only meaningful for pushes.
type Op struct {
	Kind  OpKind
	Value uint64
}

func (op Op) String() string {
	if op.Kind.IsPush() {
		return fmt.Sprintf("%s(%d)", op.Kind, op.Value)
	}
	return op.Kind.String()
}

// SeedFromString derives a 64-bit seed from an arbitrary string.
func SeedFromString(s string) uint64 {
	return xxh3.HashString(s)
}

// Generator produces a reproducible random stream of operations.
//
// Below the low water mark it only pushes, at the high water mark it only pops,
// and in between it picks push or pop and the end uniformly.
type Generator struct {
	rnd       *rand.Rand
	minOps    int
	maxOps    int
	lowWater  int
	highWater int
	// seen is nil unless values must be distinct.
	seen *swiss.Map[uint64, struct{}]
}

// NewGenerator returns a Generator seeded with seed and configured by o.
func NewGenerator(seed uint64, o *Options) *Generator {
	g := &Generator{
		rnd:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		minOps:    o.MinOpsPerRound,
		maxOps:    o.MaxOpsPerRound,
		lowWater:  o.LowWater,
		highWater: o.HighWater,
	}
	if o.Distinct {
		//nolint:gosec // high water is validated to be positive
		g.seen = swiss.NewMap[uint64, struct{}](uint32(o.HighWater))
	}
	return g
}

// RoundLength returns the number of operations of the next round.
func (g *Generator) RoundLength() int {
	return g.minOps + g.rnd.IntN(g.maxOps-g.minOps+1)
}

// Value returns a new element value. In distinct mode it never repeats a value.
func (g *Generator) Value() uint64 {
	for {
		v := g.rnd.Uint64()
		if g.seen == nil {
			return v
		}
		if !g.seen.Has(v) {
			g.seen.Put(v, struct{}{})
			return v
		}
	}
}

// Next returns the next operation for a deque currently holding size elements.
func (g *Generator) Next(size int) Op {
	var push bool
	switch {
	case size < g.lowWater:
		push = true
	case size >= g.highWater:
		push = false
	default:
		push = g.rnd.IntN(2) == 1
	}
	front := g.rnd.IntN(2) == 1

	switch {
	case push && front:
		return Op{Kind: PushFront, Value: g.Value()}
	case push:
		return Op{Kind: PushBack, Value: g.Value()}
	case front:
		return Op{Kind: PopFront}
	default:
		return Op{Kind: PopBack}
	}
}
