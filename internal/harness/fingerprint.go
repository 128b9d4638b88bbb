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
	"iter"

	"github.com/dolthub/maphash"
)

const fingerprintPrime = 1099511628211

// Fingerprinter computes order-sensitive hashes of element sequences.
//
// Fingerprints are only comparable when produced by the same Fingerprinter,
// because every Fingerprinter uses its own random hash seed.
type Fingerprinter[T comparable] struct {
	hasher maphash.Hasher[T]
}

// NewFingerprinter returns a Fingerprinter with a fresh hash seed.
func NewFingerprinter[T comparable]() *Fingerprinter[T] {
	return &Fingerprinter[T]{
		hasher: maphash.NewHasher[T](),
	}
}

// Sum returns the fingerprint of seq.
func (f *Fingerprinter[T]) Sum(seq iter.Seq[T]) uint64 {
	var h uint64
	for v := range seq {
		h = (h ^ f.hasher.Hash(v)) * fingerprintPrime
	}
	return h
}
