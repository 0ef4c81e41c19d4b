// Copyright 2026 The Steganon Authors
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

package prng

import "math/bits"

// getrandbits returns k pseudo-random bits, built from successive 32-bit
// words the same way CPython's Random.getrandbits does: full words are
// consumed low-to-high, and the final partial word is right-shifted to
// keep only its top bits.
func (g *MT19937) getrandbits(k int) uint64 {
	var result uint64
	var shift uint
	for remaining := k; remaining > 0; remaining -= 32 {
		r := g.Uint32()
		if remaining < 32 {
			r >>= uint(32 - remaining)
		}
		result |= uint64(r) << shift
		shift += 32
	}
	return result
}

// randBelow returns a uniform value in [0, nVal) using the same rejection
// strategy as CPython's Random._randbelow: draw nVal.BitLen() bits, retry
// on overflow.
func randBelow(g *MT19937, nVal uint64) uint64 {
	if nVal == 0 {
		return 0
	}
	k := bits.Len64(nVal)
	r := g.getrandbits(k)
	for r >= nVal {
		r = g.getrandbits(k)
	}
	return r
}

// UniformInt returns an integer uniformly distributed in [lo, hi], both
// inclusive, using rejection sampling (matching Python's randint(a,b),
// which is randrange(a, b+1) under the hood).
func (g *MT19937) UniformInt(lo, hi int) int {
	span := uint64(hi-lo) + 1
	return lo + int(randBelow(g, span))
}
