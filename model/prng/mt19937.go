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

// Original C program copyright Takuji Nishimura and Makoto Matsumoto 2002.
// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/MT2002/CODES/mt19937ar.c

/*
Package prng implements a deterministic 32-bit Mersenne Twister (MT19937),
seeded from an array of 32-bit words the way CPython's random module seeds
it from an arbitrary-precision integer, plus the rejection-sampling
uniform_int the pixel address stream depends on. Cross-implementation
reproducibility of the pixel-address sequence hinges on matching this
algorithm bit-for-bit, so nothing here may be swapped for a "better" PRNG.

The generator core is adapted from gonum's mathext/prng MT19937
(itself a port of Nishimura & Matsumoto's reference mt19937ar.c); the
32-byte-key seeding and uniform_int rejection sampling are new, modeled on
CPython's _randommodule.c so that a derived key produced by model/seed
drives the same pixel-address sequence a Python reference implementation of
this spec would produce.
*/
package prng

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// MT19937 is a 32-bit Mersenne Twister generator.
type MT19937 struct {
	state [n]uint32
	index uint32
}

// New returns an MT19937 generator seeded with the default seed. Callers
// should immediately call SeedFromKey.
func New() *MT19937 {
	g := &MT19937{index: n + 1}
	g.seedScalar(5489)
	return g
}

// seedScalar is the classic single-uint32 MT19937 seeding routine
// (mt19937ar.c's init_genrand), used internally as the first step of
// SeedFromKey.
func (g *MT19937) seedScalar(s uint32) {
	g.state[0] = s
	for g.index = 1; g.index < n; g.index++ {
		prev := g.state[g.index-1]
		g.state[g.index] = 1812433253*(prev^(prev>>30)) + g.index
	}
}

// SeedFromKey seeds the generator from an array of 32-bit words, exactly as
// mt19937ar.c's init_by_array and CPython's random_seed do. keys should be
// least-significant word first when derived from a big integer (see
// KeyWords).
func (g *MT19937) SeedFromKey(keys []uint32) {
	g.seedScalar(19650218)

	i := uint32(1)
	j := uint32(0)
	k := uint32(n)
	if uint32(len(keys)) > k {
		k = uint32(len(keys))
	}
	for ; k != 0; k-- {
		g.state[i] = (g.state[i] ^ ((g.state[i-1] ^ (g.state[i-1] >> 30)) * 1664525)) + keys[j] + j
		i++
		j++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
		if j >= uint32(len(keys)) {
			j = 0
		}
	}
	for k = n - 1; k != 0; k-- {
		g.state[i] = (g.state[i] ^ ((g.state[i-1] ^ (g.state[i-1] >> 30)) * 1566083941)) - i
		i++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
	}
	g.state[0] = 0x80000000
}

// Uint32 returns the next pseudo-random 32-bit word.
func (g *MT19937) Uint32() uint32 {
	mag01 := [2]uint32{0, matrixA}

	if g.index >= n {
		var kk int
		for ; kk < n-m; kk++ {
			y := (g.state[kk] & upperMask) | (g.state[kk+1] & lowerMask)
			g.state[kk] = g.state[kk+m] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < n-1; kk++ {
			y := (g.state[kk] & upperMask) | (g.state[kk+1] & lowerMask)
			g.state[kk] = g.state[kk+(m-n)] ^ (y >> 1) ^ mag01[y&1]
		}
		y := (g.state[n-1] & upperMask) | (g.state[0] & lowerMask)
		g.state[n-1] = g.state[m-1] ^ (y >> 1) ^ mag01[y&1]

		g.index = 0
	}

	y := g.state[g.index]
	g.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}
