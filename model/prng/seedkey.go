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

// KeyWords converts a big-endian unsigned integer (the derived 32-byte
// key from model/seed) into the little-endian array of 32-bit words
// CPython's random.seed(int) feeds to init_by_array: the least significant
// word first, with trailing (most significant) all-zero words dropped, but
// never returning an empty slice.
func KeyWords(key []byte) []uint32 {
	// pad up to a multiple of 4 bytes, big-endian, so the last word holds
	// the most significant bits.
	padded := key
	if r := len(padded) % 4; r != 0 {
		padded = make([]byte, len(key)+(4-r))
		copy(padded[4-r:], key)
	}

	words := make([]uint32, len(padded)/4)
	for i := range words {
		// word i (0 = least significant) comes from the big-endian chunk
		// at the tail end of padded.
		off := len(padded) - (i+1)*4
		words[i] = uint32(padded[off])<<24 | uint32(padded[off+1])<<16 |
			uint32(padded[off+2])<<8 | uint32(padded[off+3])
	}

	last := len(words)
	for last > 1 && words[last-1] == 0 {
		last--
	}
	return words[:last]
}

// NewFromKey builds an MT19937 generator seeded from a derived key, ready
// to drive a pixel address stream.
func NewFromKey(key []byte) *MT19937 {
	g := &MT19937{index: n + 1}
	g.SeedFromKey(KeyWords(key))
	return g
}
