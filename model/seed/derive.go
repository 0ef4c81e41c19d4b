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

/*
Package seed turns a chain of opaque user seeds, plus the cover image's
dimensions, into one 32-byte PRNG key per chain position. The derivation
is a flat hash chain - K1 = H32(I || S1), Ki = H32(S{i-1} || Si) for i>=2,
with H32(x) = SHA-512(x)[32:64] - styled after SLIP-0010 hash-chaining but
without BIP-32/ed25519 child-key derivation, since the keys here seed a
PRNG rather than sign anything.
*/
package seed

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/steganon/steganon/model"
)

// KeySize is the width, in bytes, of a derived PRNG key.
const KeySize = 32

// Basis is the fixed, public, version-locked constant that seeds the
// Initialisator. It participates in deriving K1 only; it MUST NOT change
// across versions, since doing so changes every K1 computed from it.
//
// Basis = SHA-512("steganon/v1 lsb-matching-with-seed basis constant")[32:64]
var Basis = [KeySize]byte{
	0x11, 0x01, 0x21, 0xca, 0x68, 0xef, 0x2a, 0x67,
	0xc3, 0x65, 0x5b, 0x28, 0xb0, 0xe1, 0x14, 0x1a,
	0x58, 0xc8, 0xb8, 0x5a, 0x29, 0xfd, 0xd0, 0x4b,
	0xaf, 0x7b, 0x71, 0x69, 0xfe, 0xb9, 0x72, 0x4e,
}

// Key is one derived 32-byte PRNG seed, K_i.
type Key [KeySize]byte

// h32 computes SHA-512(x) and keeps the last 32 bytes.
func h32(parts ...[]byte) Key {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	var out Key
	copy(out[:], sum[32:64])
	return out
}

// geometryTag is the canonical encoding of the cover image's dimensions fed
// into the Initialisator: two big-endian uint32 values, W then H.
func geometryTag(width, height int) []byte {
	var g [8]byte
	binary.BigEndian.PutUint32(g[0:4], uint32(width))
	binary.BigEndian.PutUint32(g[4:8], uint32(height))
	return g[:]
}

// Initialisator computes I = H32(Basis || G) for the given image geometry.
func Initialisator(width, height int) Key {
	return h32(Basis[:], geometryTag(width, height))
}

// DeriveChain turns a non-empty ordered seed chain plus the cover image's
// dimensions into the corresponding chain of derived PRNG keys:
//
//	K1   = H32(I || S1)
//	Ki   = H32(S{i-1} || Si)   for i >= 2
//
// When useRawSeed is true, derivation is skipped entirely and each Ki is
// formed directly from Si (truncated or zero-padded to 32 bytes), applying
// to the whole chain: a raw Ki never depends on image geometry, the Basis,
// or any other seed in the chain.
func DeriveChain(seeds [][]byte, width, height int, useRawSeed bool) ([]Key, error) {
	if len(seeds) == 0 {
		return nil, model.ErrEmptySeedChain
	}

	keys := make([]Key, len(seeds))

	if useRawSeed {
		for i, s := range seeds {
			keys[i] = rawKey(s)
		}
		return keys, nil
	}

	init := Initialisator(width, height)
	keys[0] = h32(init[:], seeds[0])

	for i := 1; i < len(seeds); i++ {
		keys[i] = h32(seeds[i-1], seeds[i])
	}

	return keys, nil
}

// rawKey truncates or zero-pads s to exactly KeySize bytes.
func rawKey(s []byte) Key {
	var k Key
	copy(k[:], s)
	return k
}
