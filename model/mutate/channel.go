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

// Package mutate implements LSB-Matching channel writes: a channel whose
// LSB already matches the target bit is left untouched;
// otherwise it is nudged by +1 or -1 (never flipped in place), clamped at
// the 0/255 boundary. Which direction is chosen when both are legal is not
// part of the wire format - any extractor need only read the LSB back.
package mutate

// DirectionSource supplies the coin flip used to pick +1 vs -1 when a
// channel sits strictly inside [1, 254] and either direction would clamp
// legally. It is deliberately decoupled from the pixel-address PRNG: the
// choice never needs to be reproduced, only its effect on the LSB.
type DirectionSource interface {
	Intn(n int) int
}

// WriteBit returns the channel value that results from writing bit into
// value's LSB using LSB-Matching. If value's LSB already equals bit, value
// is returned unchanged.
func WriteBit(value uint8, bit bool, dir DirectionSource) uint8 {
	if ReadBit(value) == bit {
		return value
	}

	switch value {
	case 0:
		return 1
	case 255:
		return 254
	default:
		if dir.Intn(2) == 0 {
			return value + 1
		}
		return value - 1
	}
}

// ReadBit extracts the LSB a WriteBit call encoded.
func ReadBit(value uint8) bool {
	return value&1 == 1
}
