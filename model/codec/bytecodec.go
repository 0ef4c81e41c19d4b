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

// Package codec implements the 9-bit-per-byte wire layout: one payload
// byte spans three pixels. Bit 0 is the sentinel flag; bits 1-8
// are the byte's data bits, most significant first. Bits are assigned to
// pixels in groups of three: pixel 0 carries bits 0-2, pixel 1 carries bits
// 3-5, pixel 2 carries bits 6-8, each bit landing on that pixel's R, G, then
// B channel in order.
package codec

// BitsPerByte is the number of carrier bits one payload byte needs.
const BitsPerByte = 9

// PixelsPerByte is the number of pixels a single payload byte spans.
const PixelsPerByte = 3

// Channel identifies which color channel of a pixel carries a bit.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// Slot names the exact carrier for one of the 9 bits: which of the three
// pixels in the group, and which of its channels.
type Slot struct {
	PixelOffset int // 0, 1, or 2 - offset within this byte's 3-pixel group
	Channel     Channel
}

// SlotFor returns the carrier slot for bit index i (0 = sentinel flag,
// 1-8 = data bits MSB first).
func SlotFor(i int) Slot {
	return Slot{
		PixelOffset: i / 3,
		Channel:     Channel(i % 3),
	}
}

// EncodeByte lays a payload byte plus its sentinel flag out across the 9
// carrier bits, sentinel first, then b's bits most-significant-bit first.
func EncodeByte(b byte, sentinel bool) [BitsPerByte]bool {
	var bits [BitsPerByte]bool
	bits[0] = sentinel
	for i := 0; i < 8; i++ {
		bits[1+i] = (b>>(7-i))&1 == 1
	}
	return bits
}

// DecodeByte reassembles a payload byte and its sentinel flag from the 9
// carrier bits produced by EncodeByte.
func DecodeByte(bits [BitsPerByte]bool) (b byte, sentinel bool) {
	sentinel = bits[0]
	for i := 0; i < 8; i++ {
		if bits[1+i] {
			b |= 1 << (7 - i)
		}
	}
	return b, sentinel
}
