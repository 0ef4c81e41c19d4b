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

package model

import "errors"

var (
	// ErrCapacityExceeded is returned by hide when the address stream is
	// exhausted before the payload and its sentinel byte are fully written.
	ErrCapacityExceeded = errors.New("steganon: payload exceeds available capacity")

	// ErrTruncated is returned by extract when the address stream is
	// exhausted before a sentinel byte is decoded.
	ErrTruncated = errors.New("steganon: no sentinel found before capacity was exhausted")

	// ErrNoMoreSeeds is returned by advance when called past the end of
	// the seed chain.
	ErrNoMoreSeeds = errors.New("steganon: seed chain exhausted")

	// ErrEmptySeedChain is returned by the engine constructor when given
	// zero seeds.
	ErrEmptySeedChain = errors.New("steganon: seed chain must not be empty")

	// ErrUnsupportedPixelFormat is returned when an image accessor reports
	// fewer than three colour channels or a channel width other than 8 bits.
	ErrUnsupportedPixelFormat = errors.New("steganon: image pixel format must be 8-bit RGB(A)")
)
