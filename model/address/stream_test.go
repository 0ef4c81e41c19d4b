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

package address_test

import (
	"testing"

	"github.com/steganon/steganon/model/address"
	"github.com/steganon/steganon/model/prng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG(seed byte) *prng.MT19937 {
	key := make([]byte, 32)
	key[31] = seed
	return prng.NewFromKey(key)
}

func TestStream_NoDuplicateCoords(t *testing.T) {
	s := address.New(newRNG(1), 8, 8, nil)

	emitted := make(map[address.Coord]bool)
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		assert.False(t, emitted[c], "coordinate %v emitted twice", c)
		emitted[c] = true
		assert.GreaterOrEqual(t, c.X, 0)
		assert.Less(t, c.X, 8)
		assert.GreaterOrEqual(t, c.Y, 0)
		assert.Less(t, c.Y, 8)
	}
	assert.Len(t, emitted, 64)
}

func TestStream_HonorsSkipSet(t *testing.T) {
	skip := map[address.Coord]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 1}: {},
	}
	s := address.New(newRNG(2), 4, 4, skip)

	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		_, reserved := skip[c]
		assert.False(t, reserved)
	}
}

func TestStream_ExhaustionDetectedBeforeDraw(t *testing.T) {
	s := address.New(newRNG(3), 2, 1, nil)

	require.Equal(t, 2, s.Remaining())
	_, ok := s.Next()
	require.True(t, ok)
	_, ok = s.Next()
	require.True(t, ok)

	require.Equal(t, 0, s.Remaining())
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestStream_DeterministicForSameKey(t *testing.T) {
	a := address.New(newRNG(9), 16, 16, nil)
	b := address.New(newRNG(9), 16, 16, nil)

	for i := 0; i < 50; i++ {
		ca, oka := a.Next()
		cb, okb := b.Next()
		require.Equal(t, oka, okb)
		require.Equal(t, ca, cb)
	}
}

func TestStream_ConsumedFeedsNextLevel(t *testing.T) {
	level1 := address.New(newRNG(4), 3, 3, nil)
	for {
		if _, ok := level1.Next(); !ok {
			break
		}
	}

	level2 := address.New(newRNG(5), 3, 3, level1.Consumed())
	assert.Equal(t, 0, level2.Remaining())
	_, ok := level2.Next()
	assert.False(t, ok)
}
