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

package seed_test

import (
	"testing"

	"github.com/steganon/steganon/model"
	. "github.com/steganon/steganon/model/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveChain_Deterministic(t *testing.T) {
	chain := [][]byte{[]byte("seed_0"), []byte("seed_1"), []byte("seed_2")}

	a, err := DeriveChain(chain, 100, 100, false)
	require.NoError(t, err)

	b, err := DeriveChain(chain, 100, 100, false)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 3)
}

func TestDeriveChain_SensitiveToGeometry(t *testing.T) {
	chain := [][]byte{[]byte("seed_0")}

	a, err := DeriveChain(chain, 100, 100, false)
	require.NoError(t, err)

	b, err := DeriveChain(chain, 101, 100, false)
	require.NoError(t, err)

	assert.NotEqual(t, a[0], b[0])
}

func TestDeriveChain_OnlyK1DependsOnGeometry(t *testing.T) {
	// K1 is the only position where geometry/Basis enter; Ki for i>=2 must
	// be identical across differing geometry as long as the adjacent seeds
	// match.
	chain := [][]byte{[]byte("seed_0"), []byte("seed_1")}

	a, err := DeriveChain(chain, 100, 100, false)
	require.NoError(t, err)

	b, err := DeriveChain(chain, 200, 50, false)
	require.NoError(t, err)

	assert.NotEqual(t, a[0], b[0])
	assert.Equal(t, a[1], b[1])
}

func TestDeriveChain_SensitiveToEarlierSeed(t *testing.T) {
	a, err := DeriveChain([][]byte{[]byte("a"), []byte("b"), []byte("c")}, 100, 100, false)
	require.NoError(t, err)

	b, err := DeriveChain([][]byte{[]byte("x"), []byte("b"), []byte("c")}, 100, 100, false)
	require.NoError(t, err)

	// changing S1 changes K1 (direct input) and K2 (adjacent to S1), but not
	// K3, which only depends on S2 and S3.
	assert.NotEqual(t, a[0], b[0])
	assert.NotEqual(t, a[1], b[1])
	assert.Equal(t, a[2], b[2])
}

func TestDeriveChain_EmptyChain(t *testing.T) {
	_, err := DeriveChain(nil, 100, 100, false)
	assert.ErrorIs(t, err, model.ErrEmptySeedChain)
}

func TestDeriveChain_RawSeedOverride(t *testing.T) {
	chain := [][]byte{[]byte("seed_0"), []byte("seed_1")}

	raw, err := DeriveChain(chain, 100, 100, true)
	require.NoError(t, err)

	rawOther, err := DeriveChain(chain, 999, 999, true)
	require.NoError(t, err)

	// raw keys never depend on geometry.
	assert.Equal(t, raw, rawOther)

	var want Key
	copy(want[:], "seed_0")
	assert.Equal(t, want, raw[0])
}
