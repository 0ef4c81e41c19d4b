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

package coverstore_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/steganon/steganon/coverstore"
	_ "github.com/steganon/steganon/coverstore/fs"
	_ "github.com/steganon/steganon/coverstore/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetIsContentAddressed(t *testing.T) {
	store, err := coverstore.Create(&coverstore.Config{Type: "memory"})
	require.NoError(t, err)
	defer store.Close()

	blob := []byte("a cover image's bytes")
	id1, err := store.Put(bytes.NewReader(blob))
	require.NoError(t, err)
	id2, err := store.Put(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	r, err := store.Get(id1)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestFSStore_PutGetRoundTrip(t *testing.T) {
	store, err := coverstore.Create(&coverstore.Config{
		Type:   "fs",
		Params: map[string]string{"root": t.TempDir()},
	})
	require.NoError(t, err)
	defer store.Close()

	blob := []byte("another cover image")
	id, err := store.Put(bytes.NewReader(blob))
	require.NoError(t, err)

	has, err := store.Has(id)
	require.NoError(t, err)
	assert.True(t, has)

	r, err := store.Get(id)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestStore_GetMissingReturnsErrNotFound(t *testing.T) {
	store, err := coverstore.Create(&coverstore.Config{Type: "memory"})
	require.NoError(t, err)

	_, err = store.Get("missing-id")
	assert.ErrorIs(t, err, coverstore.ErrNotFound)
}
