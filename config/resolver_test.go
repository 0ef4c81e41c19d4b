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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/steganon/steganon/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedResolver_Literal(t *testing.T) {
	r, err := config.NewSeedResolver("")
	require.NoError(t, err)

	got, err := r.Resolve("my-literal-seed")
	require.NoError(t, err)
	assert.Equal(t, "my-literal-seed", string(got))
}

func TestSeedResolver_File(t *testing.T) {
	r, err := config.NewSeedResolver("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("seed from file"), 0o600))

	got, err := r.Resolve("@" + path)
	require.NoError(t, err)
	assert.Equal(t, "seed from file", string(got))
}

func TestSeedResolver_ResolveAll(t *testing.T) {
	r, err := config.NewSeedResolver("")
	require.NoError(t, err)

	got, err := r.ResolveAll([]string{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("one"), []byte("two")}, got)
}

func TestSeedResolver_VaultRefMissingField(t *testing.T) {
	r, err := config.NewSeedResolver("")
	require.NoError(t, err)

	_, err = r.Resolve("vault:secret/data/foo")
	assert.Error(t, err)
}

func TestLoad_MissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.CoverStoreType)
}
