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

package cryptutil_test

import (
	"testing"

	"github.com/steganon/steganon/internal/cryptutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key, err := cryptutil.GenerateKey()
	require.NoError(t, err)

	plaintext := []byte("a payload that deserves confidentiality")
	sealed, err := cryptutil.Encrypt(key, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)

	got, err := cryptutil.Decrypt(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	key1, _ := cryptutil.GenerateKey()
	key2, _ := cryptutil.GenerateKey()

	sealed, err := cryptutil.Encrypt(key1, []byte("top secret"))
	require.NoError(t, err)

	_, err = cryptutil.Decrypt(key2, sealed)
	assert.Error(t, err)
}

func TestDecrypt_TooShortCiphertext(t *testing.T) {
	key, _ := cryptutil.GenerateKey()
	_, err := cryptutil.Decrypt(key, []byte("x"))
	assert.ErrorIs(t, err, cryptutil.ErrCiphertextTooShort)
}
