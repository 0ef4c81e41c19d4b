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

package actions

import (
	"bytes"
	"encoding/hex"

	"github.com/steganon/steganon/utils/fingerprint"
)

// chainHash gives journal/bolt a stable identity for a resolved seed chain,
// so a resumed invocation can confirm it's replaying the same chain it
// recorded pixel counts for.
func chainHash(seeds [][]byte) (string, error) {
	var buf bytes.Buffer
	for _, s := range seeds {
		buf.Write(s)
		buf.WriteByte(0)
	}
	fp, err := fingerprint.GetMultihashFingerprint(&buf)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(fp), nil
}

// imageFingerprint gives journal/bolt a stable identity for the raw cover
// bytes read from disk.
func imageFingerprint(raw []byte) (string, error) {
	fp, err := fingerprint.GetMultihashFingerprint(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(fp), nil
}
