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
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/utils/fingerprint"
)

// KeygenCommand prints a fresh random seed, suitable for one chain position.
var KeygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "print a random seed and its multihash fingerprint",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "bytes", Usage: "seed length in bytes", Value: 32},
	},
	Action: func(c *cli.Context) error {
		n := c.Int("bytes")
		if n <= 0 {
			return fail(ExitInvalidParameter, "--bytes must be positive")
		}
		seed := make([]byte, n)
		if _, err := rand.Read(seed); err != nil {
			return fail(ExitOperationFailed, "generating seed: %v", err)
		}

		fp, err := fingerprint.GetMultihashFingerprint(bytes.NewReader(seed))
		if err != nil {
			return fail(ExitOperationFailed, "fingerprinting seed: %v", err)
		}

		fmt.Fprintln(c.App.Writer, base58.Encode(seed))
		fmt.Fprintln(c.App.Writer, base58.Encode(fp))
		return nil
	},
}
