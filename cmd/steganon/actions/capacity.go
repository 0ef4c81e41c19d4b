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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/engine"
)

// CapacityCommand prints the upper-bound payload capacity for a cover image
// at the chain's first still-unreserved level: floor((W*H - |reserved so
// far|) / 3) - 1. It is a straightforward bound, not a simulation of what
// earlier levels would actually consume.
var CapacityCommand = &cli.Command{
	Name:      "capacity",
	Usage:     "print a cover image's hiding capacity upper bound",
	ArgsUsage: "<cover-image>",
	Flags: []cli.Flag{
		SeedFlag,
		RawSeedFlag,
		VaultAddrFlag,
	},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return fail(ExitInvalidParameter, "a cover image path is required")
		}

		seeds, err := resolveSeeds(c.String("vault-addr"), c.StringSlice("seed"))
		if err != nil {
			return err
		}

		_, img, _, err := readImage(path)
		if err != nil {
			return err
		}

		eng, err := engine.New(img, seeds, c.Bool("raw-seed"))
		if err != nil {
			return fail(ExitInvalidParameter, "building engine: %v", err)
		}

		fmt.Fprintf(c.App.Writer, "level %d: %d bytes\n", eng.Level(), eng.Capacity())
		return nil
	},
}
