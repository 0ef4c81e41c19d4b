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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"github.com/steganon/steganon/engine"
)

// representativePayloadBytes bounds how much of each level's capacity
// inspect consumes for its placeholder hide. A full-capacity hide at level
// 0 would swallow nearly the entire reserved-pixel pool and starve every
// later level, making the multi-level visualization this command exists
// for degenerate; a small, fixed-size traversal instead leaves each later
// level room to show its own marked region.
const representativePayloadBytes = 32

// InspectCommand is the test-mode entry point: it walks the seed chain with
// the engine's address streams, but instead of writing payload bits it asks
// the engine to mark every visited pixel, so a reviewer can visually audit
// which pixels a chain would touch without ever hiding real data.
var InspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "visualise which pixels a seed chain would touch, without hiding any payload",
	ArgsUsage: "<cover-image>",
	Flags: []cli.Flag{
		SeedFlag,
		RawSeedFlag,
		VaultAddrFlag,
		&cli.StringFlag{Name: "out", Usage: "marked image output path (default: <cover>.marked.<ext>)"},
		&cli.BoolFlag{Name: "tree", Usage: "print a per-level reserved-pixel breakdown"},
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

		codec, img, _, err := readImage(path)
		if err != nil {
			return err
		}

		eng, err := engine.New(img, seeds, c.Bool("raw-seed"))
		if err != nil {
			return fail(ExitInvalidParameter, "building engine: %v", err)
		}

		tree := treeprint.New()
		tree.SetValue(path)

		for {
			n := representativePayloadBytes
			if remaining := eng.Capacity(); remaining < n {
				n = remaining
			}
			if err := eng.Hide(make([]byte, n)); err != nil {
				tree.AddNode(fmt.Sprintf("level %d: failed (%v)", eng.Level(), err))
				break
			}
			tree.AddMetaNode(fmt.Sprintf("level %d", eng.Level()), fmt.Sprintf("%d pixels (representative)", eng.LastLevelPixelCount()))

			if err := eng.Next(); err != nil {
				break
			}
		}

		if c.Bool("tree") {
			fmt.Fprintln(c.App.Writer, tree.String())
		}

		// Visualize against a fresh decode of the same bytes, so the
		// marker overlay never collides with the placeholder payload
		// written above.
		_, clean, _, err := readImage(path)
		if err != nil {
			return err
		}
		eng.Visualize(clean)

		var buf bytes.Buffer
		if err := codec.Encode(&buf, clean); err != nil {
			return fail(ExitOperationFailed, "encoding marked image: %v", err)
		}

		outPath := c.String("out")
		if outPath == "" {
			outPath = path + ".marked." + extNoDot(path)
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fail(ExitIOFailed, "writing %s: %v", outPath, err)
		}
		return nil
	},
}
