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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/imagecodec"
)

// ConvertCommand converts a lossy JPEG cover candidate to lossless PNG: a
// JPEG cover loses LSB-Matching's writes the moment it's re-compressed, so
// callers convert to PNG first.
var ConvertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "convert a lossy JPEG cover image to lossless PNG",
	ArgsUsage: "<input.jpg> <output.png>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fail(ExitInvalidParameter, "usage: steganon convert <input.jpg> <output.png>")
		}
		in, out := c.Args().Get(0), c.Args().Get(1)

		src, err := os.Open(in)
		if err != nil {
			return fail(ExitIOFailed, "opening %s: %v", in, err)
		}
		defer src.Close()

		dst, err := os.Create(out)
		if err != nil {
			return fail(ExitIOFailed, "creating %s: %v", out, err)
		}
		defer dst.Close()

		if err := imagecodec.ConvertJPEGToPNG(src, dst); err != nil {
			return fail(ExitOperationFailed, "converting: %v", err)
		}
		return nil
	},
}
