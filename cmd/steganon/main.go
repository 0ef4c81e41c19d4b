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

// Command steganon is the CLI front-end for the LSB-Matching-With-Seed
// steganographic core: hide/extract payloads under a seed chain, inspect
// cover capacity, and run batch corpus sweeps.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/cmd"
	"github.com/steganon/steganon/cmd/steganon/actions"
)

func main() {
	app := cli.NewApp()
	app.Name = "steganon"
	app.Usage = "hide and recover payloads in images with LSB-Matching under a seed chain"
	app.Version = actions.Version

	app.Flags = actions.BasicFlags

	app.Before = func(c *cli.Context) error {
		cmd.SetConfigDirName(".steganon")

		if c.Bool("debug") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp})

		return nil
	}

	app.Commands = actions.StandardSet

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("steganon command failed")
	}
}
