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
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/engine"
	"github.com/steganon/steganon/internal/cryptutil"
	"github.com/steganon/steganon/journal/bolt"
)

// HideCommand embeds a payload into a cover image at one or more seed-chain
// levels.
var HideCommand = &cli.Command{
	Name:      "hide",
	Usage:     "hide a payload in a cover image under a seed chain",
	ArgsUsage: "<cover-image>",
	Flags: []cli.Flag{
		SeedFlag,
		RawSeedFlag,
		VaultAddrFlag,
		EncryptKeyFlag,
		EncryptPassphraseFlag,
		&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "payload file (default: stdin)"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output cover image path (default: overwrite input)"},
		&cli.BoolFlag{Name: "advance", Usage: "hide the payload at every chain level from the current one onward in one run, instead of just the current one"},
		&cli.StringFlag{Name: "journal", Usage: "bolt journal path, for resuming a chain started in a prior invocation"},
		&cli.IntFlag{Name: "resume-from", Usage: "level to resume at, using --journal's recorded pixel counts for levels before it", Value: 0},
	},
	Action: hideAction,
}

func hideAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fail(ExitInvalidParameter, "a cover image path is required")
	}

	seeds, err := resolveSeeds(c.String("vault-addr"), c.StringSlice("seed"))
	if err != nil {
		return err
	}

	codec, img, raw, err := readImage(path)
	if err != nil {
		return err
	}

	payload, err := readPayload(c.String("in"))
	if err != nil {
		return fail(ExitIOFailed, "reading payload: %v", err)
	}

	if keyFile, byPassphrase := c.String("encrypt-key-file"), c.Bool("encrypt-passphrase"); keyFile != "" || byPassphrase {
		var key []byte
		if byPassphrase {
			key, err = passphraseKey("Encryption passphrase: ")
			if err != nil {
				return err
			}
		} else {
			key, err = os.ReadFile(keyFile)
			if err != nil {
				return fail(ExitIOFailed, "reading encryption key: %v", err)
			}
		}
		payload, err = cryptutil.Encrypt(key, payload)
		if err != nil {
			return fail(ExitOperationFailed, "encrypting payload: %v", err)
		}
	}

	eng, err := engine.New(img, seeds, c.Bool("raw-seed"))
	if err != nil {
		return fail(ExitInvalidParameter, "building engine: %v", err)
	}

	var journal *bolt.Store
	var imgFP, chFP string
	if jp := c.String("journal"); jp != "" {
		journal, err = bolt.Open(jp)
		if err != nil {
			return fail(ExitIOFailed, "opening journal: %v", err)
		}
		defer journal.Close()

		imgFP, err = imageFingerprint(raw)
		if err != nil {
			return fail(ExitOperationFailed, "fingerprinting cover: %v", err)
		}
		chFP, err = chainHash(seeds)
		if err != nil {
			return fail(ExitOperationFailed, "hashing chain: %v", err)
		}
	}

	resumeFrom := c.Int("resume-from")
	if resumeFrom > 0 {
		if journal == nil {
			return fail(ExitInvalidParameter, "--resume-from requires --journal")
		}
		counts := make([]int, resumeFrom)
		for l := 0; l < resumeFrom; l++ {
			n, found, err := journal.LevelConsumed(imgFP, chFP, l)
			if err != nil {
				return fail(ExitOperationFailed, "reading journal: %v", err)
			}
			if !found {
				return fail(ExitOperationFailed, "journal has no record for level %d; cannot resume", l)
			}
			counts[l] = n
		}
		if err := eng.ResumeLevel(resumeFrom, counts); err != nil {
			return fail(ExitOperationFailed, "resuming chain: %v", err)
		}
	}

	advance := c.Bool("advance")
	for {
		if err := eng.Hide(payload); err != nil {
			return fail(ExitOperationFailed, "hiding payload at level %d: %v", eng.Level(), err)
		}
		log.Debug().Int("level", eng.Level()).Int("pixels", eng.LastLevelPixelCount()).Msg("hid payload")

		if journal != nil {
			if err := journal.RecordLevel(imgFP, chFP, eng.Level(), eng.LastLevelPixelCount()); err != nil {
				return fail(ExitOperationFailed, "recording journal: %v", err)
			}
		}

		if !advance {
			break
		}
		if err := eng.Next(); err != nil {
			break
		}
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, img); err != nil {
		return fail(ExitOperationFailed, "encoding cover image: %v", err)
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = path
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fail(ExitIOFailed, "writing %s: %v", outPath, err)
	}

	return nil
}
