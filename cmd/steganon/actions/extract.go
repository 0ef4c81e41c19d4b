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

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/engine"
	"github.com/steganon/steganon/internal/cryptutil"
	"github.com/steganon/steganon/journal/bolt"
)

// ExtractCommand recovers a payload hidden under a seed chain.
var ExtractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "recover a payload hidden in a cover image under a seed chain",
	ArgsUsage: "<cover-image>",
	Flags: []cli.Flag{
		SeedFlag,
		RawSeedFlag,
		VaultAddrFlag,
		EncryptKeyFlag,
		EncryptPassphraseFlag,
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "payload output file (default: stdout)"},
		&cli.StringFlag{Name: "journal", Usage: "bolt journal path, for resuming a chain started in a prior invocation"},
		&cli.IntFlag{Name: "resume-from", Usage: "level to resume at, using --journal's recorded pixel counts for levels before it, or without --journal by extracting those levels first", Value: 0},
	},
	Action: extractAction,
}

func extractAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fail(ExitInvalidParameter, "a cover image path is required")
	}

	seeds, err := resolveSeeds(c.String("vault-addr"), c.StringSlice("seed"))
	if err != nil {
		return err
	}

	_, img, raw, err := readImage(path)
	if err != nil {
		return err
	}

	eng, err := engine.New(img, seeds, c.Bool("raw-seed"))
	if err != nil {
		return fail(ExitInvalidParameter, "building engine: %v", err)
	}

	resumeFrom := c.Int("resume-from")
	jp := c.String("journal")
	if resumeFrom > 0 && jp == "" {
		// No journal: replay the prior levels live within this process by
		// extracting (and discarding) each one, which commits the same
		// reserved set ResumeLevel would rebuild from recorded pixel
		// counts. Only possible when the whole chain fits in one run.
		for l := 0; l < resumeFrom; l++ {
			if _, err := eng.Extract(); err != nil {
				return fail(ExitOperationFailed, "replaying level %d: %v", l, err)
			}
			if err := eng.Next(); err != nil {
				return fail(ExitOperationFailed, "advancing past level %d: %v", l, err)
			}
		}
	} else if resumeFrom > 0 {
		journal, err := bolt.Open(jp)
		if err != nil {
			return fail(ExitIOFailed, "opening journal: %v", err)
		}
		defer journal.Close()

		imgFP, err := imageFingerprint(raw)
		if err != nil {
			return fail(ExitOperationFailed, "fingerprinting cover: %v", err)
		}
		chFP, err := chainHash(seeds)
		if err != nil {
			return fail(ExitOperationFailed, "hashing chain: %v", err)
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

	payload, err := eng.Extract()
	if err != nil {
		return fail(ExitOperationFailed, "extracting payload at level %d: %v", eng.Level(), err)
	}
	log.Debug().Int("level", eng.Level()).Int("bytes", len(payload)).Msg("extracted payload")

	if keyFile, byPassphrase := c.String("encrypt-key-file"), c.Bool("encrypt-passphrase"); keyFile != "" || byPassphrase {
		var key []byte
		if byPassphrase {
			key, err = passphraseKey("Decryption passphrase: ")
			if err != nil {
				return err
			}
		} else {
			key, err = os.ReadFile(keyFile)
			if err != nil {
				return fail(ExitIOFailed, "reading encryption key: %v", err)
			}
		}
		payload, err = cryptutil.Decrypt(key, payload)
		if err != nil {
			return fail(ExitOperationFailed, "decrypting payload: %v", err)
		}
	}

	if err := writePayload(c.String("out"), payload); err != nil {
		return fail(ExitIOFailed, "writing payload: %v", err)
	}
	return nil
}
