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

import "github.com/urfave/cli/v2"

// Version is reported by `steganon --version`.
const Version = "0.1.0"

// BasicFlags apply to every subcommand.
var BasicFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug logging",
	},
}

// Shared flag definitions across hide/extract/inspect/capacity.
var (
	SeedFlag = &cli.StringSliceFlag{
		Name:     "seed",
		Aliases:  []string{"s"},
		Usage:    "seed for one chain level; repeat for a multi-seed chain (literal, @file, or vault:<path>#<field>)",
		Required: true,
	}
	RawSeedFlag = &cli.BoolFlag{
		Name:  "raw-seed",
		Usage: "use each seed as a raw PRNG key, independent of cover image geometry",
	}
	VaultAddrFlag = &cli.StringFlag{
		Name:  "vault-addr",
		Usage: "Vault server address, for vault: seed references",
	}
	LevelFlag = &cli.IntFlag{
		Name:  "level",
		Usage: "zero-based chain level to operate on",
		Value: 0,
	}
	EncryptKeyFlag = &cli.StringFlag{
		Name:  "encrypt-key-file",
		Usage: "AES-256 key file; when set, the payload is encrypted before hiding / decrypted after extraction",
	}
	EncryptPassphraseFlag = &cli.BoolFlag{
		Name:  "encrypt-passphrase",
		Usage: "prompt for a passphrase (masked) and derive the AES-256 key from it, instead of --encrypt-key-file",
	}
)
