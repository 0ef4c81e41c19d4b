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

// Package actions implements cmd/steganon's subcommands.
package actions

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/term"

	"github.com/steganon/steganon/config"
	"github.com/steganon/steganon/imagecodec"
	"github.com/steganon/steganon/internal/cryptutil"
	"github.com/steganon/steganon/model"
)

// Exit codes for the steganon CLI.
const (
	ExitInvalidParameter = 1
	ExitOperationFailed  = 2
	ExitIOFailed         = 3
)

func fail(code int, format string, args ...any) error {
	return cli.Exit(fmt.Sprintf(format, args...), code)
}

// resolveSeeds turns the CLI's repeated --seed flags into seed byte chains,
// applying config.SeedResolver so "@file" and "vault:" references work.
func resolveSeeds(vaultAddr string, seedArgs []string) ([][]byte, error) {
	if len(seedArgs) == 0 {
		return nil, fail(ExitInvalidParameter, "at least one --seed is required")
	}
	resolver, err := config.NewSeedResolver(vaultAddr)
	if err != nil {
		return nil, fail(ExitOperationFailed, "building seed resolver: %v", err)
	}
	seeds, err := resolver.ResolveAll(seedArgs)
	if err != nil {
		return nil, fail(ExitInvalidParameter, "resolving seeds: %v", err)
	}
	return seeds, nil
}

// codecForPath returns the registered imagecodec.Codec matching path's
// extension.
func codecForPath(path string) (imagecodec.Codec, error) {
	ext := extNoDot(path)
	c, err := imagecodec.Get(ext)
	if err != nil {
		return nil, fail(ExitInvalidParameter, "unsupported cover image type %q: %v", ext, err)
	}
	return c, nil
}

func extNoDot(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
		if path[i] == '/' {
			break
		}
	}
	return path
}

// readPayload reads the hide payload from --in, or stdin if --in is empty
// or "-".
func readPayload(in string) ([]byte, error) {
	if in == "" || in == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(in)
}

// writePayload writes the extracted payload to --out, or stdout if --out
// is empty or "-".
func writePayload(out string, data []byte) error {
	if out == "" || out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

// scryptSalt is a fixed, published salt for deriving an AES-256 key from a
// passphrase via --encrypt-passphrase. It isn't a secret: scrypt's cost
// parameters are what make brute-forcing the passphrase expensive, not a
// hidden salt.
var scryptSalt = []byte("steganon/v1 passphrase key derivation salt")

// passphraseKey derives an AES-256 key from a passphrase read without echo
// from the terminal, using scrypt with interactive-strength cost
// parameters.
func passphraseKey(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fail(ExitIOFailed, "reading passphrase: %v", err)
	}
	key, err := scrypt.Key(raw, scryptSalt, 1<<15, 8, 1, cryptutil.KeySize)
	if err != nil {
		return nil, fail(ExitOperationFailed, "deriving key from passphrase: %v", err)
	}
	return key, nil
}

func readImage(path string) (imagecodec.Codec, model.Image, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fail(ExitIOFailed, "reading %s: %v", path, err)
	}
	c, err := codecForPath(path)
	if err != nil {
		return nil, nil, nil, err
	}
	img, err := c.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, nil, fail(ExitOperationFailed, "decoding %s: %v", path, err)
	}
	return c, img, raw, nil
}
