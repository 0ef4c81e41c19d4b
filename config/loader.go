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

// Package config loads steganon's optional daemon/default-flag settings
// and resolves CLI seed arguments that may be literal, file, or
// Vault-backed references.
package config

import (
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/steganon/steganon/utils"
)

// Daemon holds cmd/stegod's configurable settings.
type Daemon struct {
	ListenAddr   string `koanf:"listen_addr"`
	HTTPS        bool   `koanf:"https"`
	JWTSecret    string `koanf:"jwt_secret"`
	SweepMinutes int    `koanf:"sweep_minutes"`
}

// Config is the top-level configuration file shape, loaded from
// ~/.steganon/config.yaml by default.
type Config struct {
	CoverStoreType string            `koanf:"coverstore_type"`
	CoverStoreRoot string            `koanf:"coverstore_root"`
	JournalPath    string            `koanf:"journal_path"`
	CorpusDBPath   string            `koanf:"corpus_db_path"`
	VaultAddr      string            `koanf:"vault_addr"`
	Daemon         Daemon            `koanf:"daemon"`
	Extra          map[string]string `koanf:"extra"`
}

// Load reads and parses a YAML config file at path. A missing file is not
// an error: Load returns a zero-value Config so callers can layer
// command-line flags over sensible defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	path = utils.AbsPathify(path)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
