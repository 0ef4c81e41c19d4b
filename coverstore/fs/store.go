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

// Package fs is a coverstore.Store backed by the local filesystem, content
// addressed by each cover image's multihash fingerprint.
package fs

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/steganon/steganon/coverstore"
	"github.com/steganon/steganon/utils/fingerprint"
)

const StoreType = "fs"

func init() {
	coverstore.Register(StoreType, func(cfg *coverstore.Config) (coverstore.Store, error) {
		root := cfg.Params["root"]
		if root == "" {
			return nil, errors.New("fs coverstore: \"root\" param is required")
		}
		return New(root)
	})
}

// Store is a content-addressed directory of cover image blobs.
type Store struct {
	root string
}

// New creates (if needed) and returns a Store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: dir}, nil
}

func (s *Store) pathFor(id string) string {
	return filepath.Join(s.root, hex.EncodeToString([]byte(id)))
}

func (s *Store) Put(blob io.Reader) (string, error) {
	data, err := io.ReadAll(blob)
	if err != nil {
		return "", err
	}
	id, err := fingerprint.GetMultihashFingerprint(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	key := string(id)

	if err := os.WriteFile(s.pathFor(key), data, 0o644); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Store) Get(id string) (io.ReadCloser, error) {
	f, err := os.Open(s.pathFor(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, coverstore.ErrNotFound
	}
	return f, err
}

func (s *Store) Has(id string) (bool, error) {
	_, err := os.Stat(s.pathFor(id))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Close() error { return nil }
