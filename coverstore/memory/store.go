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

// Package memory is an in-memory coverstore.Store, for tests and
// short-lived daemon jobs that shouldn't touch disk.
package memory

import (
	"bytes"
	"io"
	"sync"

	"github.com/steganon/steganon/coverstore"
	"github.com/steganon/steganon/utils/fingerprint"
)

const StoreType = "memory"

func init() {
	coverstore.Register(StoreType, func(_ *coverstore.Config) (coverstore.Store, error) {
		return New(), nil
	})
}

// Store is a mutex-guarded in-memory blob map.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
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

	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()

	return key, nil
}

func (s *Store) Get(id string) (io.ReadCloser, error) {
	s.mu.RLock()
	data, ok := s.blobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, coverstore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Store) Has(id string) (bool, error) {
	s.mu.RLock()
	_, ok := s.blobs[id]
	s.mu.RUnlock()
	return ok, nil
}

func (s *Store) Close() error { return nil }
