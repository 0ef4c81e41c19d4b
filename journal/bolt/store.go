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

// Package bolt records, per (cover image fingerprint, seed-chain prefix
// hash, level), how many pixels that chain level consumed. A CLI
// invocation is a fresh process, so advancing a chain across separate
// `steganon hide` runs needs this to reconstruct the cumulative reserved
// set deterministically: replay the address stream for the recorded pixel
// count, not the forgotten payload.
package bolt

import (
	"fmt"
	"go.etcd.io/bbolt"

	"github.com/steganon/steganon/utils"
)

const progressBucket = "progress"

// Store is a bbolt-backed chain progress journal for a single corpus.
type Store struct {
	bc *utils.BoltClient
}

// Open opens (creating if necessary) a journal at path.
func Open(path string) (*Store, error) {
	bc, err := utils.NewBoltClient(path, func(bc *utils.BoltClient) error {
		return bc.DB.Update(func(tx *bbolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists([]byte(progressBucket))
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return &Store{bc: bc}, nil
}

func (s *Store) Close() error {
	return s.bc.Close()
}

func key(imageFingerprint, chainHash string, level int) string {
	return fmt.Sprintf("%s:%s:%d", imageFingerprint, chainHash, level)
}

// RecordLevel persists how many pixels `level` consumed for the given
// image/chain.
func (s *Store) RecordLevel(imageFingerprint, chainHash string, level, pixelsConsumed int) error {
	return s.bc.UpdateInt64(progressBucket, key(imageFingerprint, chainHash, level), int64(pixelsConsumed))
}

// LevelConsumed returns the pixel count recorded for `level`, and whether
// any record exists at all.
func (s *Store) LevelConsumed(imageFingerprint, chainHash string, level int) (pixelsConsumed int, found bool, err error) {
	val, err := s.bc.FetchBytes(progressBucket, key(imageFingerprint, chainHash, level))
	if err != nil {
		return 0, false, err
	}
	if val == nil {
		return 0, false, nil
	}
	n, err := s.bc.FetchInt(progressBucket, key(imageFingerprint, chainHash, level))
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
