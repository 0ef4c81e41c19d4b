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

// Package sqlite records one row per image processed by a `steganon
// corpus` batch sweep: this is a report across many images in one run, a
// distinct concern from journal/bolt's per-image resumable chain state.
package sqlite

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS corpus_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	chain_hash TEXT NOT NULL,
	level INTEGER NOT NULL,
	operation TEXT NOT NULL,
	bytes INTEGER NOT NULL,
	status TEXT NOT NULL,
	detail TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
`

// Row is one record of an image processed during a corpus sweep.
type Row struct {
	Path        string
	Fingerprint string
	ChainHash   string
	Level       int
	Operation   string // "hide" or "extract"
	Bytes       int
	Status      string // "ok" or "error"
	Detail      string
	CreatedAt   time.Time
}

// Store is a sqlite-backed corpus run ledger.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a corpus ledger at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert records one corpus run row.
func (s *Store) Insert(r Row) error {
	_, err := s.db.Exec(
		`INSERT INTO corpus_runs (path, fingerprint, chain_hash, level, operation, bytes, status, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Path, r.Fingerprint, r.ChainHash, r.Level, r.Operation, r.Bytes, r.Status, r.Detail, r.CreatedAt,
	)
	return err
}

// Report returns every row recorded, most recent first.
func (s *Store) Report() ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT path, fingerprint, chain_hash, level, operation, bytes, status, detail, created_at
		 FROM corpus_runs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Path, &r.Fingerprint, &r.ChainHash, &r.Level, &r.Operation, &r.Bytes, &r.Status, &r.Detail, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
