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

// Package coverstore holds cover images at rest, content-addressed by
// their multihash fingerprint, so the same cover submitted twice resolves
// to the same ID.
package coverstore

import (
	"errors"
	"io"
)

// ErrNotFound is returned when a Store has no blob for the requested ID.
var ErrNotFound = errors.New("coverstore: blob not found")

// Store is a content-addressed blob store for cover images.
type Store interface {
	io.Closer

	// Put stores blob and returns its content-addressed ID.
	Put(blob io.Reader) (id string, err error)

	// Get retrieves the blob for id.
	Get(id string) (io.ReadCloser, error)

	// Has reports whether id is present, without reading its contents.
	Has(id string) (bool, error)
}
