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

package imagecodec

import (
	"fmt"
	"io"

	"github.com/steganon/steganon/model"
)

// Codec decodes and encodes one lossless image format.
type Codec interface {
	// Name identifies the codec, e.g. "png".
	Name() string
	Decode(r io.Reader) (model.Image, error)
	Encode(w io.Writer, img model.Image) error
}

var registry = make(map[string]Codec)

// Register adds a codec under name. It panics on a duplicate name, the
// same as vaults.Register does for a duplicate vault type - a programmer
// error caught at init time, not a runtime condition.
func Register(name string, c Codec) {
	if _, ok := registry[name]; ok {
		panic("imagecodec: codec already registered for name: " + name)
	}
	registry[name] = c
}

// Get looks up a registered codec by name.
func Get(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("imagecodec: codec %q not known or loaded", name)
	}
	return c, nil
}

// Names returns every registered codec name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
