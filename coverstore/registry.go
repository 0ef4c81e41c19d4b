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

package coverstore

import "fmt"

// Config describes a store to instantiate: its registered Type, plus
// Type-specific Params (e.g. fs's "root" directory).
type Config struct {
	Type   string
	Params map[string]string
}

// Constructor builds a Store from Config.
type Constructor func(cfg *Config) (Store, error)

var constructors = make(map[string]Constructor)

// Register adds a store constructor under storeType, panicking on a
// duplicate registration the same way vaults.Register does.
func Register(storeType string, ctor Constructor) {
	if _, ok := constructors[storeType]; ok {
		panic("coverstore: store constructor already registered for type: " + storeType)
	}
	constructors[storeType] = ctor
}

// Create instantiates the store registered under cfg.Type.
func Create(cfg *Config) (Store, error) {
	ctor, ok := constructors[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("coverstore: store type %q not known or loaded", cfg.Type)
	}
	return ctor(cfg)
}
