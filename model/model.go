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

// Package model holds the data shared by every layer of the steganographic
// core: the pixel-grid abstraction the engine is built against, and the
// error kinds it can surface.
package model

// RGB is one pixel's three colour channels, each in [0,255].
type RGB struct {
	R, G, B uint8
}

// Image is the capability set the core needs from a pixel grid. A real
// decoded image and an in-memory test fixture both satisfy it; the core
// never depends on a concrete image library.
type Image interface {
	Width() int
	Height() int
	At(x, y int) RGB
	Set(x, y int, c RGB)
}
