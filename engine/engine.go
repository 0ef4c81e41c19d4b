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

// Package engine drives the hide/extract algorithm: it
// walks a chain of seed-derived pixel-address streams, writing or reading
// 9-bit byte groups along each level's stream, and carries forward a cumulative
// reserved-pixel set so that no later chain level can collide with an
// earlier one. Revealing level k's payload requires replaying levels
// 1..k-1 first, which is what makes the chain deniable: without an earlier
// seed, the reserved set for a later level can't be reconstructed.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/steganon/steganon/model"
	"github.com/steganon/steganon/model/address"
	"github.com/steganon/steganon/model/codec"
	"github.com/steganon/steganon/model/mutate"
	"github.com/steganon/steganon/model/prng"
	"github.com/steganon/steganon/model/seed"
	"github.com/steganon/steganon/utils/measure"
)

// MarkerPalette is the documented per-level marker palette Visualize
// cycles through, so a reviewer can tell which chain level touched which
// pixel instead of seeing one undifferentiated color. It repeats for
// chains longer than the palette.
var MarkerPalette = []model.RGB{
	{R: 255, G: 0, B: 0},   // level 0: red
	{R: 0, G: 200, B: 0},   // level 1: green
	{R: 40, G: 90, B: 255}, // level 2: blue
	{R: 230, G: 200, B: 0}, // level 3: yellow
	{R: 255, G: 0, B: 255}, // level 4: magenta
	{R: 0, G: 220, B: 220}, // level 5: cyan
}

// MarkerColorForLevel returns the palette color Visualize paints for the
// given zero-based chain level.
func MarkerColorForLevel(level int) model.RGB {
	return MarkerPalette[level%len(MarkerPalette)]
}

// Engine holds the state needed to hide into, or extract from, a chain of
// seed-derived levels over a single cover image.
type Engine struct {
	img               model.Image
	width             int
	height            int
	chain             []seed.Key
	level             int
	reserved          map[address.Coord]struct{}
	touched           map[address.Coord]int // level that touched each pixel, for Visualize
	dir               mutate.DirectionSource
	lastConsumedCount int
}

// New builds an engine bound to img and the derived key chain for seeds.
// useRawSeed selects the raw-seed override described in model/seed.
func New(img model.Image, seeds [][]byte, useRawSeed bool) (*Engine, error) {
	w, h := img.Width(), img.Height()
	chain, err := seed.DeriveChain(seeds, w, h, useRawSeed)
	if err != nil {
		return nil, err
	}
	return &Engine{
		img:      img,
		width:    w,
		height:   h,
		chain:    chain,
		reserved: make(map[address.Coord]struct{}),
		touched:  make(map[address.Coord]int),
		dir:      rand.New(rand.NewSource(1)),
	}, nil
}

// SetDirectionSource overrides the coin flip used for LSB-Matching's +1/-1
// choice. Tests use this for determinism; production callers normally
// leave the default in place.
func (e *Engine) SetDirectionSource(dir mutate.DirectionSource) {
	e.dir = dir
}

// Level returns the current zero-based chain level.
func (e *Engine) Level() int {
	return e.level
}

// Next advances the engine to the next seed in the chain. It must be
// called between a Hide/Extract on one level and the next.
func (e *Engine) Next() error {
	if e.level+1 >= len(e.chain) {
		return model.ErrNoMoreSeeds
	}
	e.level++
	return nil
}

func (e *Engine) stream() *address.Stream {
	key := e.chain[e.level]
	return address.New(prng.NewFromKey(key[:]), e.width, e.height, e.reserved)
}

// ResumeLevel fast-forwards a freshly constructed engine to level, given
// how many pixels each earlier level (0..level-1) consumed in a prior
// process. It replays each earlier level's address stream for its
// recorded pixel count - never its forgotten payload - purely to rebuild
// the cumulative reserved set, then positions the engine at level so the
// caller's next Hide/Extract call lands in the right place. This is how
// journal/bolt's per-level pixel counts let a chain resume across
// separate steganon invocations.
func (e *Engine) ResumeLevel(level int, priorPixelCounts []int) error {
	if level >= len(e.chain) {
		return model.ErrNoMoreSeeds
	}
	if len(priorPixelCounts) != level {
		return fmt.Errorf("engine: need exactly %d prior pixel counts to resume at level %d, got %d", level, level, len(priorPixelCounts))
	}

	e.level = 0
	for l := 0; l < level; l++ {
		s := e.stream()
		for i := 0; i < priorPixelCounts[l]; i++ {
			if _, ok := s.Next(); !ok {
				return model.ErrCapacityExceeded
			}
		}
		e.commit(s)
		e.level++
	}
	return nil
}

// capacityBytes returns the number of whole byte groups (codec.PixelsPerByte
// pixels each) the current level's stream can still supply.
func (e *Engine) capacityBytes() int {
	s := e.stream()
	return s.Remaining() / codec.PixelsPerByte
}

// Capacity returns the number of payload bytes the current level could
// still hide, after accounting for the one-byte end-of-payload marker.
func (e *Engine) Capacity() int {
	n := e.capacityBytes() - 1
	if n < 0 {
		return 0
	}
	return n
}

// Hide writes payload into the current chain level, followed by a single
// marker byte whose sentinel flag is set, then folds every pixel this
// level touched into the cumulative reserved set so later levels can never
// collide with it.
func (e *Engine) Hide(payload []byte) error {
	defer measure.ExecTime("engine.Hide")()

	needed := len(payload) + 1
	if needed > e.capacityBytes() {
		return model.ErrCapacityExceeded
	}

	s := e.stream()
	for _, b := range payload {
		if err := e.writeByte(s, b, false); err != nil {
			return err
		}
	}
	if err := e.writeByte(s, 0, true); err != nil {
		return err
	}

	e.commit(s)
	return nil
}

// writeByte draws one pixel per codec.PixelsPerByte group (three pixels
// total) and writes that pixel's three bits across its R, G, B channels.
func (e *Engine) writeByte(s *address.Stream, b byte, sentinel bool) error {
	bits := codec.EncodeByte(b, sentinel)
	for offset := 0; offset < codec.PixelsPerByte; offset++ {
		c, ok := s.Next()
		if !ok {
			return model.ErrCapacityExceeded
		}
		px := e.img.At(c.X, c.Y)
		px.R = mutate.WriteBit(px.R, bits[offset*3+0], e.dir)
		px.G = mutate.WriteBit(px.G, bits[offset*3+1], e.dir)
		px.B = mutate.WriteBit(px.B, bits[offset*3+2], e.dir)
		e.img.Set(c.X, c.Y, px)
	}
	return nil
}

// Extract reads the current chain level's payload, stopping at the first
// byte whose sentinel flag is set. It returns model.ErrTruncated if the
// level's capacity runs out before a sentinel is found.
func (e *Engine) Extract() ([]byte, error) {
	defer measure.ExecTime("engine.Extract")()

	s := e.stream()
	var out []byte

	for {
		var bits [codec.BitsPerByte]bool
		for offset := 0; offset < codec.PixelsPerByte; offset++ {
			c, ok := s.Next()
			if !ok {
				return nil, model.ErrTruncated
			}
			px := e.img.At(c.X, c.Y)
			bits[offset*3+0] = mutate.ReadBit(px.R)
			bits[offset*3+1] = mutate.ReadBit(px.G)
			bits[offset*3+2] = mutate.ReadBit(px.B)
		}

		b, sentinel := codec.DecodeByte(bits)
		if sentinel {
			e.commit(s)
			return out, nil
		}
		out = append(out, b)
	}
}

// commit folds a level's consumed coordinates into the cumulative reserved
// set once that level's Hide or Extract has completed.
func (e *Engine) commit(s *address.Stream) {
	e.lastConsumedCount = len(s.Consumed())
	for c := range s.Consumed() {
		e.reserved[c] = struct{}{}
		e.touched[c] = e.level
	}
}

// LastLevelPixelCount returns how many pixels the most recently completed
// Hide/Extract/ResumeLevel call consumed at its level, for recording in
// journal/bolt.
func (e *Engine) LastLevelPixelCount() int {
	return e.lastConsumedCount
}

// Visualize paints into out every pixel touched by any processed level so
// far, in that level's MarkerPalette color, for test-mode auditing of which
// pixels each chain level actually used. Untouched pixels of out are left
// as they are.
func (e *Engine) Visualize(out model.Image) {
	for c, level := range e.touched {
		out.Set(c.X, c.Y, MarkerColorForLevel(level))
	}
}
