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

// Package address implements a collision-free pixel coordinate stream:
// given a seeded PRNG, it draws (x,y) pairs and rejects any coordinate
// already consumed by this stream or reserved by an earlier chain level,
// without ever restarting the PRNG.
package address

import "github.com/steganon/steganon/model/prng"

// Coord is a pixel coordinate.
type Coord struct {
	X, Y int
}

// Stream draws distinct, unreserved pixel coordinates from a seeded PRNG.
type Stream struct {
	rng    *prng.MT19937
	width  int
	height int
	skip   map[Coord]struct{} // reserved by earlier chain levels
	seen   map[Coord]struct{} // already emitted by this stream
}

// New creates a stream over a width x height grid, seeded with rng, that
// will never emit a coordinate in skip. skip is read-only to the stream and
// may be nil.
func New(rng *prng.MT19937, width, height int, skip map[Coord]struct{}) *Stream {
	if skip == nil {
		skip = make(map[Coord]struct{})
	}
	return &Stream{
		rng:    rng,
		width:  width,
		height: height,
		skip:   skip,
		seen:   make(map[Coord]struct{}),
	}
}

// Remaining is the number of coordinates this stream could still emit
// before exhaustion: the pool size minus everything already reserved or
// drawn. Next checks it before drawing, so an exhausted stream never enters
// the rejection loop.
func (s *Stream) Remaining() int {
	return s.width*s.height - len(s.skip) - len(s.seen)
}

// Next draws the next pixel coordinate not in the skip set and not
// previously emitted by this stream. ok is false when the stream is
// exhausted (Remaining is zero), in which case c is the zero Coord; callers
// must check ok before using c.
func (s *Stream) Next() (c Coord, ok bool) {
	if s.Remaining() <= 0 {
		return Coord{}, false
	}

	for {
		x := s.rng.UniformInt(0, s.width-1)
		y := s.rng.UniformInt(0, s.height-1)
		cand := Coord{X: x, Y: y}

		if _, reserved := s.skip[cand]; reserved {
			continue
		}
		if _, drawn := s.seen[cand]; drawn {
			continue
		}

		s.seen[cand] = struct{}{}
		return cand, true
	}
}

// Consumed returns the set of coordinates this stream has emitted so far.
// The hide/extract driver merges this into the cumulative reserved set when
// a chain level completes.
func (s *Stream) Consumed() map[Coord]struct{} {
	return s.seen
}
