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

package engine_test

import (
	"testing"

	"github.com/steganon/steganon/engine"
	"github.com/steganon/steganon/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memImage is a minimal in-memory model.Image for tests.
type memImage struct {
	w, h int
	px   []model.RGB
}

func newMemImage(w, h int) *memImage {
	px := make([]model.RGB, w*h)
	for i := range px {
		px[i] = model.RGB{R: 128, G: 128, B: 128}
	}
	return &memImage{w: w, h: h, px: px}
}

func (m *memImage) Width() int  { return m.w }
func (m *memImage) Height() int { return m.h }
func (m *memImage) At(x, y int) model.RGB {
	return m.px[y*m.w+x]
}
func (m *memImage) Set(x, y int, c model.RGB) {
	m.px[y*m.w+x] = c
}

func seeds(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestEngine_RoundTripSingleSeed(t *testing.T) {
	img := newMemImage(64, 64)
	payload := []byte("hello, steganon")

	hider, err := engine.New(img, seeds("seed-one"), false)
	require.NoError(t, err)
	require.NoError(t, hider.Hide(payload))

	extractor, err := engine.New(img, seeds("seed-one"), false)
	require.NoError(t, err)
	got, err := extractor.Extract()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestEngine_RoundTripChain(t *testing.T) {
	img := newMemImage(64, 64)
	chain := seeds("alpha", "bravo", "charlie")
	payloads := [][]byte{
		[]byte("first layer"),
		[]byte("second layer, longer message"),
		[]byte("third"),
	}

	hider, err := engine.New(img, chain, false)
	require.NoError(t, err)
	for i, p := range payloads {
		require.NoError(t, hider.Hide(p))
		if i < len(payloads)-1 {
			require.NoError(t, hider.Next())
		}
	}

	extractor, err := engine.New(img, chain, false)
	require.NoError(t, err)
	for i, want := range payloads {
		got, err := extractor.Extract()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if i < len(payloads)-1 {
			require.NoError(t, extractor.Next())
		}
	}
}

func TestEngine_WrongSeedDoesNotRecoverPayload(t *testing.T) {
	img := newMemImage(64, 64)
	payload := []byte("secret message")

	hider, err := engine.New(img, seeds("correct-seed"), false)
	require.NoError(t, err)
	require.NoError(t, hider.Hide(payload))

	wrong, err := engine.New(img, seeds("incorrect-seed"), false)
	require.NoError(t, err)
	got, err := wrong.Extract()
	if err == nil {
		assert.NotEqual(t, payload, got)
	}
}

func TestEngine_LevelsDoNotOverlap(t *testing.T) {
	img := newMemImage(32, 32)
	chain := seeds("x1", "x2")

	h, err := engine.New(img, chain, false)
	require.NoError(t, err)
	require.NoError(t, h.Hide([]byte("a")))
	require.NoError(t, h.Next())
	require.NoError(t, h.Hide([]byte("b")))

	e, err := engine.New(img, chain, false)
	require.NoError(t, err)
	a, err := e.Extract()
	require.NoError(t, err)
	require.NoError(t, e.Next())
	b, err := e.Extract()
	require.NoError(t, err)

	assert.Equal(t, []byte("a"), a)
	assert.Equal(t, []byte("b"), b)
}

func TestEngine_CapacityExceeded(t *testing.T) {
	img := newMemImage(2, 2) // 4 pixels -> 1 byte capacity, minus marker byte -> 0
	e, err := engine.New(img, seeds("tiny"), false)
	require.NoError(t, err)
	err = e.Hide([]byte("too long for this cover"))
	assert.ErrorIs(t, err, model.ErrCapacityExceeded)
}

func TestEngine_CapacityReportsAvailableBytes(t *testing.T) {
	img := newMemImage(8, 8) // 64 pixels / 3 per byte = 21 bytes, minus 1 marker = 20
	e, err := engine.New(img, seeds("cap"), false)
	require.NoError(t, err)
	assert.Equal(t, 20, e.Capacity())
}

func TestEngine_RawSeedChainIndependentOfGeometry(t *testing.T) {
	imgA := newMemImage(16, 16)
	imgB := newMemImage(32, 16)
	payload := []byte("raw seed payload")

	hA, err := engine.New(imgA, seeds("rawkey"), true)
	require.NoError(t, err)
	require.NoError(t, hA.Hide(payload))

	hB, err := engine.New(imgB, seeds("rawkey"), true)
	require.NoError(t, err)
	require.NoError(t, hB.Hide(payload))

	eA, err := engine.New(imgA, seeds("rawkey"), true)
	require.NoError(t, err)
	gotA, err := eA.Extract()
	require.NoError(t, err)
	assert.Equal(t, payload, gotA)
}

func TestEngine_NextPastEndOfChainErrors(t *testing.T) {
	img := newMemImage(16, 16)
	e, err := engine.New(img, seeds("only-one"), false)
	require.NoError(t, err)
	assert.ErrorIs(t, e.Next(), model.ErrNoMoreSeeds)
}

func TestEngine_ResumeLevelRebuildsReservedSet(t *testing.T) {
	img := newMemImage(32, 32)
	chain := seeds("r1", "r2")

	h, err := engine.New(img, chain, false)
	require.NoError(t, err)
	require.NoError(t, h.Hide([]byte("level zero payload")))
	level0Pixels := h.LastLevelPixelCount()
	require.NoError(t, h.Next())
	require.NoError(t, h.Hide([]byte("level one payload")))

	resumed, err := engine.New(img, chain, false)
	require.NoError(t, err)
	require.NoError(t, resumed.ResumeLevel(1, []int{level0Pixels}))
	assert.Equal(t, 1, resumed.Level())

	got, err := resumed.Extract()
	require.NoError(t, err)
	assert.Equal(t, []byte("level one payload"), got)
}

func TestEngine_VisualizeMarksOnlyTouchedPixels(t *testing.T) {
	img := newMemImage(8, 8)
	h, err := engine.New(img, seeds("viz"), false)
	require.NoError(t, err)
	require.NoError(t, h.Hide([]byte("hi")))

	out := newMemImage(8, 8)
	h.Visualize(out)

	level0Color := engine.MarkerColorForLevel(0)
	touched := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if out.At(x, y) == level0Color {
				touched++
			}
		}
	}
	assert.Greater(t, touched, 0)
	assert.Less(t, touched, 64)
}

func TestEngine_VisualizeUsesDistinctColorsPerLevel(t *testing.T) {
	img := newMemImage(32, 32)
	h, err := engine.New(img, seeds("viz-a", "viz-b"), false)
	require.NoError(t, err)
	require.NoError(t, h.Hide([]byte("level zero")))
	require.NoError(t, h.Next())
	require.NoError(t, h.Hide([]byte("level one")))

	out := newMemImage(32, 32)
	h.Visualize(out)

	level0Color := engine.MarkerColorForLevel(0)
	level1Color := engine.MarkerColorForLevel(1)
	assert.NotEqual(t, level0Color, level1Color)

	var sawLevel0, sawLevel1 bool
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			switch out.At(x, y) {
			case level0Color:
				sawLevel0 = true
			case level1Color:
				sawLevel1 = true
			}
		}
	}
	assert.True(t, sawLevel0, "expected level 0's marker color to appear")
	assert.True(t, sawLevel1, "expected level 1's marker color to appear")
}
