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

package imagecodec_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/steganon/steganon/imagecodec"
	"github.com/steganon/steganon/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func TestPNGCodec_RoundTrip(t *testing.T) {
	codec, err := imagecodec.Get(imagecodec.PNGName)
	require.NoError(t, err)

	wrapped, err := imagecodec.Wrap(sampleImage().(*image.RGBA))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, wrapped))

	decoded, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Width())
	assert.Equal(t, 4, decoded.Height())

	px := decoded.At(2, 1)
	assert.Equal(t, uint8(20), px.R)
	assert.Equal(t, uint8(10), px.G)
	assert.Equal(t, uint8(200), px.B)
}

func TestPNGCodec_RejectsGray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))

	codec, err := imagecodec.Get(imagecodec.PNGName)
	require.NoError(t, err)
	_, err = codec.Decode(&buf)
	assert.ErrorIs(t, err, model.ErrUnsupportedPixelFormat)
}

func TestPNGCodec_RejectsGray16(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray16(image.Rect(0, 0, 4, 4))))

	codec, err := imagecodec.Get(imagecodec.PNGName)
	require.NoError(t, err)
	_, err = codec.Decode(&buf)
	assert.ErrorIs(t, err, model.ErrUnsupportedPixelFormat)
}

func TestRegistry_UnknownCodec(t *testing.T) {
	_, err := imagecodec.Get("does-not-exist")
	assert.Error(t, err)
}

func TestConvertJPEGToPNG(t *testing.T) {
	var jpegBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, sampleImage(), &jpeg.Options{Quality: 90}))

	var pngBuf bytes.Buffer
	require.NoError(t, imagecodec.ConvertJPEGToPNG(&jpegBuf, &pngBuf))

	codec, err := imagecodec.Get(imagecodec.PNGName)
	require.NoError(t, err)
	decoded, err := codec.Decode(&pngBuf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Width())
}
