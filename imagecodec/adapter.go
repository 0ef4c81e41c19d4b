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

// Package imagecodec adapts the standard library's and golang.org/x/image's
// lossless image codecs to model.Image, and a lossy-to-lossless convert
// helper, keeping the cover image's on-disk codec an external concern the
// core engine never touches directly.
package imagecodec

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/steganon/steganon/model"
)

// rasterImage adapts an 8-bit RGB(A) draw.Image backing (RGBA or NRGBA) to
// model.Image.
type rasterImage struct {
	img draw.Image
}

// Wrap adapts src for use by the engine. Any color model with 8-bit
// channels and fewer than three colour channels, or any channel width
// other than 8 bits (Gray, Gray16, RGBA64, NRGBA64, Alpha, Alpha16, CMYK,
// Paletted, ...), is rejected with model.ErrUnsupportedPixelFormat rather
// than silently truncated or coerced. A source that isn't already one of
// the two accepted backings but whose color model does qualify (e.g.
// YCbCr from a TIFF) is copied into a fresh RGBA backing.
func Wrap(src image.Image) (model.Image, error) {
	switch di := src.(type) {
	case *image.RGBA:
		return &rasterImage{img: di}, nil
	case *image.NRGBA:
		return &rasterImage{img: di}, nil
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16,
		*image.RGBA64, *image.NRGBA64, *image.CMYK, *image.Paletted:
		return nil, model.ErrUnsupportedPixelFormat
	default:
		b := src.Bounds()
		dst := image.NewRGBA(b)
		draw.Draw(dst, b, src, b.Min, draw.Src)
		return &rasterImage{img: dst}, nil
	}
}

func (r *rasterImage) Width() int  { return r.img.Bounds().Dx() }
func (r *rasterImage) Height() int { return r.img.Bounds().Dy() }

func (r *rasterImage) At(x, y int) model.RGB {
	b := r.img.Bounds()
	cr, cg, cb, _ := r.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return model.RGB{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)}
}

func (r *rasterImage) Set(x, y int, c model.RGB) {
	b := r.img.Bounds()
	r.img.Set(b.Min.X+x, b.Min.Y+y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
}

// Unwrap returns the underlying stdlib image, for handing to an Encode
// call.
func (r *rasterImage) Unwrap() image.Image {
	return r.img
}

// NewRGBA allocates a blank model.Image of the given size, for tests and
// for Visualize output images. A freshly allocated *image.RGBA always
// satisfies Wrap's format contract, so this never fails.
func NewRGBA(width, height int) model.Image {
	return &rasterImage{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}
