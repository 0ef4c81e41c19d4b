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
	"image"
	"image/png"
	"io"

	"github.com/steganon/steganon/model"
)

const PNGName = "png"

func init() {
	Register(PNGName, pngCodec{})
}

type pngCodec struct{}

func (pngCodec) Name() string { return PNGName }

func (pngCodec) Decode(r io.Reader) (model.Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return Wrap(src)
}

func (pngCodec) Encode(w io.Writer, img model.Image) error {
	raster, ok := img.(interface{ Unwrap() image.Image })
	if !ok {
		return errUnwrappable
	}
	return png.Encode(w, raster.Unwrap())
}
