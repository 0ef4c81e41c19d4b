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
	"io"

	"github.com/steganon/steganon/model"
	"golang.org/x/image/bmp"
)

const BMPName = "bmp"

func init() {
	Register(BMPName, bmpCodec{})
}

type bmpCodec struct{}

func (bmpCodec) Name() string { return BMPName }

func (bmpCodec) Decode(r io.Reader) (model.Image, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return Wrap(src)
}

func (bmpCodec) Encode(w io.Writer, img model.Image) error {
	raster, ok := img.(interface{ Unwrap() image.Image })
	if !ok {
		return errUnwrappable
	}
	return bmp.Encode(w, raster.Unwrap())
}
