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
	"image/jpeg"
	"image/png"
	"io"
)

// ConvertJPEGToPNG decodes a lossy JPEG cover candidate and re-encodes it
// losslessly as PNG. LSB-matching can't survive lossy recompression, so
// any candidate cover should be converted before hide ever touches it.
func ConvertJPEGToPNG(r io.Reader, w io.Writer) error {
	src, err := jpeg.Decode(r)
	if err != nil {
		return err
	}
	return png.Encode(w, src)
}
