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

import "errors"

// errUnwrappable is returned when Encode receives a model.Image that did
// not come from this package's Decode/Wrap and so can't expose the
// underlying stdlib image.Image.
var errUnwrappable = errors.New("imagecodec: image was not produced by this package's decoder")
