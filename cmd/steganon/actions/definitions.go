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

package actions

import "github.com/urfave/cli/v2"

// StandardSet is the full steganon command surface.
var StandardSet = []*cli.Command{
	HideCommand,
	ExtractCommand,
	KeygenCommand,
	CapacityCommand,
	InspectCommand,
	CorpusCommand,
	ConvertCommand,
}
