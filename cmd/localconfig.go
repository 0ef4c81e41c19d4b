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

package cmd

import (
	"os"
	"os/user"
	"path"
	"path/filepath"
)

var configDirName = ".steganon"

// GetConfigDir returns the per-user config directory, normally
// ~/.steganon, where cmd/stegod's config.yaml and the bolt/sqlite
// journals live by default. SetConfigDirName may override it with an
// absolute path, used as-is instead of joined under the home directory.
func GetConfigDir() string {
	if filepath.IsAbs(configDirName) {
		return configDirName
	}
	currentUser, err := user.Current()
	if err != nil {
		panic(err)
	}
	return path.Join(currentUser.HomeDir, configDirName)
}

// SetConfigDirName overrides the config directory name, for tests and for
// operators running multiple isolated steganon profiles.
func SetConfigDirName(name string) {
	configDirName = name
}

// InstallLocalFile writes data under the config directory, creating any
// relativePath subdirectories needed.
func InstallLocalFile(relativePath []string, fileName string, data []byte) error {
	configDir := GetConfigDir()
	pathElem := []string{configDir}
	if relativePath != nil {
		pathElem = append(pathElem, relativePath...)
	}
	fullPath := path.Join(pathElem...)
	if err := os.MkdirAll(fullPath, 0o700); err != nil {
		return err
	}

	pathElem = append(pathElem, fileName)
	fullFileName := path.Join(pathElem...)

	return os.WriteFile(fullFileName, data, 0o600)
}

// ReadLocalFile reads a file previously written with InstallLocalFile.
func ReadLocalFile(relativePath []string, fileName string) ([]byte, error) {
	configDir := GetConfigDir()
	pathElem := []string{configDir}
	if relativePath != nil {
		pathElem = append(pathElem, relativePath...)
	}
	pathElem = append(pathElem, fileName)
	fullFileName := path.Join(pathElem...)

	return os.ReadFile(fullFileName)
}
