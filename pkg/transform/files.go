// Copyright 2025 walteh LLC
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

package transform

import (
	"os"

	"gitlab.com/tozd/go/errors"
)

const (
	tempSuffix   = ".tmp"
	backupSuffix = ".bak"
)

// writeFileAtomic replaces path with content in a single rename
func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tempPath := path + tempSuffix

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// WriteFile is subject to umask
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// backupFile writes original next to path and returns the backup path
func backupFile(path string, original []byte, mode os.FileMode) (string, error) {
	backupPath := path + backupSuffix
	if err := writeFileAtomic(backupPath, original, mode); err != nil {
		return "", errors.Errorf("creating backup: %w", err)
	}
	return backupPath, nil
}
