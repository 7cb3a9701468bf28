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
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Matcher decides which directory entries are candidate files
type Matcher struct {
	Prefix    string
	Extension string
	Exclude   []string
}

// Validate checks the exclude patterns
func (m *Matcher) Validate() error {
	if m.Prefix == "" {
		return errors.Errorf("prefix is required")
	}
	if m.Extension == "" {
		return errors.Errorf("extension is required")
	}
	for _, pattern := range m.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// MatchName reports whether a file name is a candidate
func (m *Matcher) MatchName(name string) bool {
	if !strings.HasPrefix(name, m.Prefix) || !strings.HasSuffix(name, m.Extension) {
		return false
	}
	return !m.excluded(name)
}

// Match reports whether a directory entry is a candidate. Only regular files qualify.
func (m *Matcher) Match(entry fs.DirEntry) bool {
	return entry.Type().IsRegular() && m.MatchName(entry.Name())
}

func (m *Matcher) excluded(name string) bool {
	for _, pattern := range m.Exclude {
		// patterns are checked in Validate
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
