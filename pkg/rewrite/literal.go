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

package rewrite

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const LiteralRuleName = "literal"

// LiteralReplacement replaces every occurrence of Old with New
type LiteralReplacement struct {
	Old string
	New string
}

// NewLiteralReplacement creates a LiteralReplacement
func NewLiteralReplacement(from, to string) *LiteralReplacement {
	return &LiteralReplacement{Old: from, New: to}
}

func (r *LiteralReplacement) Name() string {
	return LiteralRuleName
}

func (r *LiteralReplacement) Validate() error {
	if r.Old == "" {
		return errors.Errorf("%s: old text is required", r.Name())
	}
	return nil
}

func (r *LiteralReplacement) Apply(ctx context.Context, content string) (string, int) {
	// Skip empty rules
	if r.Old == "" {
		return content, 0
	}

	count := strings.Count(content, r.Old)
	if count == 0 || r.Old == r.New {
		return content, 0
	}
	return strings.ReplaceAll(content, r.Old, r.New), count
}
