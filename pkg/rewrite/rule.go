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
)

// Rule is a pure text transformation applied to a file's content
type Rule interface {
	// Name identifies the rule in results and logs
	Name() string

	// Apply returns the rewritten content and the number of edits made
	Apply(ctx context.Context, content string) (string, int)

	// Validate checks that the rule is usable
	Validate() error
}

// RuleCount is the number of edits a single rule made
type RuleCount struct {
	Rule  string
	Edits int
}

// Result contains the outcome of running every rule against one input
type Result struct {
	// WasModified indicates if any rule changed the content
	WasModified bool

	// EditCount is the total number of edits across all rules
	EditCount int

	// Rules holds per-rule edit counts in application order
	Rules []RuleCount

	// OriginalContent is the content before rewriting
	OriginalContent []byte

	// ModifiedContent is the content after rewriting
	ModifiedContent []byte
}

// Edits returns the edits made by every rule with the given name
func (r *Result) Edits(rule string) int {
	total := 0
	for _, rc := range r.Rules {
		if rc.Rule == rule {
			total += rc.Edits
		}
	}
	return total
}
