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
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Rewriter applies an ordered list of rules to file content
type Rewriter struct {
	rules []Rule
}

// NewRewriter creates a Rewriter that applies rules in the given order
func NewRewriter(rules ...Rule) *Rewriter {
	return &Rewriter{rules: rules}
}

// Options describes the standard prop injection pipeline
type Options struct {
	Prefix               string
	Param                string
	Attr                 string
	AllowDuplicateParams bool
	Literals             []LiteralReplacement
}

// NewInjector builds the standard pipeline: parameter injection, then
// attribute injection, then any literal replacements.
func NewInjector(opts Options) (*Rewriter, error) {
	attr := opts.Attr
	if attr == "" {
		attr = opts.Param
	}

	rules := []Rule{
		NewParamInjection(opts.Prefix, opts.Param, opts.AllowDuplicateParams),
		NewAttrInjection(attr, opts.Param),
	}
	for _, l := range opts.Literals {
		rules = append(rules, NewLiteralReplacement(l.Old, l.New))
	}

	rw := NewRewriter(rules...)
	if err := rw.Validate(); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return rw, nil
}

// Rules returns the rules in application order
func (rw *Rewriter) Rules() []Rule {
	return rw.rules
}

// Validate checks every rule
func (rw *Rewriter) Validate() error {
	for i, rule := range rw.rules {
		if err := rule.Validate(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// Rewrite reads all of content and applies each rule in order
func (rw *Rewriter) Rewrite(ctx context.Context, content io.Reader) (*Result, error) {
	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	return rw.RewriteBytes(ctx, original), nil
}

// RewriteBytes applies each rule to original
func (rw *Rewriter) RewriteBytes(ctx context.Context, original []byte) *Result {
	logger := zerolog.Ctx(ctx)

	result := &Result{
		OriginalContent: original,
		Rules:           make([]RuleCount, 0, len(rw.rules)),
	}

	current := string(original)
	for _, rule := range rw.rules {
		next, edits := rule.Apply(ctx, current)
		logger.Debug().Str("rule", rule.Name()).Int("edits", edits).Msg("applied rule")

		result.Rules = append(result.Rules, RuleCount{Rule: rule.Name(), Edits: edits})
		result.EditCount += edits
		current = next
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = current != string(original)
	return result
}
