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
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const AttrRuleName = "attr"

// returnTag matches `return (` followed by the opening of a markup tag and one
// whitespace character. Group 1 is the tag including its `<`.
var returnTag = regexp.MustCompile(`return\s*\(\s*(<[a-zA-Z0-9]+)\s`)

var attrNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_:.-]*$`)

// AttrInjection adds `attr={param}` to the root element of every `return (` in a file
type AttrInjection struct {
	attr     string
	param    string
	existing *regexp.Regexp
}

// NewAttrInjection creates an AttrInjection that writes attr={param}
func NewAttrInjection(attr, param string) *AttrInjection {
	return &AttrInjection{
		attr:     attr,
		param:    param,
		existing: regexp.MustCompile(`(^|\s)` + regexp.QuoteMeta(attr) + `\s*=`),
	}
}

func (r *AttrInjection) Name() string {
	return AttrRuleName
}

func (r *AttrInjection) Validate() error {
	if !attrNamePattern.MatchString(r.attr) {
		return errors.Errorf("%s: %q is not a valid attribute name", r.Name(), r.attr)
	}
	if !identPattern.MatchString(r.param) {
		return errors.Errorf("%s: %q is not a valid parameter name", r.Name(), r.param)
	}
	return nil
}

// Token is the text inserted after the tag name
func (r *AttrInjection) Token() string {
	return r.attr + "={" + r.param + "}"
}

// Apply rewrites every match whose tag does not already carry the attribute.
// The tag's attribute text runs from the tag name to the first `>`.
func (r *AttrInjection) Apply(ctx context.Context, content string) (string, int) {
	matches := returnTag.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	logger := zerolog.Ctx(ctx)
	token := " " + r.Token()

	var b strings.Builder
	b.Grow(len(content) + len(matches)*len(token))

	last, edits := 0, 0
	for _, m := range matches {
		tagEnd := m[3]
		if r.existing.MatchString(attributeText(content[tagEnd:])) {
			logger.Trace().Str("tag", content[m[2]:m[3]]).Str("attr", r.attr).Msg("attribute already present")
			continue
		}
		b.WriteString(content[last:tagEnd])
		b.WriteString(token)
		last = tagEnd
		edits++
	}
	b.WriteString(content[last:])

	return b.String(), edits
}

func attributeText(s string) string {
	if end := strings.Index(s, ">"); end >= 0 {
		return s[:end]
	}
	return s
}
