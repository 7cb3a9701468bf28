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

const ParamRuleName = "param"

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ParamInjection inserts a leading field into the destructured props of the
// first `const <Prefix>Name = ({` declaration in a file.
type ParamInjection struct {
	prefix         string
	param          string
	allowDuplicate bool
	decl           *regexp.Regexp
}

// NewParamInjection creates a ParamInjection for declarations named with prefix.
// Unless allowDuplicate is set, a declaration that already destructures param is left alone.
func NewParamInjection(prefix, param string, allowDuplicate bool) *ParamInjection {
	return &ParamInjection{
		prefix:         prefix,
		param:          param,
		allowDuplicate: allowDuplicate,
		decl:           regexp.MustCompile(`const ` + regexp.QuoteMeta(prefix) + `\w+ = \(\{`),
	}
}

func (r *ParamInjection) Name() string {
	return ParamRuleName
}

func (r *ParamInjection) Validate() error {
	if r.prefix == "" {
		return errors.Errorf("%s: prefix is required", r.Name())
	}
	if !identPattern.MatchString(r.param) {
		return errors.Errorf("%s: %q is not a valid parameter name", r.Name(), r.param)
	}
	return nil
}

// Apply modifies at most the first matching declaration
func (r *ParamInjection) Apply(ctx context.Context, content string) (string, int) {
	loc := r.decl.FindStringIndex(content)
	if loc == nil {
		return content, 0
	}

	if !r.allowDuplicate && destructures(content[loc[1]:], r.param) {
		zerolog.Ctx(ctx).Trace().
			Str("declaration", content[loc[0]:loc[1]]).
			Str("param", r.param).
			Msg("parameter already destructured")
		return content, 0
	}

	return content[:loc[1]] + " " + r.param + "," + content[loc[1]:], 1
}

// destructures reports whether the field list that starts at fields (just past
// the opening brace) already binds name. Plain, defaulted and renamed fields count.
func destructures(fields, name string) bool {
	for _, field := range topLevelFields(fields) {
		field = strings.TrimSpace(field)
		if i := strings.IndexAny(field, ":="); i >= 0 {
			field = strings.TrimSpace(field[:i])
		}
		if field == name {
			return true
		}
	}
	return false
}

// topLevelFields splits a destructuring list on the commas at nesting depth 0,
// stopping at the brace that closes the list. Quoted text is skipped.
func topLevelFields(fields string) []string {
	var (
		out   []string
		start int
		depth int
		quote byte
	)
	for i := 0; i < len(fields); i++ {
		c := fields[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			if depth == 0 {
				return append(out, fields[start:i])
			}
			depth--
		case ',':
			if depth == 0 {
				out = append(out, fields[start:i])
				start = i + 1
			}
		}
	}
	return append(out, fields[start:])
}
