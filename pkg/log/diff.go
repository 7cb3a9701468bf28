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

package log

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FormatDiff renders a line diff with `-` for removed and `+` for added lines.
// Unchanged lines are omitted.
func FormatDiff(original, modified string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", color.New(color.FgRed)
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", color.New(color.FgGreen)
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(c.Sprint(prefix + strings.TrimSuffix(line, "\n")))
			buf.WriteString("\n")
		}
	}
	return buf.String()
}
