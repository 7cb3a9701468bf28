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

// Package transform scans a directory for candidate files and rewrites them in place
package transform

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/propinject/pkg/log"
	"github.com/walteh/propinject/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// Reporter receives one outcome per candidate file
type Reporter interface {
	LogFileOperation(ctx context.Context, op log.FileOperation)
	LogDiff(ctx context.Context, name string, original, modified []byte)
}

// Options configures a Transformer
type Options struct {
	// Directory holds the candidate files. Only its direct entries are scanned.
	Directory string
	Matcher   Matcher
	Rewriter  *rewrite.Rewriter
	Reporter  Reporter

	// DryRun reports changes without writing
	DryRun bool
	// Diff sends the changed lines of every updated file to the reporter
	Diff bool
	// Backup writes <name>.bak with the original content before overwriting
	Backup bool
}

// FileResult is the outcome for one candidate file
type FileResult struct {
	Name   string
	Path   string
	Result *rewrite.Result
	Backup string
}

// Updated reports whether the rules changed the file's content
func (r *FileResult) Updated() bool {
	return r.Result != nil && r.Result.WasModified
}

// Summary collects the outcome of a run
type Summary struct {
	Files     []FileResult
	Updated   int
	Unchanged int
}

func (s *Summary) add(res FileResult) {
	s.Files = append(s.Files, res)
	if res.Updated() {
		s.Updated++
	} else {
		s.Unchanged++
	}
}

// Transformer rewrites candidate files in a single directory
type Transformer struct {
	opts Options
}

// New creates a Transformer
func New(opts Options) (*Transformer, error) {
	if opts.Directory == "" {
		return nil, errors.Errorf("directory is required")
	}
	if opts.Rewriter == nil {
		return nil, errors.Errorf("rewriter is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if err := opts.Matcher.Validate(); err != nil {
		return nil, errors.Errorf("validating matcher: %w", err)
	}
	return &Transformer{opts: opts}, nil
}

// Run processes every candidate in listing order. The first I/O failure
// aborts the run; files already written keep their new content.
func (t *Transformer) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(t.opts.Directory)
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}

	logger.Debug().
		Str("directory", t.opts.Directory).
		Int("entries", len(entries)).
		Bool("dry_run", t.opts.DryRun).
		Msg("scanning directory")

	summary := &Summary{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, errors.Errorf("run cancelled: %w", err)
		}

		if !t.opts.Matcher.Match(entry) {
			logger.Trace().Str("name", entry.Name()).Msg("skipping non-candidate")
			continue
		}

		res, err := t.processFile(ctx, entry)
		if err != nil {
			return summary, errors.Errorf("processing %s: %w", entry.Name(), err)
		}
		summary.add(*res)
	}

	return summary, nil
}

// processFile loads, rewrites and conditionally persists one candidate
func (t *Transformer) processFile(ctx context.Context, entry fs.DirEntry) (*FileResult, error) {
	path := filepath.Join(t.opts.Directory, entry.Name())

	info, err := entry.Info()
	if err != nil {
		return nil, errors.Errorf("getting file info: %w", err)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	res := &FileResult{
		Name:   entry.Name(),
		Path:   path,
		Result: t.opts.Rewriter.RewriteBytes(ctx, original),
	}

	if res.Updated() && !t.opts.DryRun {
		mode := info.Mode().Perm()
		if t.opts.Backup {
			if res.Backup, err = backupFile(path, original, mode); err != nil {
				return nil, err
			}
		}
		if err := writeFileAtomic(path, res.Result.ModifiedContent, mode); err != nil {
			return nil, errors.Errorf("writing file: %w", err)
		}
	}

	t.opts.Reporter.LogFileOperation(ctx, log.FileOperation{
		Name:    res.Name,
		Path:    res.Path,
		Updated: res.Updated(),
		DryRun:  t.opts.DryRun,
		Edits:   res.Result.EditCount,
		Backup:  res.Backup,
	})
	if t.opts.Diff && res.Updated() {
		t.opts.Reporter.LogDiff(ctx, res.Name, original, res.Result.ModifiedContent)
	}

	return res, nil
}
