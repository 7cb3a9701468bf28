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
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation is the outcome of processing one candidate file
type FileOperation struct {
	Name    string // File name as listed in the directory
	Path    string // Full path to the file
	Updated bool   // Whether the content changed
	DryRun  bool   // Whether the write was skipped
	Edits   int    // Number of edits made by all rules
	Backup  string // Backup path, if one was written
}

// Status is the short status shown in the summary table
func (op FileOperation) Status() string {
	switch {
	case op.Updated && op.DryRun:
		return "pending"
	case op.Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	operations []FileOperation
}

// 🏭 New creates a new logger writing user output to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 FormatFileOperation formats the one console line for a file
func FormatFileOperation(op FileOperation) string {
	if !op.Updated {
		return fmt.Sprintf("%s %s", color.New(color.Faint).Sprint("No changes for"), op.Name)
	}

	line := fmt.Sprintf("%s %s", color.New(color.FgBlue).Sprint("Updating"), op.Name)
	if op.DryRun {
		line += color.New(color.Faint).Sprint(" (dry run)")
	}
	return line
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, FormatFileOperation(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status()).
		Bool("dry_run", op.DryRun).
		Int("edits", op.Edits).
		Str("backup", op.Backup).
		Msg("file operation")
}

// 📝 LogDiff prints the changed lines between original and modified
func (l *Logger) LogDiff(ctx context.Context, name string, original, modified []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s\n", color.New(color.Bold).Sprintf("--- %s", name))
	fmt.Fprint(l.console, FormatDiff(string(original), string(modified)))
}

// Operations returns every file operation logged so far
func (l *Logger) Operations() []FileOperation {
	l.mu.Lock()
	defer l.mu.Unlock()

	ops := make([]FileOperation, len(l.operations))
	copy(ops, l.operations)
	return ops
}

// 📊 Summary renders a table of every logged file operation
func (l *Logger) Summary(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.operations) == 0 {
		return
	}

	data := pterm.TableData{{"File", "Status", "Edits"}}
	updated := 0
	for _, op := range l.operations {
		if op.Updated {
			updated++
		}
		data = append(data, []string{op.Name, op.Status(), strconv.Itoa(op.Edits)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		l.zlog.Warn().Err(err).Msg("rendering summary table")
	} else {
		fmt.Fprintf(l.console, "\n%s\n", table)
	}

	l.zlog.Info().
		Int("files", len(l.operations)).
		Int("updated", updated).
		Msg("run complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("propinject")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
