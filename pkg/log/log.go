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
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/treecopy/pkg/operation"
	"github.com/walteh/treecopy/pkg/walk"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent entries
	nameWidth   = 35 // Base width for the relative path
	kindWidth   = 10 // Width for the entry kind
	detailWidth = 15 // Width for the detail column
)

// 🎯 EntryOperation is one line of copy output
type EntryOperation struct {
	Path      string // Relative path
	Kind      string // Entry kind (file/dir/symlink/other)
	Detail    string // Size, reason or error
	IsNew     bool   // Created at the destination
	IsMerged  bool   // Existing directory merged into
	IsSkipped bool   // Not copied
	IsFailed  bool   // Failed
}

// 📦 JobOperation describes one tree copy for the header
type JobOperation struct {
	Name        string // Job name
	Source      string // Source root
	Destination string // Destination root
}

// 🎯 Logger prints copy events to the console and mirrors them to zerolog
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	verbose    bool
	mu         sync.Mutex
	currentJob *JobOperation
	operations []EntryOperation
}

var _ operation.Observer = (*Logger)(nil)

// 🏭 New creates a new logger; verbose also prints merged directories
func New(console io.Writer, zlog zerolog.Logger, verbose bool) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		verbose: verbose,
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

// 📝 formatEntryOperation formats an entry for display
func (l *Logger) formatEntryOperation(op EntryOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case op.IsMerged:
		symbol = '•'
		symbolColor = color.FgCyan
	case op.IsNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '⟳'
		symbolColor = color.FgBlue
	}

	var kindColor color.Attribute
	switch op.Kind {
	case "dir":
		kindColor = color.FgCyan
	case "symlink":
		kindColor = color.FgMagenta
	case "other":
		kindColor = color.FgYellow
	default:
		kindColor = color.FgBlue
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(kindColor).Sprint(fmt.Sprintf("%-*s", kindWidth, op.Kind)),
		fmt.Sprintf("%-*s", detailWidth, op.Detail))
}

// 📝 LogEntryOperation logs one entry
func (l *Logger) LogEntryOperation(ctx context.Context, op EntryOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatEntryOperation(op))

	ev := l.zlog.Info()
	if op.IsFailed {
		ev = l.zlog.Error()
	} else if op.IsSkipped {
		ev = l.zlog.Warn()
	}
	ev.Str("path", op.Path).
		Str("kind", op.Kind).
		Str("detail", op.Detail).
		Bool("is_new", op.IsNew).
		Bool("is_merged", op.IsMerged).
		Bool("is_skipped", op.IsSkipped).
		Msg("entry")
}

func displayPath(entry walk.Entry, suffix string) string {
	if entry.IsRoot() {
		return "." + suffix
	}
	return entry.Path + suffix
}

// Directory implements operation.Observer.
func (l *Logger) Directory(ctx context.Context, entry walk.Entry, dst string, created bool) {
	if !created && !l.verbose {
		return
	}
	detail := "merged"
	if created {
		detail = "created"
	}
	l.LogEntryOperation(ctx, EntryOperation{
		Path:     displayPath(entry, "/"),
		Kind:     entry.Kind.String(),
		Detail:   detail,
		IsNew:    created,
		IsMerged: !created,
	})
}

// File implements operation.Observer.
func (l *Logger) File(ctx context.Context, entry walk.Entry, dst string, n int64) {
	l.LogEntryOperation(ctx, EntryOperation{
		Path:   displayPath(entry, ""),
		Kind:   entry.Kind.String(),
		Detail: humanize.Bytes(uint64(n)),
		IsNew:  true,
	})
}

// Symlink implements operation.Observer.
func (l *Logger) Symlink(ctx context.Context, entry walk.Entry, dst string) {
	l.LogEntryOperation(ctx, EntryOperation{
		Path:   displayPath(entry, ""),
		Kind:   entry.Kind.String(),
		Detail: "-> " + entry.LinkTarget,
		IsNew:  true,
	})
}

// Skipped implements operation.Observer.
func (l *Logger) Skipped(ctx context.Context, entry walk.Entry, reason string) {
	l.LogEntryOperation(ctx, EntryOperation{
		Path:      displayPath(entry, ""),
		Kind:      entry.Kind.String(),
		Detail:    reason,
		IsSkipped: true,
	})
}

// MetadataFailed implements operation.Observer.
func (l *Logger) MetadataFailed(ctx context.Context, dst string, err error) {
	l.LogEntryOperation(ctx, EntryOperation{
		Path:     dst,
		Kind:     "metadata",
		Detail:   err.Error(),
		IsFailed: true,
	})
}

// 📝 StartJob starts a new tree copy
func (l *Logger) StartJob(ctx context.Context, op JobOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentJob = &op
	l.operations = nil

	fmt.Fprintf(l.console, "[copying %s]\n",
		color.New(color.FgCyan).Sprint(op.Destination))

	name := op.Name
	if name == "" {
		name = "tree"
	}
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(name),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Source))

	l.zlog.Info().
		Str("job", op.Name).
		Str("source", op.Source).
		Str("destination", op.Destination).
		Msg("starting copy")
}

// 📝 EndJob ends the current tree copy
func (l *Logger) EndJob(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentJob == nil {
		return
	}

	l.zlog.Info().
		Str("job", l.currentJob.Name).
		Int("entries", len(l.operations)).
		Msg("copy complete")

	l.currentJob = nil
	l.operations = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("treecopy")
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

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
