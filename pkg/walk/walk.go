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

// Package walk enumerates a source directory tree in a deterministic order.
//
// Walk yields the root first, then each directory's children sorted by name,
// descending into a subdirectory before moving on to its next sibling. The
// sequence is lazy and single-pass: stop ranging and the walk stops reading.
package walk

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/treecopy/pkg/copyerr"
	"github.com/walteh/treecopy/pkg/fsx"
)

// DefaultMaxDepth bounds directory nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// 🏷️ Kind classifies a filesystem entry
type Kind int

const (
	KindFile    Kind = iota // regular file
	KindDir                 // directory
	KindSymlink             // symbolic link, never expanded unless following is enabled
	KindOther               // socket, device, fifo and anything else
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// 📄 Entry is one filesystem object discovered during the walk
type Entry struct {
	Path       string      // Slash separated path relative to the root, "" for the root
	Source     string      // Path of the entry on disk (root joined with Path)
	Kind       Kind        // Entry classification
	Size       int64       // Size in bytes, files only
	ModTime    time.Time   // Source mtime at discovery
	Perm       fs.FileMode // Source permission bits at discovery
	LinkTarget string      // Link target, symlinks only
}

// Segments returns the relative path split into its components; nil for the root.
func (e Entry) Segments() []string {
	if e.Path == "" {
		return nil
	}
	return strings.Split(e.Path, "/")
}

// Depth is the number of path segments below the root.
func (e Entry) Depth() int {
	return len(e.Segments())
}

// IsRoot reports whether the entry is the walk root.
func (e Entry) IsRoot() bool {
	return e.Path == ""
}

// 🔍 Filter decides whether an entry is included; false on a directory prunes its subtree
type Filter func(rel string, kind Kind) bool

// AcceptAll is the default filter.
func AcceptAll(string, Kind) bool { return true }

// 🔧 Options configures a walk
type Options struct {
	// FS provides the directory listings, defaults to fsx.OS
	FS fsx.FS
	// Filter is consulted once per entry, including the root
	Filter Filter
	// FollowSymlinks reports links by their target and descends into linked directories
	FollowSymlinks bool
	// MaxDepth bounds directory nesting, DefaultMaxDepth when zero
	MaxDepth int
	// SkipUnreadable continues past directories that cannot be listed
	SkipUnreadable bool
	// OnSkip is told about every path skipped by SkipUnreadable: directories
	// that cannot be listed (KindDir) and children that cannot be stat'ed (KindOther)
	OnSkip func(entry Entry, err error)
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = fsx.OS{}
	}
	if o.Filter == nil {
		o.Filter = AcceptAll
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// 🚶 Walk returns the entries under root in depth-first pre-order.
//
// A missing root yields a *copyerr.SourceNotFoundError, an unreadable directory a
// *copyerr.WalkError. The sequence ends after the first error.
func Walk(ctx context.Context, root string, opts Options) iter.Seq2[Entry, error] {
	opts = opts.withDefaults()
	return func(yield func(Entry, error) bool) {
		w := &walker{
			ctx:    ctx,
			opts:   opts,
			yield:  yield,
			logger: zerolog.Ctx(ctx),
		}
		w.run(root)
	}
}

// 📋 Collect runs a walk to completion and returns every entry
func Collect(ctx context.Context, root string, opts Options) ([]Entry, error) {
	var entries []Entry
	for entry, err := range Walk(ctx, root, opts) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

type walker struct {
	ctx    context.Context
	opts   Options
	yield  func(Entry, error) bool
	logger *zerolog.Logger
}

func (w *walker) run(root string) {
	info, err := w.opts.FS.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			w.yield(Entry{}, &copyerr.SourceNotFoundError{Path: root, Err: err})
			return
		}
		w.yield(Entry{}, &copyerr.WalkError{Path: root, Err: err})
		return
	}
	if !info.IsDir() {
		w.yield(Entry{}, &copyerr.WalkError{Path: root, Err: copyerr.ErrNotDirectory})
		return
	}

	if !w.opts.Filter("", KindDir) {
		w.logger.Debug().Str("root", root).Msg("root excluded by filter")
		return
	}
	if !w.yield(newEntry("", root, KindDir, info), nil) {
		return
	}
	w.walkDir(root, "", 0)
}

// walkDir lists one directory and recurses; it returns false once the walk must stop
func (w *walker) walkDir(dir, rel string, depth int) bool {
	if err := w.ctx.Err(); err != nil {
		w.yield(Entry{}, &copyerr.WalkError{Path: dir, Err: err})
		return false
	}
	if depth >= w.opts.MaxDepth {
		w.yield(Entry{}, &copyerr.WalkError{Path: dir, Err: copyerr.ErrTooDeep})
		return false
	}

	children, err := w.opts.FS.ReadDir(dir)
	if err != nil {
		return w.unreadable(Entry{Path: rel, Source: dir, Kind: KindDir}, err)
	}
	slices.SortFunc(children, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	for _, child := range children {
		childPath := filepath.Join(dir, child.Name())
		childRel := path.Join(rel, child.Name())

		entry, err := w.classify(childPath, childRel)
		if err != nil {
			if !w.unreadable(Entry{Path: childRel, Source: childPath, Kind: KindOther}, err) {
				return false
			}
			continue
		}

		if !w.opts.Filter(childRel, entry.Kind) {
			w.logger.Trace().Str("path", childRel).Stringer("kind", entry.Kind).Msg("excluded by filter")
			continue
		}
		if !w.yield(entry, nil) {
			return false
		}
		if entry.Kind == KindDir && !w.walkDir(childPath, childRel, depth+1) {
			return false
		}
	}
	return true
}

// classify stats one child without following links unless asked to
func (w *walker) classify(abs, rel string) (Entry, error) {
	info, err := w.opts.FS.Lstat(abs)
	if err != nil {
		return Entry{}, err
	}
	kind := kindOf(info.Mode())
	if kind != KindSymlink {
		return newEntry(rel, abs, kind, info), nil
	}

	target, err := w.opts.FS.Readlink(abs)
	if err != nil {
		return Entry{}, err
	}
	if w.opts.FollowSymlinks {
		if tinfo, err := w.opts.FS.Stat(abs); err == nil {
			entry := newEntry(rel, abs, kindOf(tinfo.Mode()), tinfo)
			entry.LinkTarget = target
			return entry, nil
		}
		w.logger.Debug().Str("path", rel).Str("target", target).Msg("dangling symlink")
	}
	entry := newEntry(rel, abs, KindSymlink, info)
	entry.LinkTarget = target
	return entry, nil
}

// unreadable reports a listing failure; it returns true when the walk may continue
func (w *walker) unreadable(where Entry, err error) bool {
	if w.opts.SkipUnreadable {
		w.logger.Warn().Str("path", where.Source).Err(err).Msg("skipping unreadable path")
		if w.opts.OnSkip != nil {
			w.opts.OnSkip(where, err)
		}
		return true
	}
	w.yield(Entry{}, &copyerr.WalkError{Path: where.Source, Err: err})
	return false
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

func newEntry(rel, abs string, kind Kind, info fs.FileInfo) Entry {
	entry := Entry{
		Path:    rel,
		Source:  abs,
		Kind:    kind,
		ModTime: info.ModTime(),
		Perm:    info.Mode().Perm(),
	}
	if kind == KindFile {
		entry.Size = info.Size()
	}
	return entry
}
