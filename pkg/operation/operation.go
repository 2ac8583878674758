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

package operation

import (
	"context"

	"github.com/walteh/treecopy/pkg/fsx"
	"github.com/walteh/treecopy/pkg/walk"
)

// DefaultBufferSize is the copy buffer size used when Options.BufferSize is zero.
const DefaultBufferSize = 8 << 20

// 🎯 Operation is a unit of work the runner can execute
type Operation interface {
	Execute(ctx context.Context) error
}

// 📊 CopyStats counts what one tree copy did
type CopyStats struct {
	Bytes    int64 `json:"bytes"`    // File content bytes written
	Files    int   `json:"files"`    // Regular files copied
	Dirs     int   `json:"dirs"`     // Directories created (merged ones are not counted)
	Symlinks int   `json:"symlinks"` // Links recreated when CopySymlinks is set
	Skipped  int   `json:"skipped"`  // Special files and links that were not copied
}

// Add accumulates another run's counters.
func (s *CopyStats) Add(o CopyStats) {
	s.Bytes += o.Bytes
	s.Files += o.Files
	s.Dirs += o.Dirs
	s.Symlinks += o.Symlinks
	s.Skipped += o.Skipped
}

// 👀 Observer is told about every action taken while copying.
// Calls happen on the copying goroutine, in walk order.
type Observer interface {
	Directory(ctx context.Context, entry walk.Entry, dst string, created bool)
	File(ctx context.Context, entry walk.Entry, dst string, n int64)
	Symlink(ctx context.Context, entry walk.Entry, dst string)
	Skipped(ctx context.Context, entry walk.Entry, reason string)
	MetadataFailed(ctx context.Context, dst string, err error)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) Directory(context.Context, walk.Entry, string, bool) {}
func (NopObserver) File(context.Context, walk.Entry, string, int64)     {}
func (NopObserver) Symlink(context.Context, walk.Entry, string)         {}
func (NopObserver) Skipped(context.Context, walk.Entry, string)         {}
func (NopObserver) MetadataFailed(context.Context, string, error)       {}

// 🔧 Options configures a tree copy. The zero value copies everything, skips
// links and special files, and preserves file permissions and mtimes.
type Options struct {
	// FS provides the filesystem primitives, defaults to fsx.OS
	FS fsx.FS
	// Filter selects entries; false on a directory excludes its subtree
	Filter walk.Filter
	// Observer receives per-entry events
	Observer Observer

	// FollowSymlinks copies what links point at instead of the links
	FollowSymlinks bool
	// MaxDepth bounds directory nesting, walk.DefaultMaxDepth when zero
	MaxDepth int
	// SkipUnreadable continues past source directories that cannot be listed
	SkipUnreadable bool

	// CopySymlinks recreates links verbatim instead of skipping them
	CopySymlinks bool
	// StrictSpecialFiles fails on sockets, devices and fifos instead of skipping them
	StrictSpecialFiles bool
	// RequireDestination fails when the destination root does not exist yet
	RequireDestination bool

	// SkipPermissions leaves destination permission bits as created
	SkipPermissions bool
	// SkipModTimes leaves destination mtimes as written
	SkipModTimes bool
	// PreserveDirMetadata also applies permissions and mtimes to directories this run created
	PreserveDirMetadata bool

	// BufferSize is the size of the copy buffer, DefaultBufferSize when zero
	BufferSize int
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = fsx.OS{}
	}
	if o.Filter == nil {
		o.Filter = walk.AcceptAll
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	return o
}

func (o Options) walkOptions() walk.Options {
	return walk.Options{
		FS:             o.FS,
		Filter:         o.Filter,
		FollowSymlinks: o.FollowSymlinks,
		MaxDepth:       o.MaxDepth,
		SkipUnreadable: o.SkipUnreadable,
	}
}

// 📦 Job names one source to destination copy
type Job struct {
	Name        string
	Source      string
	Destination string
}

// 📦 CopyOperation runs one Job as an Operation
type CopyOperation struct {
	job   Job
	opts  Options
	stats *CopyStats
}

// 🏭 NewCopyOperation creates a new copy operation
func NewCopyOperation(job Job, opts Options) *CopyOperation {
	return &CopyOperation{job: job, opts: opts}
}

// Job returns the job this operation copies.
func (op *CopyOperation) Job() Job {
	return op.job
}

// 🏃 Execute runs the copy
func (op *CopyOperation) Execute(ctx context.Context) error {
	stats, err := CopyTree(ctx, op.job.Source, op.job.Destination, op.opts)
	if err != nil {
		return err
	}
	op.stats = stats
	return nil
}

// Stats is nil until Execute succeeds.
func (op *CopyOperation) Stats() *CopyStats {
	return op.stats
}

// 🗺️ Plan lists the entries a copy with these options would visit, without writing anything
func Plan(ctx context.Context, src string, opts Options) ([]walk.Entry, error) {
	opts = opts.withDefaults()
	return walk.Collect(ctx, src, opts.walkOptions())
}
