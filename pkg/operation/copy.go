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
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/treecopy/pkg/copyerr"
	"github.com/walteh/treecopy/pkg/fsx"
	"github.com/walteh/treecopy/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 📦 CopyTree copies the tree at src into dst.
//
// Directories are created or merged into, files are overwritten, and once
// every file's content is written their permissions and mtimes are applied in
// a second pass. Any walk or content error aborts the copy immediately;
// metadata errors are collected and returned together as a
// *copyerr.MetadataError. Stats are returned only when nothing failed. Files
// written before a failure stay on disk.
func CopyTree(ctx context.Context, src, dst string, opts Options) (*CopyStats, error) {
	opts = opts.withDefaults()
	logger := zerolog.Ctx(ctx).With().Str("src", src).Str("dst", dst).Logger()
	ctx = logger.WithContext(ctx)

	c := &copier{
		opts: opts,
		fs:   opts.FS,
		dst:  dst,
		buf:  make([]byte, opts.BufferSize),
	}

	if inside, err := destinationInsideSource(src, dst); err != nil {
		return nil, err
	} else if inside {
		return nil, &copyerr.DestinationConflictError{Path: dst, Want: "path outside " + src, Got: "path inside source"}
	}

	if opts.RequireDestination {
		ok, err := fsx.IsDir(c.fs, dst)
		if err != nil {
			return nil, &copyerr.IOError{Op: "stat", Path: dst, Err: err}
		}
		if !ok {
			return nil, &copyerr.IOError{Op: "stat", Path: dst, Err: fs.ErrNotExist}
		}
	}

	logger.Debug().Msg("copying tree")

	walkOpts := opts.walkOptions()
	walkOpts.OnSkip = func(entry walk.Entry, err error) {
		// the walker already warned; count it and tell the observer
		_ = c.skip(ctx, entry, "unreadable: "+err.Error(), zerolog.DebugLevel)
	}

	for entry, err := range walk.Walk(ctx, src, walkOpts) {
		if err != nil {
			return nil, errors.Errorf("copying tree: %w", err)
		}
		if err := c.copyEntry(ctx, entry); err != nil {
			return nil, errors.Errorf("copying %s: %w", displayPath(entry), err)
		}
	}

	if err := c.applyMetadata(ctx); err != nil {
		return nil, errors.Errorf("preserving metadata: %w", err)
	}

	stats := c.stats
	logger.Debug().
		Int64("bytes", stats.Bytes).
		Int("files", stats.Files).
		Int("dirs", stats.Dirs).
		Int("symlinks", stats.Symlinks).
		Int("skipped", stats.Skipped).
		Msg("tree copied")
	return &stats, nil
}

// destinationInsideSource compares both roots with symlinks resolved, so a
// destination reached through a link into the source is caught too.
func destinationInsideSource(src, dst string) (bool, error) {
	realSrc, err := fsx.Resolve(src)
	if err != nil {
		return false, errors.Errorf("resolving %s: %w", src, err)
	}
	realDst, err := fsx.Resolve(dst)
	if err != nil {
		return false, errors.Errorf("resolving %s: %w", dst, err)
	}
	return fsx.Within(realSrc, realDst), nil
}

// 🎮 copier holds the state of one CopyTree call
type copier struct {
	opts  Options
	fs    fsx.FS
	dst   string
	buf   []byte
	stats CopyStats

	pending     []pendingMetadata
	pendingDirs []pendingMetadata
}

// 📄 copyEntry dispatches one walked entry
func (c *copier) copyEntry(ctx context.Context, entry walk.Entry) error {
	if err := ctx.Err(); err != nil {
		return &copyerr.IOError{Op: "copy", Path: entry.Source, Err: err}
	}

	target := filepath.Join(c.dst, filepath.FromSlash(entry.Path))

	switch entry.Kind {
	case walk.KindDir:
		return c.copyDir(ctx, entry, target)
	case walk.KindFile:
		return c.copyFile(ctx, entry, target)
	case walk.KindSymlink:
		return c.copySymlink(ctx, entry, target)
	default:
		return c.skipOther(ctx, entry)
	}
}

// 📁 copyDir creates a destination directory or merges into an existing one
func (c *copier) copyDir(ctx context.Context, entry walk.Entry, target string) error {
	if entry.IsRoot() {
		if err := c.mkdirParents(filepath.Dir(target)); err != nil {
			return err
		}
	}

	fi, err := c.fs.Lstat(target)
	switch {
	case err == nil && fi.IsDir():
		zerolog.Ctx(ctx).Trace().Str("path", target).Msg("merging into existing directory")
		c.opts.Observer.Directory(ctx, entry, target, false)
		return nil
	case err == nil:
		return &copyerr.DestinationConflictError{Path: target, Want: "directory", Got: fsx.TypeName(fi.Mode())}
	case !os.IsNotExist(err):
		return &copyerr.IOError{Op: "stat", Path: target, Err: err}
	}

	if err := c.fs.Mkdir(target, entry.Perm|0o700); err != nil {
		return &copyerr.IOError{Op: "mkdir", Path: target, Err: err}
	}

	c.stats.Dirs++
	if c.opts.PreserveDirMetadata {
		c.pendingDirs = append(c.pendingDirs, pendingMetadata{path: target, modTime: entry.ModTime, perm: entry.Perm})
	}
	zerolog.Ctx(ctx).Debug().Str("path", target).Msg("created directory")
	c.opts.Observer.Directory(ctx, entry, target, true)
	return nil
}

// mkdirParents creates the missing ancestors of the destination root
func (c *copier) mkdirParents(dir string) error {
	fi, err := c.fs.Stat(dir)
	if err == nil {
		if !fi.IsDir() {
			return &copyerr.DestinationConflictError{Path: dir, Want: "directory", Got: fsx.TypeName(fi.Mode())}
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return &copyerr.IOError{Op: "stat", Path: dir, Err: err}
	}
	if parent := filepath.Dir(dir); parent != dir {
		if err := c.mkdirParents(parent); err != nil {
			return err
		}
	}
	if err := c.fs.Mkdir(dir, 0o755); err != nil && !os.IsExist(err) {
		return &copyerr.IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// 📄 copyFile copies one file's bytes and queues its metadata
func (c *copier) copyFile(ctx context.Context, entry walk.Entry, target string) error {
	fi, err := c.fs.Lstat(target)
	switch {
	case err == nil && !fi.Mode().IsRegular():
		return &copyerr.DestinationConflictError{Path: target, Want: "regular file", Got: fsx.TypeName(fi.Mode())}
	case err == nil && fi.Mode().Perm()&0o200 == 0:
		// read-only leftovers from an earlier run must be writable to be overwritten
		if err := c.fs.Chmod(target, fi.Mode().Perm()|0o200); err != nil {
			return &copyerr.IOError{Op: "chmod", Path: target, Err: err}
		}
	case err != nil && !os.IsNotExist(err):
		return &copyerr.IOError{Op: "stat", Path: target, Err: err}
	}

	n, err := c.copyContent(entry.Source, target, entry.Perm)
	if err != nil {
		return err
	}

	c.stats.Files++
	c.stats.Bytes += n
	c.pending = append(c.pending, pendingMetadata{path: target, modTime: entry.ModTime, perm: entry.Perm})

	zerolog.Ctx(ctx).Debug().Str("path", target).Int64("bytes", n).Msg("copied file")
	c.opts.Observer.File(ctx, entry, target, n)
	return nil
}

// copyContent streams src into dst through the shared buffer
func (c *copier) copyContent(src, dst string, perm fs.FileMode) (n int64, err error) {
	in, err := c.fs.Open(src)
	if err != nil {
		return 0, &copyerr.IOError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm|0o200)
	if err != nil {
		return 0, &copyerr.IOError{Op: "create", Path: dst, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &copyerr.IOError{Op: "close", Path: dst, Err: cerr}
		}
	}()

	for {
		r, rerr := in.Read(c.buf)
		if r > 0 {
			w, werr := out.Write(c.buf[:r])
			n += int64(w)
			if werr != nil {
				return n, &copyerr.IOError{Op: "write", Path: dst, Err: werr}
			}
			if w != r {
				return n, &copyerr.IOError{Op: "write", Path: dst, Err: io.ErrShortWrite}
			}
		}
		if rerr == io.EOF {
			return n, nil
		}
		if rerr != nil {
			return n, &copyerr.IOError{Op: "read", Path: src, Err: rerr}
		}
	}
}

// 🔗 copySymlink skips a link, or recreates it verbatim when asked to
func (c *copier) copySymlink(ctx context.Context, entry walk.Entry, target string) error {
	if !c.opts.CopySymlinks {
		return c.skip(ctx, entry, "symlink not copied", zerolog.DebugLevel)
	}

	fi, err := c.fs.Lstat(target)
	switch {
	case err == nil && fi.Mode()&fs.ModeSymlink != 0:
		existing, err := c.fs.Readlink(target)
		if err != nil {
			return &copyerr.IOError{Op: "readlink", Path: target, Err: err}
		}
		if existing != entry.LinkTarget {
			return &copyerr.DestinationConflictError{Path: target, Want: "symlink to " + entry.LinkTarget, Got: "symlink to " + existing}
		}
	case err == nil:
		return &copyerr.DestinationConflictError{Path: target, Want: "symlink", Got: fsx.TypeName(fi.Mode())}
	case !os.IsNotExist(err):
		return &copyerr.IOError{Op: "stat", Path: target, Err: err}
	default:
		if err := c.fs.Symlink(entry.LinkTarget, target); err != nil {
			return &copyerr.IOError{Op: "symlink", Path: target, Err: err}
		}
	}

	c.stats.Symlinks++
	zerolog.Ctx(ctx).Debug().Str("path", target).Str("target", entry.LinkTarget).Msg("copied symlink")
	c.opts.Observer.Symlink(ctx, entry, target)
	return nil
}

// 🚫 skipOther handles sockets, devices and fifos
func (c *copier) skipOther(ctx context.Context, entry walk.Entry) error {
	if c.opts.StrictSpecialFiles {
		return &copyerr.IOError{Op: "copy", Path: entry.Source, Err: copyerr.ErrUnsupportedFileType}
	}
	return c.skip(ctx, entry, "unsupported file type", zerolog.WarnLevel)
}

func (c *copier) skip(ctx context.Context, entry walk.Entry, reason string, level zerolog.Level) error {
	c.stats.Skipped++
	zerolog.Ctx(ctx).WithLevel(level).Str("path", entry.Source).Stringer("kind", entry.Kind).Msg(reason)
	c.opts.Observer.Skipped(ctx, entry, reason)
	return nil
}

func displayPath(entry walk.Entry) string {
	if entry.IsRoot() {
		return "root"
	}
	return entry.Path
}
