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

//go:build unix

package operation_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treecopy/gen/mockery"
	"github.com/walteh/treecopy/pkg/copyerr"
	"github.com/walteh/treecopy/pkg/operation"
)

// 🧪 TestCopyTreeSkipsSymlinksByDefault checks broken and cyclic links neither hang nor get copied
func TestCopyTreeSkipsSymlinksByDefault(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "dir/file", "x", 0o644)
	require.NoError(t, os.Symlink("..", filepath.Join(src, "dir", "loop")))
	require.NoError(t, os.Symlink("nowhere", filepath.Join(src, "broken")))
	require.NoError(t, os.Symlink("dir/file", filepath.Join(src, "alias")))

	obs := mockery.NewMockObserver_operation(t)
	mock.InOrder(
		obs.EXPECT().Directory(mock.Anything, entryAt(""), dst, true).Return().Call,
		obs.EXPECT().Skipped(mock.Anything, entryAt("alias"), "symlink not copied").Return().Call,
		obs.EXPECT().Skipped(mock.Anything, entryAt("broken"), "symlink not copied").Return().Call,
		obs.EXPECT().Directory(mock.Anything, entryAt("dir"), filepath.Join(dst, "dir"), true).Return().Call,
		obs.EXPECT().File(mock.Anything, entryAt("dir/file"), filepath.Join(dst, "dir", "file"), int64(1)).Return().Call,
		obs.EXPECT().Skipped(mock.Anything, entryAt("dir/loop"), "symlink not copied").Return().Call,
	)

	stats, err := operation.CopyTree(ctx, src, dst, operation.Options{Observer: obs})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 3, stats.Skipped)
	assert.Zero(t, stats.Symlinks)

	for _, rel := range []string{"alias", "broken", "dir/loop"} {
		_, err := os.Lstat(filepath.Join(dst, filepath.FromSlash(rel)))
		assert.True(t, os.IsNotExist(err), "%s should not be copied", rel)
	}
}

// 🧪 TestCopyTreeCopySymlinks checks links are recreated verbatim and a rerun is accepted
func TestCopyTreeCopySymlinks(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "target.txt", "x", 0o644)
	require.NoError(t, os.Symlink("target.txt", filepath.Join(src, "link")))
	require.NoError(t, os.Symlink("does/not/exist", filepath.Join(src, "dangling")))

	opts := operation.Options{CopySymlinks: true}
	for run := 0; run < 2; run++ {
		stats, err := operation.CopyTree(ctx, src, dst, opts)
		require.NoError(t, err, "run %d", run)
		assert.Equal(t, 2, stats.Symlinks)
		assert.Equal(t, 1, stats.Files)
		assert.Zero(t, stats.Skipped)
	}

	got, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.Equal(t, "target.txt", got)
	got, err = os.Readlink(filepath.Join(dst, "dangling"))
	require.NoError(t, err)
	assert.Equal(t, "does/not/exist", got)
}

// 🧪 TestCopyTreeSymlinkConflict checks an existing different link is not replaced
func TestCopyTreeSymlinkConflict(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	require.NoError(t, os.Symlink("one", filepath.Join(src, "link")))
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.Symlink("two", filepath.Join(dst, "link")))

	_, err := operation.CopyTree(ctx, src, dst, operation.Options{CopySymlinks: true})
	require.Error(t, err)
	assert.True(t, copyerr.IsDestinationConflict(err))
	assert.Equal(t, filepath.Join(dst, "link"), copyerr.PathOf(err))
}

// 🧪 TestCopyTreeNeverWritesThroughDestinationLinks checks a link at a file's destination is a conflict
func TestCopyTreeNeverWritesThroughDestinationLinks(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "f", "payload", 0o644)
	outside := writeFile(t, t.TempDir(), "outside", "untouched", 0o644)
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.Symlink(outside, filepath.Join(dst, "f")))

	_, err := operation.CopyTree(ctx, src, dst, operation.Options{})
	require.Error(t, err)
	assert.True(t, copyerr.IsDestinationConflict(err))
	assert.Equal(t, "untouched", readFile(t, outside))
}

// 🧪 TestCopyTreeFollowSymlinks checks link targets are copied as regular content
func TestCopyTreeFollowSymlinks(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	shared := t.TempDir()
	writeFile(t, shared, "lib/util.txt", "shared", 0o644)
	writeFile(t, src, "own.txt", "own", 0o644)
	require.NoError(t, os.Symlink(filepath.Join(shared, "lib"), filepath.Join(src, "lib")))

	stats, err := operation.CopyTree(ctx, src, dst, operation.Options{FollowSymlinks: true})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 2, stats.Dirs)

	fi, err := os.Lstat(filepath.Join(dst, "lib"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir(), "followed link should become a real directory")
	assert.Equal(t, "shared", readFile(t, filepath.Join(dst, "lib", "util.txt")))
}

// 🧪 TestCopyTreeSpecialFiles checks fifos are skipped, or fatal in strict mode
func TestCopyTreeSpecialFiles(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "a.txt", "a", 0o644)
	fifo := filepath.Join(src, "pipe")
	require.NoError(t, syscall.Mkfifo(fifo, 0o644))

	stats, err := operation.CopyTree(ctx, src, dst, operation.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Files)
	assert.NoFileExists(t, filepath.Join(dst, "pipe"))

	stats, err = operation.CopyTree(ctx, src, filepath.Join(dst, "strict"), operation.Options{StrictSpecialFiles: true})
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.True(t, copyerr.IsIO(err))
	assert.ErrorIs(t, err, copyerr.ErrUnsupportedFileType)
	assert.Equal(t, fifo, copyerr.PathOf(err))
}

// 🧪 TestCopyTreePreserveDirMetadata checks created directories get their source mtime and mode
func TestCopyTreePreserveDirMetadata(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "d/inner/f", "f", 0o644)
	for _, rel := range []string{"d/inner", "d"} {
		p := filepath.Join(src, filepath.FromSlash(rel))
		require.NoError(t, os.Chmod(p, 0o750))
		require.NoError(t, os.Chtimes(p, oldTime, oldTime))
	}

	_, err := operation.CopyTree(ctx, src, dst, operation.Options{PreserveDirMetadata: true})
	require.NoError(t, err)

	for _, rel := range []string{"d", "d/inner"} {
		fi, err := os.Stat(filepath.Join(dst, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.True(t, oldTime.Equal(fi.ModTime()), "mtime of %s: got %s", rel, fi.ModTime())
		assert.Equal(t, os.FileMode(0o750), fi.Mode().Perm(), "mode of %s", rel)
	}
}

// 🧪 TestCopyTreeRejectsDestinationReachedThroughLink checks a destination
// whose parent is a symlink back into the source is refused before anything is written
func TestCopyTreeRejectsDestinationReachedThroughLink(t *testing.T) {
	ctx, src, _ := createTestEnv(t)
	writeFile(t, src, "a.txt", "a", 0o644)

	alias := filepath.Join(filepath.Dir(src), "alias")
	require.NoError(t, os.Symlink(src, alias))
	dst := filepath.Join(alias, "out")

	stats, err := operation.CopyTree(ctx, src, dst, operation.Options{MaxDepth: 8})
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.True(t, copyerr.IsDestinationConflict(err), "got %v", err)
	assert.Equal(t, dst, copyerr.PathOf(err))

	assert.NoDirExists(t, filepath.Join(src, "out"))
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
