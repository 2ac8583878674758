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

package walk_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treecopy/pkg/copyerr"
	"github.com/walteh/treecopy/pkg/walk"
)

func kinds(entries []walk.Entry) map[string]walk.Kind {
	out := make(map[string]walk.Kind, len(entries))
	for _, e := range entries {
		out[e.Path] = e.Kind
	}
	return out
}

func TestWalkSymlinksAreLeaves(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"dir/file": "x"})
	require.NoError(t, os.Symlink("dir", filepath.Join(root, "link-dir")))
	require.NoError(t, os.Symlink("missing", filepath.Join(root, "broken")))
	require.NoError(t, os.Symlink(".", filepath.Join(root, "dir", "loop")))
	require.NoError(t, os.Symlink("self", filepath.Join(root, "self")))

	entries, err := walk.Collect(testCtx(t), root, walk.Options{})
	require.NoError(t, err, "cyclic and broken links should not break the walk")

	assert.Equal(t, []string{"", "broken", "dir", "dir/file", "dir/loop", "link-dir", "self"}, paths(entries))
	got := kinds(entries)
	assert.Equal(t, walk.KindSymlink, got["link-dir"])
	assert.Equal(t, walk.KindSymlink, got["broken"])
	assert.Equal(t, walk.KindSymlink, got["dir/loop"])
	assert.Equal(t, walk.KindSymlink, got["self"])

	for _, e := range entries {
		if e.Path == "link-dir" {
			assert.Equal(t, "dir", e.LinkTarget)
		}
	}
}

func TestWalkFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"dir/file": "xyz", "plain": "p"})
	require.NoError(t, os.Symlink("dir", filepath.Join(root, "link-dir")))
	require.NoError(t, os.Symlink("plain", filepath.Join(root, "link-file")))
	require.NoError(t, os.Symlink("missing", filepath.Join(root, "broken")))

	entries, err := walk.Collect(testCtx(t), root, walk.Options{FollowSymlinks: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"", "broken", "dir", "dir/file", "link-dir", "link-dir/file", "link-file", "plain"}, paths(entries))
	got := kinds(entries)
	assert.Equal(t, walk.KindDir, got["link-dir"])
	assert.Equal(t, walk.KindFile, got["link-dir/file"])
	assert.Equal(t, walk.KindFile, got["link-file"])
	assert.Equal(t, walk.KindSymlink, got["broken"], "dangling links stay links")
}

func TestWalkFollowSymlinkLoopIsDepthBounded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"dir/": ""})
	require.NoError(t, os.Symlink("..", filepath.Join(root, "dir", "up")))

	entries, err := walk.Collect(testCtx(t), root, walk.Options{FollowSymlinks: true, MaxDepth: 6})
	require.Error(t, err)
	assert.True(t, copyerr.IsWalk(err))
	assert.ErrorIs(t, err, copyerr.ErrTooDeep)
	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.LessOrEqual(t, e.Depth(), 6)
	}
}

func TestWalkSpecialFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a": ""})
	require.NoError(t, syscall.Mkfifo(filepath.Join(root, "fifo"), 0o644))

	entries, err := walk.Collect(testCtx(t), root, walk.Options{})
	require.NoError(t, err)
	assert.Equal(t, walk.KindOther, kinds(entries)["fifo"])
}
