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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oldTime = time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	require.NoError(t, os.Chtimes(path, oldTime, oldTime))
}

func newSourceTree(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	writeFile(t, src, "a.txt", "alpha")
	writeFile(t, src, "sub/b.txt", "bravo")
	writeFile(t, src, "sub/skip.tmp", "tmp")
	return src
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCopyCommand(t *testing.T) {
	src := newSourceTree(t)
	dst := filepath.Join(t.TempDir(), "dst")

	code, stdout, stderr := runCLI(t, "copy", src, dst, "--exclude", "*.tmp")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	data, err := os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bravo", string(data))

	fi, err := os.Stat(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm())
	assert.True(t, fi.ModTime().Equal(oldTime), "mtime = %s", fi.ModTime())

	assert.NoFileExists(t, filepath.Join(dst, "sub", "skip.tmp"))

	assert.Contains(t, stdout, "a.txt")
	assert.Contains(t, stdout, "sub/b.txt")
	assert.Contains(t, stdout, "copied 1 tree(s)")
}

func TestCopyCommandConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one/x.txt", "x")
	writeFile(t, dir, "two/y.txt", "y")

	cfgPath := filepath.Join(dir, "treecopy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
copies:
  - name: first
    source: one
    destination: out/one
  - name: second
    source: two
    destination: out/two
    options:
      skip_mod_times: true
`), 0o644))

	code, stdout, stderr := runCLI(t, "copy", "--config", cfgPath)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(dir, "out", "one", "x.txt"))
	assert.FileExists(t, filepath.Join(dir, "out", "two", "y.txt"))

	assert.Contains(t, stdout, "first")
	assert.Contains(t, stdout, "second")
	assert.Contains(t, stdout, "total")
	assert.Contains(t, stdout, "copied 2 tree(s)")
	assert.Contains(t, stdout, "loaded 2 copies from "+cfgPath)
}

func TestCopyCommandErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        func(src, dst string) []string
		errContains string
	}{
		{
			name:        "missing_source",
			args:        func(src, dst string) []string { return []string{"copy", filepath.Join(src, "nope"), dst} },
			errContains: "source not found",
		},
		{
			name:        "missing_arguments",
			args:        func(src, dst string) []string { return []string{"copy", src} },
			errContains: "accepts 2 arg(s)",
		},
		{
			name:        "config_and_arguments",
			args:        func(src, dst string) []string { return []string{"copy", "--config", "x.yaml", src, dst} },
			errContains: "cannot be combined with --config",
		},
		{
			name:        "destination_inside_source",
			args:        func(src, dst string) []string { return []string{"copy", src, filepath.Join(src, "backup")} },
			errContains: "is inside source",
		},
		{
			name:        "invalid_pattern",
			args:        func(src, dst string) []string { return []string{"copy", src, dst, "--exclude", "[oops"} },
			errContains: "invalid pattern",
		},
		{
			name:        "follow_and_copy_symlinks",
			args:        func(src, dst string) []string { return []string{"copy", src, dst, "-L", "--copy-symlinks"} },
			errContains: "mutually exclusive",
		},
		{
			name:        "missing_config",
			args:        func(src, dst string) []string { return []string{"copy", "--config", filepath.Join(dst, "none.yaml")} },
			errContains: "loading config",
		},
		{
			name:        "require_destination",
			args:        func(src, dst string) []string { return []string{"copy", src, dst, "--require-dest"} },
			errContains: "file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSourceTree(t)
			dst := filepath.Join(t.TempDir(), "dst")

			code, _, stderr := runCLI(t, tt.args(src, dst)...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.errContains)
		})
	}
}

func TestPlanCommand(t *testing.T) {
	src := newSourceTree(t)

	code, stdout, stderr := runCLI(t, "plan", src, "--exclude", "*.tmp")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Contains(t, stdout, "a.txt")
	assert.Contains(t, stdout, "sub/b.txt")
	assert.NotContains(t, stdout, "skip.tmp")
	assert.Contains(t, stdout, "4 entries, 2 files")
}

func TestJSONOutput(t *testing.T) {
	src := newSourceTree(t)
	dst := filepath.Join(t.TempDir(), "dst")

	code, stdout, stderr := runCLI(t, "--json", "copy", src, dst)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"run_id"`)
	assert.Contains(t, stderr, `"message":"copy stats"`)
	assert.Contains(t, stderr, `"files":3`)
}

func TestJSONOutputOnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	dst := filepath.Join(t.TempDir(), "dst")

	code, _, stderr := runCLI(t, "--json", "copy", missing, dst)
	require.Equal(t, 1, code)

	assert.Contains(t, stderr, `"message":"copy failed"`)
	assert.Contains(t, stderr, `"path":"`+missing+`"`)
}

func TestLogFile(t *testing.T) {
	src := newSourceTree(t)
	dst := filepath.Join(t.TempDir(), "dst")
	logPath := filepath.Join(t.TempDir(), "treecopy.log")

	code, _, stderr := runCLI(t, "--log-file", logPath, "copy", src, dst)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"copy stats"`)
	assert.Contains(t, string(data), `"command":"copy"`)
}
