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

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treecopy/pkg/walk"
)

func TestNew(t *testing.T) {
	type check struct {
		rel  string
		kind walk.Kind
		want bool
	}
	tests := []struct {
		name        string
		patterns    Patterns
		wantErr     bool
		errContains string
		checks      []check
	}{
		{
			name:     "empty_accepts_everything",
			patterns: Patterns{},
			checks: []check{
				{"", walk.KindDir, true},
				{"a/b.log", walk.KindFile, true},
				{"dev", walk.KindOther, true},
			},
		},
		{
			name:     "exclude_directory_and_basename",
			patterns: Patterns{Exclude: []string{"logs", "*.tmp"}},
			checks: []check{
				{"", walk.KindDir, true},
				{"logs", walk.KindDir, false},
				{"src/logs", walk.KindDir, false},
				{"src/a.tmp", walk.KindFile, false},
				{"src/a.go", walk.KindFile, true},
			},
		},
		{
			name:     "exclude_anchored_path",
			patterns: Patterns{Exclude: []string{"build/*"}},
			checks: []check{
				{"build", walk.KindDir, true},
				{"build/out", walk.KindFile, false},
				{"src/build/out", walk.KindFile, true},
			},
		},
		{
			name:     "include_keeps_directories",
			patterns: Patterns{Include: []string{"**/*.go"}, Exclude: []string{"vendor"}},
			checks: []check{
				{"pkg", walk.KindDir, true},
				{"pkg/a.go", walk.KindFile, true},
				{"main.go", walk.KindFile, true},
				{"README.md", walk.KindFile, false},
				{"vendor", walk.KindDir, false},
			},
		},
		{
			name:        "invalid_pattern",
			patterns:    Patterns{Include: []string{"[a-"}},
			wantErr:     true,
			errContains: `invalid pattern "[a-"`,
		},
		{
			name:        "empty_pattern",
			patterns:    Patterns{Exclude: []string{""}},
			wantErr:     true,
			errContains: "empty pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.patterns)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			for _, p := range tt.checks {
				assert.Equal(t, p.want, f(p.rel, p.kind), "filter(%q, %s)", p.rel, p.kind)
			}
		})
	}
}
