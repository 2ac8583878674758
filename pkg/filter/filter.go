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

// Package filter builds walk filters from doublestar glob patterns.
//
// Patterns are matched against the slash separated path relative to the
// source root. A pattern without a slash also matches the entry's base name,
// so "*.log" excludes log files at any depth.
package filter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/treecopy/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Patterns lists include and exclude globs
type Patterns struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
}

// IsEmpty reports whether no pattern is set.
func (p Patterns) IsEmpty() bool {
	return len(p.Include) == 0 && len(p.Exclude) == 0
}

// 🔍 Validate checks every pattern's syntax
func (p Patterns) Validate() error {
	for _, pattern := range append(append([]string{}, p.Include...), p.Exclude...) {
		if pattern == "" {
			return errors.Errorf("empty pattern")
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid pattern %q", pattern)
		}
	}
	return nil
}

// 🏭 New builds a filter from patterns.
//
// Excludes win over includes and prune whole directories. When includes are
// given, only matching non-directory entries are kept; directories are still
// descended into so deeper matches are found.
func New(p Patterns) (walk.Filter, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Errorf("building filter: %w", err)
	}
	if p.IsEmpty() {
		return walk.AcceptAll, nil
	}

	include := append([]string{}, p.Include...)
	exclude := append([]string{}, p.Exclude...)

	return func(rel string, kind walk.Kind) bool {
		if rel == "" {
			return true
		}
		if matchAny(exclude, rel) {
			return false
		}
		if len(include) == 0 || kind == walk.KindDir {
			return true
		}
		return matchAny(include, rel)
	}, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if Match(pattern, rel) {
			return true
		}
	}
	return false
}

// Match reports whether rel matches pattern. Patterns were validated by New,
// so match errors cannot occur here.
func Match(pattern, rel string) bool {
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	ok, _ := doublestar.Match(pattern, path.Base(rel))
	return ok
}
