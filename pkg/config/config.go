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

package config

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/treecopy/pkg/filter"
	"github.com/walteh/treecopy/pkg/fsx"
	"github.com/walteh/treecopy/pkg/operation"
)

// 📝 Config is the root of a treecopy file
type Config struct {
	Copies []Copy `json:"copies" yaml:"copies" hcl:"copy,block"`
	Async  bool   `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`

	location string
}

// 📦 Copy is one source to destination job
type Copy struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,label"`
	Source      string       `json:"source" yaml:"source" hcl:"source"`
	Destination string       `json:"destination" yaml:"destination" hcl:"destination"`
	Include     []string     `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude     []string     `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Options     *CopyOptions `json:"options,omitempty" yaml:"options,omitempty" hcl:"options,block"`
}

// 🔧 CopyOptions mirrors the tunables of operation.Options
type CopyOptions struct {
	FollowSymlinks      bool `json:"follow_symlinks,omitempty" yaml:"follow_symlinks,omitempty" hcl:"follow_symlinks,optional"`
	CopySymlinks        bool `json:"copy_symlinks,omitempty" yaml:"copy_symlinks,omitempty" hcl:"copy_symlinks,optional"`
	StrictSpecialFiles  bool `json:"strict_special_files,omitempty" yaml:"strict_special_files,omitempty" hcl:"strict_special_files,optional"`
	SkipUnreadable      bool `json:"skip_unreadable,omitempty" yaml:"skip_unreadable,omitempty" hcl:"skip_unreadable,optional"`
	SkipPermissions     bool `json:"skip_permissions,omitempty" yaml:"skip_permissions,omitempty" hcl:"skip_permissions,optional"`
	SkipModTimes        bool `json:"skip_mod_times,omitempty" yaml:"skip_mod_times,omitempty" hcl:"skip_mod_times,optional"`
	PreserveDirMetadata bool `json:"dir_metadata,omitempty" yaml:"dir_metadata,omitempty" hcl:"dir_metadata,optional"`
	RequireDestination  bool `json:"require_destination,omitempty" yaml:"require_destination,omitempty" hcl:"require_destination,optional"`
	MaxDepth            int  `json:"max_depth,omitempty" yaml:"max_depth,omitempty" hcl:"max_depth,optional"`
	BufferSize          int  `json:"buffer_size,omitempty" yaml:"buffer_size,omitempty" hcl:"buffer_size,optional"`
}

// Location returns the file the config was loaded from.
func (c *Config) Location() string {
	return c.location
}

// Patterns returns the job's globs as a filter.Patterns.
func (c Copy) Patterns() filter.Patterns {
	return filter.Patterns{Include: c.Include, Exclude: c.Exclude}
}

// Job returns the operation.Job for this copy.
func (c Copy) Job() operation.Job {
	name := c.Name
	if name == "" {
		name = filepath.Base(c.Source)
	}
	return operation.Job{Name: name, Source: c.Source, Destination: c.Destination}
}

// 🏭 OperationOptions builds operation.Options for this copy. FS and Observer are left
// for the caller.
func (c Copy) OperationOptions() (operation.Options, error) {
	var opts operation.Options
	if !c.Patterns().IsEmpty() {
		f, err := filter.New(c.Patterns())
		if err != nil {
			return opts, errors.Errorf("building filter for %s: %w", c.Source, err)
		}
		opts.Filter = f
	}
	if o := c.Options; o != nil {
		opts.FollowSymlinks = o.FollowSymlinks
		opts.CopySymlinks = o.CopySymlinks
		opts.StrictSpecialFiles = o.StrictSpecialFiles
		opts.SkipUnreadable = o.SkipUnreadable
		opts.SkipPermissions = o.SkipPermissions
		opts.SkipModTimes = o.SkipModTimes
		opts.PreserveDirMetadata = o.PreserveDirMetadata
		opts.RequireDestination = o.RequireDestination
		opts.MaxDepth = o.MaxDepth
		opts.BufferSize = o.BufferSize
	}
	return opts, nil
}

// 🔍 Validate checks the config for errors
func Validate(ctx context.Context, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	if len(cfg.Copies) == 0 {
		return errors.New("at least one copy is required")
	}

	names := make(map[string]int, len(cfg.Copies))
	for i, c := range cfg.Copies {
		if err := c.validate(); err != nil {
			return errors.Errorf("copy %d: %w", i, err)
		}
		if c.Name != "" {
			if prev, ok := names[c.Name]; ok {
				return errors.Errorf("copy %d: name %q already used by copy %d", i, c.Name, prev)
			}
			names[c.Name] = i
		}
		logger.Trace().Int("index", i).Str("source", c.Source).Str("destination", c.Destination).Msg("copy validated")
	}

	return nil
}

func (c Copy) validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.Destination == "" {
		return errors.New("destination is required")
	}
	if fsx.Within(c.Source, c.Destination) {
		return errors.Errorf("destination %s is inside source %s", c.Destination, c.Source)
	}
	if err := c.Patterns().Validate(); err != nil {
		return errors.Errorf("patterns: %w", err)
	}
	if o := c.Options; o != nil {
		if o.MaxDepth < 0 {
			return errors.Errorf("max_depth must not be negative, got %d", o.MaxDepth)
		}
		if o.BufferSize < 0 {
			return errors.Errorf("buffer_size must not be negative, got %d", o.BufferSize)
		}
		if o.FollowSymlinks && o.CopySymlinks {
			return errors.New("follow_symlinks and copy_symlinks are mutually exclusive")
		}
	}
	return nil
}

// resolve makes relative copy paths relative to dir.
func (c *Config) resolve(dir string) {
	for i := range c.Copies {
		c.Copies[i].Source = resolvePath(dir, c.Copies[i].Source)
		c.Copies[i].Destination = resolvePath(dir, c.Copies[i].Destination)
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
