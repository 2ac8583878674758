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
	"io/fs"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/treecopy/pkg/copyerr"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ pendingMetadata is a destination path and the source metadata captured when it was walked
type pendingMetadata struct {
	path    string
	modTime time.Time
	perm    fs.FileMode
}

// 🕰️ applyMetadata runs the deferred metadata pass.
//
// Files are visited in copy order, then created directories deepest first.
// A failure on one path does not stop the others; all failures come back in
// one *copyerr.MetadataError.
func (c *copier) applyMetadata(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	if c.opts.SkipPermissions && c.opts.SkipModTimes {
		c.pending, c.pendingDirs = nil, nil
		return nil
	}

	var failures []copyerr.MetadataFailure
	apply := func(p pendingMetadata) {
		if err := c.applyOne(p); err != nil {
			logger.Error().Str("path", p.path).Err(err).Msg("applying metadata")
			c.opts.Observer.MetadataFailed(ctx, p.path, err)
			failures = append(failures, copyerr.MetadataFailure{Path: p.path, Err: err})
		}
	}

	for _, p := range c.pending {
		apply(p)
	}
	for i := len(c.pendingDirs) - 1; i >= 0; i-- {
		apply(c.pendingDirs[i])
	}
	logger.Debug().Int("files", len(c.pending)).Int("dirs", len(c.pendingDirs)).Int("failures", len(failures)).Msg("metadata applied")
	c.pending, c.pendingDirs = nil, nil

	if len(failures) > 0 {
		return &copyerr.MetadataError{Failures: failures}
	}
	return nil
}

// applyOne sets permissions before the mtime; on some platforms a chmod touches timestamps
func (c *copier) applyOne(p pendingMetadata) error {
	if !c.opts.SkipPermissions {
		if err := c.fs.Chmod(p.path, p.perm); err != nil {
			return errors.Errorf("setting permissions %s: %w", p.perm, err)
		}
	}
	if !c.opts.SkipModTimes {
		if err := c.fs.Chtimes(p.path, time.Time{}, p.modTime); err != nil {
			return errors.Errorf("setting mtime: %w", err)
		}
	}
	return nil
}
