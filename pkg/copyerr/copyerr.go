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

// Package copyerr defines the errors returned while walking and copying a tree.
//
// Every error names the filesystem path it concerns. Match them with errors.As
// or with the Is* helpers.
package copyerr

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTooDeep is the cause of a WalkError when traversal passes the depth bound
	ErrTooDeep = errors.New("maximum directory depth exceeded")
	// ErrNotDirectory is the cause of a WalkError when the source root is not a directory
	ErrNotDirectory = errors.New("not a directory")
	// ErrUnsupportedFileType is the cause of an IOError for special files in strict mode
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// 🔍 SourceNotFoundError means the source root does not exist
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source not found: %s", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// 🚶 WalkError means a source directory could not be read
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walking %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// ⚔️ DestinationConflictError means a destination path exists with the wrong type
type DestinationConflictError struct {
	Path string
	Want string
	Got  string
}

func (e *DestinationConflictError) Error() string {
	return fmt.Sprintf("destination conflict at %s: want %s, found %s", e.Path, e.Want, e.Got)
}

// 💥 IOError is a read, write or create failure on one path
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// 🏷️ MetadataFailure is one file whose permissions or mtime could not be applied
type MetadataFailure struct {
	Path string
	Err  error
}

// 📋 MetadataError aggregates every failure of the metadata pass
type MetadataError struct {
	Failures []MetadataFailure
}

func (e *MetadataError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("applying metadata to %s: %v", e.Failures[0].Path, e.Failures[0].Err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "applying metadata failed for %d paths:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  %s: %v", f.Path, f.Err)
	}
	return b.String()
}

func (e *MetadataError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// Paths lists the failed paths in the order they were attempted.
func (e *MetadataError) Paths() []string {
	paths := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		paths = append(paths, f.Path)
	}
	return paths
}

func IsSourceNotFound(err error) bool {
	var e *SourceNotFoundError
	return errors.As(err, &e)
}

func IsWalk(err error) bool {
	var e *WalkError
	return errors.As(err, &e)
}

func IsDestinationConflict(err error) bool {
	var e *DestinationConflictError
	return errors.As(err, &e)
}

func IsIO(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

func IsMetadata(err error) bool {
	var e *MetadataError
	return errors.As(err, &e)
}

// 📍 PathOf returns the path carried by any error in this package, or "" if err has none
func PathOf(err error) string {
	var (
		snf *SourceNotFoundError
		we  *WalkError
		dc  *DestinationConflictError
		ioe *IOError
		me  *MetadataError
	)
	switch {
	case errors.As(err, &snf):
		return snf.Path
	case errors.As(err, &we):
		return we.Path
	case errors.As(err, &dc):
		return dc.Path
	case errors.As(err, &ioe):
		return ioe.Path
	case errors.As(err, &me) && len(me.Failures) > 0:
		return me.Failures[0].Path
	}
	return ""
}
