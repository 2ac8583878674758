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

package opts

import (
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/treecopy/pkg/log"
)

// 🎯 RootOpts holds state shared by every treecopy command
type RootOpts struct {
	Debug   bool   // --debug
	LogFile string // --log-file
	JSON    bool   // --json

	Stdout io.Writer
	Stderr io.Writer

	// UserLogger is set once logging is configured, before any command runs.
	UserLogger *log.Logger

	closers []io.Closer
}

// AddCloser registers c to be closed by Close.
func (o *RootOpts) AddCloser(c io.Closer) {
	o.closers = append(o.closers, c)
}

// 🧹 Close releases log files and other resources opened during setup
func (o *RootOpts) Close() error {
	var errs []error
	for i := len(o.closers) - 1; i >= 0; i-- {
		if err := o.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	o.closers = nil
	if len(errs) > 0 {
		return errors.Errorf("closing resources: %w", errors.Join(errs...))
	}
	return nil
}
