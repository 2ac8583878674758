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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner.
//
// An async runner executes each operation on its own goroutine and returns as
// soon as the context is done, abandoning the operation. Operations still run
// one at a time.
func NewRunner(logger *zerolog.Logger, async bool) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes an operation
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	if r.async {
		return r.runAsync(ctx, op)
	}
	return r.runSync(ctx, op)
}

// 📋 RunAll executes operations in order and stops at the first failure
func (r *OperationRunner) RunAll(ctx context.Context, ops ...Operation) error {
	for i, op := range ops {
		r.logger.Debug().Int("index", i).Int("total", len(ops)).Msg("running operation")
		if err := r.Run(ctx, op); err != nil {
			return err
		}
	}
	return nil
}

// 🔄 runSync runs an operation synchronously
func (r *OperationRunner) runSync(ctx context.Context, op Operation) error {
	return op.Execute(ctx)
}

// ⚡ runAsync runs an operation on a worker and waits for it or for cancellation.
// The group only ever holds that one worker; on cancellation it is abandoned
// and finishes in the background once op notices ctx.
func (r *OperationRunner) runAsync(ctx context.Context, op Operation) error {
	var g errgroup.Group
	g.Go(func() error {
		return op.Execute(ctx)
	})

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-ctx.Done():
		r.logger.Warn().Err(ctx.Err()).Msg("operation abandoned")
		return errors.Errorf("operation cancelled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return errors.Errorf("executing operation: %w", err)
		}
		return nil
	}
}
