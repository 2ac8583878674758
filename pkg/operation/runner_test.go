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

package operation_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treecopy/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 🎭 funcOperation adapts a function to Operation
type funcOperation func(ctx context.Context) error

func (f funcOperation) Execute(ctx context.Context) error { return f(ctx) }

func TestRunner(t *testing.T) {
	tests := []struct {
		name        string
		async       bool
		op          operation.Operation
		wantErr     bool
		errContains string
	}{
		{
			name:  "sync_success",
			async: false,
			op:    funcOperation(func(context.Context) error { return nil }),
		},
		{
			name:        "sync_failure",
			async:       false,
			op:          funcOperation(func(context.Context) error { return errors.New("boom") }),
			wantErr:     true,
			errContains: "boom",
		},
		{
			name:  "async_success",
			async: true,
			op:    funcOperation(func(context.Context) error { return nil }),
		},
		{
			name:        "async_failure",
			async:       true,
			op:          funcOperation(func(context.Context) error { return errors.New("boom") }),
			wantErr:     true,
			errContains: "executing operation: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			runner := operation.NewRunner(&logger, tt.async)

			err := runner.Run(context.Background(), tt.op)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRunnerAsyncCancellation(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := operation.NewRunner(&logger, true)

	release := make(chan struct{})
	defer close(release)
	blocking := funcOperation(func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := runner.Run(ctx, blocking)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "operation cancelled")
	assert.Less(t, time.Since(start), 5*time.Second, "runner should not wait for the abandoned operation")
}

func TestRunnerRunAllStopsAtFirstFailure(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := operation.NewRunner(&logger, false)

	var ran []int
	op := func(i int, err error) operation.Operation {
		return funcOperation(func(context.Context) error {
			ran = append(ran, i)
			return err
		})
	}

	err := runner.RunAll(context.Background(), op(1, nil), op(2, errors.New("second failed")), op(3, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second failed")
	assert.Equal(t, []int{1, 2}, ran)
}

func TestRunnerRunsCopyOperations(t *testing.T) {
	ctx, src, dst := createTestEnv(t)
	writeFile(t, src, "a", "abc", 0o644)

	runner := operation.NewRunner(zerolog.Ctx(ctx), true)
	op := operation.NewCopyOperation(operation.Job{Source: src, Destination: dst}, operation.Options{})
	require.NoError(t, runner.RunAll(ctx, op))
	require.NotNil(t, op.Stats())
	assert.Equal(t, 1, op.Stats().Files)
}
