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

package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/treecopy/cmd/treecopy/opts"
	"github.com/walteh/treecopy/pkg/config"
	"github.com/walteh/treecopy/pkg/copyerr"
	"github.com/walteh/treecopy/pkg/log"
	"github.com/walteh/treecopy/pkg/operation"
)

type copyFlags struct {
	config string

	include []string
	exclude []string

	followSymlinks bool
	copySymlinks   bool
	strict         bool
	skipUnreadable bool
	noPerms        bool
	noTimes        bool
	dirMetadata    bool
	requireDest    bool
	maxDepth       int
	bufferSize     int
	async          bool
}

// copyJob pairs a job with its resolved options
type copyJob struct {
	job  operation.Job
	opts operation.Options
}

// 🔄 NewCopyCmd creates the copy command
func NewCopyCmd(o *opts.RootOpts) *cobra.Command {
	f := &copyFlags{}

	cmd := &cobra.Command{
		Use:   "copy [SRC DST]",
		Short: "Copy a directory tree",
		Long: `Copy walks SRC and recreates it under DST.
It will:
1. Create missing directories and merge into existing ones
2. Overwrite regular files with the source content
3. Apply permissions and modification times once all content is written

With --config, every copy listed in the file runs in order instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.config != "" {
				if len(args) != 0 {
					return errors.New("SRC and DST cannot be combined with --config")
				}
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "copy").Logger().WithContext(cmd.Context())

			jobs, async, err := f.jobs(ctx, args)
			if err != nil {
				return err
			}

			return runCopies(ctx, o, jobs, async)
		},
	}

	cmd.Flags().StringVarP(&f.config, "config", "c", "", "run every copy listed in this file (.yaml, .json, .hcl)")
	cmd.Flags().StringArrayVarP(&f.include, "include", "i", nil, "only copy files matching this glob (repeatable)")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "skip entries matching this glob (repeatable)")
	cmd.Flags().BoolVarP(&f.followSymlinks, "follow-symlinks", "L", false, "copy what symlinks point to")
	cmd.Flags().BoolVar(&f.copySymlinks, "copy-symlinks", false, "recreate symlinks at the destination")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail on special files instead of skipping them")
	cmd.Flags().BoolVar(&f.skipUnreadable, "skip-unreadable", false, "skip directories that cannot be listed")
	cmd.Flags().BoolVar(&f.noPerms, "no-perms", false, "do not copy permission bits")
	cmd.Flags().BoolVar(&f.noTimes, "no-times", false, "do not copy modification times")
	cmd.Flags().BoolVar(&f.dirMetadata, "dir-metadata", false, "also apply permissions and times to directories")
	cmd.Flags().BoolVar(&f.requireDest, "require-dest", false, "fail unless DST already exists")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "bound on directory depth when following symlinks (0 = default)")
	cmd.Flags().IntVar(&f.bufferSize, "buffer-size", 0, "copy buffer size in bytes (0 = default)")
	cmd.Flags().BoolVar(&f.async, "async", false, "run copies on a worker so interrupts return immediately")

	return cmd
}

// jobs resolves the copies to run from --config or from SRC DST and flags.
func (f *copyFlags) jobs(ctx context.Context, args []string) ([]copyJob, bool, error) {
	var cfg *config.Config
	if f.config != "" {
		loaded, err := config.Load(ctx, f.config)
		if err != nil {
			return nil, false, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
		log.FromContext(ctx).Infof("loaded %d copies from %s", len(cfg.Copies), cfg.Location())
	} else {
		cfg = &config.Config{Copies: []config.Copy{f.copy(args[0], args[1])}}
		if err := config.Validate(ctx, cfg); err != nil {
			return nil, false, errors.Errorf("invalid arguments: %w", err)
		}
	}

	jobs := make([]copyJob, 0, len(cfg.Copies))
	for _, c := range cfg.Copies {
		o, err := c.OperationOptions()
		if err != nil {
			return nil, false, err
		}
		jobs = append(jobs, copyJob{job: c.Job(), opts: o})
	}
	return jobs, cfg.Async || f.async, nil
}

func (f *copyFlags) copy(src, dst string) config.Copy {
	return config.Copy{
		Source:      src,
		Destination: dst,
		Include:     f.include,
		Exclude:     f.exclude,
		Options: &config.CopyOptions{
			FollowSymlinks:      f.followSymlinks,
			CopySymlinks:        f.copySymlinks,
			StrictSpecialFiles:  f.strict,
			SkipUnreadable:      f.skipUnreadable,
			SkipPermissions:     f.noPerms,
			SkipModTimes:        f.noTimes,
			PreserveDirMetadata: f.dirMetadata,
			RequireDestination:  f.requireDest,
			MaxDepth:            f.maxDepth,
			BufferSize:          f.bufferSize,
		},
	}
}

// runCopies runs jobs in order, stopping at the first failure, then prints a summary
func runCopies(ctx context.Context, o *opts.RootOpts, jobs []copyJob, async bool) error {
	logger := zerolog.Ctx(ctx)
	userLogger := log.FromContext(ctx)
	runner := operation.NewRunner(logger, async)

	rows := make([]log.SummaryRow, 0, len(jobs))
	for _, j := range jobs {
		j.opts.Observer = userLogger
		op := operation.NewCopyOperation(j.job, j.opts)

		userLogger.StartJob(ctx, log.JobOperation{
			Name:        j.job.Name,
			Source:      j.job.Source,
			Destination: j.job.Destination,
		})
		start := time.Now()
		err := runner.Run(ctx, op)
		userLogger.EndJob(ctx)
		if err != nil {
			logger.Error().Str("job", j.job.Name).Str("path", copyerr.PathOf(err)).Err(err).Msg("copy failed")
			var merr *copyerr.MetadataError
			if errors.As(err, &merr) {
				userLogger.Errorf("%s: metadata not applied to %s", j.job.Name, strings.Join(merr.Paths(), ", "))
			}
			return errors.Errorf("copying %s: %w", j.job.Name, err)
		}

		stats := op.Stats()
		rows = append(rows, log.SummaryRow{Job: j.job.Name, Stats: *stats, Elapsed: time.Since(start)})
		logger.Info().
			Str("job", j.job.Name).
			Int64("bytes", stats.Bytes).
			Int("files", stats.Files).
			Int("dirs", stats.Dirs).
			Int("symlinks", stats.Symlinks).
			Int("skipped", stats.Skipped).
			Msg("copy stats")
		if stats.Skipped > 0 {
			userLogger.Warningf("%s: %d entries not copied", j.job.Name, stats.Skipped)
		}
	}

	if o.JSON {
		return nil
	}

	summary, err := log.RenderSummary(rows)
	if err != nil {
		return err
	}
	userLogger.LogNewline()
	fmt.Fprintln(o.Stdout, summary)
	userLogger.Successf("copied %d tree(s)", len(rows))
	return nil
}
