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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/treecopy/cmd/treecopy/opts"
	"github.com/walteh/treecopy/pkg/filter"
	"github.com/walteh/treecopy/pkg/log"
	"github.com/walteh/treecopy/pkg/operation"
)

// 📋 NewPlanCmd creates the plan command
func NewPlanCmd(o *opts.RootOpts) *cobra.Command {
	var (
		patterns       filter.Patterns
		followSymlinks bool
		skipUnreadable bool
		maxDepth       int
	)

	cmd := &cobra.Command{
		Use:   "plan SRC",
		Short: "List the entries a copy of SRC would visit",
		Long: `Plan walks SRC with the same filter and symlink rules as copy and
prints every entry that would be copied, without writing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "plan").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			if maxDepth < 0 {
				return errors.Errorf("--max-depth must not be negative, got %d", maxDepth)
			}

			planOpts := operation.Options{
				FollowSymlinks: followSymlinks,
				SkipUnreadable: skipUnreadable,
				MaxDepth:       maxDepth,
			}
			if !patterns.IsEmpty() {
				f, err := filter.New(patterns)
				if err != nil {
					return errors.Errorf("invalid arguments: %w", err)
				}
				planOpts.Filter = f
			}

			entries, err := operation.Plan(ctx, args[0], planOpts)
			if err != nil {
				return errors.Errorf("planning %s: %w", args[0], err)
			}

			if o.JSON {
				for _, e := range entries {
					logger.Info().
						Str("path", e.Path).
						Str("kind", e.Kind.String()).
						Int64("size", e.Size).
						Str("mode", e.Perm.String()).
						Time("modified", e.ModTime).
						Msg("entry")
				}
				return nil
			}

			table, err := log.RenderPlan(entries)
			if err != nil {
				return err
			}
			log.FromContext(ctx).Header("plan for " + args[0])
			fmt.Fprintln(o.Stdout, table)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&patterns.Include, "include", "i", nil, "only list files matching this glob (repeatable)")
	cmd.Flags().StringArrayVarP(&patterns.Exclude, "exclude", "x", nil, "skip entries matching this glob (repeatable)")
	cmd.Flags().BoolVarP(&followSymlinks, "follow-symlinks", "L", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&skipUnreadable, "skip-unreadable", false, "skip directories that cannot be listed")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "bound on directory depth when following symlinks (0 = default)")

	return cmd
}
