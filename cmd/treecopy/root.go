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

package main

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/walteh/treecopy/cmd/treecopy/commands"
	"github.com/walteh/treecopy/cmd/treecopy/opts"
	"github.com/walteh/treecopy/pkg/log"
)

// newRootCmd builds the command tree; the returned opts must be closed once
// the command has run.
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *opts.RootOpts) {
	o := &opts.RootOpts{Stdout: stdout, Stderr: stderr}

	cmd := &cobra.Command{
		Use:   "treecopy",
		Short: "Copy directory trees, keeping permissions and modification times",
		Long: `treecopy recursively copies a directory tree into a destination,
merging into existing directories and overwriting files. File permissions and
modification times are carried over once all content has been written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), o)
			cmd.SetContext(ctx)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewCopyCmd(o),
		commands.NewPlanCmd(o),
	)

	return cmd, o
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "", "also write JSON logs to this file (rotated)")
	cmd.PersistentFlags().BoolVar(&o.JSON, "json", false, "emit structured logs only")
}

// setupLogging configures zerolog and the console logger based on flags
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	level := zerolog.InfoLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	var writers []io.Writer
	if o.JSON {
		writers = append(writers, o.Stderr)
	} else {
		// entries already reach stdout through the console logger
		stderrLevel := zerolog.WarnLevel
		if o.Debug {
			stderrLevel = zerolog.DebugLevel
		}
		writers = append(writers, levelFilter{
			w:   zerolog.ConsoleWriter{Out: o.Stderr, TimeFormat: time.Kitchen},
			min: stderrLevel,
		})
	}

	if o.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   o.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		o.AddCloser(file)
		writers = append(writers, file)
	}

	zlog := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.Must(uuid.NewV7()).String()).
		Logger()

	console := o.Stdout
	if o.JSON {
		console = io.Discard
	}
	o.UserLogger = log.New(console, zlog, o.Debug)

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, o.UserLogger)
}

// levelFilter drops events below min
type levelFilter struct {
	w   io.Writer
	min zerolog.Level
}

func (f levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f levelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < f.min {
		return len(p), nil
	}
	return f.w.Write(p)
}
