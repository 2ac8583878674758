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

package log

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/walteh/treecopy/pkg/operation"
	"github.com/walteh/treecopy/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 📊 SummaryRow is one job's line in the final summary
type SummaryRow struct {
	Job     string
	Stats   operation.CopyStats
	Elapsed time.Duration
}

// 📊 RenderSummary renders a table of per-job stats with a total row
func RenderSummary(rows []SummaryRow) (string, error) {
	data := pterm.TableData{{"job", "files", "dirs", "symlinks", "skipped", "size", "time"}}

	var total operation.CopyStats
	var elapsed time.Duration
	for _, r := range rows {
		total.Add(r.Stats)
		elapsed += r.Elapsed
		data = append(data, statsRow(r.Job, r.Stats, r.Elapsed))
	}
	if len(rows) > 1 {
		data = append(data, statsRow("total", total, elapsed))
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out, nil
}

func statsRow(name string, s operation.CopyStats, elapsed time.Duration) []string {
	return []string{
		name,
		strconv.Itoa(s.Files),
		strconv.Itoa(s.Dirs),
		strconv.Itoa(s.Symlinks),
		strconv.Itoa(s.Skipped),
		humanize.Bytes(uint64(s.Bytes)),
		elapsed.Round(time.Millisecond).String(),
	}
}

// 🗺️ RenderPlan renders the entries a copy would visit
func RenderPlan(entries []walk.Entry) (string, error) {
	data := pterm.TableData{{"path", "kind", "size", "mode", "modified"}}

	var files int
	var bytes int64
	for _, e := range entries {
		size := ""
		if e.Kind == walk.KindFile {
			size = humanize.Bytes(uint64(e.Size))
			files++
			bytes += e.Size
		}
		path := e.Path
		if e.IsRoot() {
			path = "."
		}
		if e.Kind == walk.KindSymlink {
			path += " -> " + e.LinkTarget
		}
		data = append(data, []string{path, e.Kind.String(), size, e.Perm.String(), e.ModTime.Format(time.RFC3339)})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering plan: %w", err)
	}
	return fmt.Sprintf("%s\n%d entries, %d files, %s", out, len(entries), files, humanize.Bytes(uint64(bytes))), nil
}
