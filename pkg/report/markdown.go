/*
Copyright 2026 The Dapr Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package report renders benchmark summaries as a markdown table.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/dapr/benchreport/pkg/bench"
	"github.com/dapr/kit/logger"
)

var log = logger.NewLogger("dapr.benchreport.report")

// Placeholder is rendered for absent values.
const Placeholder = "-"

// Headers are the column titles, one per bench.SummaryFieldNames entry.
var Headers = []string{
	"Benchmark", "Connections", "Duration (s)",
	"2xx", "Non-2xx", "Errors", "Timeouts",
	"Avg latency (ms)", "p50 (ms)", "p90 (ms)", "p99 (ms)", "Max (ms)",
	"Avg RPS", "Max RPS",
	"Avg Throughput (B/s)", "Max Throughput (B/s)",
}

const defaultDecimals = 2

// columnDecimals overrides the precision of individual columns.
// Throughput is in bytes, fractions of which are noise.
var columnDecimals = map[string]int{
	"thr_avg_bps": 0,
	"thr_max_bps": 0,
}

// FormatScalar renders s for a table cell. Absent values become the
// placeholder, integers and bools are printed as-is, and every other number
// is printed with the given number of decimals.
func FormatScalar(s bench.Scalar, decimals int) string {
	switch v := s.Value().(type) {
	case nil:
		return Placeholder
	case bool:
		return cast.ToString(v)
	case string:
		return v
	}

	if s.IsInteger() {
		return cast.ToString(s.Value())
	}
	f, ok := s.Float64()
	if !ok {
		return fmt.Sprint(s.Value())
	}
	return fmt.Sprintf("%.*f", decimals, f)
}

// Markdown renders rows as a markdown table with a header and separator line.
func Markdown(rows []bench.Summary) string {
	var b strings.Builder

	writeLine(&b, Headers)
	b.WriteString("|" + strings.Repeat("---|", len(Headers)) + "\n")

	cells := make([]string, len(bench.SummaryFieldNames))
	for _, row := range rows {
		for i, field := range row.Fields() {
			decimals, ok := columnDecimals[bench.SummaryFieldNames[i]]
			if !ok {
				decimals = defaultDecimals
			}
			cells[i] = escapeCell(FormatScalar(field, decimals))
		}
		writeLine(&b, cells)
	}

	return b.String()
}

// WriteMarkdown writes the markdown table for rows to path.
func WriteMarkdown(path string, rows []bench.Summary) error {
	if err := os.WriteFile(path, []byte(Markdown(rows)), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write summary table: %w", err)
	}
	log.Infof("Wrote summary table with %d rows to %s", len(rows), path)
	return nil
}

func writeLine(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// escapeCell keeps a value from breaking the table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
