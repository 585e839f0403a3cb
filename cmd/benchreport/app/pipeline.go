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

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dapr/benchreport/pkg/bench"
	"github.com/dapr/benchreport/pkg/chart"
	"github.com/dapr/benchreport/pkg/report"
)

// SummaryFile is the name of the markdown table written next to the charts.
const SummaryFile = "bench-summary.md"

// Pipeline turns the two benchmark results into the charts and summary table.
type Pipeline struct {
	LatencyFile  string
	ParallelFile string
	LatencyName  string
	ParallelName string
	// Chart.OutDir also receives the summary table.
	Chart chart.Options
}

func (p *Pipeline) Run(ctx context.Context) error {
	latency, err := bench.Load(p.LatencyFile)
	if err != nil {
		return err
	}
	parallel, err := bench.Load(p.ParallelFile)
	if err != nil {
		return err
	}

	a := chart.Run{Name: displayName(p.LatencyName, latency), Result: latency}
	b := chart.Run{Name: displayName(p.ParallelName, parallel), Result: parallel}

	if err = os.MkdirAll(p.Chart.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	r, err := chart.New(p.Chart)
	if err != nil {
		return err
	}

	stages := []func() error{
		func() error { return r.LatencyPercentiles(a, b, r.Filename(chart.LatencyPercentilesFile)) },
		func() error { return r.RequestsPerSecond(a, b, r.Filename(chart.RequestsPerSecondFile)) },
		func() error { return r.Throughput(a, b, r.Filename(chart.ThroughputFile)) },
		func() error {
			rows := []bench.Summary{
				bench.NewSummary(rowName(p.LatencyFile), latency),
				bench.NewSummary(rowName(p.ParallelFile), parallel),
			}
			return report.WriteMarkdown(filepath.Join(p.Chart.OutDir, SummaryFile), rows)
		},
	}
	for _, stage := range stages {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("benchmark report interrupted: %w", err)
		}
		if err = stage(); err != nil {
			return err
		}
	}

	return nil
}

// displayName labels a run with its connection count, e.g. "latency (c=1)".
// An absent or null count renders as "?".
func displayName(name string, r bench.Result) string {
	conns := r.Get("connections", nil)
	if conns == nil {
		conns = "?"
	}
	return fmt.Sprintf("%s (c=%v)", name, conns)
}

// rowName is the input file name without its extension.
func rowName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
