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

package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/dapr/benchreport/pkg/bench"
)

// Canonical chart file names, without extension.
const (
	LatencyPercentilesFile = "latency-percentiles-compare"
	RequestsPerSecondFile  = "rps-compare"
	ThroughputFile         = "throughput-compare"
)

// ErrNoCommonPercentiles is returned when two runs share no latency
// percentile to compare.
var ErrNoCommonPercentiles = errors.New("no latency percentiles reported by both runs")

// Run is one named benchmark result plotted as a series.
type Run struct {
	Name   string
	Result bench.Result
}

const (
	percentileBarFraction = 0.38
	statsBarFraction      = 0.35
)

// LatencyPercentiles writes a chart comparing the latency percentiles both
// runs report.
func (r *Renderer) LatencyPercentiles(a, b Run, file string) error {
	p, err := r.latencyPercentilesPlot(a, b)
	if err != nil {
		return err
	}
	return r.save(p, p.Title.Text, file)
}

// RequestsPerSecond writes a chart of the average and max requests per
// second of each run.
func (r *Renderer) RequestsPerSecond(a, b Run, file string) error {
	p, err := r.statsPlot(a, b, statsChart{
		key:      "requests",
		title:    "Requests per second",
		yLabel:   "Requests/sec",
		avgLabel: "Avg RPS",
		maxLabel: "Max RPS",
	})
	if err != nil {
		return err
	}
	return r.save(p, p.Title.Text, file)
}

// Throughput writes a chart of the average and max bytes per second of
// each run.
func (r *Renderer) Throughput(a, b Run, file string) error {
	p, err := r.statsPlot(a, b, statsChart{
		key:      "throughput",
		title:    "Throughput",
		yLabel:   "Bytes/sec",
		avgLabel: "Avg throughput (B/s)",
		maxLabel: "Max throughput (B/s)",
	})
	if err != nil {
		return err
	}
	return r.save(p, p.Title.Text, file)
}

func (r *Renderer) latencyPercentilesPlot(a, b Run) (*plot.Plot, error) {
	aPoints := bench.PercentilePoints(a.Result.Map("latency"))
	bPoints := bench.PercentilePoints(b.Result.Map("latency"))

	labels := bench.CommonLabels(aPoints, bPoints)
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: %q and %q", ErrNoCommonPercentiles, a.Name, b.Name)
	}
	log.Debugf("Comparing latency percentiles %v", labels)

	return r.plot(groupedBars{
		title:      "Latency percentiles comparison",
		xLabel:     "Percentile",
		yLabel:     "Latency (ms)",
		categories: labels,
		series: []series{
			{label: a.Name, values: bench.PercentileValues(aPoints, labels)},
			{label: b.Name, values: bench.PercentileValues(bPoints, labels)},
		},
		barFraction: percentileBarFraction,
	})
}

type statsChart struct {
	key      string
	title    string
	yLabel   string
	avgLabel string
	maxLabel string
}

func (r *Renderer) statsPlot(a, b Run, c statsChart) (*plot.Plot, error) {
	runs := []Run{a, b}
	names := make([]string, len(runs))
	avg := make(plotter.Values, len(runs))
	peak := make(plotter.Values, len(runs))
	for i, run := range runs {
		stats := run.Result.Map(c.key)
		names[i] = run.Name
		avg[i] = valueOrZero(run.Name, stats, c.key, "average")
		peak[i] = valueOrZero(run.Name, stats, c.key, "max")
	}

	return r.plot(groupedBars{
		title:      c.title,
		xLabel:     "Benchmark",
		yLabel:     c.yLabel,
		categories: names,
		series: []series{
			{label: c.avgLabel, values: avg},
			{label: c.maxLabel, values: peak},
		},
		barFraction: statsBarFraction,
	})
}

// valueOrZero reads a statistic for charting. Bars need a height, so a
// missing value is drawn as 0.
func valueOrZero(run string, stats bench.Result, key, stat string) float64 {
	v, ok := stats.Float(stat)
	if !ok {
		log.Debugf("Run %q has no %s.%s, charting it as 0", run, key, stat)
		return 0
	}
	return v
}

func (r *Renderer) save(p *plot.Plot, title, file string) error {
	wt, err := r.encode(p)
	if err != nil {
		return fmt.Errorf("failed to encode %s chart: %w", title, err)
	}
	return r.write(wt, title, file)
}
