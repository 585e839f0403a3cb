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

package bench

// SummaryFieldNames are the keys of a Summary, in column order.
var SummaryFieldNames = []string{
	"name",
	"connections",
	"duration_s",
	"2xx",
	"non2xx",
	"errors",
	"timeouts",
	"avg_latency_ms",
	"p50_ms",
	"p90_ms",
	"p99_ms",
	"max_ms",
	"rps_avg",
	"rps_max",
	"thr_avg_bps",
	"thr_max_bps",
}

// Summary is the flat, fixed-shape view of one Result used for tabular
// output. Absent source fields stay absent; they are only turned into a
// placeholder when formatted.
type Summary struct {
	Name            string
	Connections     Scalar
	DurationSeconds Scalar
	Count2xx        Scalar
	CountNon2xx     Scalar
	Errors          Scalar
	Timeouts        Scalar

	AvgLatencyMs Scalar
	P50Ms        Scalar
	P90Ms        Scalar
	P99Ms        Scalar
	MaxMs        Scalar

	RPSAvg Scalar
	RPSMax Scalar

	ThroughputAvgBps Scalar
	ThroughputMaxBps Scalar
}

// NewSummary flattens r into a Summary named name.
func NewSummary(name string, r Result) Summary {
	lat := r.Map("latency")
	req := r.Map("requests")
	thr := r.Map("throughput")

	return Summary{
		Name:             name,
		Connections:      ScalarOf(r.Get("connections", nil)),
		DurationSeconds:  ScalarOf(r.Get("duration", nil)),
		Count2xx:         ScalarOf(r.Get("2xx", nil)),
		CountNon2xx:      ScalarOf(r.Get("non2xx", nil)),
		Errors:           ScalarOf(r.Get("errors", nil)),
		Timeouts:         ScalarOf(r.Get("timeouts", nil)),
		AvgLatencyMs:     ScalarOf(lat.Get("average", nil)),
		P50Ms:            ScalarOf(lat.Get("p50", nil)),
		P90Ms:            ScalarOf(lat.Get("p90", nil)),
		P99Ms:            ScalarOf(lat.Get("p99", nil)),
		MaxMs:            ScalarOf(lat.Get("max", nil)),
		RPSAvg:           ScalarOf(req.Get("average", nil)),
		RPSMax:           ScalarOf(req.Get("max", nil)),
		ThroughputAvgBps: ScalarOf(thr.Get("average", nil)),
		ThroughputMaxBps: ScalarOf(thr.Get("max", nil)),
	}
}

// Fields returns every cell of s in SummaryFieldNames order.
func (s Summary) Fields() []Scalar {
	return []Scalar{
		ScalarOf(s.Name),
		s.Connections,
		s.DurationSeconds,
		s.Count2xx,
		s.CountNon2xx,
		s.Errors,
		s.Timeouts,
		s.AvgLatencyMs,
		s.P50Ms,
		s.P90Ms,
		s.P99Ms,
		s.MaxMs,
		s.RPSAvg,
		s.RPSMax,
		s.ThroughputAvgBps,
		s.ThroughputMaxBps,
	}
}

// Field returns the cell stored under one of SummaryFieldNames.
func (s Summary) Field(key string) (Scalar, bool) {
	for i, name := range SummaryFieldNames {
		if name == key {
			return s.Fields()[i], true
		}
	}
	return Scalar{}, false
}
