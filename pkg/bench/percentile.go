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

// PercentilePoint is one labelled latency statistic.
type PercentilePoint struct {
	Label string
	Value float64
}

type percentileKey struct {
	label string
	key   string
}

// percentileCandidates is the ordered set of statistics charted from a
// latency object. autocannon writes fractional percentiles with an
// underscore (p97_5); p95 is not reported by every tool.
var percentileCandidates = []percentileKey{
	{label: "p50", key: "p50"},
	{label: "p90", key: "p90"},
	{label: "p95", key: "p95"},
	{label: "p97.5", key: "p97_5"},
	{label: "p99", key: "p99"},
	{label: "max", key: "max"},
}

// PercentileLabels returns the candidate labels in chart order.
func PercentileLabels() []string {
	labels := make([]string, len(percentileCandidates))
	for i, c := range percentileCandidates {
		labels[i] = c.label
	}
	return labels
}

// PercentilePoints selects the candidate statistics present in latency.
// Candidates missing from the object are skipped rather than zero-filled.
func PercentilePoints(latency Result) []PercentilePoint {
	points := make([]PercentilePoint, 0, len(percentileCandidates))
	for _, c := range percentileCandidates {
		v, ok := latency.Float(c.key)
		if !ok {
			continue
		}
		points = append(points, PercentilePoint{Label: c.label, Value: v})
	}
	return points
}

// CommonLabels returns the labels present in both a and b, in a's order.
func CommonLabels(a, b []PercentilePoint) []string {
	inB := make(map[string]struct{}, len(b))
	for _, p := range b {
		inB[p.Label] = struct{}{}
	}

	labels := make([]string, 0, len(a))
	for _, p := range a {
		if _, ok := inB[p.Label]; ok {
			labels = append(labels, p.Label)
		}
	}
	return labels
}

// PercentileValues returns the value of each label in points, in label
// order. Labels not in points yield 0.
func PercentileValues(points []PercentilePoint, labels []string) []float64 {
	byLabel := make(map[string]float64, len(points))
	for _, p := range points {
		byLabel[p.Label] = p.Value
	}

	values := make([]float64, len(labels))
	for i, l := range labels {
		values[i] = byLabel[l]
	}
	return values
}
