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

// Package bench reads load-test result documents and flattens them into the
// shapes the chart and report writers consume.
package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cast"

	"github.com/dapr/kit/logger"
)

var log = logger.NewLogger("dapr.benchreport.bench")

// Result is a single load-test run as decoded from its JSON document.
// The schema is loose: any field may be absent.
type Result map[string]any

// Load reads and decodes the result document at path.
func Load(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open benchmark result: %w", err)
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse benchmark result %s: %w", path, err)
	}

	log.Debugf("Loaded benchmark result from %s (%d top-level fields)", path, len(r))
	return r, nil
}

// Parse decodes a result document from r. Numbers are kept as json.Number so
// integral and fractional values can be told apart when formatting.
func Parse(r io.Reader) (Result, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object at the top level, got %T", v)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the top-level JSON object")
	}
	return Result(m), nil
}

// Get returns the value at the dot separated path, or def when any segment
// is missing or an intermediate value is not an object.
// Paths starting with "$" are evaluated as JSONPath expressions.
func (r Result) Get(path string, def any) any {
	if strings.HasPrefix(path, "$") {
		v, err := jsonpath.Get(path, map[string]any(r))
		if err != nil || v == nil {
			return def
		}
		return v
	}

	var cur any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return def
		}
		cur, ok = m[part]
		if !ok {
			return def
		}
	}
	return cur
}

// Float returns the numeric value at path.
// The second return value is false when the leaf is absent or not a number.
func (r Result) Float(path string) (float64, bool) {
	v := r.Get(path, nil)
	switch v.(type) {
	case nil, bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		log.Debugf("Ignoring non-numeric value %v at %q", v, path)
		return 0, false
	}
	return f, true
}

// Map returns the nested object stored under key. Missing, null and
// non-object values all yield an empty Result.
func (r Result) Map(key string) Result {
	m, ok := asMap(r[key])
	if !ok {
		return Result{}
	}
	return Result(m)
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Result:
		return m, true
	default:
		return nil, false
	}
}
