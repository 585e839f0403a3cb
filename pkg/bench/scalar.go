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

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// Scalar is an optional value read from a Result. The zero value is absent.
// A present Scalar holds whatever the document held at that path: usually a
// json.Number, but bools, strings and native Go numbers are kept as well.
type Scalar struct {
	v any
}

// ScalarOf wraps v. A nil v gives an absent Scalar.
func ScalarOf(v any) Scalar {
	return Scalar{v: v}
}

// IsSet reports whether the Scalar holds a value.
func (s Scalar) IsSet() bool {
	return s.v != nil
}

// Value returns the wrapped value, or nil when absent.
func (s Scalar) Value() any {
	return s.v
}

// Float64 returns the Scalar as a number. Numeric strings are accepted.
func (s Scalar) Float64() (float64, bool) {
	switch s.v.(type) {
	case nil, bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(s.v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsInteger reports whether the Scalar holds an integral number as written
// in the source document: a JSON number without a fraction or exponent, or
// a Go integer type.
func (s Scalar) IsInteger() bool {
	switch v := s.v.(type) {
	case json.Number:
		return !strings.ContainsAny(v.String(), ".eE")
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
