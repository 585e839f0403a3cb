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

// Package buildinfo holds the version information stamped into benchreport
// at link time.
package buildinfo

// Values for these are injected by the build, e.g.
//
//	-ldflags "-X github.com/dapr/benchreport/pkg/buildinfo.version=v0.3.0"
var (
	version = "edge"
	commit  string
)

// Version returns the benchreport version. This is either a semantic version
// number or else, in the case of unreleased code, the string "edge".
func Version() string {
	return version
}

// Commit returns the git commit SHA for the code benchreport was built from.
func Commit() string {
	if commit == "" {
		return "unknown"
	}
	return commit
}
