// Copyright 2023 Google LLC
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

package semver

import "fmt"

// syntaxError reports that a string was not a valid version, pre-release
// tag, build tag, or constraint. Safe parsers return it as their error
// alongside a zero value; unsafe parsers panic with it.
type syntaxError struct {
	kind string // "version", "pre-release", "build", or "constraint"
	str  string // the offending input
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("semver: invalid %s %#q", e.kind, e.str)
}

func errInvalid(kind, str string) error {
	return &syntaxError{kind: kind, str: str}
}
