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

// Build is a single dot-separated build metadata identifier: a non-empty
// run of ASCII letters, digits, and hyphens. Unlike pre-release
// identifiers, a build identifier may have a leading zero; it carries no
// ordering significance and is never consulted by Compare.
type Build struct {
	str string
}

// String renders b in its canonical textual form.
func (b Build) String() string { return b.str }

// ParseBuild parses str as a single build identifier.
func ParseBuild(str string) (Build, error) {
	l := &lexer{str: str}
	b, ok := parseOneBuild(l)
	if !ok || l.pos != len(str) {
		return Build{}, errInvalid("build", str)
	}
	return b, nil
}

// MustParseBuild is like ParseBuild but panics on invalid input.
func MustParseBuild(str string) Build {
	b, err := ParseBuild(str)
	if err != nil {
		panic(err)
	}
	return b
}

// parseBuildList parses a dot-separated list of build identifiers, the
// text following the '+' that introduces them.
func parseBuildList(l *lexer) ([]Build, bool) {
	var out []Build
	for {
		b, ok := parseOneBuild(l)
		if !ok {
			return nil, false
		}
		out = append(out, b)
		if l.peek() != '.' {
			return out, true
		}
		l.pos++
	}
}

// parseOneBuild parses a single non-empty run of alphanumeric-or-hyphen
// characters.
func parseOneBuild(l *lexer) (Build, bool) {
	start := l.pos
	for l.alphanumericOrHyphen() {
	}
	if l.pos == start {
		return Build{}, false
	}
	return Build{str: l.str[start:l.pos]}, true
}
