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

import "strconv"

// PreRelease is a single dot-separated pre-release identifier: either a
// non-negative integer with no leading zero, or a non-empty run of ASCII
// letters, digits, and hyphens that is not a valid numeric identifier.
type PreRelease struct {
	numeric bool
	num     uint64
	str     string // canonical text; for numeric identifiers, the decimal digits
}

// IsNumeric reports whether p is the numeric identifier variant.
func (p PreRelease) IsNumeric() bool { return p.numeric }

// String renders p in its canonical textual form.
func (p PreRelease) String() string { return p.str }

// compare orders p before q per spec.md §3: numerics compare numerically,
// alphanumerics compare lexicographically by ASCII code, and numerics are
// always less than alphanumerics.
func (p PreRelease) compare(q PreRelease) int {
	switch {
	case p.numeric && q.numeric:
		return compareUint(p.num, q.num)
	case p.numeric:
		return -1
	case q.numeric:
		return 1
	default:
		return compareStr(p.str, q.str)
	}
}

func compareStr(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParsePreRelease parses str as a single pre-release identifier.
func ParsePreRelease(str string) (PreRelease, error) {
	l := &lexer{str: str}
	p, ok := parseOnePreRelease(l)
	if !ok || l.pos != len(str) {
		return PreRelease{}, errInvalid("pre-release", str)
	}
	return p, nil
}

// MustParsePreRelease is like ParsePreRelease but panics on invalid input.
func MustParsePreRelease(str string) PreRelease {
	p, err := ParsePreRelease(str)
	if err != nil {
		panic(err)
	}
	return p
}

// parsePreReleaseList parses a dot-separated list of pre-release
// identifiers, the text following the '-' that introduces them.
func parsePreReleaseList(l *lexer) ([]PreRelease, bool) {
	var out []PreRelease
	for {
		p, ok := parseOnePreRelease(l)
		if !ok {
			return nil, false
		}
		out = append(out, p)
		if l.peek() != '.' {
			return out, true
		}
		l.pos++
	}
}

// parseOnePreRelease parses a single identifier: a numeric identifier if
// the whole run of alphanumeric-or-hyphen characters is entirely digits,
// otherwise an alphanumeric identifier (which requires at least one
// non-digit character, per SemVer's grammar, so a leading-zero run of pure
// digits like "01" is rejected outright rather than falling back to the
// alphanumeric form).
func parseOnePreRelease(l *lexer) (PreRelease, bool) {
	start := l.pos
	for l.alphanumericOrHyphen() {
	}
	text := l.str[start:l.pos]
	if text == "" {
		return PreRelease{}, false
	}
	if isAllDigits(text) {
		n, numText, ok := isNumericIdentifierText(text)
		if !ok {
			return PreRelease{}, false
		}
		return PreRelease{numeric: true, num: n, str: numText}, true
	}
	return PreRelease{str: text}, true
}

// isAllDigits reports whether text consists entirely of ASCII digits.
func isAllDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return false
		}
	}
	return true
}

// isNumericIdentifierText reports whether text is entirely digits with no
// leading zero (other than "0" itself), and if so its value.
func isNumericIdentifierText(text string) (uint64, string, bool) {
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return 0, "", false
		}
	}
	if len(text) > 1 && text[0] == '0' {
		return 0, "", false
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return n, text, true
}
