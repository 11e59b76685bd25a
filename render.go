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

import (
	"strconv"
	"strings"
)

// renderVersion is the single canonical rendering of a Version, grounded
// on the teacher's Version.Canon/printNums (version.go in the teacher):
// a strings.Builder walk over the numeric triple followed by the optional
// pre-release and build tags.
func renderVersion(v Version) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	for i, p := range v.pre {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(p.String())
	}
	for i, bu := range v.build {
		if i == 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(bu.String())
	}
	return b.String()
}

// String renders c in canonical form: conjunctions join atoms with a
// single space, disjunctions join conjunctions with " || ". Operators
// print flush against their operand; '=' is dropped; hyphen ranges print
// as "v1 - v2"; wildcards print with the single character 'x'.
func (c Constraint) String() string {
	conjunctions := make([]string, len(c.or))
	for i, and := range c.or {
		conjunctions[i] = renderConjunction(and)
	}
	return strings.Join(conjunctions, " || ")
}

func renderConjunction(and []Atom) string {
	atoms := make([]string, len(and))
	for i, a := range and {
		atoms[i] = renderAtom(a)
	}
	return strings.Join(atoms, " ")
}

func renderAtom(a Atom) string {
	switch a.kind {
	case kindLt:
		return "<" + renderVersion(a.v)
	case kindLe:
		return "<=" + renderVersion(a.v)
	case kindEq:
		return renderVersion(a.v)
	case kindGe:
		return ">=" + renderVersion(a.v)
	case kindGt:
		return ">" + renderVersion(a.v)
	case kindTilde:
		return "~" + renderVersion(a.v)
	case kindCaret:
		return "^" + renderVersion(a.v)
	case kindHyphen:
		return renderVersion(a.lo) + " - " + renderVersion(a.hi)
	case kindWildcard:
		return renderWildcard(a)
	default:
		return ""
	}
}

// renderWildcard prints a wildcard atom's concrete positions numerically
// and its wild positions as the single character 'x', regardless of
// whether the user originally wrote x, X, or *.
func renderWildcard(a Atom) string {
	switch a.level {
	case wildcardAny:
		return "x.x.x"
	case wildcardMajor:
		return strconv.FormatUint(a.major, 10) + ".x.x"
	default: // wildcardMinor
		return strconv.FormatUint(a.major, 10) + "." + strconv.FormatUint(a.minor, 10) + ".x"
	}
}
