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

// This file expands each Atom into one or more primitive bounds, the way
// the teacher's interval.go turns an (operator, Version) pair into a span
// via opVersionToSpan. A bound is a single Lt/Le/Ge/Gt/Eq comparison
// against an operand version; desugaring a tilde, caret, hyphen, or
// wildcard atom produces the conjunction of primitive bounds spec.md §4.5
// assigns it.
//
// Every bound also carries an anchor: the version whose (major, minor,
// patch) triple and pre-release-presence feed the pre-release inclusion
// rule in satisfy.go. For a plain operator atom the anchor is just its
// operand; for a wildcard atom, whose synthesized endpoints never carry a
// pre-release, the anchor can never license a pre-release match.
//
// compact marks a bound as coming from tilde/caret/hyphen/wildcard
// desugaring rather than directly from a primitive operator atom. Per
// spec.md §4.6, only compact bounds gate a pre-release version against
// its triple; a directly-written "<1.2.3" or ">1.2.3" already orders a
// pre-release correctly via plain Version.Compare and needs no anchor at
// all (e.g. "1.2.3-pre" satisfies "<1.2.3" even though no bound anchors
// the triple 1.2.3 with a pre-release).
type boundKind int

const (
	boundLt boundKind = iota
	boundLe
	boundGe
	boundGt
	boundEq
)

type bound struct {
	kind    boundKind
	op      Version
	anchor  Version
	compact bool
}

func boundContains(b bound, v Version) bool {
	switch b.kind {
	case boundLt:
		return v.Less(b.op)
	case boundLe:
		return !v.Greater(b.op)
	case boundGe:
		return !v.Less(b.op)
	case boundGt:
		return v.Greater(b.op)
	default: // boundEq
		return v.Equal(b.op)
	}
}

// desugarAtom expands a single Atom into its primitive bounds.
func desugarAtom(a Atom) []bound {
	switch a.kind {
	case kindLt:
		return []bound{{kind: boundLt, op: a.v, anchor: a.v}}
	case kindLe:
		return []bound{{kind: boundLe, op: a.v, anchor: a.v}}
	case kindEq:
		return []bound{{kind: boundEq, op: a.v, anchor: a.v}}
	case kindGe:
		return []bound{{kind: boundGe, op: a.v, anchor: a.v}}
	case kindGt:
		return []bound{{kind: boundGt, op: a.v, anchor: a.v}}
	case kindTilde:
		return desugarTilde(a.v)
	case kindCaret:
		return desugarCaret(a.v)
	case kindHyphen:
		return desugarHyphen(a.lo, a.hi)
	case kindWildcard:
		return desugarWildcard(a)
	default:
		return nil
	}
}

// desugarTilde expands ~v into >=v AND <v.major.(v.minor+1).0: patch-level
// changes are allowed, minor is fixed, regardless of whether major is 0.
func desugarTilde(v Version) []bound {
	upper := MakeVersion(v.major, v.minor+1, 0, nil, nil)
	return []bound{
		{kind: boundGe, op: v, anchor: v, compact: true},
		{kind: boundLt, op: upper, anchor: upper, compact: true},
	}
}

// desugarCaret expands ^v into >=v AND <upper, where upper bumps the
// leftmost non-zero component of v's triple (or, if all three are zero,
// the patch), per spec.md §4.5's "don't change the leftmost non-zero
// digit" rule.
func desugarCaret(v Version) []bound {
	var upper Version
	switch {
	case v.major > 0:
		upper = MakeVersion(v.major+1, 0, 0, nil, nil)
	case v.minor > 0:
		upper = MakeVersion(0, v.minor+1, 0, nil, nil)
	default:
		upper = MakeVersion(0, 0, v.patch+1, nil, nil)
	}
	return []bound{
		{kind: boundGe, op: v, anchor: v, compact: true},
		{kind: boundLt, op: upper, anchor: upper, compact: true},
	}
}

// desugarHyphen expands a hyphen range "lo - hi" into the closed interval
// >=lo AND <=hi.
func desugarHyphen(lo, hi Version) []bound {
	return []bound{
		{kind: boundGe, op: lo, anchor: lo, compact: true},
		{kind: boundLe, op: hi, anchor: hi, compact: true},
	}
}

// desugarWildcard expands a wildcard atom into the half-open interval its
// level implies. wildcardAny is the single bound >=0.0.0, which every
// release version meets. The synthesized endpoints never carry a
// pre-release, so they can never anchor a pre-release match in the
// satisfy.go inclusion rule: "1.2.x" and "x.x.x" behave like any other
// range that never mentions a pre-release version.
func desugarWildcard(a Atom) []bound {
	switch a.level {
	case wildcardAny:
		lower := InitialVersion()
		return []bound{{kind: boundGe, op: lower, anchor: lower, compact: true}}
	case wildcardMajor:
		lower := MakeVersion(a.major, 0, 0, nil, nil)
		upper := MakeVersion(a.major+1, 0, 0, nil, nil)
		return []bound{
			{kind: boundGe, op: lower, anchor: lower, compact: true},
			{kind: boundLt, op: upper, anchor: upper, compact: true},
		}
	default: // wildcardMinor
		lower := MakeVersion(a.major, a.minor, 0, nil, nil)
		upper := MakeVersion(a.major, a.minor+1, 0, nil, nil)
		return []bound{
			{kind: boundGe, op: lower, anchor: lower, compact: true},
			{kind: boundLt, op: upper, anchor: upper, compact: true},
		}
	}
}
