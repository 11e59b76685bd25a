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
	"fmt"
	"strings"
)

// atomKind identifies which of the Constraint AST's atom variants an Atom
// holds.
type atomKind int

const (
	kindLt atomKind = iota
	kindLe
	kindEq
	kindGe
	kindGt
	kindTilde
	kindCaret
	kindHyphen
	kindWildcard
)

// wildcardLevel identifies which trailing positions of a wildcard atom are
// wild: wildcardAny is "*.*.*", wildcardMajor is "X.*.*", wildcardMinor is
// "X.Y.*" (a patch wildcard).
type wildcardLevel int

const (
	wildcardAny wildcardLevel = iota
	wildcardMajor
	wildcardMinor
)

// Atom is one element of a Constraint's conjunctions: a primitive operator
// bound, a compact tilde/caret bound, a hyphen range, or a wildcard. See
// spec.md §3 for the full description of each variant.
type Atom struct {
	kind atomKind

	// Valid for kindLt, kindLe, kindEq, kindGe, kindGt, kindTilde, kindCaret.
	v Version

	// Valid for kindHyphen.
	lo, hi Version

	// Valid for kindWildcard.
	level        wildcardLevel
	major, minor uint64
}

// Constraint is a parsed npm-style range: a disjunction of conjunctions of
// Atoms.
type Constraint struct {
	or [][]Atom
}

// Disjuncts returns the constraint's top-level conjunctions, each a copy
// of the constraint's internal slice of Atoms. Disjuncts lets callers
// inspect the parsed AST without exposing its storage.
func (c Constraint) Disjuncts() [][]Atom {
	out := make([][]Atom, len(c.or))
	for i, and := range c.or {
		out[i] = append([]Atom(nil), and...)
	}
	return out
}

// ParseConstraint parses str as an npm-style constraint: a disjunction of
// conjunctions of operator bounds, tilde/caret bounds, hyphen ranges, and
// wildcards. Leading and trailing whitespace is tolerated; internal runs
// of ASCII space are significant only as separators. See spec.md §4.4 for
// the full grammar.
func ParseConstraint(str string) (Constraint, error) {
	trimmed := trimSpace(str)
	p := &constraintParser{lex: &lexer{str: trimmed}}
	or, err := p.parseDisjunction()
	if err != nil {
		return Constraint{}, err
	}
	if p.lex.pos != len(trimmed) {
		return Constraint{}, errInvalid("constraint", str)
	}
	return Constraint{or: or}, nil
}

// MustParseConstraint is like ParseConstraint but panics on invalid input.
func MustParseConstraint(str string) Constraint {
	c, err := ParseConstraint(str)
	if err != nil {
		panic(err)
	}
	return c
}

type constraintParser struct {
	lex *lexer
}

// parseDisjunction parses orList = andList ( "||" andList )*.
func (p *constraintParser) parseDisjunction() ([][]Atom, error) {
	first, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	or := [][]Atom{first}
	for {
		save := p.lex.pos
		p.skipSpaces()
		if !p.consumeOr() {
			p.lex.pos = save
			break
		}
		p.skipSpaces()
		next, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		or = append(or, next)
	}
	return or, nil
}

// parseConjunction parses andList = atom ( SP+ atom )*.
func (p *constraintParser) parseConjunction() ([]Atom, error) {
	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	and := []Atom{first}
	for {
		save := p.lex.pos
		if p.skipSpaces() == 0 {
			break
		}
		if p.peekOr() || p.lex.peek() == eof {
			p.lex.pos = save
			break
		}
		next, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		and = append(and, next)
	}
	return and, nil
}

// parseAtom parses atom = hyphen | operator-form | wildcard-form | bare.
func (p *constraintParser) parseAtom() (Atom, error) {
	if kind, ok := p.consumeOperator(); ok {
		p.skipOptionalSpace()
		v, ok := parseVersionBody(p.lex)
		if !ok {
			return Atom{}, errInvalid("constraint", p.lex.str)
		}
		return Atom{kind: kind, v: v}, nil
	}

	if a, matched, err := p.tryWildcard(); matched {
		if err != nil {
			return Atom{}, err
		}
		return a, nil
	}

	lo, ok := parseVersionBody(p.lex)
	if !ok {
		return Atom{}, errInvalid("constraint", p.lex.str)
	}
	if p.tryHyphenSeparator() {
		hi, ok := parseVersionBody(p.lex)
		if !ok {
			return Atom{}, errInvalid("constraint", p.lex.str)
		}
		return Atom{kind: kindHyphen, lo: lo, hi: hi}, nil
	}
	return Atom{kind: kindEq, v: lo}, nil
}

// consumeOperator matches one of the operator tokens (longest match first
// so ">=" and "<=" aren't mistaken for ">" or "<") and, if found, advances
// past it and reports the corresponding atomKind.
func (p *constraintParser) consumeOperator() (atomKind, bool) {
	rest := p.lex.str[p.lex.pos:]
	two := map[string]atomKind{"<=": kindLe, ">=": kindGe}
	if len(rest) >= 2 {
		if k, ok := two[rest[:2]]; ok {
			p.lex.pos += 2
			return k, true
		}
	}
	one := map[byte]atomKind{'<': kindLt, '>': kindGt, '=': kindEq, '~': kindTilde, '^': kindCaret}
	if len(rest) >= 1 {
		if k, ok := one[rest[0]]; ok {
			p.lex.pos++
			return k, true
		}
	}
	return 0, false
}

// skipOptionalSpace consumes a single space, if present, per spec.md §4.4:
// "Optional single space is allowed between an operator and its operand".
func (p *constraintParser) skipOptionalSpace() {
	if p.lex.peek() == ' ' {
		p.lex.pos++
	}
}

// skipSpaces consumes a run of ASCII spaces and reports how many.
func (p *constraintParser) skipSpaces() int {
	n := 0
	for p.lex.peek() == ' ' {
		p.lex.pos++
		n++
	}
	return n
}

func (p *constraintParser) peekOr() bool {
	rest := p.lex.str[p.lex.pos:]
	return strings.HasPrefix(rest, "||")
}

func (p *constraintParser) consumeOr() bool {
	if p.peekOr() {
		p.lex.pos += 2
		return true
	}
	return false
}

// tryHyphenSeparator consumes "SP+ '-' SP+" if present at the current
// position and reports whether it did. On failure the position is
// unchanged.
func (p *constraintParser) tryHyphenSeparator() bool {
	save := p.lex.pos
	before := p.skipSpaces()
	if before == 0 || p.lex.peek() != '-' {
		p.lex.pos = save
		return false
	}
	p.lex.pos++
	after := p.skipSpaces()
	if after == 0 {
		p.lex.pos = save
		return false
	}
	return true
}

// tryWildcard attempts to parse a wildcard-form atom at the current
// position: X.X.X, num.X.X, or num.num.X, where X is one of x/X/*. It
// reports matched=false (with the position unchanged) if the text at the
// current position isn't a wildcard form at all (e.g. is a plain version),
// and a non-nil error if it looks like a wildcard form but violates one of
// spec.md §4.4's rejection rules (mis-aligned wildcards, or a wildcard
// form followed by a pre-release/build suffix it cannot carry).
func (p *constraintParser) tryWildcard() (Atom, bool, error) {
	save := p.lex.pos
	majorVal, majorWild, ok := p.wildcardComponent()
	if !ok {
		p.lex.pos = save
		return Atom{}, false, nil
	}
	if p.lex.next() != '.' {
		p.lex.pos = save
		return Atom{}, false, nil
	}
	minorVal, minorWild, ok := p.wildcardComponent()
	if !ok {
		p.lex.pos = save
		return Atom{}, false, nil
	}
	if p.lex.next() != '.' {
		p.lex.pos = save
		return Atom{}, false, nil
	}
	_, patchWild, ok := p.wildcardComponent()
	if !ok {
		p.lex.pos = save
		return Atom{}, false, nil
	}
	if !majorWild && !minorWild && !patchWild {
		// A plain version; let the caller parse it normally.
		p.lex.pos = save
		return Atom{}, false, nil
	}
	if majorWild && !(minorWild && patchWild) || (minorWild && !patchWild) {
		return Atom{}, true, fmt.Errorf("semver: wildcard must be right-aligned in %#q", p.lex.str)
	}
	if isAlphanumericOrHyphen(p.lex.peek()) || p.lex.peek() == '+' {
		return Atom{}, true, fmt.Errorf("semver: wildcard cannot carry a suffix in %#q", p.lex.str)
	}
	switch {
	case majorWild:
		return Atom{kind: kindWildcard, level: wildcardAny}, true, nil
	case minorWild:
		return Atom{kind: kindWildcard, level: wildcardMajor, major: majorVal}, true, nil
	default:
		return Atom{kind: kindWildcard, level: wildcardMinor, major: majorVal, minor: minorVal}, true, nil
	}
}

// wildcardComponent parses one slot of a wildcard-form version: either a
// numeric identifier or a single x/X/* wildcard character.
func (p *constraintParser) wildcardComponent() (value uint64, wild bool, ok bool) {
	switch p.lex.peek() {
	case 'x', 'X', '*':
		p.lex.pos++
		return 0, true, true
	}
	n, _, ok := parseNumericIdentifier(p.lex)
	return n, false, ok
}
