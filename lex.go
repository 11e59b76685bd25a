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

// A lexer scans an ASCII string one byte at a time, remembering the first
// error encountered so callers don't need to check after every step. The
// whole grammar this package parses is ASCII, so bytes and characters
// coincide and there's no need for utf8 decoding.
type lexer struct {
	str string // Full input.
	pos int    // Lexical position.
	err error  // First error.
}

const eof byte = 0

// setErr remembers the first error that occurs. A nil argument is a no-op.
func (l *lexer) setErr(err error) {
	if err != nil && l.err == nil {
		l.err = err
	}
}

// peek returns the next byte, without advancing, or eof at the end of input.
// Bytes outside the grammar's ASCII range are returned as-is; it's up to
// the caller's character classification to reject them.
func (l *lexer) peek() byte {
	if l.pos >= len(l.str) {
		return eof
	}
	return l.str[l.pos]
}

// next returns the next byte and advances.
func (l *lexer) next() byte {
	b := l.peek()
	if b != eof {
		l.pos++
	}
	return b
}

// alphanumericOrHyphen reports whether the next byte is a letter, digit or
// hyphen, and, if it is, advances.
func (l *lexer) alphanumericOrHyphen() bool {
	if isAlphanumericOrHyphen(l.peek()) {
		l.pos++
		return true
	}
	return false
}

// digit reports whether the next byte is a digit and, if it is, advances.
func (l *lexer) digit() bool {
	if isDigit(l.peek()) {
		l.pos++
		return true
	}
	return false
}

// isAlphanumericOrHyphen reports whether b is a letter, digit or hyphen.
func isAlphanumericOrHyphen(b byte) bool {
	return b == '-' || isAlphanumeric(b)
}

// isAlphanumeric reports whether b is a letter or digit.
func isAlphanumeric(b byte) bool {
	return isDigit(b) || isAlpha(b)
}

// isAlpha reports whether b is a letter.
func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// isDigit reports whether b is a digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
