// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// scanNumber scans a numeric literal. The first character of the literal has
// already been consumed and is passed in; for a signed literal the minus
// sign precedes it inside l.start.
//
// The scanner keeps consuming the longest plausible literal even after
// diagnosing it, so that a malformed number still becomes a single Number
// token.
func (l *lexer) scanNumber(first rune) token.Token {
	// Dots may appear once, as may the exponent marker. Underscores are digit
	// separators and may not chain, follow a dot, or end the literal.
	dotFound := first == '.'
	eFound := false
	digitFound := isDigit(first)
	underscoreAllowed := isDigit(first)

	c := l.peek()

	// Base prefixes: "0x", "0b" and "0o".
	if first == '0' {
		switch c {
		case 'x', 'b', 'o':
			digitFound = false // the '0' was part of the prefix, not a digit.
			l.advance()
			c = l.peek()
		}
	}

	endsInE := false
	endsInUnderscore := false
body:
	for c != -1 {
		switch {
		case c == '.':
			// A second dot ends the literal: numbers can be accessed, as in
			// "7.str()". A dot only joins the literal when acting as a
			// decimal point, which requires a decimal digit after it.
			if dotFound || !isDigit(l.peekNext()) {
				break body
			}
			dotFound = true
			endsInE = false
			endsInUnderscore = false

		case c == 'e':
			if eFound {
				l.invalidNumberHere()
			}
			eFound = true
			endsInE = true
			endsInUnderscore = false

		case c == '_':
			if !underscoreAllowed {
				l.invalidNumberHere()
			}
			// Underscores may not chain.
			underscoreAllowed = false
			endsInUnderscore = true

		case !isHexDigit(c):
			break body

		default:
			underscoreAllowed = true
			digitFound = true
			endsInE = false
			endsInUnderscore = false
		}

		l.advance()
		c = l.peek()
	}

	if !digitFound || endsInE {
		l.invalidNumberHere()
	}

	// The suffix: a letter other than the exponent marker, continued by
	// letters and digits, as in "i32" or "f64". The body never consumes a
	// trailing dot, so this cannot swallow a member access.
	c = l.peek()
	suffixStart := l.cursor()
	if c != 'e' && c != 'E' && isLetter(c) {
		l.advance()
		for c = l.peek(); isLetter(c) || isDigit(c); c = l.peek() {
			l.advance()
		}
	}

	// An underscore may separate the digits from a suffix, but not end the
	// literal.
	if endsInUnderscore && l.cursor() == suffixStart {
		l.invalidNumberHere()
	}

	return l.makeToken(token.Number)
}

// invalidNumberHere records an InvalidNumber whose lexeme is everything
// scanned so far, excluding the character currently being inspected.
func (l *lexer) invalidNumberHere() {
	cursor := l.cursor()
	span := report.NewSpan(int64(l.start), int64(cursor), l.line)
	l.error(msgInvalidNumber(span, l.extractLexeme(l.start, cursor)))
}
