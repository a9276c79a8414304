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

// scanString scans a string literal. Everything up to and including the
// FIRST delimiter has been consumed already; for a prefixed literal like
// f"text", that includes the flags.
//
// A literal opened by n consecutive delimiters only terminates at the next
// run of exactly n consecutive delimiters. Exactly two delimiters form the
// empty string.
func (l *lexer) scanString(quote rune, startColumn int) token.Token {
	openingQuotes := 1 // the delimiter that triggered this scan.
	for l.peek() == quote {
		openingQuotes++
		l.advance()
	}

	if openingQuotes == 2 {
		return l.makeStringToken(token.Regular, quote, 1, startColumn)
	}

	closingQuotes := 0
	for closingQuotes < openingQuotes {
		if l.isAtEnd() {
			l.error(msgUnterminatedString(report.NewSpan(int64(l.start), int64(l.cursor()), l.line)))
			return l.makeToken(token.Invalid)
		}

		if l.advance() == quote {
			closingQuotes++
		} else {
			closingQuotes = 0
		}
	}

	kind := token.Regular
	if openingQuotes >= 3 {
		kind = token.Raw
	}
	return l.makeStringToken(kind, quote, openingQuotes, startColumn)
}
