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

// consumeLeadingTrivia absorbs every trivia element preceding a token.
func (l *lexer) consumeLeadingTrivia() []token.Trivia {
	var trivia []token.Trivia
	for {
		t, found := l.nextTrivia()
		if !found {
			return trivia
		}
		trivia = append(trivia, t)
	}
}

// consumeTrailingTrivia absorbs trivia following a token, up to and
// including the first line break. Anything after the line break belongs to
// the next token's leading trivia, as does a directive: the "#" check runs
// before scanning, so a directive is never absorbed as trailing.
func (l *lexer) consumeTrailingTrivia() []token.Trivia {
	var trivia []token.Trivia
	for l.peek() != '#' {
		t, found := l.nextTrivia()
		if !found {
			return trivia
		}
		trivia = append(trivia, t)

		if t.Kind == token.LineBreak {
			return trivia
		}
	}
	return trivia
}

// nextTrivia consumes the next trivia element, if the source continues with
// one.
func (l *lexer) nextTrivia() (token.Trivia, bool) {
	l.start = l.cursor()

	switch c := l.peek(); {
	case c == -1:
		return token.Trivia{}, false

	case isWhitespace(c):
		return l.scanWhitespaceTrivia(), true

	case isNewline(c):
		l.advance() // consumes the whole newline sequence.
		return l.makeTrivia(token.LineBreak), true

	case c == '#':
		return l.scanDirectiveTrivia(), true

	case c == '-':
		if l.peekNext() != '-' {
			return token.Trivia{}, false
		}
		l.advance()
		l.advance()

		switch l.peek() {
		case -1:
			return l.makeTrivia(token.SingleLineComment), true
		case '!':
			return l.scanMultiLineComment(), true
		default:
			return l.scanSingleLineComment(), true
		}

	default:
		return token.Trivia{}, false
	}
}

// scanWhitespaceTrivia scans a maximal run of spaces and tabs.
func (l *lexer) scanWhitespaceTrivia() token.Trivia {
	for isWhitespace(l.peek()) {
		l.advance()
	}
	return l.makeTrivia(token.Whitespace)
}

// scanDirectiveTrivia scans a reserved "#" directive. Directives are not
// defined yet; the scanner records the rest of the line as a placeholder.
func (l *lexer) scanDirectiveTrivia() token.Trivia {
	l.advance() // the '#'.
	for c := l.peek(); c != -1 && !isNewline(c); c = l.peek() {
		l.advance()
	}
	return l.makeTrivia(token.Directive)
}

// scanMultiLineComment scans a comment opened by "--!" until the next "--".
// The cursor is already past the "--" opener.
func (l *lexer) scanMultiLineComment() token.Trivia {
	var last rune
	for {
		c := l.advance()
		if c == -1 {
			break
		}
		if last == '-' && c == '-' {
			break
		}
		last = c
	}
	return l.makeTrivia(token.MultiLineComment)
}

// scanSingleLineComment scans a comment until, but not including, the next
// newline. The cursor is already past the "--" opener.
func (l *lexer) scanSingleLineComment() token.Trivia {
	for c := l.peek(); c != -1 && !isNewline(c); c = l.peek() {
		l.advance()
	}
	return l.makeTrivia(token.SingleLineComment)
}

func (l *lexer) makeTrivia(kind token.TriviaKind) token.Trivia {
	cursor := l.cursor()
	return token.Trivia{
		Kind:   kind,
		Lexeme: l.extractLexeme(l.start, cursor),
		Span:   report.NewSpan(int64(l.start), int64(cursor), l.line),
	}
}
