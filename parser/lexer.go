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

// Package parser turns Judith source text into tokens and tokens into a
// syntax tree.
//
// The lexer and the parser never abort on malformed input: the lexer emits
// Invalid tokens and the parser emits error placeholder nodes, and both
// record their diagnostics in a [report.MessageContainer]. Panics are
// reserved for violated invariants, which are bugs in the caller or in this
// package.
package parser

import (
	"unicode/utf8"

	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

const (
	firstLine   = 1
	firstColumn = 1
)

// TokenizeResult is the output of [Tokenize]: the lossless token stream and
// the lexical diagnostics.
type TokenizeResult struct {
	Tokens   []token.Token
	Messages report.MessageContainer
}

// Tokenize scans src into a token stream. The stream always ends with
// exactly one EOF token, and concatenating every token's leading trivia,
// lexeme and trailing trivia reproduces src byte for byte.
func Tokenize(src string) TokenizeResult {
	l := &lexer{
		src:      src,
		line:     firstLine,
		column:   firstColumn,
		messages: &report.MessageContainer{},
	}

	var tokens []token.Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return TokenizeResult{Tokens: tokens, Messages: *l.messages}
}

// lexer is a single-pass, non-backtracking scanner over a source string.
type lexer struct {
	src string
	// pos is the byte offset of the next character.
	pos int
	// start is the byte offset the current token or trivia began at.
	start int
	// line is 1-based; column is the 1-based column of the next character.
	line   int64
	column int

	messages *report.MessageContainer
}

// nextToken scans the next token along with its surrounding trivia.
func (l *lexer) nextToken() token.Token {
	leading := l.consumeLeadingTrivia()
	tok := l.consumeToken()
	tok.LeadingTrivia = leading
	tok.TrailingTrivia = l.consumeTrailingTrivia()
	return tok
}

// consumeToken dispatches on the next character and scans one token. Leading
// trivia has already been consumed, so a "--" sequence here is impossible.
func (l *lexer) consumeToken() token.Token {
	l.start = l.cursor()

	if l.isAtEnd() {
		return l.makeToken(token.EOF)
	}
	c := l.advance()

	switch c {
	case ',':
		return l.makeToken(token.Comma)
	case ':':
		if l.tryMatch(':') {
			return l.makeToken(token.DoubleColon)
		}
		return l.makeToken(token.Colon)
	case '(':
		return l.makeToken(token.LeftParen)
	case ')':
		return l.makeToken(token.RightParen)
	case '{':
		return l.makeToken(token.LeftCurlyBracket)
	case '}':
		return l.makeToken(token.RightCurlyBracket)
	case '[':
		return l.makeToken(token.LeftSquareBracket)
	case ']':
		return l.makeToken(token.RightSquareBracket)
	case '+':
		return l.makeToken(token.Plus)
	case '-':
		if l.tryMatch('-') {
			panic("parser: comment reached the token scanner; comments must be consumed as trivia")
		}
		if l.tryMatch('>') {
			return l.makeToken(token.MinusArrow)
		}
		if next := l.peek(); isNumberLeadingChar(next) {
			l.advance()
			return l.scanNumber(next)
		}
		return l.makeToken(token.Minus)
	case '*':
		return l.makeToken(token.Asterisk)
	case '/':
		return l.makeToken(token.Slash)
	case '=':
		if l.tryMatch('=') {
			if l.tryMatch('=') {
				return l.makeToken(token.EqualEqualEqual)
			}
			return l.makeToken(token.EqualEqual)
		}
		if l.tryMatch('>') {
			return l.makeToken(token.EqualArrow)
		}
		return l.makeToken(token.Equal)
	case '!':
		if l.tryMatch('=') {
			if l.tryMatch('=') {
				return l.makeToken(token.BangEqualEqual)
			}
			return l.makeToken(token.BangEqual)
		}
		if l.tryMatch('~') {
			return l.makeToken(token.BangTilde)
		}
		return l.makeToken(token.Bang)
	case '?':
		if l.tryMatch('?') {
			return l.makeToken(token.DoubleQuestionMark)
		}
		return l.makeToken(token.QuestionMark)
	case '~':
		if l.tryMatch('=') {
			return l.makeToken(token.TildeEqual)
		}
		if l.tryMatch('~') {
			return l.makeToken(token.TildeTilde)
		}
		return l.makeToken(token.Tilde)
	case '.':
		// Either the dot token, or a numeric literal like ".5".
		if isDigit(l.peek()) {
			return l.scanNumber(c)
		}
		return l.makeToken(token.Dot)
	case '<':
		if l.tryMatch('=') {
			return l.makeToken(token.LessEqual)
		}
		return l.makeToken(token.Less)
	case '>':
		if l.tryMatch('=') {
			return l.makeToken(token.GreaterEqual)
		}
		return l.makeToken(token.Greater)
	case '&':
		return l.makeToken(token.Ampersand)
	case '|':
		return l.makeToken(token.Pipe)
	case '"', '`':
		return l.scanString(c, l.column-1)
	}

	switch {
	case isNumberLeadingChar(c):
		// c cannot be '.' here; that case is handled above.
		return l.scanNumber(c)
	case isIdentifierLeadingChar(c):
		// Identifiers, keywords and prefixed string literals.
		return l.scanIdentifierLike()
	default:
		l.error(msgUnexpectedCharacter(report.NewSpan(int64(l.start), int64(l.cursor()), l.line), c))
		return l.makeToken(token.Invalid)
	}
}

// scanIdentifierLike scans an identifier, a keyword, or the flag prefix of a
// string literal. The leading character has already been consumed.
func (l *lexer) scanIdentifierLike() token.Token {
	for {
		switch c := l.peek(); {
		case c == '"' || c == '`':
			// The consumed run turns out to be string flags; the string owns
			// the column of its first delimiter.
			startColumn := l.column
			l.advance()
			return l.scanString(c, startColumn)
		case isIdentifierChar(c):
			l.advance()
		default:
			lexeme := l.extractLexeme(l.start, l.cursor())
			if kind, isKeyword := token.KeywordKind(lexeme); isKeyword {
				return l.makeToken(kind)
			}
			return l.makeToken(token.Identifier)
		}
	}
}

func (l *lexer) makeToken(kind token.Kind) token.Token {
	cursor := l.cursor()
	return token.Token{
		Kind:   kind,
		Lexeme: l.extractLexeme(l.start, cursor),
		Start:  int64(l.start),
		End:    int64(cursor),
		Line:   l.line,
	}
}

func (l *lexer) makeStringToken(kind token.StringKind, delimiter rune, delimiterCount, column int) token.Token {
	tok := l.makeToken(token.String)
	tok.Str = &token.StringData{
		Kind:           kind,
		Delimiter:      delimiter,
		DelimiterCount: delimiterCount,
		Column:         column,
	}
	return tok
}

func (l *lexer) error(msg report.CompilerMessage) {
	l.messages.Add(msg)
}

// cursor returns the byte offset of the next character.
func (l *lexer) cursor() int {
	return l.pos
}

func (l *lexer) isAtEnd() bool {
	return l.pos >= len(l.src)
}

// peek returns the next character without consuming it, or -1 at the end of
// the source.
func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// peekNext returns the character after the next one, or -1.
func (l *lexer) peekNext() rune {
	if l.isAtEnd() {
		return -1
	}
	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if l.pos+size >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos+size:])
	return r
}

// read consumes one character without any line accounting.
func (l *lexer) read() rune {
	if l.isAtEnd() {
		return -1
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	return r
}

// advance consumes the next character and keeps the line and column
// counters current. A "\r\n" pair is consumed as a single newline; the
// returned character is the first of the pair.
func (l *lexer) advance() rune {
	c := l.read()
	switch c {
	case '\r':
		l.line++
		l.column = firstColumn
		if l.peek() == '\n' {
			l.read()
		}
	case '\n':
		l.line++
		l.column = firstColumn
	case -1:
	default:
		l.column++
	}
	return c
}

// tryMatch consumes the next character if it equals expected.
func (l *lexer) tryMatch(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

// extractLexeme returns the source text in [start, end).
func (l *lexer) extractLexeme(start, end int) string {
	return l.src[start:end]
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t'
}

func isNewline(c rune) bool {
	return c == '\n' || c == '\r'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isLetter reports whether c is an ASCII letter. Identifiers are
// deliberately ASCII-only.
func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNumberLeadingChar reports whether c can begin a numeric literal, not
// counting the minus sign.
func isNumberLeadingChar(c rune) bool {
	return isDigit(c) || c == '.'
}

// isIdentifierLeadingChar reports whether c can begin an identifier,
// including the identifier escape character.
func isIdentifierLeadingChar(c rune) bool {
	return isLetter(c) || c == '_' || c == '\\'
}

func isIdentifierChar(c rune) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
