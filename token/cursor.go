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

package token

// Cursor walks a token slice with one token of lookahead, remembering the
// most recently consumed token.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor returns a cursor at the start of tokens.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the current token without consuming it, or nil if the cursor
// has moved past the end of the slice.
func (c *Cursor) Peek() *Token {
	if c.pos >= len(c.tokens) {
		return nil
	}
	return &c.tokens[c.pos]
}

// PeekPrevious returns the most recently consumed token, or nil if nothing
// has been consumed yet.
func (c *Cursor) PeekPrevious() *Token {
	if c.pos == 0 {
		return nil
	}
	return &c.tokens[c.pos-1]
}

// Now returns the current token, or the stream's final token (EOF) if the
// cursor has moved past the end.
func (c *Cursor) Now() *Token {
	if tok := c.Peek(); tok != nil {
		return tok
	}
	return &c.tokens[len(c.tokens)-1]
}

// Advance consumes and returns the current token, or nil at the end of the
// slice.
func (c *Cursor) Advance() *Token {
	tok := c.Peek()
	if tok != nil {
		c.pos++
	}
	return tok
}

// Check reports whether the current token is of the given kind. Always false
// at the end of the stream.
func (c *Cursor) Check(kind Kind) bool {
	if c.IsAtEnd() {
		return false
	}
	return c.Peek().Kind == kind
}

// CheckMany reports whether the current token matches any of the given kinds.
func (c *Cursor) CheckMany(kinds ...Kind) bool {
	for _, kind := range kinds {
		if c.Check(kind) {
			return true
		}
	}
	return false
}

// TryConsume advances past the current token and returns it if it is of the
// given kind; otherwise returns nil without advancing.
func (c *Cursor) TryConsume(kind Kind) *Token {
	if c.Check(kind) {
		return c.Advance()
	}
	return nil
}

// TryConsumeMany advances past the current token and returns it if it
// matches any of the given kinds; otherwise returns nil without advancing.
func (c *Cursor) TryConsumeMany(kinds ...Kind) *Token {
	if c.CheckMany(kinds...) {
		return c.Advance()
	}
	return nil
}

// IsAtEnd reports whether the current token is the EOF terminator (or the
// cursor has moved past it).
func (c *Cursor) IsAtEnd() bool {
	tok := c.Peek()
	return tok == nil || tok.Kind == EOF
}
