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
	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// maxDepth bounds expression and type recursion so that adversarial inputs
// produce a diagnostic instead of a stack overflow.
const maxDepth = 512

// ParseResult is the output of [Parse]: the top-level syntax nodes and the
// syntactic diagnostics.
type ParseResult struct {
	Nodes    []ast.SyntaxNode
	Messages report.MessageContainer
}

// Parse parses a token stream into top-level syntax nodes.
//
// The stream must be terminated by exactly one EOF token, as produced by
// [Tokenize]; a stream without one is a programmer error and panics. Parse
// never fails on user input: malformed constructs become error placeholder
// nodes and the diagnostics land in the result's message container.
func Parse(tokens []token.Token) ParseResult {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		panic("parser: token stream is missing its EOF terminator")
	}

	p := &parser{
		cursor:   token.NewCursor(tokens),
		messages: &report.MessageContainer{},
	}

	var nodes []ast.SyntaxNode
	for !p.cursor.IsAtEnd() {
		node := p.parseTopLevelNode()
		switch {
		case node.IsOk():
			nodes = append(nodes, node.Value())
		case node.IsErr():
			p.error(node.Message())
			nodes = append(nodes, ast.NewErrorNode())
		default:
			// Nothing recognizable starts here. Skip the token so parsing
			// makes progress.
			p.error(msgInvalidTopLevelStatement(p.now()))
			p.cursor.Advance()
			nodes = append(nodes, ast.NewErrorNode())
		}
	}

	return ParseResult{Nodes: nodes, Messages: *p.messages}
}

type parser struct {
	cursor   *token.Cursor
	messages *report.MessageContainer
	depth    int
}

// now returns the current token, or EOF when past the end.
func (p *parser) now() *token.Token {
	return p.cursor.Now()
}

// clone returns an owned copy of a stream token for embedding into a node.
// nil stays nil.
func (p *parser) clone(tok *token.Token) *token.Token {
	if tok == nil {
		return nil
	}
	return tok.Clone()
}

func (p *parser) error(msg report.CompilerMessage) {
	p.messages.Add(msg)
}

// parseTopLevelNode parses one item or statement. Items win over
// statements; expressions that reach the top level become expression
// statements.
func (p *parser) parseTopLevelNode() Attempt[ast.SyntaxNode] {
	if item := p.parseItem(); !item.IsNone() {
		if item.IsErr() {
			return failFrom[ast.SyntaxNode](item)
		}
		return ok[ast.SyntaxNode](item.Value())
	}

	if stmt := p.parseStmt(); !stmt.IsNone() {
		if stmt.IsErr() {
			return failFrom[ast.SyntaxNode](stmt)
		}
		return ok[ast.SyntaxNode](stmt.Value())
	}

	return none[ast.SyntaxNode]()
}

// listOf is the result of parsing a comma-separated, delimited list.
type listOf[T any] struct {
	items   []T
	commas  []*token.Token
	closing *token.Token
}

// commaList describes how to parse one comma-separated, delimited list: the
// closing delimiter, the diagnostic for a missing closer, the item parser,
// and the diagnostic for a missing item after a separating comma.
type commaList[T any] struct {
	closing      token.Kind
	missingClose func(*token.Token) report.CompilerMessage
	missingItem  func(*token.Token) report.CompilerMessage
	parse        func() Attempt[T]
}

// parseCommaList parses list items until the closing delimiter. Empty lists
// and trailing commas are permitted; a missing closing delimiter is an
// error. The opening delimiter has already been consumed by the caller.
func parseCommaList[T any](p *parser, opts commaList[T]) Attempt[listOf[T]] {
	var list listOf[T]

	if closing := p.cursor.TryConsume(opts.closing); closing != nil {
		list.closing = p.clone(closing)
		return ok(list)
	}

	for {
		item := opts.parse()
		if item.IsNone() {
			return fail[listOf[T]](opts.missingItem(p.now()))
		}
		if item.IsErr() {
			return failFrom[listOf[T]](item)
		}
		list.items = append(list.items, item.Value())

		if comma := p.cursor.TryConsume(token.Comma); comma != nil {
			list.commas = append(list.commas, p.clone(comma))
			if closing := p.cursor.TryConsume(opts.closing); closing != nil {
				// Trailing comma.
				list.closing = p.clone(closing)
				return ok(list)
			}
			continue
		}

		if closing := p.cursor.TryConsume(opts.closing); closing != nil {
			list.closing = p.clone(closing)
			return ok(list)
		}
		return fail[listOf[T]](opts.missingClose(p.now()))
	}
}
