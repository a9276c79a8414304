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

// bodyOpts configures parseBody for its context: which opening keyword the
// block form expects (zero for none), the diagnostic when it is missing, and
// whether a sibling keyword (else/elsif) of the enclosing construct may
// terminate the block.
type bodyOpts struct {
	opening     token.Kind
	openingCode func(*token.Token) report.CompilerMessage
	siblings    bool
}

// parseBody parses a function or control-flow body. An arrow body takes
// precedence over a block body.
func (p *parser) parseBody(opts bodyOpts) Attempt[ast.Body] {
	if arrow := p.cursor.TryConsume(token.EqualArrow); arrow != nil {
		expr := p.parseExpr()
		if expr.IsNone() {
			return fail[ast.Body](msgExpressionExpected(p.now()))
		}
		if expr.IsErr() {
			return failFrom[ast.Body](expr)
		}
		return ok[ast.Body](ast.NewArrowBody(p.clone(arrow), expr.Value()))
	}

	return p.parseBlockBody(opts)
}

// parseBlockBody parses the block form: the expected opening keyword (if
// any), then top-level nodes until the block closes.
//
// The body runs through three states: consuming the opening keyword,
// collecting nodes, and closed. A block closes on "end" (recorded as the
// closing token), or, when the enclosing construct allows it, on a sibling
// "else"/"elsif" left for the caller, in which case the closing token stays
// unset.
func (p *parser) parseBlockBody(opts bodyOpts) Attempt[ast.Body] {
	var openingToken *token.Token
	if opts.opening != token.Invalid {
		openingToken = p.cursor.TryConsume(opts.opening)
		if openingToken == nil && opts.openingCode != nil {
			return fail[ast.Body](opts.openingCode(p.now()))
		}
	}
	openingToken = p.clone(openingToken)

	var nodes []ast.SyntaxNode
	for {
		if end := p.cursor.TryConsume(token.KwEnd); end != nil {
			return ok[ast.Body](ast.NewBlockBody(openingToken, nodes, p.clone(end)))
		}
		if opts.siblings && p.cursor.CheckMany(token.KwElse, token.KwElsif) {
			return ok[ast.Body](ast.NewBlockBody(openingToken, nodes, nil))
		}
		if p.cursor.IsAtEnd() {
			return fail[ast.Body](msgEndExpected(p.now()))
		}

		node := p.parseTopLevelNode()
		switch {
		case node.IsOk():
			nodes = append(nodes, node.Value())
		case node.IsErr():
			p.error(node.Message())
			nodes = append(nodes, ast.NewErrorNode())
		default:
			// The token cannot start anything; skip it to make progress.
			p.error(msgStatementExpected(p.now()))
			p.cursor.Advance()
			nodes = append(nodes, ast.NewErrorNode())
		}
	}
}
