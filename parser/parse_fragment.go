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
	"github.com/judithlang/judith/token"
)

// parseSimpleIdentifier consumes one identifier token, or returns nil if the
// current token is not an identifier.
func (p *parser) parseSimpleIdentifier() *ast.SimpleIdentifier {
	tok := p.cursor.TryConsume(token.Identifier)
	if tok == nil {
		return nil
	}
	return ast.NewSimpleIdentifier(p.clone(tok))
}

// parseIdentifier parses a simple identifier, qualified by "::" any number
// of times.
func (p *parser) parseIdentifier() Attempt[ast.Identifier] {
	simple := p.parseSimpleIdentifier()
	if simple == nil {
		return none[ast.Identifier]()
	}
	return p.parseQualifiedFrom(simple)
}

// parseQualifiedFrom continues a qualified identifier from an already
// consumed first segment.
func (p *parser) parseQualifiedFrom(simple *ast.SimpleIdentifier) Attempt[ast.Identifier] {
	var id ast.Identifier = simple
	for {
		colons := p.cursor.TryConsume(token.DoubleColon)
		if colons == nil {
			return ok(id)
		}

		name := p.parseSimpleIdentifier()
		if name == nil {
			return fail[ast.Identifier](msgIdentifierExpected(p.now()))
		}
		id = ast.NewQualifiedIdentifier(id, ast.NewOperator(p.clone(colons)), name)
	}
}

// parseLiteral consumes one literal token, or returns nil. Character and
// regex literals are reserved and not lexed yet.
func (p *parser) parseLiteral() *ast.Literal {
	tok := p.cursor.TryConsumeMany(token.KwTrue, token.KwFalse, token.Number, token.String)
	if tok == nil {
		return nil
	}
	return ast.NewLiteral(p.clone(tok))
}

// parseEqualsValueClause parses "= expr" or, when allowMultiple is set,
// "= expr, expr, ...".
func (p *parser) parseEqualsValueClause(allowMultiple bool) Attempt[*ast.EqualsValueClause] {
	eq := p.cursor.TryConsume(token.Equal)
	if eq == nil {
		return none[*ast.EqualsValueClause]()
	}

	first := p.parseExpr()
	if first.IsNone() {
		return fail[*ast.EqualsValueClause](msgExpressionExpected(p.now()))
	}
	if first.IsErr() {
		return failFrom[*ast.EqualsValueClause](first)
	}

	values := []ast.Expr{first.Value()}
	var commas []*token.Token
	for allowMultiple {
		comma := p.cursor.TryConsume(token.Comma)
		if comma == nil {
			break
		}
		commas = append(commas, p.clone(comma))

		next := p.parseExpr()
		if next.IsNone() {
			return fail[*ast.EqualsValueClause](msgExpressionExpected(p.now()))
		}
		if next.IsErr() {
			return failFrom[*ast.EqualsValueClause](next)
		}
		values = append(values, next.Value())
	}

	return ok(ast.NewEqualsValueClause(p.clone(eq), values, commas))
}

// tryConsumeOwnership consumes an ownership marker if the current token is
// one. Ownership words other than "in" are contextual: they are ordinary
// identifier tokens matched by lexeme.
func (p *parser) tryConsumeOwnership() (*token.Token, ast.OwnershipKind) {
	if tok := p.cursor.TryConsume(token.KwIn); tok != nil {
		return tok, ast.OwnershipIn
	}

	tok := p.cursor.Peek()
	if tok == nil || tok.Kind != token.Identifier {
		return nil, ast.OwnershipNone
	}
	kind, isOwnership := ownershipLexemes[tok.Lexeme]
	if !isOwnership {
		return nil, ast.OwnershipNone
	}
	return p.cursor.Advance(), kind
}

var ownershipLexemes = map[string]ast.OwnershipKind{
	"final": ast.OwnershipFinal,
	"mut":   ast.OwnershipMutable,
	"sh":    ast.OwnershipShared,
	"ref":   ast.OwnershipReference,
}
