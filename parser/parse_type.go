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

// parseType parses a type expression: an optional ownership marker applied
// to a sum of products of array types.
func (p *parser) parseType() Attempt[*ast.TypeNode] {
	if p.depth >= maxDepth {
		return fail[*ast.TypeNode](msgUnexpectedToken(p.now()))
	}
	p.depth++
	defer func() { p.depth-- }()

	ownToken, ownKind := p.tryConsumeOwnership()

	sum := p.parseSumType()
	if sum.IsNone() {
		// The ownership word was actually the type itself; ownership words
		// are contextual identifiers.
		if ownToken != nil && ownToken.Kind == token.Identifier {
			id := p.parseQualifiedFrom(ast.NewSimpleIdentifier(p.clone(ownToken)))
			if id.IsErr() {
				return failFrom[*ast.TypeNode](id)
			}
			return ok(ast.NewTypeNode(ast.NewIdentifierType(id.Value())))
		}
		if ownToken != nil {
			return fail[*ast.TypeNode](msgTypeExpected(p.now()))
		}
		return sum
	}
	if sum.IsErr() {
		return sum
	}

	node := sum.Value()
	if ownToken != nil {
		ast.MarkOwnership(node, ownKind, p.clone(ownToken))
	}
	return ok(node)
}

// parseSumType parses "product ( '|' product )*". A single member collapses
// to the member itself.
func (p *parser) parseSumType() Attempt[*ast.TypeNode] {
	first := p.parseProductType()
	if !first.IsOk() {
		return first
	}

	members := []*ast.TypeNode{first.Value()}
	var pipes []*token.Token
	for {
		pipe := p.cursor.TryConsume(token.Pipe)
		if pipe == nil {
			break
		}
		pipes = append(pipes, p.clone(pipe))

		next := p.parseProductType()
		if next.IsNone() {
			return fail[*ast.TypeNode](msgTypeExpected(p.now()))
		}
		if next.IsErr() {
			return next
		}
		members = append(members, next.Value())
	}

	if len(members) == 1 {
		return first
	}
	return ok(ast.NewTypeNode(ast.NewSumType(members, pipes)))
}

// parseProductType parses "array ( '&' array )*". A single member collapses
// to the member itself.
func (p *parser) parseProductType() Attempt[*ast.TypeNode] {
	first := p.parseArrayType()
	if !first.IsOk() {
		return first
	}

	members := []*ast.TypeNode{first.Value()}
	var amps []*token.Token
	for {
		amp := p.cursor.TryConsume(token.Ampersand)
		if amp == nil {
			break
		}
		amps = append(amps, p.clone(amp))

		next := p.parseArrayType()
		if next.IsNone() {
			return fail[*ast.TypeNode](msgTypeExpected(p.now()))
		}
		if next.IsErr() {
			return next
		}
		members = append(members, next.Value())
	}

	if len(members) == 1 {
		return first
	}
	return ok(ast.NewTypeNode(ast.NewProductType(members, amps)))
}

// parseArrayType parses a primary type with any number of array levels.
// Every level, including the element type, may independently be marked
// nullable with "?".
func (p *parser) parseArrayType() Attempt[*ast.TypeNode] {
	prim := p.parsePrimaryType()
	if !prim.IsOk() {
		return prim
	}

	node := prim.Value()
	if q := p.cursor.TryConsume(token.QuestionMark); q != nil {
		ast.MarkNullable(node, p.clone(q))
	}

	for {
		lbracket := p.cursor.TryConsume(token.LeftSquareBracket)
		if lbracket == nil {
			return ok(node)
		}

		length := p.parseExpr()
		if length.IsNone() {
			return fail[*ast.TypeNode](msgExpressionExpected(p.now()))
		}
		if length.IsErr() {
			return failFrom[*ast.TypeNode](length)
		}

		rbracket := p.cursor.TryConsume(token.RightSquareBracket)
		if rbracket == nil {
			return fail[*ast.TypeNode](msgRightSquareBracketExpected(p.now()))
		}

		node = ast.NewTypeNode(ast.NewRawArrayType(node, p.clone(lbracket), length.Value(), p.clone(rbracket)))
		if q := p.cursor.TryConsume(token.QuestionMark); q != nil {
			ast.MarkNullable(node, p.clone(q))
		}
	}
}

// parsePrimaryType parses a function, group, tuple array, literal, or
// identifier type.
func (p *parser) parsePrimaryType() Attempt[*ast.TypeNode] {
	if p.cursor.Check(token.LeftParen) {
		return p.parseFunctionOrGroupType(nil, nil)
	}
	if bang := p.cursor.TryConsume(token.Bang); bang != nil {
		return p.parseFunctionOrGroupType(nil, bang)
	}

	// The Send/Sync prefix of a function type is an ordinary identifier
	// token whose lexeme is exactly "s", "S" or "sS"; only the next token
	// tells it apart from a type named the same.
	if tok := p.cursor.Peek(); tok != nil && tok.Kind == token.Identifier && isSsLexeme(tok.Lexeme) {
		ss := p.cursor.Advance()
		if p.cursor.CheckMany(token.Bang, token.LeftParen) {
			return p.parseFunctionOrGroupType(ss, nil)
		}

		id := p.parseQualifiedFrom(ast.NewSimpleIdentifier(p.clone(ss)))
		if id.IsErr() {
			return failFrom[*ast.TypeNode](id)
		}
		return ok(ast.NewTypeNode(ast.NewIdentifierType(id.Value())))
	}

	if lbracket := p.cursor.TryConsume(token.LeftSquareBracket); lbracket != nil {
		return p.parseTupleArrayType(lbracket)
	}

	if lit := p.parseLiteral(); lit != nil {
		return ok(ast.NewTypeNode(ast.NewLiteralType(lit)))
	}

	id := p.parseIdentifier()
	if id.IsNone() {
		return none[*ast.TypeNode]()
	}
	if id.IsErr() {
		return failFrom[*ast.TypeNode](id)
	}
	return ok(ast.NewTypeNode(ast.NewIdentifierType(id.Value())))
}

func isSsLexeme(lexeme string) bool {
	return lexeme == "s" || lexeme == "S" || lexeme == "sS"
}

// parseTupleArrayType parses "[ type, ... ]" after its opening bracket.
func (p *parser) parseTupleArrayType(lbracket *token.Token) Attempt[*ast.TypeNode] {
	lbracket = p.clone(lbracket)

	list := parseCommaList(p, commaList[*ast.TypeNode]{
		closing:      token.RightSquareBracket,
		missingClose: msgRightSquareBracketExpected,
		missingItem:  msgTypeExpected,
		parse:        p.parseType,
	})
	if list.IsErr() {
		return failFrom[*ast.TypeNode](list)
	}

	l := list.Value()
	return ok(ast.NewTypeNode(ast.NewTupleArrayType(lbracket, l.items, l.closing, l.commas)))
}

// parseFunctionOrGroupType parses "( type, ... ) => type" and its
// degenerate form, the parenthesised group type. ssToken and bangToken are
// the already-consumed prefixes, if any.
//
// A construct with no prefixes, exactly one parenthesised type and no
// arrow is a group type; with prefixes or several types, the arrow is
// required.
func (p *parser) parseFunctionOrGroupType(ssToken, bangToken *token.Token) Attempt[*ast.TypeNode] {
	if bangToken == nil && ssToken != nil {
		bangToken = p.cursor.TryConsume(token.Bang)
	}

	lparen := p.cursor.TryConsume(token.LeftParen)
	if lparen == nil {
		return fail[*ast.TypeNode](msgParameterTypeListExpected(p.now()))
	}

	list := parseCommaList(p, commaList[*ast.TypeNode]{
		closing:      token.RightParen,
		missingClose: msgRightParenExpected,
		missingItem:  msgTypeExpected,
		parse:        p.parseType,
	})
	if list.IsErr() {
		return failFrom[*ast.TypeNode](list)
	}
	l := list.Value()

	arrow := p.cursor.TryConsume(token.EqualArrow)
	if arrow == nil {
		if ssToken == nil && bangToken == nil && len(l.items) == 1 && len(l.commas) == 0 {
			return ok(ast.NewTypeNode(ast.NewGroupType(p.clone(lparen), l.items[0], l.closing)))
		}
		return fail[*ast.TypeNode](msgArrowExpected(p.now()))
	}

	ret := p.parseType()
	if ret.IsNone() {
		return fail[*ast.TypeNode](msgReturnTypeExpected(p.now()))
	}
	if ret.IsErr() {
		return ret
	}

	fn := ast.NewFunctionType(
		p.clone(ssToken), p.clone(bangToken), p.clone(lparen),
		l.items, l.commas, l.closing,
		p.clone(arrow), ret.Value(),
	)
	return ok(ast.NewTypeNode(fn))
}
