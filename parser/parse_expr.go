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

// parseExpr parses a full expression: a control-flow expression, or an
// assignment at the bottom of the precedence climb.
func (p *parser) parseExpr() Attempt[ast.Expr] {
	if p.depth >= maxDepth {
		return fail[ast.Expr](msgUnexpectedToken(p.now()))
	}
	p.depth++
	defer func() { p.depth-- }()

	if tok := p.cursor.TryConsume(token.KwIf); tok != nil {
		return p.parseIfExpr(tok)
	}
	if tok := p.cursor.TryConsume(token.KwLoop); tok != nil {
		return p.parseLoopExpr(tok)
	}
	if tok := p.cursor.TryConsume(token.KwWhile); tok != nil {
		return p.parseWhileExpr(tok)
	}

	return p.parseAssignmentExpr()
}

// parseIfExpr parses the rest of an if expression; ifToken is the consumed
// "if" (or "elsif") token. An elsif alternate recurses into this function
// and wraps the inner if expression as an expression body.
func (p *parser) parseIfExpr(ifToken *token.Token) Attempt[ast.Expr] {
	ifToken = p.clone(ifToken)

	test := p.parseExpr()
	if test.IsNone() {
		return fail[ast.Expr](msgExpressionExpected(p.now()))
	}
	if test.IsErr() {
		return test
	}

	consequent := p.parseBody(bodyOpts{
		opening:     token.KwThen,
		openingCode: msgBlockOpeningKeywordExpected,
		siblings:    true,
	})
	if consequent.IsErr() {
		return failFrom[ast.Expr](consequent)
	}

	var elseToken *token.Token
	var alternate ast.Body
	if elsif := p.cursor.TryConsume(token.KwElsif); elsif != nil {
		inner := p.parseIfExpr(elsif)
		if inner.IsErr() {
			return inner
		}
		elseToken = p.clone(elsif)
		alternate = ast.NewExprBody(inner.Value())
	} else if elseTok := p.cursor.TryConsume(token.KwElse); elseTok != nil {
		body := p.parseBody(bodyOpts{})
		if body.IsErr() {
			return failFrom[ast.Expr](body)
		}
		elseToken = p.clone(elseTok)
		alternate = body.Value()
	}

	return ok[ast.Expr](ast.NewIfExpr(ifToken, test.Value(), consequent.Value(), elseToken, alternate))
}

// parseLoopExpr parses the rest of a loop expression.
func (p *parser) parseLoopExpr(loopToken *token.Token) Attempt[ast.Expr] {
	loopToken = p.clone(loopToken)

	body := p.parseBody(bodyOpts{})
	if body.IsErr() {
		return failFrom[ast.Expr](body)
	}
	return ok[ast.Expr](ast.NewLoopExpr(loopToken, body.Value()))
}

// parseWhileExpr parses the rest of a while expression. The block body is
// opened by "do".
func (p *parser) parseWhileExpr(whileToken *token.Token) Attempt[ast.Expr] {
	whileToken = p.clone(whileToken)

	test := p.parseExpr()
	if test.IsNone() {
		return fail[ast.Expr](msgExpressionExpected(p.now()))
	}
	if test.IsErr() {
		return test
	}

	body := p.parseBody(bodyOpts{
		opening:     token.KwDo,
		openingCode: msgDoExpected,
	})
	if body.IsErr() {
		return failFrom[ast.Expr](body)
	}
	return ok[ast.Expr](ast.NewWhileExpr(whileToken, test.Value(), body.Value()))
}

// parseAssignmentExpr parses a single-level, right-associative assignment.
// Assignments deliberately do not chain: in "a = b = c" the right side is
// parsed as a plain or-expression, so "a = b" is returned and the second
// "=" is left for the caller.
func (p *parser) parseAssignmentExpr() Attempt[ast.Expr] {
	left := p.parseOrLogicalExpr()
	if !left.IsOk() {
		return left
	}

	eq := p.cursor.TryConsume(token.Equal)
	if eq == nil {
		return left
	}
	op := ast.NewOperator(p.clone(eq))

	right := p.parseOrLogicalExpr()
	if right.IsNone() {
		return fail[ast.Expr](msgExpressionExpected(p.now()))
	}
	if right.IsErr() {
		return right
	}

	return ok[ast.Expr](ast.NewAssignmentExpr(left.Value(), op, right.Value()))
}

// parseBinaryLevel parses one left-associative precedence level over the
// given operator kinds.
func (p *parser) parseBinaryLevel(operand func() Attempt[ast.Expr], kinds ...token.Kind) Attempt[ast.Expr] {
	left := operand()
	if !left.IsOk() {
		return left
	}

	expr := left.Value()
	for {
		opTok := p.cursor.TryConsumeMany(kinds...)
		if opTok == nil {
			return ok(expr)
		}

		right := operand()
		if right.IsNone() {
			return fail[ast.Expr](msgExpressionExpected(p.now()))
		}
		if right.IsErr() {
			return right
		}
		expr = ast.NewBinaryExpr(expr, ast.NewOperator(p.clone(opTok)), right.Value())
	}
}

func (p *parser) parseOrLogicalExpr() Attempt[ast.Expr] {
	return p.parseBinaryLevel(p.parseAndLogicalExpr, token.KwOr)
}

func (p *parser) parseAndLogicalExpr() Attempt[ast.Expr] {
	return p.parseBinaryLevel(p.parseBoolExpr, token.KwAnd)
}

func (p *parser) parseBoolExpr() Attempt[ast.Expr] {
	return p.parseBinaryLevel(p.parseAddExpr,
		token.EqualEqual, token.BangEqual,
		token.TildeTilde, token.BangTilde,
		token.EqualEqualEqual, token.BangEqualEqual,
		token.Less, token.LessEqual,
		token.Greater, token.GreaterEqual,
	)
}

func (p *parser) parseAddExpr() Attempt[ast.Expr] {
	return p.parseBinaryLevel(p.parseMultExpr, token.Plus, token.Minus)
}

func (p *parser) parseMultExpr() Attempt[ast.Expr] {
	return p.parseBinaryLevel(p.parseLeftUnaryExpr, token.Asterisk, token.Slash)
}

// parseLeftUnaryExpr parses prefix operators, which bind tighter than any
// infix operator and nest. The recursion shares the expression depth guard:
// a long run of prefix operators is as adversarial as nested groups.
func (p *parser) parseLeftUnaryExpr() Attempt[ast.Expr] {
	if p.depth >= maxDepth {
		return fail[ast.Expr](msgUnexpectedToken(p.now()))
	}
	p.depth++
	defer func() { p.depth-- }()

	opTok := p.cursor.TryConsumeMany(token.KwNot, token.Minus, token.Tilde)
	if opTok == nil {
		return p.parseObjectInitExpr()
	}
	op := ast.NewOperator(p.clone(opTok))

	operand := p.parseLeftUnaryExpr()
	if operand.IsNone() {
		return fail[ast.Expr](msgExpressionExpected(p.now()))
	}
	if operand.IsErr() {
		return operand
	}
	return ok[ast.Expr](ast.NewLeftUnaryExpr(op, operand.Value()))
}

// parseObjectInitExpr parses a call-level expression, optionally followed by
// an object initializer. The provider is absent for a bare initializer.
func (p *parser) parseObjectInitExpr() Attempt[ast.Expr] {
	base := p.parseCallExpr()
	if base.IsErr() {
		return base
	}

	if !p.cursor.Check(token.LeftCurlyBracket) {
		return base
	}

	var provider ast.Expr
	if base.IsOk() {
		provider = base.Value()
	}

	init := p.parseObjectInitializer()
	if init.IsErr() {
		return failFrom[ast.Expr](init)
	}
	return ok[ast.Expr](ast.NewObjectInitExpr(provider, init.Value()))
}

// parseObjectInitializer parses "{ field = value, ... }". The opening brace
// is consumed here; the caller has only peeked it.
func (p *parser) parseObjectInitializer() Attempt[*ast.ObjectInitializer] {
	lbrace := p.cursor.TryConsume(token.LeftCurlyBracket)
	if lbrace == nil {
		return none[*ast.ObjectInitializer]()
	}

	list := parseCommaList(p, commaList[*ast.FieldInit]{
		closing:      token.RightCurlyBracket,
		missingClose: msgRightCurlyBracketExpected,
		missingItem:  msgFieldInitializationExpected,
		parse:        p.parseFieldInit,
	})
	if list.IsErr() {
		return failFrom[*ast.ObjectInitializer](list)
	}

	l := list.Value()
	return ok(ast.NewObjectInitializer(p.clone(lbrace), l.items, l.closing, l.commas))
}

// parseFieldInit parses one "name = value" field initialization.
func (p *parser) parseFieldInit() Attempt[*ast.FieldInit] {
	name := p.parseSimpleIdentifier()
	if name == nil {
		return none[*ast.FieldInit]()
	}

	if !p.cursor.Check(token.Equal) {
		return fail[*ast.FieldInit](msgFieldMustBeInitialized(p.now()))
	}
	init := p.parseEqualsValueClause(false)
	if init.IsErr() {
		return failFrom[*ast.FieldInit](init)
	}
	return ok(ast.NewFieldInit(name, init.Value()))
}

// parseCallExpr parses an access-level expression followed by any number of
// argument lists; each list nests another call.
func (p *parser) parseCallExpr() Attempt[ast.Expr] {
	callee := p.parseAccessExpr()
	if !callee.IsOk() {
		return callee
	}

	expr := callee.Value()
	for p.cursor.Check(token.LeftParen) {
		args := p.parseArgumentList()
		if args.IsErr() {
			return failFrom[ast.Expr](args)
		}
		expr = ast.NewCallExpr(expr, args.Value())
	}
	return ok(expr)
}

// parseArgumentList parses "( expr, ... )". The opening paren is consumed
// here; the caller has only peeked it.
func (p *parser) parseArgumentList() Attempt[*ast.ArgumentList] {
	lparen := p.cursor.TryConsume(token.LeftParen)
	if lparen == nil {
		return none[*ast.ArgumentList]()
	}

	list := parseCommaList(p, commaList[*ast.Argument]{
		closing:      token.RightParen,
		missingClose: msgRightParenExpected,
		missingItem:  msgArgumentExpected,
		parse: func() Attempt[*ast.Argument] {
			expr := p.parseExpr()
			if expr.IsNone() {
				return none[*ast.Argument]()
			}
			if expr.IsErr() {
				return failFrom[*ast.Argument](expr)
			}
			return ok(ast.NewArgument(expr.Value()))
		},
	})
	if list.IsErr() {
		return failFrom[*ast.ArgumentList](list)
	}

	l := list.Value()
	return ok(ast.NewArgumentList(p.clone(lparen), l.items, l.closing, l.commas))
}

// parseAccessExpr parses member accesses. The receiver is optional: a
// leading dot is an implicit access on a contextual receiver.
func (p *parser) parseAccessExpr() Attempt[ast.Expr] {
	base := p.parsePrimaryExpr()
	if base.IsErr() {
		return base
	}

	var expr ast.Expr
	if base.IsOk() {
		expr = base.Value()
	}

	for {
		dot := p.cursor.TryConsume(token.Dot)
		if dot == nil {
			break
		}

		member := p.parseSimpleIdentifier()
		if member == nil {
			return fail[ast.Expr](msgIdentifierExpected(p.now()))
		}
		expr = ast.NewAccessExpr(expr, ast.NewOperator(p.clone(dot)), member)
	}

	if expr == nil {
		return none[ast.Expr]()
	}
	return ok(expr)
}

// parsePrimaryExpr parses a group, an identifier, or a literal.
func (p *parser) parsePrimaryExpr() Attempt[ast.Expr] {
	if group := p.parseGroupExpr(); !group.IsNone() {
		return group
	}
	if id := p.parseIdentifierExpr(); !id.IsNone() {
		return id
	}
	return p.parseLiteralExpr()
}

// parseGroupExpr parses "( expr )".
func (p *parser) parseGroupExpr() Attempt[ast.Expr] {
	lparen := p.cursor.TryConsume(token.LeftParen)
	if lparen == nil {
		return none[ast.Expr]()
	}

	expr := p.parseExpr()
	if expr.IsNone() {
		return fail[ast.Expr](msgExpressionExpected(p.now()))
	}
	if expr.IsErr() {
		return expr
	}

	rparen := p.cursor.TryConsume(token.RightParen)
	if rparen == nil {
		return fail[ast.Expr](msgRightParenExpected(p.now()))
	}

	return ok[ast.Expr](ast.NewGroupExpr(p.clone(lparen), expr.Value(), p.clone(rparen)))
}

// parseIdentifierExpr parses a possibly qualified identifier as an
// expression.
func (p *parser) parseIdentifierExpr() Attempt[ast.Expr] {
	id := p.parseIdentifier()
	if id.IsNone() {
		return none[ast.Expr]()
	}
	if id.IsErr() {
		return failFrom[ast.Expr](id)
	}
	return ok[ast.Expr](ast.NewIdentifierExpr(id.Value()))
}

// parseLiteralExpr parses a literal as an expression.
func (p *parser) parseLiteralExpr() Attempt[ast.Expr] {
	lit := p.parseLiteral()
	if lit == nil {
		return none[ast.Expr]()
	}
	return ok[ast.Expr](ast.NewLiteralExpr(lit))
}
