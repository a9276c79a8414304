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

// declLexeme is the contextual keyword that introduces local declarations.
// "var" and "const" are real keywords and introduce them too.
const declLexeme = "let"

// parseItem parses a top-level item. Function definitions are the only item
// so far.
func (p *parser) parseItem() Attempt[ast.Item] {
	return p.parseFuncDef()
}

// parseFuncDef parses "func name(params) -> type body".
func (p *parser) parseFuncDef() Attempt[ast.Item] {
	funcToken := p.cursor.TryConsume(token.KwFunc)
	if funcToken == nil {
		return none[ast.Item]()
	}
	funcToken = p.clone(funcToken)

	name := p.parseSimpleIdentifier()
	if name == nil {
		return fail[ast.Item](msgIdentifierExpected(p.now()))
	}

	params := p.parseParameterList()
	if params.IsErr() {
		return failFrom[ast.Item](params)
	}

	var arrowToken *token.Token
	var returnType *ast.TypeNode
	if arrow := p.cursor.TryConsume(token.MinusArrow); arrow != nil {
		arrowToken = p.clone(arrow)

		ret := p.parseType()
		if ret.IsNone() {
			return fail[ast.Item](msgReturnTypeExpected(p.now()))
		}
		if ret.IsErr() {
			return failFrom[ast.Item](ret)
		}
		returnType = ret.Value()
	}

	body := p.parseBody(bodyOpts{})
	if body.IsErr() {
		return failFrom[ast.Item](body)
	}

	return ok[ast.Item](ast.NewFuncDef(funcToken, name, params.Value(), arrowToken, returnType, body.Value()))
}

// parseParameterList parses "( param, ... )". Functions always take a
// parameter list, so a missing "(" is an error.
func (p *parser) parseParameterList() Attempt[*ast.ParameterList] {
	lparen := p.cursor.TryConsume(token.LeftParen)
	if lparen == nil {
		return fail[*ast.ParameterList](msgLeftParenExpected(p.now()))
	}

	list := parseCommaList(p, commaList[*ast.Parameter]{
		closing:      token.RightParen,
		missingClose: msgRightParenExpected,
		missingItem:  msgParameterExpected,
		parse:        p.parseParameter,
	})
	if list.IsErr() {
		return failFrom[*ast.ParameterList](list)
	}

	l := list.Value()
	return ok(ast.NewParameterList(p.clone(lparen), l.items, l.closing, l.commas))
}

// parseParameter parses one parameter: an optional ownership marker, a
// name, and an optional type annotation.
func (p *parser) parseParameter() Attempt[*ast.Parameter] {
	decl := p.parseRegularDeclarator()
	if decl.IsNone() {
		return none[*ast.Parameter]()
	}
	if decl.IsErr() {
		return failFrom[*ast.Parameter](decl)
	}
	return ok(ast.NewParameter(decl.Value()))
}

// parseStmt parses a statement: a local declaration, or an expression in
// statement position.
func (p *parser) parseStmt() Attempt[ast.Stmt] {
	if local := p.parseLocalDeclStmt(); !local.IsNone() {
		return local
	}

	expr := p.parseExpr()
	if expr.IsNone() {
		return none[ast.Stmt]()
	}
	if expr.IsErr() {
		return failFrom[ast.Stmt](expr)
	}
	return ok[ast.Stmt](ast.NewExprStmt(expr.Value()))
}

// parseLocalDeclStmt parses "let declarator = value", as well as the "var"
// and "const" forms.
func (p *parser) parseLocalDeclStmt() Attempt[ast.Stmt] {
	declToken := p.tryConsumeDeclKeyword()
	if declToken == nil {
		return none[ast.Stmt]()
	}
	declToken = p.clone(declToken)

	// Destructured declarators are carried in the tree but their pattern
	// grammar is deferred.
	if p.cursor.CheckMany(token.LeftSquareBracket, token.LeftCurlyBracket) {
		return fail[ast.Stmt](msgVariableDeclaratorExpected(p.now()))
	}

	decl := p.parseRegularDeclarator()
	if decl.IsNone() {
		return fail[ast.Stmt](msgVariableDeclaratorExpected(p.now()))
	}
	if decl.IsErr() {
		return failFrom[ast.Stmt](decl)
	}

	var init *ast.EqualsValueClause
	if p.cursor.Check(token.Equal) {
		clause := p.parseEqualsValueClause(false)
		if clause.IsErr() {
			return failFrom[ast.Stmt](clause)
		}
		init = clause.Value()
	}

	return ok[ast.Stmt](ast.NewLocalDeclStmt(declToken, decl.Value(), init))
}

// tryConsumeDeclKeyword consumes the token introducing a local declaration,
// if there is one. "let" is matched by lexeme, like the ownership words.
func (p *parser) tryConsumeDeclKeyword() *token.Token {
	if tok := p.cursor.TryConsumeMany(token.KwVar, token.KwConst); tok != nil {
		return tok
	}
	if tok := p.cursor.Peek(); tok != nil && tok.Kind == token.Identifier && tok.Lexeme == declLexeme {
		return p.cursor.Advance()
	}
	return nil
}

// parseRegularDeclarator parses "[ownership] name [: type]". When the
// consumed ownership word turns out to be the only identifier, it is
// reinterpreted as the name: ownership words are contextual.
func (p *parser) parseRegularDeclarator() Attempt[ast.Declarator] {
	ownToken, ownKind := p.tryConsumeOwnership()

	name := p.parseSimpleIdentifier()
	if name == nil {
		if ownToken != nil && ownToken.Kind == token.Identifier {
			name = ast.NewSimpleIdentifier(p.clone(ownToken))
			ownToken = nil
			ownKind = ast.OwnershipNone
		} else if ownToken != nil {
			return fail[ast.Declarator](msgIdentifierExpected(p.now()))
		} else {
			return none[ast.Declarator]()
		}
	}
	ownToken = p.clone(ownToken)

	var annotation *ast.TypeAnnotation
	if colon := p.cursor.TryConsume(token.Colon); colon != nil {
		ty := p.parseType()
		if ty.IsNone() {
			return fail[ast.Declarator](msgTypeAnnotationExpected(p.now()))
		}
		if ty.IsErr() {
			return failFrom[ast.Declarator](ty)
		}
		annotation = ast.NewTypeAnnotation(p.clone(colon), ty.Value())
	}

	return ok[ast.Declarator](ast.NewRegularDeclarator(ownToken, ownKind, name, annotation))
}
