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

package ast

import (
	"strings"

	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// The factory functions in this file are the only way the parser builds
// nodes. Each one computes the node's span from its extremal children: start
// and line come from the first constituent, end from the last.

// escapeChar marks an escaped identifier; it is not part of the name.
const escapeChar = '\\'

func spanJoin(first, last report.Spanner) report.SourceSpan {
	a := first.Span()
	b := last.Span()
	return report.NewSpan(a.Start, b.End, a.Line)
}

// NewErrorNode returns a fresh error placeholder with no location.
func NewErrorNode() *ErrorNode {
	return &ErrorNode{withSpan: spanned(report.NoLocation())}
}

// NewErrorNodeAt returns an error placeholder anchored to at.
func NewErrorNodeAt(at report.Spanner) *ErrorNode {
	return &ErrorNode{withSpan: spanned(at.Span())}
}

// NewIfExpr builds an if expression. elseToken and alternate may be nil;
// for an elsif chain, elseToken is the elsif token and alternate wraps the
// inner if expression in an [ExprBody].
func NewIfExpr(ifToken *token.Token, test Expr, consequent Body, elseToken *token.Token, alternate Body) *IfExpr {
	last := report.Spanner(consequent)
	if alternate != nil {
		last = alternate
	}
	return &IfExpr{
		withSpan:   spanned(spanJoin(ifToken, last)),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
		IfToken:    ifToken,
		ElseToken:  elseToken,
	}
}

// NewLoopExpr builds a loop expression.
func NewLoopExpr(loopToken *token.Token, body Body) *LoopExpr {
	return &LoopExpr{
		withSpan:  spanned(spanJoin(loopToken, body)),
		Body:      body,
		LoopToken: loopToken,
	}
}

// NewWhileExpr builds a while expression.
func NewWhileExpr(whileToken *token.Token, test Expr, body Body) *WhileExpr {
	return &WhileExpr{
		withSpan:   spanned(spanJoin(whileToken, body)),
		Test:       test,
		Body:       body,
		WhileToken: whileToken,
	}
}

// NewAssignmentExpr builds a single-level assignment.
func NewAssignmentExpr(left Expr, op *Operator, right Expr) *AssignmentExpr {
	return &AssignmentExpr{
		withSpan: spanned(spanJoin(left, right)),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

// NewBinaryExpr builds an infix operator expression.
func NewBinaryExpr(left Expr, op *Operator, right Expr) *BinaryExpr {
	return &BinaryExpr{
		withSpan: spanned(spanJoin(left, right)),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

// NewLeftUnaryExpr builds a prefix operator expression.
func NewLeftUnaryExpr(op *Operator, expr Expr) *LeftUnaryExpr {
	return &LeftUnaryExpr{
		withSpan: spanned(spanJoin(op, expr)),
		Operator: op,
		Expr:     expr,
	}
}

// NewGroupExpr builds a parenthesised expression.
func NewGroupExpr(leftParen *token.Token, expr Expr, rightParen *token.Token) *GroupExpr {
	return &GroupExpr{
		withSpan:        spanned(spanJoin(leftParen, rightParen)),
		Expr:            expr,
		LeftParenToken:  leftParen,
		RightParenToken: rightParen,
	}
}

// NewObjectInitExpr builds an object initialization. provider may be nil.
func NewObjectInitExpr(provider Expr, initializer *ObjectInitializer) *ObjectInitExpr {
	first := report.Spanner(initializer)
	if provider != nil {
		first = provider
	}
	return &ObjectInitExpr{
		withSpan:    spanned(spanJoin(first, initializer)),
		Provider:    provider,
		Initializer: initializer,
	}
}

// NewAccessExpr builds a member access. receiver may be nil for an implicit
// access.
func NewAccessExpr(receiver Expr, op *Operator, member *SimpleIdentifier) *AccessExpr {
	first := report.Spanner(op)
	if receiver != nil {
		first = receiver
	}
	return &AccessExpr{
		withSpan: spanned(spanJoin(first, member)),
		Receiver: receiver,
		Operator: op,
		Member:   member,
	}
}

// NewCallExpr builds a call expression.
func NewCallExpr(callee Expr, arguments *ArgumentList) *CallExpr {
	return &CallExpr{
		withSpan:  spanned(spanJoin(callee, arguments)),
		Callee:    callee,
		Arguments: arguments,
	}
}

// NewIdentifierExpr wraps an identifier as an expression.
func NewIdentifierExpr(id Identifier) *IdentifierExpr {
	return &IdentifierExpr{withSpan: spanned(id.Span()), Identifier: id}
}

// NewLiteralExpr wraps a literal as an expression.
func NewLiteralExpr(literal *Literal) *LiteralExpr {
	return &LiteralExpr{withSpan: spanned(literal.Span()), Literal: literal}
}

// NewSimpleIdentifier builds an identifier from its token, normalising
// escaped identifiers.
func NewSimpleIdentifier(tok *token.Token) *SimpleIdentifier {
	name := tok.Lexeme
	escaped := strings.HasPrefix(name, string(escapeChar))
	if escaped {
		name = name[1:]
	}
	return &SimpleIdentifier{
		withSpan:  spanned(tok.Span()),
		Name:      name,
		IsEscaped: escaped,
		RawToken:  tok,
	}
}

// NewMetaName builds a compiler-synthesised identifier that cannot appear in
// source.
func NewMetaName(name string) *SimpleIdentifier {
	return &SimpleIdentifier{
		withSpan:   spanned(report.NoLocation()),
		IsMetaName: true,
		Name:       name,
	}
}

// NewQualifiedIdentifier builds a "::"-qualified identifier.
func NewQualifiedIdentifier(qualifier Identifier, op *Operator, name *SimpleIdentifier) *QualifiedIdentifier {
	return &QualifiedIdentifier{
		withSpan:  spanned(spanJoin(qualifier, name)),
		Qualifier: qualifier,
		Operator:  op,
		Name:      name,
	}
}

// NewLiteral builds a literal from its token.
func NewLiteral(tok *token.Token) *Literal {
	return &Literal{
		withSpan: spanned(tok.Span()),
		Source:   tok.Lexeme,
		RawToken: tok,
	}
}

// NewOperator builds an operator from its token, translating the token kind
// into an [OperatorKind].
func NewOperator(tok *token.Token) *Operator {
	return &Operator{
		withSpan: spanned(tok.Span()),
		Kind:     OperatorKindOf(tok.Kind),
		RawToken: tok,
	}
}

// NewEqualsValueClause builds an initializer clause. values must not be
// empty.
func NewEqualsValueClause(equalsToken *token.Token, values []Expr, commaTokens []*token.Token) *EqualsValueClause {
	if len(values) == 0 {
		panic("ast: EqualsValueClause must have at least one value")
	}
	return &EqualsValueClause{
		withSpan:    spanned(spanJoin(equalsToken, values[len(values)-1])),
		Values:      values,
		EqualsToken: equalsToken,
		CommaTokens: commaTokens,
	}
}

// NewArgument wraps an expression as an argument.
func NewArgument(expr Expr) *Argument {
	return &Argument{withSpan: spanned(expr.Span()), Expr: expr}
}

// NewArgumentList builds an argument list from its delimiters and arguments.
func NewArgumentList(leftParen *token.Token, args []*Argument, rightParen *token.Token, commaTokens []*token.Token) *ArgumentList {
	return &ArgumentList{
		withSpan:        spanned(spanJoin(leftParen, rightParen)),
		Arguments:       args,
		LeftParenToken:  leftParen,
		RightParenToken: rightParen,
		CommaTokens:     commaTokens,
	}
}

// NewParameter wraps a declarator as a parameter.
func NewParameter(declarator Declarator) *Parameter {
	return &Parameter{withSpan: spanned(declarator.Span()), Declarator: declarator}
}

// NewParameterList builds a parameter list from its delimiters and
// parameters.
func NewParameterList(leftParen *token.Token, params []*Parameter, rightParen *token.Token, commaTokens []*token.Token) *ParameterList {
	return &ParameterList{
		withSpan:        spanned(spanJoin(leftParen, rightParen)),
		Params:          params,
		LeftParenToken:  leftParen,
		RightParenToken: rightParen,
		CommaTokens:     commaTokens,
	}
}

// NewEmptyParameterList builds a parameter list with no tokens, for
// synthesised functions.
func NewEmptyParameterList() *ParameterList {
	return &ParameterList{withSpan: spanned(report.NoLocation())}
}

// NewFieldInit builds a field initialization.
func NewFieldInit(fieldName *SimpleIdentifier, initializer *EqualsValueClause) *FieldInit {
	return &FieldInit{
		withSpan:    spanned(spanJoin(fieldName, initializer)),
		FieldName:   fieldName,
		Initializer: initializer,
	}
}

// NewObjectInitializer builds an object initializer from its delimiters and
// field initializations.
func NewObjectInitializer(leftBracket *token.Token, fieldInits []*FieldInit, rightBracket *token.Token, commaTokens []*token.Token) *ObjectInitializer {
	return &ObjectInitializer{
		withSpan:          spanned(spanJoin(leftBracket, rightBracket)),
		FieldInits:        fieldInits,
		LeftBracketToken:  leftBracket,
		RightBracketToken: rightBracket,
		CommaTokens:       commaTokens,
	}
}

// NewTypeAnnotation builds a type annotation.
func NewTypeAnnotation(colonToken *token.Token, ty *TypeNode) *TypeAnnotation {
	return &TypeAnnotation{
		withSpan:   spanned(spanJoin(colonToken, ty)),
		ColonToken: colonToken,
		Type:       ty,
	}
}

// NewExprStmt wraps an expression as a statement.
func NewExprStmt(expr Expr) *ExprStmt {
	return &ExprStmt{withSpan: spanned(expr.Span()), Expr: expr}
}

// NewLocalDeclStmt builds a local declaration statement. initializer may be
// nil.
func NewLocalDeclStmt(declToken *token.Token, declarator Declarator, initializer *EqualsValueClause) *LocalDeclStmt {
	last := report.Spanner(declarator)
	if initializer != nil {
		last = initializer
	}
	return &LocalDeclStmt{
		withSpan:    spanned(spanJoin(declToken, last)),
		Declarator:  declarator,
		Initializer: initializer,
		DeclToken:   declToken,
	}
}

// NewRegularDeclarator builds a named declarator. ownershipToken and
// annotation may be nil.
func NewRegularDeclarator(ownershipToken *token.Token, ownership OwnershipKind, name *SimpleIdentifier, annotation *TypeAnnotation) *RegularDeclarator {
	first := report.Spanner(name)
	if ownershipToken != nil {
		first = ownershipToken
	}
	last := report.Spanner(name)
	if annotation != nil {
		last = annotation
	}
	return &RegularDeclarator{
		withSpan:       spanned(spanJoin(first, last)),
		Ownership:      ownership,
		OwnershipToken: ownershipToken,
		Name:           name,
		TypeAnnotation: annotation,
	}
}

// NewFuncDef builds a function definition. returnType, its arrow token, and
// the func token of implicit functions may be nil.
func NewFuncDef(funcToken *token.Token, name *SimpleIdentifier, params *ParameterList, arrowToken *token.Token, returnType *TypeNode, body Body) *FuncDef {
	first := report.Spanner(body)
	if funcToken != nil {
		first = funcToken
	}
	return &FuncDef{
		withSpan:             spanned(spanJoin(first, body)),
		Name:                 name,
		Params:               params,
		ReturnType:           returnType,
		Body:                 body,
		FuncToken:            funcToken,
		ReturnTypeArrowToken: arrowToken,
	}
}

// NewBlockBody builds a block body. openingToken and closingToken may be
// nil; the span falls back to the enclosed nodes.
func NewBlockBody(openingToken *token.Token, nodes []SyntaxNode, closingToken *token.Token) *BlockBody {
	var first, last report.Spanner
	switch {
	case openingToken != nil:
		first = openingToken
	case len(nodes) > 0:
		first = nodes[0]
	case closingToken != nil:
		first = closingToken
	}
	switch {
	case closingToken != nil:
		last = closingToken
	case len(nodes) > 0:
		last = nodes[len(nodes)-1]
	default:
		last = first
	}

	span := report.NoLocation()
	if first != nil {
		span = spanJoin(first, last)
	}
	return &BlockBody{
		withSpan:     spanned(span),
		OpeningToken: openingToken,
		Nodes:        nodes,
		ClosingToken: closingToken,
	}
}

// NewArrowBody builds an arrow body.
func NewArrowBody(arrowToken *token.Token, expr Expr) *ArrowBody {
	return &ArrowBody{
		withSpan:   spanned(spanJoin(arrowToken, expr)),
		ArrowToken: arrowToken,
		Expr:       expr,
	}
}

// NewExprBody wraps an expression as a body.
func NewExprBody(expr Expr) *ExprBody {
	return &ExprBody{withSpan: spanned(expr.Span()), Expr: expr}
}

// NewTypeNode wraps a partial type into a type node.
func NewTypeNode(ty PartialType) *TypeNode {
	return &TypeNode{withSpan: spanned(ty.Span()), Ty: ty}
}

// MarkNullable marks a type node nullable and extends its span over the "?"
// token.
func MarkNullable(node *TypeNode, questionToken *token.Token) *TypeNode {
	node.IsNullable = true
	node.NullableToken = questionToken
	node.SourceSpan = spanJoin(node.SourceSpan, questionToken)
	return node
}

// MarkOwnership attaches an ownership marker to a type node and extends its
// span over the marker token.
func MarkOwnership(node *TypeNode, kind OwnershipKind, ownershipToken *token.Token) *TypeNode {
	node.Ownership = kind
	node.OwnershipToken = ownershipToken
	node.SourceSpan = spanJoin(ownershipToken, node.SourceSpan)
	return node
}

// NewIdentifierType builds a named type.
func NewIdentifierType(id Identifier) *IdentifierType {
	return &IdentifierType{withSpan: spanned(id.Span()), Identifier: id}
}

// NewGroupType builds a parenthesised type.
func NewGroupType(leftParen *token.Token, ty *TypeNode, rightParen *token.Token) *GroupType {
	return &GroupType{
		withSpan:        spanned(spanJoin(leftParen, rightParen)),
		Type:            ty,
		LeftParenToken:  leftParen,
		RightParenToken: rightParen,
	}
}

// NewFunctionType builds a function type. ssToken and bangToken may be nil;
// the Send/Sync flags are decoded from the ss token's lexeme.
func NewFunctionType(ssToken, bangToken, leftParen *token.Token, params []*TypeNode, commaTokens []*token.Token, rightParen, arrowToken *token.Token, ret *TypeNode) *FunctionType {
	first := report.Spanner(leftParen)
	if bangToken != nil {
		first = bangToken
	}
	if ssToken != nil {
		first = ssToken
	}
	return &FunctionType{
		withSpan:        spanned(spanJoin(first, ret)),
		IsSend:          ssToken != nil && strings.Contains(ssToken.Lexeme, "s"),
		IsSync:          ssToken != nil && strings.Contains(ssToken.Lexeme, "S"),
		CanThrow:        bangToken != nil,
		Params:          params,
		Return:          ret,
		SsToken:         ssToken,
		BangToken:       bangToken,
		ArrowToken:      arrowToken,
		LeftParenToken:  leftParen,
		RightParenToken: rightParen,
		CommaTokens:     commaTokens,
	}
}

// NewTupleArrayType builds a tuple array type.
func NewTupleArrayType(leftBracket *token.Token, members []*TypeNode, rightBracket *token.Token, commaTokens []*token.Token) *TupleArrayType {
	return &TupleArrayType{
		withSpan:          spanned(spanJoin(leftBracket, rightBracket)),
		Members:           members,
		LeftBracketToken:  leftBracket,
		RightBracketToken: rightBracket,
		CommaTokens:       commaTokens,
	}
}

// NewRawArrayType builds a sized array type.
func NewRawArrayType(member *TypeNode, leftBracket *token.Token, length Expr, rightBracket *token.Token) *RawArrayType {
	return &RawArrayType{
		withSpan:          spanned(spanJoin(member, rightBracket)),
		Member:            member,
		Length:            length,
		LeftBracketToken:  leftBracket,
		RightBracketToken: rightBracket,
	}
}

// NewLiteralType builds a literal type.
func NewLiteralType(literal *Literal) *LiteralType {
	return &LiteralType{withSpan: spanned(literal.Span()), Literal: literal}
}

// NewSumType joins member types into a sum type.
func NewSumType(members []*TypeNode, pipeTokens []*token.Token) *SumType {
	return &SumType{
		withSpan:   spanned(spanJoin(members[0], members[len(members)-1])),
		Members:    members,
		PipeTokens: pipeTokens,
	}
}

// NewProductType joins member types into a product type.
func NewProductType(members []*TypeNode, ampersandTokens []*token.Token) *ProductType {
	return &ProductType{
		withSpan:        spanned(spanJoin(members[0], members[len(members)-1])),
		Members:         members,
		AmpersandTokens: ampersandTokens,
	}
}
