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

import "github.com/judithlang/judith/token"

// IfExpr is a conditional expression. An elsif chain is represented by an
// IfExpr whose Alternate is an [ExprBody] wrapping the inner IfExpr, with the
// elsif token standing in for both the else and the inner if token.
type IfExpr struct {
	withSpan
	Test       Expr         `json:"test"`
	Consequent Body         `json:"consequent"`
	Alternate  Body         `json:"alternate"`
	IfToken    *token.Token `json:"if_token,omitempty"`
	ElseToken  *token.Token `json:"else_token,omitempty"`
}

func (*IfExpr) syntaxNode() {}
func (*IfExpr) expr()       {}

// LoopExpr is an unconditional loop.
type LoopExpr struct {
	withSpan
	Body      Body         `json:"body"`
	LoopToken *token.Token `json:"loop_token,omitempty"`
}

func (*LoopExpr) syntaxNode() {}
func (*LoopExpr) expr()       {}

// WhileExpr is a conditional loop. Its body's opening keyword is "do".
type WhileExpr struct {
	withSpan
	Test       Expr         `json:"test"`
	Body       Body         `json:"body"`
	WhileToken *token.Token `json:"while_token,omitempty"`
}

func (*WhileExpr) syntaxNode() {}
func (*WhileExpr) expr()       {}

// AssignmentExpr is a single-level assignment. Assignments do not chain.
type AssignmentExpr struct {
	withSpan
	Left     Expr      `json:"left"`
	Operator *Operator `json:"operator"`
	Right    Expr      `json:"right"`
}

func (*AssignmentExpr) syntaxNode() {}
func (*AssignmentExpr) expr()       {}

// BinaryExpr is an infix operator expression.
type BinaryExpr struct {
	withSpan
	Left     Expr      `json:"left"`
	Operator *Operator `json:"operator"`
	Right    Expr      `json:"right"`
}

func (*BinaryExpr) syntaxNode() {}
func (*BinaryExpr) expr()       {}

// LeftUnaryExpr is a prefix operator expression.
type LeftUnaryExpr struct {
	withSpan
	Operator *Operator `json:"operator"`
	Expr     Expr      `json:"expr"`
}

func (*LeftUnaryExpr) syntaxNode() {}
func (*LeftUnaryExpr) expr()       {}

// GroupExpr is a parenthesised expression.
type GroupExpr struct {
	withSpan
	Expr            Expr         `json:"expr"`
	LeftParenToken  *token.Token `json:"left_paren_token,omitempty"`
	RightParenToken *token.Token `json:"right_paren_token,omitempty"`
}

func (*GroupExpr) syntaxNode() {}
func (*GroupExpr) expr()       {}

// ObjectInitExpr is an object initialization. Provider is nil for a bare
// initializer with no providing expression.
type ObjectInitExpr struct {
	withSpan
	Provider    Expr               `json:"provider"`
	Initializer *ObjectInitializer `json:"initializer"`
}

func (*ObjectInitExpr) syntaxNode() {}
func (*ObjectInitExpr) expr()       {}

// AccessExpr is a member access. Receiver is nil for an implicit access,
// where the member is looked up on a contextual receiver.
type AccessExpr struct {
	withSpan
	Receiver Expr              `json:"receiver"`
	Operator *Operator         `json:"operator"`
	Member   *SimpleIdentifier `json:"member"`
}

func (*AccessExpr) syntaxNode() {}
func (*AccessExpr) expr()       {}

// CallExpr is a call with one argument list. Chained argument lists nest
// CallExprs.
type CallExpr struct {
	withSpan
	Callee    Expr          `json:"callee"`
	Arguments *ArgumentList `json:"arguments"`
}

func (*CallExpr) syntaxNode() {}
func (*CallExpr) expr()       {}

// IdentifierExpr is an identifier used as an expression.
type IdentifierExpr struct {
	withSpan
	Identifier Identifier `json:"identifier"`
}

func (*IdentifierExpr) syntaxNode() {}
func (*IdentifierExpr) expr()       {}

// LiteralExpr is a literal used as an expression.
type LiteralExpr struct {
	withSpan
	Literal *Literal `json:"literal"`
}

func (*LiteralExpr) syntaxNode() {}
func (*LiteralExpr) expr()       {}
