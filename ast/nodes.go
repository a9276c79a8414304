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

// Package ast defines the syntax tree produced by the parser.
//
// The tree is a set of mutually recursive sum types, expressed as interfaces
// with one struct per variant. Every node owns its children exclusively;
// tokens embedded in nodes are clones of the tokens in the lexer's output.
package ast

import (
	"fmt"

	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// SyntaxNode is any node of the syntax tree: an item, a statement, an
// expression, or an error placeholder.
type SyntaxNode interface {
	report.Spanner
	syntaxNode()
}

// Item is a top-level member of a compilation unit.
type Item interface {
	SyntaxNode
	item()
}

// Stmt is a statement.
type Stmt interface {
	SyntaxNode
	stmt()
}

// Expr is an expression.
type Expr interface {
	SyntaxNode
	expr()
}

// Body is the body of a function or control-flow expression.
type Body interface {
	SyntaxNode
	body()
}

// Identifier is a simple or qualified identifier.
type Identifier interface {
	SyntaxNode
	identifier()
}

// Declarator is the declarator of a local declaration: a regular named
// declarator or a destructuring pattern.
type Declarator interface {
	SyntaxNode
	declarator()
}

// PartialType is the type-specific payload of a [TypeNode].
type PartialType interface {
	SyntaxNode
	partialType()
}

// withSpan carries the source span every node has.
type withSpan struct {
	SourceSpan report.SourceSpan `json:"span"`
}

// Span implements [report.Spanner].
func (w withSpan) Span() report.SourceSpan {
	return w.SourceSpan
}

func spanned(span report.SourceSpan) withSpan {
	return withSpan{SourceSpan: span}
}

// ErrorNode is the placeholder left in the tree wherever a construct was
// committed to but turned out to be syntactically invalid. A tree containing
// an ErrorNode is always accompanied by at least one Error-severity message.
type ErrorNode struct {
	withSpan
}

func (*ErrorNode) syntaxNode()  {}
func (*ErrorNode) stmt()        {}
func (*ErrorNode) expr()        {}
func (*ErrorNode) partialType() {}

// OwnershipKind is the ownership marker attached to declarators and type
// nodes. It is carried through parsing for the semantic phase.
type OwnershipKind uint8

const (
	OwnershipNone OwnershipKind = iota
	OwnershipFinal
	OwnershipMutable
	OwnershipShared
	OwnershipReference
	OwnershipIn
)

// String implements [fmt.Stringer].
func (k OwnershipKind) String() string {
	switch k {
	case OwnershipNone:
		return "None"
	case OwnershipFinal:
		return "Final"
	case OwnershipMutable:
		return "Mutable"
	case OwnershipShared:
		return "Shared"
	case OwnershipReference:
		return "Reference"
	case OwnershipIn:
		return "In"
	default:
		return fmt.Sprintf("OwnershipKind(%d)", uint8(k))
	}
}

// MarshalJSON implements [json.Marshaler].
func (k OwnershipKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// OperatorKind is the semantic kind of an operator token.
type OperatorKind uint8

const (
	OpInvalid OperatorKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpBitwiseNot
	OpAssignment
	OpEquals
	OpNotEquals
	OpLike
	OpNotLike
	OpReferenceEquals
	OpReferenceNotEquals
	OpLessThan
	OpLessThanOrEqualsTo
	OpGreaterThan
	OpGreaterThanOrEqualsTo
	OpLogicalAnd
	OpLogicalOr
	OpMemberAccess
	OpScopeResolution
)

var operatorKindNames = map[OperatorKind]string{
	OpInvalid:               "Invalid",
	OpAdd:                   "Add",
	OpSubtract:              "Subtract",
	OpMultiply:              "Multiply",
	OpDivide:                "Divide",
	OpBitwiseNot:            "BitwiseNot",
	OpAssignment:            "Assignment",
	OpEquals:                "Equals",
	OpNotEquals:             "NotEquals",
	OpLike:                  "Like",
	OpNotLike:               "NotLike",
	OpReferenceEquals:       "ReferenceEquals",
	OpReferenceNotEquals:    "ReferenceNotEquals",
	OpLessThan:              "LessThan",
	OpLessThanOrEqualsTo:    "LessThanOrEqualsTo",
	OpGreaterThan:           "GreaterThan",
	OpGreaterThanOrEqualsTo: "GreaterThanOrEqualsTo",
	OpLogicalAnd:            "LogicalAnd",
	OpLogicalOr:             "LogicalOr",
	OpMemberAccess:          "MemberAccess",
	OpScopeResolution:       "ScopeResolution",
}

// String implements [fmt.Stringer].
func (k OperatorKind) String() string {
	if name, ok := operatorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OperatorKind(%d)", uint8(k))
}

// MarshalJSON implements [json.Marshaler].
func (k OperatorKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// OperatorKindOf translates an operator token kind into its semantic kind.
// Any token that is not an operator maps to [OpInvalid].
func OperatorKindOf(kind token.Kind) OperatorKind {
	switch kind {
	case token.Plus:
		return OpAdd
	case token.Minus:
		return OpSubtract
	case token.Asterisk:
		return OpMultiply
	case token.Slash:
		return OpDivide
	case token.Tilde:
		return OpBitwiseNot
	case token.Equal:
		return OpAssignment
	case token.EqualEqual:
		return OpEquals
	case token.BangEqual:
		return OpNotEquals
	case token.TildeTilde:
		return OpLike
	case token.BangTilde:
		return OpNotLike
	case token.EqualEqualEqual:
		return OpReferenceEquals
	case token.BangEqualEqual:
		return OpReferenceNotEquals
	case token.Less:
		return OpLessThan
	case token.LessEqual:
		return OpLessThanOrEqualsTo
	case token.Greater:
		return OpGreaterThan
	case token.GreaterEqual:
		return OpGreaterThanOrEqualsTo
	case token.KwAnd:
		return OpLogicalAnd
	case token.KwOr:
		return OpLogicalOr
	case token.Dot:
		return OpMemberAccess
	case token.DoubleColon:
		return OpScopeResolution
	default:
		return OpInvalid
	}
}
