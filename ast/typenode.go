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

// TypeNode is a type expression: a partial type together with nullability
// and ownership markers.
type TypeNode struct {
	withSpan
	IsNullable     bool          `json:"is_nullable"`
	Ownership      OwnershipKind `json:"ownership_kind"`
	Ty             PartialType   `json:"ty"`
	NullableToken  *token.Token  `json:"nullable_token,omitempty"`
	OwnershipToken *token.Token  `json:"ownership_token,omitempty"`
}

func (*TypeNode) syntaxNode() {}

// IdentifierType names a type by (possibly qualified) identifier.
type IdentifierType struct {
	withSpan
	Identifier Identifier `json:"identifier"`
}

func (*IdentifierType) syntaxNode()  {}
func (*IdentifierType) partialType() {}

// GroupType is a parenthesised type.
type GroupType struct {
	withSpan
	Type            *TypeNode    `json:"type"`
	LeftParenToken  *token.Token `json:"left_paren_token,omitempty"`
	RightParenToken *token.Token `json:"right_paren_token,omitempty"`
}

func (*GroupType) syntaxNode()  {}
func (*GroupType) partialType() {}

// FunctionType is a function type: an optional Send/Sync prefix, an optional
// "!" throw marker, a parameter type list, and a return type.
type FunctionType struct {
	withSpan
	IsSend          bool           `json:"is_send"`
	IsSync          bool           `json:"is_sync"`
	CanThrow        bool           `json:"can_throw"`
	Params          []*TypeNode    `json:"params"`
	Return          *TypeNode      `json:"return"`
	SsToken         *token.Token   `json:"ss_token,omitempty"`
	BangToken       *token.Token   `json:"bang_token,omitempty"`
	ArrowToken      *token.Token   `json:"arrow_token,omitempty"`
	LeftParenToken  *token.Token   `json:"left_paren_token,omitempty"`
	RightParenToken *token.Token   `json:"right_paren_token,omitempty"`
	CommaTokens     []*token.Token `json:"comma_tokens,omitempty"`
}

func (*FunctionType) syntaxNode()  {}
func (*FunctionType) partialType() {}

// TupleArrayType is a bracketed, comma-separated list of member types.
type TupleArrayType struct {
	withSpan
	Members           []*TypeNode    `json:"members"`
	LeftBracketToken  *token.Token   `json:"left_bracket_token,omitempty"`
	RightBracketToken *token.Token   `json:"right_bracket_token,omitempty"`
	CommaTokens       []*token.Token `json:"comma_tokens,omitempty"`
}

func (*TupleArrayType) syntaxNode()  {}
func (*TupleArrayType) partialType() {}

// RawArrayType is a sized array type: a member type followed by a bracketed
// length expression.
type RawArrayType struct {
	withSpan
	Member            *TypeNode    `json:"member"`
	Length            Expr         `json:"length"`
	LeftBracketToken  *token.Token `json:"left_bracket_token,omitempty"`
	RightBracketToken *token.Token `json:"right_bracket_token,omitempty"`
}

func (*RawArrayType) syntaxNode()  {}
func (*RawArrayType) partialType() {}

// LiteralType is a literal used as a type.
type LiteralType struct {
	withSpan
	Literal *Literal `json:"literal"`
}

func (*LiteralType) syntaxNode()  {}
func (*LiteralType) partialType() {}

// SumType is a union of member types joined with "|".
type SumType struct {
	withSpan
	Members    []*TypeNode    `json:"members"`
	PipeTokens []*token.Token `json:"pipe_tokens,omitempty"`
}

func (*SumType) syntaxNode()  {}
func (*SumType) partialType() {}

// ProductType is an intersection of member types joined with "&".
type ProductType struct {
	withSpan
	Members         []*TypeNode    `json:"members"`
	AmpersandTokens []*token.Token `json:"ampersand_tokens,omitempty"`
}

func (*ProductType) syntaxNode()  {}
func (*ProductType) partialType() {}
