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
	"strconv"
	"strings"

	"github.com/judithlang/judith/token"
)

// SimpleIdentifier is a single identifier. Escaped identifiers are written
// with a leading backslash, which is not part of the name. Meta names, such
// as the implicit function's, are compiler-synthesised and cannot be written
// in source.
type SimpleIdentifier struct {
	withSpan
	IsMetaName bool         `json:"is_meta_name"`
	Name       string       `json:"name"`
	IsEscaped  bool         `json:"is_escaped"`
	RawToken   *token.Token `json:"raw_token,omitempty"`
}

func (*SimpleIdentifier) syntaxNode() {}
func (*SimpleIdentifier) identifier() {}

// QualifiedIdentifier is an identifier qualified with "::".
type QualifiedIdentifier struct {
	withSpan
	IsMetaName bool              `json:"is_meta_name"`
	Qualifier  Identifier        `json:"qualifier"`
	Operator   *Operator         `json:"operator"`
	Name       *SimpleIdentifier `json:"name"`
}

func (*QualifiedIdentifier) syntaxNode() {}
func (*QualifiedIdentifier) identifier() {}

// Literal is a literal value, preserved as source text.
type Literal struct {
	withSpan
	Source   string       `json:"source"`
	RawToken *token.Token `json:"raw_token,omitempty"`
}

// AsInt parses the literal as an integer, accepting base prefixes and digit
// separators.
func (l *Literal) AsInt() (int64, error) {
	src := strings.ReplaceAll(l.Source, "_", "")
	return strconv.ParseInt(src, 0, 64)
}

// AsFloat parses the literal as a float, accepting digit separators.
func (l *Literal) AsFloat() (float64, error) {
	src := strings.ReplaceAll(l.Source, "_", "")
	return strconv.ParseFloat(src, 64)
}

// Operator wraps an operator token together with its semantic kind.
type Operator struct {
	withSpan
	Kind     OperatorKind `json:"kind"`
	RawToken *token.Token `json:"raw_token,omitempty"`
}

// EqualsValueClause is an initializer clause: "=" followed by one or more
// comma-separated values.
type EqualsValueClause struct {
	withSpan
	Values      []Expr         `json:"values"`
	EqualsToken *token.Token   `json:"equals_token,omitempty"`
	CommaTokens []*token.Token `json:"comma_tokens,omitempty"`
}

// Argument is a single call argument.
type Argument struct {
	withSpan
	Expr Expr `json:"expr"`
}

// ArgumentList is a parenthesised, comma-separated list of arguments.
type ArgumentList struct {
	withSpan
	Arguments       []*Argument    `json:"arguments"`
	LeftParenToken  *token.Token   `json:"left_paren_token,omitempty"`
	RightParenToken *token.Token   `json:"right_paren_token,omitempty"`
	CommaTokens     []*token.Token `json:"comma_tokens,omitempty"`
}

// Parameter is a single function parameter.
type Parameter struct {
	withSpan
	Declarator Declarator `json:"declarator"`
}

// ParameterList is a parenthesised, comma-separated list of parameters.
type ParameterList struct {
	withSpan
	Params          []*Parameter   `json:"params"`
	LeftParenToken  *token.Token   `json:"left_paren_token,omitempty"`
	RightParenToken *token.Token   `json:"right_paren_token,omitempty"`
	CommaTokens     []*token.Token `json:"comma_tokens,omitempty"`
}

// FieldInit initializes one field inside an object initializer.
type FieldInit struct {
	withSpan
	FieldName   *SimpleIdentifier  `json:"field_name"`
	Initializer *EqualsValueClause `json:"initializer"`
}

// ObjectInitializer is a braced, comma-separated list of field
// initializations.
type ObjectInitializer struct {
	withSpan
	FieldInits        []*FieldInit   `json:"field_inits"`
	LeftBracketToken  *token.Token   `json:"left_bracket_token,omitempty"`
	RightBracketToken *token.Token   `json:"right_bracket_token,omitempty"`
	CommaTokens       []*token.Token `json:"comma_tokens,omitempty"`
}
