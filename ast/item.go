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

// FuncDef is a function definition. Implicit functions are synthesised by
// the compilation unit assembler to hold stray top-level statements.
type FuncDef struct {
	withSpan
	IsImplicit           bool              `json:"is_implicit"`
	Name                 *SimpleIdentifier `json:"name"`
	Params               *ParameterList    `json:"params"`
	ReturnType           *TypeNode         `json:"return_type"`
	Body                 Body              `json:"body"`
	FuncToken            *token.Token      `json:"func_token,omitempty"`
	ReturnTypeArrowToken *token.Token      `json:"return_type_arrow_token,omitempty"`
}

func (*FuncDef) syntaxNode() {}
func (*FuncDef) item()       {}

// BlockBody is a sequence of nodes, optionally introduced by an opening
// keyword and normally terminated by "end". OpeningToken is nil when the
// context expects no opening keyword; ClosingToken is nil when the body is
// delimited by a sibling keyword (else/elsif) of the enclosing construct.
// Both are nil for the implicit function's body.
type BlockBody struct {
	withSpan
	OpeningToken *token.Token `json:"opening_token,omitempty"`
	Nodes        []SyntaxNode `json:"nodes"`
	ClosingToken *token.Token `json:"closing_token,omitempty"`
}

func (*BlockBody) syntaxNode() {}
func (*BlockBody) body()       {}

// ArrowBody is a single-expression body introduced by "=>".
type ArrowBody struct {
	withSpan
	ArrowToken *token.Token `json:"arrow_token,omitempty"`
	Expr       Expr         `json:"expr"`
}

func (*ArrowBody) syntaxNode() {}
func (*ArrowBody) body()       {}

// ExprBody wraps an expression used directly as a body, as in the alternate
// of an elsif chain.
type ExprBody struct {
	withSpan
	Expr Expr `json:"expr"`
}

func (*ExprBody) syntaxNode() {}
func (*ExprBody) body()       {}
