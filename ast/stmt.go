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

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	withSpan
	Expr Expr `json:"expr"`
}

func (*ExprStmt) syntaxNode() {}
func (*ExprStmt) stmt()       {}

// LocalDeclStmt declares a local binding, optionally with an initializer.
type LocalDeclStmt struct {
	withSpan
	Declarator  Declarator         `json:"declarator"`
	Initializer *EqualsValueClause `json:"initializer"`
	DeclToken   *token.Token       `json:"decl_token,omitempty"`
}

func (*LocalDeclStmt) syntaxNode() {}
func (*LocalDeclStmt) stmt()       {}

// RegularDeclarator is a named declarator with optional ownership and type
// annotation.
type RegularDeclarator struct {
	withSpan
	Ownership      OwnershipKind     `json:"ownership_kind"`
	OwnershipToken *token.Token      `json:"ownership_token,omitempty"`
	Name           *SimpleIdentifier `json:"name"`
	TypeAnnotation *TypeAnnotation   `json:"type_annotation"`
}

func (*RegularDeclarator) syntaxNode() {}
func (*RegularDeclarator) declarator() {}

// DestructuredPatternKind is the kind of pattern a destructured declarator
// binds with.
type DestructuredPatternKind uint8

const (
	ArrayPattern DestructuredPatternKind = iota
	ObjectPattern
)

// String implements [fmt.Stringer].
func (k DestructuredPatternKind) String() string {
	if k == ObjectPattern {
		return "Object"
	}
	return "Array"
}

// MarshalJSON implements [json.Marshaler].
func (k DestructuredPatternKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// DestructuredDeclarator binds several names via an array or object pattern.
// Reserved: the parser does not produce it yet.
type DestructuredDeclarator struct {
	withSpan
	Pattern DestructuredPatternKind `json:"pattern"`
	Fields  []*SimpleIdentifier     `json:"fields"`
}

func (*DestructuredDeclarator) syntaxNode() {}
func (*DestructuredDeclarator) declarator() {}

// TypeAnnotation attaches a type to a declarator.
type TypeAnnotation struct {
	withSpan
	ColonToken *token.Token `json:"colon_token,omitempty"`
	Type       *TypeNode    `json:"type"`
}
