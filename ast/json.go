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
	"bytes"
	"encoding/json"
	"fmt"
)

// Every sum type serialises with a discriminator field naming the variant:
// node_kind, item_kind, stmt_kind, block_kind, expr_kind, identifier_kind,
// decl_type and type_kind. taggedJSON marshals a node and splices the
// discriminators into the front of the object.
func taggedJSON(v any, tags ...string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var head bytes.Buffer
	head.WriteByte('{')
	for i := 0; i+1 < len(tags); i += 2 {
		if i > 0 {
			head.WriteByte(',')
		}
		fmt.Fprintf(&head, "%q:%q", tags[i], tags[i+1])
	}

	if len(b) < 2 || b[0] != '{' {
		return nil, fmt.Errorf("ast: cannot tag non-object JSON %q", b)
	}
	if len(b) == 2 { // "{}"
		head.WriteByte('}')
		return head.Bytes(), nil
	}
	head.WriteByte(',')
	return append(head.Bytes(), b[1:]...), nil
}

// MarshalJSON implements [json.Marshaler].
func (n *ErrorNode) MarshalJSON() ([]byte, error) {
	type raw ErrorNode
	return taggedJSON((*raw)(n), "node_kind", "Error")
}

// MarshalJSON implements [json.Marshaler].
func (n *FuncDef) MarshalJSON() ([]byte, error) {
	type raw FuncDef
	return taggedJSON((*raw)(n), "node_kind", "Item", "item_kind", "FuncDef")
}

// MarshalJSON implements [json.Marshaler].
func (n *ExprStmt) MarshalJSON() ([]byte, error) {
	type raw ExprStmt
	return taggedJSON((*raw)(n), "node_kind", "Stmt", "stmt_kind", "Expr")
}

// MarshalJSON implements [json.Marshaler].
func (n *LocalDeclStmt) MarshalJSON() ([]byte, error) {
	type raw LocalDeclStmt
	return taggedJSON((*raw)(n), "node_kind", "Stmt", "stmt_kind", "LocalDecl")
}

func (n *IfExpr) MarshalJSON() ([]byte, error) {
	type raw IfExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "If")
}

func (n *LoopExpr) MarshalJSON() ([]byte, error) {
	type raw LoopExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Loop")
}

func (n *WhileExpr) MarshalJSON() ([]byte, error) {
	type raw WhileExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "While")
}

func (n *AssignmentExpr) MarshalJSON() ([]byte, error) {
	type raw AssignmentExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Assignment")
}

func (n *BinaryExpr) MarshalJSON() ([]byte, error) {
	type raw BinaryExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Binary")
}

func (n *LeftUnaryExpr) MarshalJSON() ([]byte, error) {
	type raw LeftUnaryExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "LeftUnary")
}

func (n *GroupExpr) MarshalJSON() ([]byte, error) {
	type raw GroupExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Group")
}

func (n *ObjectInitExpr) MarshalJSON() ([]byte, error) {
	type raw ObjectInitExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "ObjectInit")
}

func (n *AccessExpr) MarshalJSON() ([]byte, error) {
	type raw AccessExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Access")
}

func (n *CallExpr) MarshalJSON() ([]byte, error) {
	type raw CallExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Call")
}

func (n *IdentifierExpr) MarshalJSON() ([]byte, error) {
	type raw IdentifierExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Identifier")
}

func (n *LiteralExpr) MarshalJSON() ([]byte, error) {
	type raw LiteralExpr
	return taggedJSON((*raw)(n), "node_kind", "Expr", "expr_kind", "Literal")
}

func (n *BlockBody) MarshalJSON() ([]byte, error) {
	type raw BlockBody
	return taggedJSON((*raw)(n), "block_kind", "Block")
}

func (n *ArrowBody) MarshalJSON() ([]byte, error) {
	type raw ArrowBody
	return taggedJSON((*raw)(n), "block_kind", "Arrow")
}

func (n *ExprBody) MarshalJSON() ([]byte, error) {
	type raw ExprBody
	return taggedJSON((*raw)(n), "block_kind", "Expr")
}

func (n *SimpleIdentifier) MarshalJSON() ([]byte, error) {
	type raw SimpleIdentifier
	return taggedJSON((*raw)(n), "identifier_kind", "Simple")
}

func (n *QualifiedIdentifier) MarshalJSON() ([]byte, error) {
	type raw QualifiedIdentifier
	return taggedJSON((*raw)(n), "identifier_kind", "Qualified")
}

func (n *RegularDeclarator) MarshalJSON() ([]byte, error) {
	type raw RegularDeclarator
	return taggedJSON((*raw)(n), "decl_type", "Regular")
}

func (n *DestructuredDeclarator) MarshalJSON() ([]byte, error) {
	type raw DestructuredDeclarator
	return taggedJSON((*raw)(n), "decl_type", "Destructured")
}

func (n *IdentifierType) MarshalJSON() ([]byte, error) {
	type raw IdentifierType
	return taggedJSON((*raw)(n), "type_kind", "Identifier")
}

func (n *GroupType) MarshalJSON() ([]byte, error) {
	type raw GroupType
	return taggedJSON((*raw)(n), "type_kind", "Group")
}

func (n *FunctionType) MarshalJSON() ([]byte, error) {
	type raw FunctionType
	return taggedJSON((*raw)(n), "type_kind", "Function")
}

func (n *TupleArrayType) MarshalJSON() ([]byte, error) {
	type raw TupleArrayType
	return taggedJSON((*raw)(n), "type_kind", "TupleArray")
}

func (n *RawArrayType) MarshalJSON() ([]byte, error) {
	type raw RawArrayType
	return taggedJSON((*raw)(n), "type_kind", "RawArray")
}

func (n *LiteralType) MarshalJSON() ([]byte, error) {
	type raw LiteralType
	return taggedJSON((*raw)(n), "type_kind", "Literal")
}

func (n *SumType) MarshalJSON() ([]byte, error) {
	type raw SumType
	return taggedJSON((*raw)(n), "type_kind", "Sum")
}

func (n *ProductType) MarshalJSON() ([]byte, error) {
	type raw ProductType
	return taggedJSON((*raw)(n), "type_kind", "Product")
}
