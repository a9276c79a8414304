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

package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/token"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func numberToken(lexeme string, start int64) *token.Token {
	return &token.Token{
		Kind:   token.Number,
		Lexeme: lexeme,
		Start:  start,
		End:    start + int64(len(lexeme)),
		Line:   1,
	}
}

func TestDiscriminators(t *testing.T) {
	t.Parallel()

	one := ast.NewLiteralExpr(ast.NewLiteral(numberToken("1", 0)))
	two := ast.NewLiteralExpr(ast.NewLiteral(numberToken("2", 4)))
	plus := ast.NewOperator(&token.Token{Kind: token.Plus, Lexeme: "+", Start: 2, End: 3, Line: 1})

	binary := ast.NewBinaryExpr(one, plus, two)
	got := marshalToMap(t, binary)
	assert.Equal(t, "Expr", got["node_kind"])
	assert.Equal(t, "Binary", got["expr_kind"])
	assert.Equal(t, "Add", got["operator"].(map[string]any)["kind"])

	left := got["left"].(map[string]any)
	assert.Equal(t, "Literal", left["expr_kind"])

	span := got["span"].(map[string]any)
	assert.EqualValues(t, 0, span["start"])
	assert.EqualValues(t, 5, span["end"])

	stmt := ast.NewExprStmt(binary)
	got = marshalToMap(t, stmt)
	assert.Equal(t, "Stmt", got["node_kind"])
	assert.Equal(t, "Expr", got["stmt_kind"])

	errNode := ast.NewErrorNode()
	got = marshalToMap(t, errNode)
	assert.Equal(t, "Error", got["node_kind"])
	assert.EqualValues(t, -1, got["span"].(map[string]any)["start"])
}

func TestBodyAndIdentifierDiscriminators(t *testing.T) {
	t.Parallel()

	id := ast.NewSimpleIdentifier(&token.Token{Kind: token.Identifier, Lexeme: "x", End: 1, Line: 1})
	got := marshalToMap(t, id)
	assert.Equal(t, "Simple", got["identifier_kind"])
	assert.Equal(t, "x", got["name"])

	expr := ast.NewIdentifierExpr(id)
	block := ast.NewBlockBody(nil, []ast.SyntaxNode{ast.NewExprStmt(expr)}, nil)
	got = marshalToMap(t, block)
	assert.Equal(t, "Block", got["block_kind"])

	arrow := ast.NewArrowBody(&token.Token{Kind: token.EqualArrow, Lexeme: "=>", End: 2, Line: 1}, expr)
	got = marshalToMap(t, arrow)
	assert.Equal(t, "Arrow", got["block_kind"])

	wrapped := ast.NewExprBody(expr)
	got = marshalToMap(t, wrapped)
	assert.Equal(t, "Expr", got["block_kind"])
}

func TestDeclAndTypeDiscriminators(t *testing.T) {
	t.Parallel()

	name := ast.NewSimpleIdentifier(&token.Token{Kind: token.Identifier, Lexeme: "x", End: 1, Line: 1})
	decl := ast.NewRegularDeclarator(nil, ast.OwnershipNone, name, nil)
	got := marshalToMap(t, decl)
	assert.Equal(t, "Regular", got["decl_type"])

	ty := ast.NewTypeNode(ast.NewIdentifierType(name))
	got = marshalToMap(t, ty)
	assert.Equal(t, "Identifier", got["ty"].(map[string]any)["type_kind"])

	sum := ast.NewTypeNode(ast.NewSumType([]*ast.TypeNode{ty, ty}, nil))
	got = marshalToMap(t, sum)
	assert.Equal(t, "Sum", got["ty"].(map[string]any)["type_kind"])
}
