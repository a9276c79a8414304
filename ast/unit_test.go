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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/token"
)

func sampleFunc() *ast.FuncDef {
	return ast.NewFuncDef(
		&token.Token{Kind: token.KwFunc, Lexeme: "func", End: 4, Line: 1},
		ast.NewSimpleIdentifier(&token.Token{Kind: token.Identifier, Lexeme: "f", Start: 5, End: 6, Line: 1}),
		ast.NewEmptyParameterList(),
		nil, nil,
		ast.NewBlockBody(nil, nil, &token.Token{Kind: token.KwEnd, Lexeme: "end", Start: 7, End: 10, Line: 1}),
	)
}

func sampleStmt(name string) ast.Stmt {
	id := ast.NewSimpleIdentifier(&token.Token{Kind: token.Identifier, Lexeme: name, End: int64(len(name)), Line: 1})
	return ast.NewExprStmt(ast.NewIdentifierExpr(id))
}

func TestBuildCompilationUnit(t *testing.T) {
	t.Parallel()

	t.Run("statements gather into the implicit function", func(t *testing.T) {
		t.Parallel()
		unit := ast.BuildCompilationUnit([]ast.SyntaxNode{
			sampleFunc(),
			sampleStmt("a"),
			ast.NewErrorNode(),
			sampleStmt("b"),
		})

		require.Len(t, unit.Members, 2)
		_, isFunc := unit.Members[0].(*ast.FuncDef)
		assert.True(t, isFunc)
		_, isError := unit.Members[1].(*ast.ErrorNode)
		assert.True(t, isError)

		require.NotNil(t, unit.ImplicitFunc)
		assert.True(t, unit.ImplicitFunc.IsImplicit)
		assert.True(t, unit.ImplicitFunc.Name.IsMetaName)
		assert.Equal(t, ast.ImplicitFuncName, unit.ImplicitFunc.Name.Name)
		assert.Nil(t, unit.ImplicitFunc.ReturnType)
		assert.Empty(t, unit.ImplicitFunc.Params.Params)

		block, isBlock := unit.ImplicitFunc.Body.(*ast.BlockBody)
		require.True(t, isBlock)
		assert.Len(t, block.Nodes, 2)
	})

	t.Run("no statements, no implicit function", func(t *testing.T) {
		t.Parallel()
		unit := ast.BuildCompilationUnit([]ast.SyntaxNode{sampleFunc()})
		assert.Nil(t, unit.ImplicitFunc)
		assert.Len(t, unit.Members, 1)
	})

	t.Run("bare expression is a parser bug", func(t *testing.T) {
		t.Parallel()
		id := ast.NewSimpleIdentifier(&token.Token{Kind: token.Identifier, Lexeme: "x", End: 1, Line: 1})
		assert.Panics(t, func() {
			ast.BuildCompilationUnit([]ast.SyntaxNode{ast.NewIdentifierExpr(id)})
		})
	})
}
