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

package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/parser"
	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// parseClean parses src and requires that no diagnostics were produced.
func parseClean(t *testing.T, src string) []ast.SyntaxNode {
	t.Helper()

	lexed := parser.Tokenize(src)
	require.Zero(t, lexed.Messages.Count(), "lexical diagnostics in %q", src)

	parsed := parser.Parse(lexed.Tokens)
	if !assert.Zero(t, parsed.Messages.Count(), "syntactic diagnostics in %q", src) {
		for msg := range parsed.Messages.All() {
			t.Log(msg)
		}
		t.FailNow()
	}
	return parsed.Nodes
}

// soleExpr extracts the expression of the single expression statement in
// nodes.
func soleExpr(t *testing.T, nodes []ast.SyntaxNode) ast.Expr {
	t.Helper()
	require.Len(t, nodes, 1)
	stmt, isExprStmt := nodes[0].(*ast.ExprStmt)
	require.True(t, isExprStmt, "node is %T", nodes[0])
	return stmt.Expr
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "1 + 2 * 3"))
	add, isBinary := expr.(*ast.BinaryExpr)
	require.True(t, isBinary, "expr is %T", expr)
	assert.Equal(t, ast.OpAdd, add.Operator.Kind)

	mult, isBinary := add.Right.(*ast.BinaryExpr)
	require.True(t, isBinary)
	assert.Equal(t, ast.OpMultiply, mult.Operator.Kind)

	expr = soleExpr(t, parseClean(t, "not a and b == c"))
	and, isBinary := expr.(*ast.BinaryExpr)
	require.True(t, isBinary, "expr is %T", expr)
	assert.Equal(t, ast.OpLogicalAnd, and.Operator.Kind)

	unary, isUnary := and.Left.(*ast.LeftUnaryExpr)
	require.True(t, isUnary, "left is %T", and.Left)
	assert.Equal(t, token.KwNot, unary.Operator.RawToken.Kind)

	eq, isBinary := and.Right.(*ast.BinaryExpr)
	require.True(t, isBinary)
	assert.Equal(t, ast.OpEquals, eq.Operator.Kind)
}

func TestParseGroupAndSpan(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "(1 + 2) * 3"))
	mult := expr.(*ast.BinaryExpr)
	group, isGroup := mult.Left.(*ast.GroupExpr)
	require.True(t, isGroup, "left is %T", mult.Left)
	assert.Equal(t, int64(0), group.Span().Start)
	assert.Equal(t, int64(7), group.Span().End)
	assert.Equal(t, int64(0), mult.Span().Start)
	assert.Equal(t, int64(11), mult.Span().End)
}

func TestParseAccess(t *testing.T) {
	t.Parallel()

	t.Run("chained", func(t *testing.T) {
		t.Parallel()
		expr := soleExpr(t, parseClean(t, "foo.bar.baz"))
		outer, isAccess := expr.(*ast.AccessExpr)
		require.True(t, isAccess, "expr is %T", expr)
		assert.Equal(t, "baz", outer.Member.Name)

		inner, isAccess := outer.Receiver.(*ast.AccessExpr)
		require.True(t, isAccess)
		assert.Equal(t, "bar", inner.Member.Name)

		id, isIdentifier := inner.Receiver.(*ast.IdentifierExpr)
		require.True(t, isIdentifier)
		assert.Equal(t, "foo", id.Identifier.(*ast.SimpleIdentifier).Name)
	})

	t.Run("implicit receiver", func(t *testing.T) {
		t.Parallel()
		expr := soleExpr(t, parseClean(t, ".bar"))
		access, isAccess := expr.(*ast.AccessExpr)
		require.True(t, isAccess, "expr is %T", expr)
		assert.Nil(t, access.Receiver)
		assert.Equal(t, "bar", access.Member.Name)
	})
}

func TestParseCall(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "f(1, 2)(3,)"))
	outer, isCall := expr.(*ast.CallExpr)
	require.True(t, isCall, "expr is %T", expr)
	require.Len(t, outer.Arguments.Arguments, 1)

	inner, isCall := outer.Callee.(*ast.CallExpr)
	require.True(t, isCall)
	require.Len(t, inner.Arguments.Arguments, 2)

	// Empty argument list.
	expr = soleExpr(t, parseClean(t, "f()"))
	call := expr.(*ast.CallExpr)
	assert.Empty(t, call.Arguments.Arguments)
}

func TestParseObjectInit(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "Point { x = 1, y = 2 }"))
	init, isInit := expr.(*ast.ObjectInitExpr)
	require.True(t, isInit, "expr is %T", expr)
	require.NotNil(t, init.Provider)
	require.Len(t, init.Initializer.FieldInits, 2)
	assert.Equal(t, "x", init.Initializer.FieldInits[0].FieldName.Name)
	assert.Equal(t, "y", init.Initializer.FieldInits[1].FieldName.Name)

	// A bare initializer has no provider.
	expr = soleExpr(t, parseClean(t, "{ x = 1 }"))
	bare := expr.(*ast.ObjectInitExpr)
	assert.Nil(t, bare.Provider)
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "a = b or c"))
	assign, isAssign := expr.(*ast.AssignmentExpr)
	require.True(t, isAssign, "expr is %T", expr)
	assert.Equal(t, ast.OpAssignment, assign.Operator.Kind)

	// Assignments do not chain; the second "=" is left behind and becomes a
	// diagnostic.
	lexed := parser.Tokenize("a = b = c")
	parsed := parser.Parse(lexed.Tokens)
	assert.True(t, parsed.Messages.HasErrors())
}

func TestParseIfExpr(t *testing.T) {
	t.Parallel()

	t.Run("if then else", func(t *testing.T) {
		t.Parallel()
		nodes := parseClean(t, "if x then a else b end")
		expr := soleExpr(t, nodes)
		ifExpr, isIf := expr.(*ast.IfExpr)
		require.True(t, isIf, "expr is %T", expr)

		// The consequent is closed by "else", which belongs to the if.
		consequent := ifExpr.Consequent.(*ast.BlockBody)
		require.NotNil(t, consequent.OpeningToken)
		assert.Equal(t, token.KwThen, consequent.OpeningToken.Kind)
		assert.Nil(t, consequent.ClosingToken)

		alternate := ifExpr.Alternate.(*ast.BlockBody)
		assert.Nil(t, alternate.OpeningToken)
		require.NotNil(t, alternate.ClosingToken)
		assert.Equal(t, token.KwEnd, alternate.ClosingToken.Kind)
	})

	t.Run("elsif chain", func(t *testing.T) {
		t.Parallel()
		expr := soleExpr(t, parseClean(t, "if a then 1 elsif b then 2 else 3 end"))
		outer := expr.(*ast.IfExpr)
		require.NotNil(t, outer.ElseToken)
		assert.Equal(t, token.KwElsif, outer.ElseToken.Kind)

		// The elsif recursion wraps the inner if as an expression body.
		body, isExprBody := outer.Alternate.(*ast.ExprBody)
		require.True(t, isExprBody, "alternate is %T", outer.Alternate)
		inner, isIf := body.Expr.(*ast.IfExpr)
		require.True(t, isIf)
		assert.Equal(t, token.KwElsif, inner.IfToken.Kind)
		require.NotNil(t, inner.Alternate)
	})

	t.Run("arrow body", func(t *testing.T) {
		t.Parallel()
		expr := soleExpr(t, parseClean(t, "if x => 1 else => 2"))
		ifExpr := expr.(*ast.IfExpr)
		_, isArrow := ifExpr.Consequent.(*ast.ArrowBody)
		assert.True(t, isArrow, "consequent is %T", ifExpr.Consequent)
		_, isArrow = ifExpr.Alternate.(*ast.ArrowBody)
		assert.True(t, isArrow, "alternate is %T", ifExpr.Alternate)
	})
}

func TestParseLoopAndWhile(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "loop x end"))
	loop, isLoop := expr.(*ast.LoopExpr)
	require.True(t, isLoop, "expr is %T", expr)
	block := loop.Body.(*ast.BlockBody)
	assert.Nil(t, block.OpeningToken)
	require.NotNil(t, block.ClosingToken)

	expr = soleExpr(t, parseClean(t, "while x > 0 do x end"))
	while, isWhile := expr.(*ast.WhileExpr)
	require.True(t, isWhile, "expr is %T", expr)
	whileBlock := while.Body.(*ast.BlockBody)
	require.NotNil(t, whileBlock.OpeningToken)
	assert.Equal(t, token.KwDo, whileBlock.OpeningToken.Kind)

	// A missing "do" is a committed failure.
	lexed := parser.Tokenize("while x 1 end")
	parsed := parser.Parse(lexed.Tokens)
	require.True(t, parsed.Messages.HasErrors())
	assert.Equal(t, report.CodeDoExpected, parsed.Messages.Errors[0].Code)
}

func TestParseFuncDef(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"func add(a: Num, b: Num) -> Num",
		"  a + b",
		"end",
	}, "\n")
	nodes := parseClean(t, src)
	require.Len(t, nodes, 1)

	def, isFunc := nodes[0].(*ast.FuncDef)
	require.True(t, isFunc, "node is %T", nodes[0])
	assert.False(t, def.IsImplicit)
	assert.Equal(t, "add", def.Name.Name)
	require.NotNil(t, def.ReturnType)
	require.Len(t, def.Params.Params, 2)

	first := def.Params.Params[0].Declarator.(*ast.RegularDeclarator)
	assert.Equal(t, "a", first.Name.Name)
	require.NotNil(t, first.TypeAnnotation)

	block := def.Body.(*ast.BlockBody)
	require.Len(t, block.Nodes, 1)

	// Arrow-bodied function without a return type.
	nodes = parseClean(t, "func one() => 1")
	def = nodes[0].(*ast.FuncDef)
	assert.Nil(t, def.ReturnType)
	_, isArrow := def.Body.(*ast.ArrowBody)
	assert.True(t, isArrow, "body is %T", def.Body)
}

func TestParseLocalDecl(t *testing.T) {
	t.Parallel()

	t.Run("let mut score = 42", func(t *testing.T) {
		t.Parallel()
		nodes := parseClean(t, "let mut score = 42")
		require.Len(t, nodes, 1)

		decl, isDecl := nodes[0].(*ast.LocalDeclStmt)
		require.True(t, isDecl, "node is %T", nodes[0])

		declarator, isRegular := decl.Declarator.(*ast.RegularDeclarator)
		require.True(t, isRegular, "declarator is %T", decl.Declarator)
		assert.Equal(t, ast.OwnershipMutable, declarator.Ownership)
		assert.Equal(t, "score", declarator.Name.Name)
		assert.Nil(t, declarator.TypeAnnotation)
		require.NotNil(t, decl.Initializer)
		require.Len(t, decl.Initializer.Values, 1)
	})

	t.Run("annotated without initializer", func(t *testing.T) {
		t.Parallel()
		nodes := parseClean(t, "let x: Num")
		decl := nodes[0].(*ast.LocalDeclStmt)
		declarator := decl.Declarator.(*ast.RegularDeclarator)
		assert.Equal(t, ast.OwnershipNone, declarator.Ownership)
		require.NotNil(t, declarator.TypeAnnotation)
		assert.Nil(t, decl.Initializer)
	})

	t.Run("ownership word as name", func(t *testing.T) {
		t.Parallel()
		nodes := parseClean(t, "let mut = 5")
		decl := nodes[0].(*ast.LocalDeclStmt)
		declarator := decl.Declarator.(*ast.RegularDeclarator)
		assert.Equal(t, ast.OwnershipNone, declarator.Ownership)
		assert.Equal(t, "mut", declarator.Name.Name)
	})

	t.Run("var and const forms", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"var x = 1", "const x = 1"} {
			nodes := parseClean(t, src)
			_, isDecl := nodes[0].(*ast.LocalDeclStmt)
			assert.True(t, isDecl, "input %q parsed as %T", src, nodes[0])
		}
	})

	t.Run("destructuring is deferred", func(t *testing.T) {
		t.Parallel()
		lexed := parser.Tokenize("let [a, b] = pair")
		parsed := parser.Parse(lexed.Tokens)
		require.True(t, parsed.Messages.HasErrors())
		assert.Equal(t, report.CodeVariableDeclaratorExpected, parsed.Messages.Errors[0].Code)
	})
}

func TestParseEscapedIdentifier(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, `\end`))
	id := expr.(*ast.IdentifierExpr).Identifier.(*ast.SimpleIdentifier)
	assert.Equal(t, "end", id.Name)
	assert.True(t, id.IsEscaped)
}

func TestParseQualifiedIdentifier(t *testing.T) {
	t.Parallel()

	expr := soleExpr(t, parseClean(t, "std::io::print"))
	id, isQualified := expr.(*ast.IdentifierExpr).Identifier.(*ast.QualifiedIdentifier)
	require.True(t, isQualified)
	assert.Equal(t, "print", id.Name.Name)
	assert.Equal(t, ast.OpScopeResolution, id.Operator.Kind)

	inner, isQualified := id.Qualifier.(*ast.QualifiedIdentifier)
	require.True(t, isQualified)
	assert.Equal(t, "io", inner.Name.Name)
}

func TestErrorRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		code report.Code
	}{
		{"(", report.CodeExpressionExpected},
		{"(1", report.CodeRightParenExpected},
		{"if x then 1", report.CodeEndExpected},
		{"func", report.CodeIdentifierExpected},
		{"func f", report.CodeLeftParenExpected},
		{"func f(,)", report.CodeParameterExpected},
		{"func f() -> end", report.CodeReturnTypeExpected},
		{"let", report.CodeVariableDeclaratorExpected},
		{"f(1", report.CodeRightParenExpected},
		{"a.end", report.CodeIdentifierExpected},
		{"Point { x }", report.CodeFieldMustBeInitialized},
		{"Point { x = 1", report.CodeRightCurlyBracketExpected},
		{"not", report.CodeExpressionExpected},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()

			lexed := parser.Tokenize(test.src)
			require.Zero(t, lexed.Messages.Count())
			parsed := parser.Parse(lexed.Tokens)

			require.True(t, parsed.Messages.HasErrors(), "no errors for %q", test.src)
			assert.Equal(t, test.code, parsed.Messages.Errors[0].Code, "input %q", test.src)
			assert.Equal(t, report.Parser, parsed.Messages.Errors[0].Origin)

			// Diagnostic/AST coherence: a committed failure leaves an error
			// placeholder behind.
			var foundError bool
			for _, node := range parsed.Nodes {
				if _, isError := node.(*ast.ErrorNode); isError {
					foundError = true
				}
			}
			assert.True(t, foundError, "no error node for %q", test.src)
		})
	}
}

func TestParseNeverLosesCoherence(t *testing.T) {
	t.Parallel()

	// For clean sources there are neither error messages nor error nodes.
	for _, src := range []string{"1", "a + b", "func f() end", "let x = 1"} {
		parsed := parser.Parse(parser.Tokenize(src).Tokens)
		assert.Zero(t, parsed.Messages.Count(), "input %q", src)
		for _, node := range parsed.Nodes {
			_, isError := node.(*ast.ErrorNode)
			assert.False(t, isError, "error node in clean input %q", src)
		}
	}
}

func TestParsePanicsWithoutEOF(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		parser.Parse(nil)
	})
	assert.Panics(t, func() {
		parser.Parse([]token.Token{{Kind: token.Number, Lexeme: "1", End: 1}})
	})
}

func TestDepthGuard(t *testing.T) {
	t.Parallel()

	// Deeply nested groups overflow the depth guard and produce a
	// diagnostic instead of a stack overflow.
	src := strings.Repeat("(", 2000) + "1" + strings.Repeat(")", 2000)
	parsed := parser.Parse(parser.Tokenize(src).Tokens)
	assert.True(t, parsed.Messages.HasErrors())

	// So does a long run of prefix operators.
	src = strings.Repeat("not ", 2000) + "1"
	parsed = parser.Parse(parser.Tokenize(src).Tokens)
	assert.True(t, parsed.Messages.HasErrors())
}
