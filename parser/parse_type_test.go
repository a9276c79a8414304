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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// parseTypeOf runs parseType over src and requires success.
func parseTypeOf(t *testing.T, src string) *ast.TypeNode {
	t.Helper()

	lexed := Tokenize(src)
	require.Zero(t, lexed.Messages.Count(), "lexical diagnostics in %q", src)

	p := &parser{
		cursor:   token.NewCursor(lexed.Tokens),
		messages: &report.MessageContainer{},
	}
	ty := p.parseType()
	require.True(t, ty.IsOk(), "parseType of %q: none=%v err=%v", src, ty.IsNone(), ty.Message())
	require.True(t, p.cursor.IsAtEnd(), "leftover tokens in %q", src)
	return ty.Value()
}

func identTypeName(t *testing.T, node *ast.TypeNode) string {
	t.Helper()
	id, isIdent := node.Ty.(*ast.IdentifierType)
	require.True(t, isIdent, "type is %T", node.Ty)
	simple, isSimple := id.Identifier.(*ast.SimpleIdentifier)
	require.True(t, isSimple, "identifier is %T", id.Identifier)
	return simple.Name
}

func TestParseTypeSumOfProducts(t *testing.T) {
	t.Parallel()

	// Num?[5] is a raw array of nullable Num; the sum's second member is
	// the product String & ISend.
	node := parseTypeOf(t, "Num?[5] | String & ISend")

	sum, isSum := node.Ty.(*ast.SumType)
	require.True(t, isSum, "type is %T", node.Ty)
	require.Len(t, sum.Members, 2)

	array, isArray := sum.Members[0].Ty.(*ast.RawArrayType)
	require.True(t, isArray, "member 0 is %T", sum.Members[0].Ty)
	assert.True(t, array.Member.IsNullable)
	assert.Equal(t, "Num", identTypeName(t, array.Member))
	length, isLiteral := array.Length.(*ast.LiteralExpr)
	require.True(t, isLiteral, "length is %T", array.Length)
	assert.Equal(t, "5", length.Literal.Source)
	assert.False(t, sum.Members[0].IsNullable)

	product, isProduct := sum.Members[1].Ty.(*ast.ProductType)
	require.True(t, isProduct, "member 1 is %T", sum.Members[1].Ty)
	require.Len(t, product.Members, 2)
	assert.Equal(t, "String", identTypeName(t, product.Members[0]))
	assert.Equal(t, "ISend", identTypeName(t, product.Members[1]))
}

func TestParseTypeNullableLevels(t *testing.T) {
	t.Parallel()

	// A "?" may follow any array level.
	node := parseTypeOf(t, "Num?[3]?[4]")
	assert.False(t, node.IsNullable)

	outer := node.Ty.(*ast.RawArrayType)
	assert.True(t, outer.Member.IsNullable)

	inner := outer.Member.Ty.(*ast.RawArrayType)
	assert.True(t, inner.Member.IsNullable)
	assert.Equal(t, "Num", identTypeName(t, inner.Member))
}

func TestParseTypeOwnership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind ast.OwnershipKind
	}{
		{"final Num", ast.OwnershipFinal},
		{"mut Num", ast.OwnershipMutable},
		{"sh Num", ast.OwnershipShared},
		{"ref Num", ast.OwnershipReference},
		{"in Num", ast.OwnershipIn},
	}
	for _, test := range tests {
		node := parseTypeOf(t, test.src)
		assert.Equal(t, test.kind, node.Ownership, "input %q", test.src)
		assert.Equal(t, "Num", identTypeName(t, node), "input %q", test.src)
	}

	// An ownership word on its own is a type named by it.
	node := parseTypeOf(t, "mut")
	assert.Equal(t, ast.OwnershipNone, node.Ownership)
	assert.Equal(t, "mut", identTypeName(t, node))
}

func TestParseFunctionType(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "(Num, Str) => Bool")
		fn, isFunc := node.Ty.(*ast.FunctionType)
		require.True(t, isFunc, "type is %T", node.Ty)
		assert.False(t, fn.IsSend)
		assert.False(t, fn.IsSync)
		assert.False(t, fn.CanThrow)
		require.Len(t, fn.Params, 2)
		assert.Equal(t, "Bool", identTypeName(t, fn.Return))
	})

	t.Run("send sync throwing", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "sS!(Num) => Num")
		fn := node.Ty.(*ast.FunctionType)
		assert.True(t, fn.IsSend)
		assert.True(t, fn.IsSync)
		assert.True(t, fn.CanThrow)
	})

	t.Run("send only", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "s(Num) => Num")
		fn := node.Ty.(*ast.FunctionType)
		assert.True(t, fn.IsSend)
		assert.False(t, fn.IsSync)
		assert.False(t, fn.CanThrow)
	})

	t.Run("bang only", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "!() => Num")
		fn := node.Ty.(*ast.FunctionType)
		assert.True(t, fn.CanThrow)
		assert.Empty(t, fn.Params)
	})

	t.Run("no-arg", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "() => Num")
		fn := node.Ty.(*ast.FunctionType)
		assert.Empty(t, fn.Params)
	})

	t.Run("degenerates to group", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "(Num)")
		group, isGroup := node.Ty.(*ast.GroupType)
		require.True(t, isGroup, "type is %T", node.Ty)
		assert.Equal(t, "Num", identTypeName(t, group.Type))
	})

	t.Run("s as a type name", func(t *testing.T) {
		t.Parallel()
		node := parseTypeOf(t, "s")
		assert.Equal(t, "s", identTypeName(t, node))
	})

	t.Run("prefixed group requires arrow", func(t *testing.T) {
		t.Parallel()
		lexed := Tokenize("let x: s(Num) = y")
		p := &parser{cursor: token.NewCursor(lexed.Tokens), messages: &report.MessageContainer{}}
		stmt := p.parseStmt()
		require.True(t, stmt.IsErr())
		assert.Equal(t, int32(report.CodeArrowExpected), stmt.Message().Code.Value())
	})
}

func TestParseTupleArrayType(t *testing.T) {
	t.Parallel()

	node := parseTypeOf(t, "[Num, Str]")
	tuple, isTuple := node.Ty.(*ast.TupleArrayType)
	require.True(t, isTuple, "type is %T", node.Ty)
	require.Len(t, tuple.Members, 2)

	// Trailing commas and emptiness are fine.
	node = parseTypeOf(t, "[Num,]")
	tuple = node.Ty.(*ast.TupleArrayType)
	require.Len(t, tuple.Members, 1)
}

func TestParseLiteralType(t *testing.T) {
	t.Parallel()

	node := parseTypeOf(t, "5")
	lit, isLiteral := node.Ty.(*ast.LiteralType)
	require.True(t, isLiteral, "type is %T", node.Ty)
	assert.Equal(t, "5", lit.Literal.Source)

	node = parseTypeOf(t, "true | false")
	sum := node.Ty.(*ast.SumType)
	require.Len(t, sum.Members, 2)
}

func TestParseQualifiedIdentifierType(t *testing.T) {
	t.Parallel()

	node := parseTypeOf(t, "std::Num")
	id := node.Ty.(*ast.IdentifierType)
	qualified, isQualified := id.Identifier.(*ast.QualifiedIdentifier)
	require.True(t, isQualified, "identifier is %T", id.Identifier)
	assert.Equal(t, "Num", qualified.Name.Name)
}
