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

package judith_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judithlang/judith"
	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/token"
)

const demoSource = `func add(a: Num, b: Num) -> Num
  a + b
end

let mut total = 0
total = add(total, 42)
`

func TestParseSource(t *testing.T) {
	t.Parallel()

	result := judith.ParseSource("demo.jud", demoSource)
	require.Zero(t, result.Messages.Count())
	assert.Equal(t, "demo.jud", result.Name)

	require.Len(t, result.Unit.Members, 1)
	def := result.Unit.Members[0].(*ast.FuncDef)
	assert.Equal(t, "add", def.Name.Name)

	require.NotNil(t, result.Unit.ImplicitFunc)
	block := result.Unit.ImplicitFunc.Body.(*ast.BlockBody)
	assert.Len(t, block.Nodes, 2)

	// The full pipeline still returns the token stream, ending with EOF.
	require.NotEmpty(t, result.Tokens)
	assert.Equal(t, token.EOF, result.Tokens[len(result.Tokens)-1].Kind)
}

func TestParseSourceMergesDiagnostics(t *testing.T) {
	t.Parallel()

	// One lexical error (bad number) and one syntactic error (unclosed
	// group), merged lexer-first.
	result := judith.ParseSource("bad.jud", "(0x")
	require.Len(t, result.Messages.Errors, 2)
	assert.Equal(t, int32(1001), result.Messages.Errors[0].Code.Value())
	assert.Equal(t, int32(2005), result.Messages.Errors[1].Code.Value())
}

func TestParseSources(t *testing.T) {
	t.Parallel()

	var sources []judith.Source
	for i := range 16 {
		sources = append(sources, judith.Source{
			Name: fmt.Sprintf("src%d.jud", i),
			Text: fmt.Sprintf("let x = %d", i),
		})
	}

	results, err := judith.ParseSources(context.Background(), sources, 4)
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	for i, result := range results {
		assert.Equal(t, sources[i].Name, result.Name, "results keep input order")
		assert.Zero(t, result.Messages.Count())
		require.NotNil(t, result.Unit.ImplicitFunc)
	}
}

func TestParseSourcesCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := judith.ParseSources(ctx, []judith.Source{{Name: "a", Text: "1"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
