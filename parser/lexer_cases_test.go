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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/judithlang/judith/parser"
)

type lexerCase struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Kinds  []string `yaml:"kinds"`
	Errors []int32  `yaml:"errors"`
}

type lexerCaseFile struct {
	Cases []lexerCase `yaml:"cases"`
}

// TestLexerCases runs the YAML-described corpus in testdata.
func TestLexerCases(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/lexer/cases.yaml")
	require.NoError(t, err)

	var file lexerCaseFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Cases)

	for _, test := range file.Cases {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			result := parser.Tokenize(test.Input)

			var gotKinds []string
			for _, tok := range result.Tokens {
				gotKinds = append(gotKinds, tok.Kind.String())
			}
			assert.Equal(t, test.Kinds, gotKinds)

			var gotErrors []int32
			for _, msg := range result.Messages.Errors {
				gotErrors = append(gotErrors, msg.Code.Value())
			}
			assert.Equal(t, test.Errors, gotErrors)
		})
	}
}
