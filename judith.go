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

// Package judith is the front end of the Judith compiler: a lossless lexer,
// a recursive-descent parser, and the diagnostic model they share.
//
// The pipeline is pure and synchronous: [Tokenize] and [Parse] always return
// and never perform I/O. Callers must inspect the returned message
// containers before trusting the token or tree output. [ParseSources] fans
// several sources out across workers; the concurrency wraps the pipeline
// and never enters it.
package judith

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/judithlang/judith/ast"
	"github.com/judithlang/judith/parser"
	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// Tokenize scans src into a lossless token stream.
func Tokenize(src string) parser.TokenizeResult {
	return parser.Tokenize(src)
}

// Parse parses a token stream, as produced by [Tokenize], into top-level
// syntax nodes.
func Parse(tokens []token.Token) parser.ParseResult {
	return parser.Parse(tokens)
}

// SourceResult is the complete front-end output for one source.
type SourceResult struct {
	Name     string
	Tokens   []token.Token
	Unit     ast.CompilationUnit
	Messages report.MessageContainer
}

// ParseSource runs the whole pipeline on one source: tokenize, parse, and
// assemble the compilation unit. Lexical and syntactic diagnostics are
// merged, in that order.
func ParseSource(name, src string) SourceResult {
	lexed := parser.Tokenize(src)
	parsed := parser.Parse(lexed.Tokens)

	var messages report.MessageContainer
	messages.AddAll(lexed.Messages)
	messages.AddAll(parsed.Messages)

	return SourceResult{
		Name:     name,
		Tokens:   lexed.Tokens,
		Unit:     ast.BuildCompilationUnit(parsed.Nodes),
		Messages: messages,
	}
}

// Source is a named source text for [ParseSources].
type Source struct {
	Name string
	Text string
}

// ParseSources parses every source, fanning the work out across at most
// workers goroutines. Results come back in input order. The only error is
// the context's, when it is cancelled mid-run.
func ParseSources(ctx context.Context, sources []Source, workers int) ([]SourceResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]SourceResult, len(sources))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, src := range sources {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ParseSource(src.Name, src.Text)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
