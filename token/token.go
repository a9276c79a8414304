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

// Package token defines the lossless token model: tokens that carry their
// surrounding trivia, so that concatenating every token's leading trivia,
// lexeme and trailing trivia in stream order reproduces the source exactly.
package token

import (
	"fmt"

	"github.com/judithlang/judith/report"
)

// TriviaKind identifies a kind of [Trivia].
type TriviaKind uint8

const (
	Whitespace TriviaKind = iota
	LineBreak
	SingleLineComment
	MultiLineComment
	Directive
)

// String implements [fmt.Stringer].
func (k TriviaKind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case LineBreak:
		return "LineBreak"
	case SingleLineComment:
		return "SingleLineComment"
	case MultiLineComment:
		return "MultiLineComment"
	case Directive:
		return "Directive"
	default:
		return fmt.Sprintf("TriviaKind(%d)", uint8(k))
	}
}

// MarshalJSON implements [json.Marshaler].
func (k TriviaKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Trivia is a run of insignificant source text: whitespace, a line break, a
// comment or a directive. Trivia is preserved verbatim.
type Trivia struct {
	Kind   TriviaKind        `json:"kind"`
	Lexeme string            `json:"lexeme"`
	Span   report.SourceSpan `json:"span"`
}

// StringKind distinguishes regular from raw string literals.
type StringKind uint8

const (
	// Regular strings are opened by a single delimiter.
	Regular StringKind = iota
	// Raw strings are opened by three or more consecutive delimiters.
	Raw
)

// String implements [fmt.Stringer].
func (k StringKind) String() string {
	if k == Raw {
		return "Raw"
	}
	return "Regular"
}

// MarshalJSON implements [json.Marshaler].
func (k StringKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// StringData is the extra payload carried by string literal tokens.
type StringData struct {
	Kind StringKind `json:"string_kind"`
	// Delimiter is the quoting character, '"' or '`'.
	Delimiter rune `json:"delimiter"`
	// DelimiterCount is how many consecutive delimiters open (and close) the
	// literal.
	DelimiterCount int `json:"delimiter_count"`
	// Column is the 1-based column of the first delimiter.
	Column int `json:"column"`
}

// Token is a lexical element of a Judith source file.
//
// Start and End are byte offsets into the source; End is exclusive. Line is
// 1-based. Str is non-nil exactly for string literal tokens.
type Token struct {
	Kind           Kind        `json:"kind"`
	Lexeme         string      `json:"lexeme"`
	Start          int64       `json:"start"`
	End            int64       `json:"end"`
	Line           int64       `json:"line"`
	LeadingTrivia  []Trivia    `json:"leading_trivia"`
	TrailingTrivia []Trivia    `json:"trailing_trivia"`
	Str            *StringData `json:"string,omitempty"`
}

// Span implements [report.Spanner].
func (t *Token) Span() report.SourceSpan {
	return report.NewSpan(t.Start, t.End, t.Line)
}

// IsString reports whether this is a string literal token.
func (t *Token) IsString() bool {
	return t.Str != nil
}

// Clone returns a deep copy of this token, for embedding into syntax nodes.
func (t *Token) Clone() *Token {
	out := *t
	out.LeadingTrivia = append([]Trivia(nil), t.LeadingTrivia...)
	out.TrailingTrivia = append([]Trivia(nil), t.TrailingTrivia...)
	if t.Str != nil {
		str := *t.Str
		out.Str = &str
	}
	return &out
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return fmt.Sprintf("{%v %q %d:%d}", t.Kind, t.Lexeme, t.Start, t.End)
}
