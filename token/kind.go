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

package token

import (
	"encoding/json"
	"fmt"
)

// Kind identifies what kind of token a [Token] is.
type Kind uint8

const (
	// Invalid is the kind of tokens the lexer could not make sense of.
	Invalid Kind = iota

	// Single-character tokens.
	Comma
	Colon
	LeftParen
	RightParen
	LeftCurlyBracket
	RightCurlyBracket
	LeftSquareBracket
	RightSquareBracket
	LeftAngleBracket
	RightAngleBracket
	Plus
	Minus
	Asterisk
	Slash
	Equal
	Bang
	Tilde
	Dot
	QuestionMark
	Ampersand
	Pipe

	// Two-character tokens.
	EqualEqual
	BangEqual
	TildeEqual
	TildeTilde
	BangTilde
	Less
	LessEqual
	Greater
	GreaterEqual
	EqualArrow
	MinusArrow
	DoubleColon
	DoubleQuestionMark

	// Three-character tokens.
	EqualEqualEqual
	BangEqualEqual

	// Identifiers and literals.
	Identifier
	String
	Number

	// Keywords.
	KwAnd
	KwBreak
	KwClass
	KwConst
	KwContinue
	KwDo
	KwElse
	KwElsif
	KwEnd
	KwFalse
	KwFor
	KwFunc
	KwGenerator
	KwGoto
	KwHid
	KwIf
	KwIn
	KwInterface
	KwLoop
	KwMatch
	KwNot
	KwNull
	KwOr
	KwPub
	KwReturn
	KwStruct
	KwThen
	KwTrue
	KwTypedef
	KwUndefined
	KwVar
	KwWhile
	KwYield

	// Private keywords.
	PkwPrint

	Comment

	EOF
)

// keywords maps every keyword lexeme to its token kind. Immutable after
// initialization.
var keywords = map[string]Kind{
	"and":       KwAnd,
	"break":     KwBreak,
	"class":     KwClass,
	"const":     KwConst,
	"continue":  KwContinue,
	"do":        KwDo,
	"else":      KwElse,
	"elsif":     KwElsif,
	"end":       KwEnd,
	"false":     KwFalse,
	"for":       KwFor,
	"func":      KwFunc,
	"generator": KwGenerator,
	"goto":      KwGoto,
	"hid":       KwHid,
	"if":        KwIf,
	"in":        KwIn,
	"interface": KwInterface,
	"loop":      KwLoop,
	"match":     KwMatch,
	"not":       KwNot,
	"or":        KwOr,
	"pub":       KwPub,
	"return":    KwReturn,
	"struct":    KwStruct,
	"then":      KwThen,
	"true":      KwTrue,
	"typedef":   KwTypedef,
	"undefined": KwUndefined,
	"var":       KwVar,
	"while":     KwWhile,
	"yield":     KwYield,
	"__p_print": PkwPrint,
}

// KeywordKind looks up the keyword kind for a lexeme. Returns false if the
// lexeme is not a keyword.
func KeywordKind(lexeme string) (Kind, bool) {
	kind, ok := keywords[lexeme]
	return kind, ok
}

// Keywords returns the keyword table as lexeme/kind pairs. The returned map
// is a copy.
func Keywords() map[string]Kind {
	out := make(map[string]Kind, len(keywords))
	for lexeme, kind := range keywords {
		out[lexeme] = kind
	}
	return out
}

// Name returns a display name for this kind, quoting fixed lexemes.
func (k Kind) Name() string {
	switch k {
	case Invalid:
		return "<invalid token>"
	case Identifier:
		return "<identifier>"
	case String:
		return "<string literal>"
	case Number:
		return "<number literal>"
	case Comment:
		return "<comment>"
	case EOF:
		return "<end of file>"
	}
	if lexeme, ok := fixedLexemes[k]; ok {
		return "'" + lexeme + "'"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalJSON implements [json.Marshaler].
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

var fixedLexemes = map[Kind]string{
	Comma:              ",",
	Colon:              ":",
	LeftParen:          "(",
	RightParen:         ")",
	LeftCurlyBracket:   "{",
	RightCurlyBracket:  "}",
	LeftSquareBracket:  "[",
	RightSquareBracket: "]",
	LeftAngleBracket:   "<",
	RightAngleBracket:  ">",
	Plus:               "+",
	Minus:              "-",
	Asterisk:           "*",
	Slash:              "/",
	Equal:              "=",
	Bang:               "!",
	Tilde:              "~",
	Dot:                ".",
	QuestionMark:       "?",
	Ampersand:          "&",
	Pipe:               "|",
	EqualEqual:         "==",
	BangEqual:          "!=",
	TildeEqual:         "~=",
	TildeTilde:         "~~",
	BangTilde:          "!~",
	Less:               "<",
	LessEqual:          "<=",
	Greater:            ">",
	GreaterEqual:       ">=",
	EqualArrow:         "=>",
	MinusArrow:         "->",
	DoubleColon:        "::",
	DoubleQuestionMark: "??",
	EqualEqualEqual:    "===",
	BangEqualEqual:     "!==",
	KwAnd:              "and",
	KwBreak:            "break",
	KwClass:            "class",
	KwConst:            "const",
	KwContinue:         "continue",
	KwDo:               "do",
	KwElse:             "else",
	KwElsif:            "elsif",
	KwEnd:              "end",
	KwFalse:            "false",
	KwFor:              "for",
	KwFunc:             "func",
	KwGenerator:        "generator",
	KwGoto:             "goto",
	KwHid:              "hid",
	KwIf:               "if",
	KwIn:               "in",
	KwInterface:        "interface",
	KwLoop:             "loop",
	KwMatch:            "match",
	KwNot:              "not",
	KwNull:             "null",
	KwOr:               "or",
	KwPub:              "pub",
	KwReturn:           "return",
	KwStruct:           "struct",
	KwThen:             "then",
	KwTrue:             "true",
	KwTypedef:          "typedef",
	KwUndefined:        "undefined",
	KwVar:              "var",
	KwWhile:            "while",
	KwYield:            "yield",
	PkwPrint:           "__p_print",
}

var kindNames = map[Kind]string{
	Invalid:            "Invalid",
	Comma:              "Comma",
	Colon:              "Colon",
	LeftParen:          "LeftParen",
	RightParen:         "RightParen",
	LeftCurlyBracket:   "LeftCurlyBracket",
	RightCurlyBracket:  "RightCurlyBracket",
	LeftSquareBracket:  "LeftSquareBracket",
	RightSquareBracket: "RightSquareBracket",
	LeftAngleBracket:   "LeftAngleBracket",
	RightAngleBracket:  "RightAngleBracket",
	Plus:               "Plus",
	Minus:              "Minus",
	Asterisk:           "Asterisk",
	Slash:              "Slash",
	Equal:              "Equal",
	Bang:               "Bang",
	Tilde:              "Tilde",
	Dot:                "Dot",
	QuestionMark:       "QuestionMark",
	Ampersand:          "Ampersand",
	Pipe:               "Pipe",
	EqualEqual:         "EqualEqual",
	BangEqual:          "BangEqual",
	TildeEqual:         "TildeEqual",
	TildeTilde:         "TildeTilde",
	BangTilde:          "BangTilde",
	Less:               "Less",
	LessEqual:          "LessEqual",
	Greater:            "Greater",
	GreaterEqual:       "GreaterEqual",
	EqualArrow:         "EqualArrow",
	MinusArrow:         "MinusArrow",
	DoubleColon:        "DoubleColon",
	DoubleQuestionMark: "DoubleQuestionMark",
	EqualEqualEqual:    "EqualEqualEqual",
	BangEqualEqual:     "BangEqualEqual",
	Identifier:         "Identifier",
	String:             "String",
	Number:             "Number",
	KwAnd:              "KwAnd",
	KwBreak:            "KwBreak",
	KwClass:            "KwClass",
	KwConst:            "KwConst",
	KwContinue:         "KwContinue",
	KwDo:               "KwDo",
	KwElse:             "KwElse",
	KwElsif:            "KwElsif",
	KwEnd:              "KwEnd",
	KwFalse:            "KwFalse",
	KwFor:              "KwFor",
	KwFunc:             "KwFunc",
	KwGenerator:        "KwGenerator",
	KwGoto:             "KwGoto",
	KwHid:              "KwHid",
	KwIf:               "KwIf",
	KwIn:               "KwIn",
	KwInterface:        "KwInterface",
	KwLoop:             "KwLoop",
	KwMatch:            "KwMatch",
	KwNot:              "KwNot",
	KwNull:             "KwNull",
	KwOr:               "KwOr",
	KwPub:              "KwPub",
	KwReturn:           "KwReturn",
	KwStruct:           "KwStruct",
	KwThen:             "KwThen",
	KwTrue:             "KwTrue",
	KwTypedef:          "KwTypedef",
	KwUndefined:        "KwUndefined",
	KwVar:              "KwVar",
	KwWhile:            "KwWhile",
	KwYield:            "KwYield",
	PkwPrint:           "PkwPrint",
	Comment:            "Comment",
	EOF:                "EOF",
}
