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

package report

// MessageCode identifies one kind of compiler message. The numeric value of a
// code is stable: lexer codes start at 1000 and parser codes at 2000, and new
// codes are only ever appended.
//
// Codes that carry a payload are their own struct types; every other code is a
// [Code] constant. Comparing against a payload-carrying code compares the
// payload too.
type MessageCode interface {
	// Value returns the stable numeric value of this code.
	Value() int32
}

// Code is a message code without a payload.
type Code int32

// Value implements [MessageCode].
func (c Code) Value() int32 {
	return int32(c)
}

// Lexer codes (1xxx).
const (
	codeUnexpectedCharacter Code = 1000 + iota
	codeInvalidNumber
	CodeUnterminatedString
)

// Parser codes (2xxx).
const (
	CodeUnexpectedToken Code = 2000 + iota
	CodeIdentifierExpected
	CodeTypeAnnotationExpected
	CodeTypeExpected
	CodeLeftParenExpected
	CodeRightParenExpected
	CodeRightCurlyBracketExpected
	CodeRightSquareBracketExpected
	CodeExpressionExpected
	CodeStatementExpected
	CodeBlockOpeningKeywordExpected
	CodeBodyExpected
	CodeArrowExpected
	CodeElsifBodyExpected
	CodeInExpected
	CodeDoExpected
	CodeEndExpected
	CodeParameterExpected
	CodeArgumentExpected
	CodeHidableItemExpected
	CodeVariableDeclaratorExpected
	CodeFieldInitializationExpected
	CodeInvalidTopLevelStatement
	CodeInvalidIntegerLiteral
	CodeInvalidFloatLiteral
	CodeParameterTypeMustBeSpecified
	CodeFieldMustBeInitialized
	CodeParameterTypeListExpected
	CodeReturnTypeExpected
)

// UnexpectedCharacter reports a character the lexer cannot begin any token
// with.
type UnexpectedCharacter struct {
	Character rune
}

// Value implements [MessageCode].
func (UnexpectedCharacter) Value() int32 {
	return codeUnexpectedCharacter.Value()
}

// InvalidNumber reports a malformed numeric literal. Lexeme is the literal
// text scanned up to the point the error was detected.
type InvalidNumber struct {
	Lexeme string
}

// Value implements [MessageCode].
func (InvalidNumber) Value() int32 {
	return codeInvalidNumber.Value()
}
