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
	"fmt"

	"github.com/judithlang/judith/report"
	"github.com/judithlang/judith/token"
)

// Every diagnostic the lexer or the parser can produce is built by one of
// the factories in this file. Tests observe the code and the origin, never
// the prose.

func msgUnexpectedCharacter(span report.SourceSpan, c rune) report.CompilerMessage {
	return report.CompilerMessage{
		Kind:    report.Error,
		Origin:  report.Lexer,
		Code:    report.UnexpectedCharacter{Character: c},
		Message: fmt.Sprintf("Unexpected character: %c", c),
		Source:  span,
	}
}

func msgInvalidNumber(span report.SourceSpan, lexeme string) report.CompilerMessage {
	return report.CompilerMessage{
		Kind:    report.Error,
		Origin:  report.Lexer,
		Code:    report.InvalidNumber{Lexeme: lexeme},
		Message: fmt.Sprintf("Invalid number: %s", lexeme),
		Source:  span,
	}
}

func msgUnterminatedString(span report.SourceSpan) report.CompilerMessage {
	return report.CompilerMessage{
		Kind:    report.Error,
		Origin:  report.Lexer,
		Code:    report.CodeUnterminatedString,
		Message: "Unterminated string.",
		Source:  span,
	}
}

// parserMessage builds an Error-severity parser message anchored to a token.
// The token is cloned so the message owns it.
func parserMessage(code report.Code, tok *token.Token, format string, args ...any) report.CompilerMessage {
	return report.CompilerMessage{
		Kind:    report.Error,
		Origin:  report.Parser,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Source:  tok.Clone(),
	}
}

// expected builds the common "Expected X, found Y" message shape.
func expected(code report.Code, what string, tok *token.Token) report.CompilerMessage {
	return parserMessage(code, tok, "Expected %s, found %s.", what, tok.Kind.Name())
}

func msgUnexpectedToken(tok *token.Token) report.CompilerMessage {
	return parserMessage(report.CodeUnexpectedToken, tok, "Unexpected token: %s.", tok.Kind.Name())
}

func msgIdentifierExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeIdentifierExpected, "identifier", tok)
}

func msgTypeAnnotationExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeTypeAnnotationExpected, "type annotation", tok)
}

func msgTypeExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeTypeExpected, "type", tok)
}

func msgLeftParenExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeLeftParenExpected, "'('", tok)
}

func msgRightParenExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeRightParenExpected, "')'", tok)
}

func msgRightCurlyBracketExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeRightCurlyBracketExpected, "'}'", tok)
}

func msgRightSquareBracketExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeRightSquareBracketExpected, "']'", tok)
}

func msgExpressionExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeExpressionExpected, "expression", tok)
}

func msgStatementExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeStatementExpected, "statement", tok)
}

func msgBlockOpeningKeywordExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeBlockOpeningKeywordExpected, "block opening keyword", tok)
}

func msgBodyExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeBodyExpected, "body", tok)
}

func msgArrowExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeArrowExpected, "'=>'", tok)
}

func msgElsifBodyExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeElsifBodyExpected, "elsif body", tok)
}

func msgInExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeInExpected, "'in'", tok)
}

func msgDoExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeDoExpected, "'do'", tok)
}

func msgEndExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeEndExpected, "'end'", tok)
}

func msgParameterExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeParameterExpected, "parameter", tok)
}

func msgArgumentExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeArgumentExpected, "argument", tok)
}

func msgHidableItemExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeHidableItemExpected, "hidable item", tok)
}

func msgVariableDeclaratorExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeVariableDeclaratorExpected, "variable declarator", tok)
}

func msgFieldInitializationExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeFieldInitializationExpected, "field initialization", tok)
}

func msgInvalidTopLevelStatement(tok *token.Token) report.CompilerMessage {
	return parserMessage(report.CodeInvalidTopLevelStatement, tok, "%s cannot start a top-level statement.", tok.Kind.Name())
}

func msgInvalidIntegerLiteral(tok *token.Token) report.CompilerMessage {
	return parserMessage(report.CodeInvalidIntegerLiteral, tok, "Invalid integer literal: %s.", tok.Lexeme)
}

func msgInvalidFloatLiteral(tok *token.Token) report.CompilerMessage {
	return parserMessage(report.CodeInvalidFloatLiteral, tok, "Invalid float literal: %s.", tok.Lexeme)
}

func msgParameterTypeMustBeSpecified(tok *token.Token) report.CompilerMessage {
	return parserMessage(report.CodeParameterTypeMustBeSpecified, tok, "Parameter types must be specified.")
}

func msgFieldMustBeInitialized(tok *token.Token) report.CompilerMessage {
	return parserMessage(report.CodeFieldMustBeInitialized, tok, "Field must be initialized.")
}

func msgParameterTypeListExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeParameterTypeListExpected, "parameter type list", tok)
}

func msgReturnTypeExpected(tok *token.Token) report.CompilerMessage {
	return expected(report.CodeReturnTypeExpected, "return type", tok)
}
