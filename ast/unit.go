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

package ast

import "fmt"

// ImplicitFuncName is the meta-name of the synthesised function that holds
// top-level statements.
const ImplicitFuncName = "!implicit_func"

// CompilationUnit is the root of a parsed source: its explicit top-level
// members, plus an implicit function holding any stray top-level statements.
type CompilationUnit struct {
	// Members holds the explicit top-level items and error placeholders, in
	// source order.
	Members []SyntaxNode `json:"members"`
	// ImplicitFunc is nil when the source has no top-level statements.
	ImplicitFunc *FuncDef `json:"implicit_func,omitempty"`
}

// BuildCompilationUnit partitions the parser's top-level nodes into explicit
// members and the implicit function.
//
// Panics on a bare top-level expression: the parser only ever yields items,
// statements and error placeholders at the top level.
func BuildCompilationUnit(nodes []SyntaxNode) CompilationUnit {
	var unit CompilationUnit
	var stmts []SyntaxNode

	for _, node := range nodes {
		switch node := node.(type) {
		case Item:
			unit.Members = append(unit.Members, node)
		case *ErrorNode:
			unit.Members = append(unit.Members, node)
		case Stmt:
			stmts = append(stmts, node)
		default:
			panic(fmt.Sprintf("ast: top-level node %T is neither an item nor a statement; this is a parser bug", node))
		}
	}

	if len(stmts) > 0 {
		unit.ImplicitFunc = NewFuncDef(
			nil,
			NewMetaName(ImplicitFuncName),
			NewEmptyParameterList(),
			nil,
			nil,
			NewBlockBody(nil, stmts, nil),
		)
		unit.ImplicitFunc.IsImplicit = true
	}

	return unit
}
