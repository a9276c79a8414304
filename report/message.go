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

// Package report provides the diagnostic machinery shared by the lexer and
// the parser: source spans, message codes with stable numeric values, the
// severity-partitioned message container, and a renderer for human-readable
// output.
package report

import (
	"encoding/json"
	"fmt"
	"iter"
)

// MessageKind is the severity of a compiler message.
type MessageKind int8

const (
	Information MessageKind = iota
	Warning
	Error
)

// String implements [fmt.Stringer].
func (k MessageKind) String() string {
	switch k {
	case Information:
		return "Information"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("MessageKind(%d)", int8(k))
	}
}

// MarshalJSON implements [json.Marshaler].
func (k MessageKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MessageOrigin is the compiler stage that produced a message.
type MessageOrigin int8

const (
	Lexer MessageOrigin = iota
	Parser
)

// String implements [fmt.Stringer].
func (o MessageOrigin) String() string {
	switch o {
	case Lexer:
		return "Lexer"
	case Parser:
		return "Parser"
	default:
		return fmt.Sprintf("MessageOrigin(%d)", int8(o))
	}
}

// MarshalJSON implements [json.Marshaler].
func (o MessageOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// CompilerMessage is a single diagnostic produced by the lexer or the parser.
//
// Source locates the offending source text: either a plain [SourceSpan], or a
// token (any other [Spanner]) the message is anchored to.
type CompilerMessage struct {
	Kind    MessageKind
	Origin  MessageOrigin
	Code    MessageCode
	Message string
	Source  Spanner
}

// Line returns the 1-based line the message points at, or -1 if the message
// has no location.
func (m CompilerMessage) Line() int64 {
	if m.Source == nil {
		return -1
	}
	return m.Source.Span().Line
}

// String implements [fmt.Stringer].
func (m CompilerMessage) String() string {
	var code int32
	if m.Code != nil {
		code = m.Code.Value()
	}
	return fmt.Sprintf("[%v / %v] %d - %s (line %d)", m.Origin, m.Kind, code, m.Message, m.Line())
}

// MarshalJSON implements [json.Marshaler].
func (m CompilerMessage) MarshalJSON() ([]byte, error) {
	source := map[string]any{}
	switch src := m.Source.(type) {
	case nil:
	case SourceSpan:
		source["span"] = src
	default:
		source["token"] = src
	}

	return json.Marshal(map[string]any{
		"kind":    m.Kind,
		"origin":  m.Origin,
		"code":    m.Code.Value(),
		"message": m.Message,
		"source":  source,
	})
}

// MessageContainer collects compiler messages, partitioned by severity.
//
// The zero value is an empty container ready for use.
type MessageContainer struct {
	Infos    []CompilerMessage
	Warnings []CompilerMessage
	Errors   []CompilerMessage
}

// Add files msg under its severity.
func (c *MessageContainer) Add(msg CompilerMessage) {
	switch msg.Kind {
	case Information:
		c.Infos = append(c.Infos, msg)
	case Warning:
		c.Warnings = append(c.Warnings, msg)
	case Error:
		c.Errors = append(c.Errors, msg)
	}
}

// AddAll moves every message of other into this container.
func (c *MessageContainer) AddAll(other MessageContainer) {
	c.Infos = append(c.Infos, other.Infos...)
	c.Warnings = append(c.Warnings, other.Warnings...)
	c.Errors = append(c.Errors, other.Errors...)
}

// All iterates over every message, in the order info, warning, error.
func (c *MessageContainer) All() iter.Seq[CompilerMessage] {
	return func(yield func(CompilerMessage) bool) {
		for _, msgs := range [][]CompilerMessage{c.Infos, c.Warnings, c.Errors} {
			for _, msg := range msgs {
				if !yield(msg) {
					return
				}
			}
		}
	}
}

// Count returns the total number of messages.
func (c *MessageContainer) Count() int {
	return len(c.Infos) + len(c.Warnings) + len(c.Errors)
}

// HasErrors reports whether any Error-severity message has been added.
func (c *MessageContainer) HasErrors() bool {
	return len(c.Errors) > 0
}

// MarshalJSON implements [json.Marshaler].
func (c MessageContainer) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"infos":    c.Infos,
		"warnings": c.Warnings,
		"errors":   c.Errors,
	})
}
