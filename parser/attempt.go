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

import "github.com/judithlang/judith/report"

type attemptState uint8

const (
	attemptNone attemptState = iota
	attemptOk
	attemptErr
)

// Attempt is the three-valued result every parse procedure returns.
//
// None means the expected construct was not present; the procedure consumed
// nothing and the caller is free to try something else. Ok carries the
// parsed value. Err means the procedure committed to the construct by
// consuming a distinguishing token and then found it malformed; the caller
// either propagates the message or converts it into an error placeholder
// node and records the diagnostic.
//
// The distinction between None and Err is load-bearing: it is what decides
// whether a failure is silent and retryable or must surface to the user.
type Attempt[T any] struct {
	state attemptState
	value T
	msg   report.CompilerMessage
}

func none[T any]() Attempt[T] {
	return Attempt[T]{}
}

func ok[T any](value T) Attempt[T] {
	return Attempt[T]{state: attemptOk, value: value}
}

func fail[T any](msg report.CompilerMessage) Attempt[T] {
	return Attempt[T]{state: attemptErr, msg: msg}
}

// failFrom propagates another attempt's error under a new value type.
func failFrom[T, U any](other Attempt[U]) Attempt[T] {
	return fail[T](other.Message())
}

// IsNone reports whether the construct was not present.
func (a Attempt[T]) IsNone() bool {
	return a.state == attemptNone
}

// IsOk reports whether the construct parsed successfully.
func (a Attempt[T]) IsOk() bool {
	return a.state == attemptOk
}

// IsErr reports whether the construct was committed to but malformed.
func (a Attempt[T]) IsErr() bool {
	return a.state == attemptErr
}

// Value returns the parsed value. Only meaningful when IsOk.
func (a Attempt[T]) Value() T {
	return a.value
}

// Message returns the diagnostic of a failed attempt. Only meaningful when
// IsErr.
func (a Attempt[T]) Message() report.CompilerMessage {
	return a.msg
}
