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

import "fmt"

// SourceSpan is a byte range within a source file, along with the line the
// range starts on.
//
// Start and End are byte offsets; End is exclusive. Line is 1-based.
type SourceSpan struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Line  int64 `json:"line"`
}

// NewSpan returns a span over [start, end) on the given line.
func NewSpan(start, end, line int64) SourceSpan {
	return SourceSpan{Start: start, End: end, Line: line}
}

// NoLocation returns the sentinel span that denotes "no location".
func NoLocation() SourceSpan {
	return SourceSpan{Start: -1, End: -1, Line: -1}
}

// IsNone reports whether this is the "no location" sentinel.
func (s SourceSpan) IsNone() bool {
	return s.Start < 0
}

// Len returns the number of bytes this span covers.
func (s SourceSpan) Len() int64 {
	return s.End - s.Start
}

// Span implements [Spanner].
func (s SourceSpan) Span() SourceSpan {
	return s
}

// String implements [fmt.Stringer].
func (s SourceSpan) String() string {
	if s.IsNone() {
		return "<no location>"
	}
	return fmt.Sprintf("%d:%d (line %d)", s.Start, s.End, s.Line)
}

// Spanner is any type with a span, such as a span itself or a token.
type Spanner interface {
	Span() SourceSpan
}
