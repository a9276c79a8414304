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

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width every tab renders as.
const TabstopWidth = 4

// Renderer renders the messages of a container as human-readable text, one
// message per paragraph.
//
// When the renderer is given the source text, each located message is
// followed by the offending line with a caret marker underneath it.
type Renderer struct {
	// Source is the text the messages refer to. May be empty, in which case
	// only the message headers are rendered.
	Source string
}

// Render renders every message in the container, in info, warning, error
// order.
func (r Renderer) Render(messages *MessageContainer) string {
	var out strings.Builder
	for msg := range messages.All() {
		r.renderMessage(&out, msg)
	}
	return out.String()
}

func (r Renderer) renderMessage(out *strings.Builder, msg CompilerMessage) {
	fmt.Fprintf(out, "[%v / %v] %d - %s\n", msg.Origin, msg.Kind, msg.Code.Value(), msg.Message)

	if msg.Source == nil {
		return
	}
	span := msg.Source.Span()
	if span.IsNone() {
		fmt.Fprintf(out, " - at <no location>\n")
		return
	}
	fmt.Fprintf(out, " - at line %d\n", span.Line)

	if r.Source == "" || int(span.Start) > len(r.Source) {
		return
	}

	line, offset := lineAround(r.Source, int(span.Start))
	prefix := line[:offset]
	marked := line[offset:]
	if rest := int(span.End) - int(span.Start); rest < len(marked) && rest > 0 {
		marked = marked[:rest]
	}

	fmt.Fprintf(out, "   | %s\n", expandTabs(line))
	fmt.Fprintf(out, "   | %s%s\n",
		strings.Repeat(" ", displayWidth(prefix)),
		strings.Repeat("^", max(1, displayWidth(marked))))
}

// lineAround returns the line of src containing the byte at pos, without its
// terminator, along with pos's offset within that line.
func lineAround(src string, pos int) (string, int) {
	if pos > len(src) {
		pos = len(src)
	}
	start := strings.LastIndexAny(src[:pos], "\r\n") + 1
	end := strings.IndexAny(src[pos:], "\r\n")
	if end == -1 {
		end = len(src)
	} else {
		end += pos
	}
	return src[start:end], pos - start
}

// displayWidth measures the rendered width of s in terminal cells, counting
// grapheme clusters rather than bytes and expanding tabs.
func displayWidth(s string) int {
	var width int
	for len(s) > 0 {
		var cluster string
		cluster, s, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
		if cluster == "\t" {
			width += TabstopWidth - width%TabstopWidth
			continue
		}
		width += uniseg.StringWidth(cluster)
	}
	return width
}

func expandTabs(s string) string {
	var out strings.Builder
	var width int
	for len(s) > 0 {
		var cluster string
		cluster, s, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
		if cluster == "\t" {
			pad := TabstopWidth - width%TabstopWidth
			out.WriteString(strings.Repeat(" ", pad))
			width += pad
			continue
		}
		out.WriteString(cluster)
		width += uniseg.StringWidth(cluster)
	}
	return out.String()
}
