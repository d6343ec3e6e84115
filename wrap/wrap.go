// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package wrap fills running text to a column width.
//
// Whitespace runs, newlines included, collapse to a single space before
// filling. Words wider than the limit are either kept whole on their own
// line or hard-broken at the limit.
package wrap // import "akhil.cc/rstgen/wrap"

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Fill reflows s into lines of at most width columns and returns them
// joined by newlines, without a trailing newline. A width of zero or less
// leaves the normalized text on a single line.
func Fill(s string, width int, breakLong bool) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 || s == "" {
		return s
	}
	out := wordwrap.String(s, width)
	if breakLong {
		out = wrap.String(out, width)
	}
	return out
}

// Lines is like Fill but returns the individual lines.
// Empty or all-whitespace input yields no lines.
func Lines(s string, width int, breakLong bool) []string {
	out := Fill(s, width, breakLong)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Indent prefixes every line of s, blank lines included.
// A trailing newline in s is preserved and not prefixed.
func Indent(s, prefix string) string {
	trail := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	out := strings.Join(lines, "\n")
	if trail {
		out += "\n"
	}
	return out
}

// FillIndent fills s so that each line, prefix included, fits in width,
// then prefixes every line.
func FillIndent(s string, width int, prefix string, breakLong bool) string {
	inner := width - len(prefix)
	if width > 0 && inner < 1 {
		inner = 1
	}
	out := Fill(s, inner, breakLong)
	if out == "" {
		return ""
	}
	return Indent(out, prefix)
}
