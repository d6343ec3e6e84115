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

package wrap

import (
	"strings"
	"testing"
)

type fillcase struct {
	in        string
	width     int
	breakLong bool
	want      string
}

var fillSmall = []fillcase{
	{"The quick brown fox", 10, true, "The quick\nbrown fox"},
	{"  spaced\n\tout   words ", 80, true, "spaced out words"},
	{"", 10, true, ""},
	{"   ", 10, true, ""},
	{"no limit at all here", 0, true, "no limit at all here"},
	{"exactly ten", 11, true, "exactly ten"},
	{"abcdefghijkl", 5, false, "abcdefghijkl"},
	{"abcdefghijkl", 5, true, "abcde\nfghij\nkl"},
}

func TestFill(t *testing.T) {
	for i, test := range fillSmall {
		got := Fill(test.in, test.width, test.breakLong)
		if got != test.want {
			t.Errorf("case %d, in %q width %d,\nwant %q,\ngot %q", i, test.in, test.width, test.want, got)
		}
	}
}

func TestFillWidth(t *testing.T) {
	src := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	for _, width := range []int{10, 17, 40, 80} {
		for _, line := range Lines(src, width, true) {
			if len(line) > width {
				t.Errorf("width %d: line %q is %d columns", width, line, len(line))
			}
		}
	}
}

func TestLongWordKept(t *testing.T) {
	long := strings.Repeat("x", 30)
	lines := Lines("short "+long+" tail", 10, false)
	found := false
	for _, line := range lines {
		if line == long {
			found = true
		} else if len(line) > 10 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if !found {
		t.Errorf("long word was split: %q", lines)
	}
}

func TestLines(t *testing.T) {
	if got := Lines("", 10, true); got != nil {
		t.Errorf("Lines of empty input = %q, want nil", got)
	}
	got := Lines("one two three", 7, true)
	want := []string{"one two", "three"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Lines = %q, want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a\nb", "   a\n   b"},
		{"a\n\nb\n", "   a\n   \n   b\n"},
		{"", "   "},
	}
	for i, c := range cases {
		if got := Indent(c.in, "   "); got != c.want {
			t.Errorf("case %d, in %q,\nwant %q,\ngot %q", i, c.in, c.want, got)
		}
	}
}

func TestFillIndent(t *testing.T) {
	got := FillIndent("aaa bbb ccc", 10, "   ", true)
	want := "   aaa bbb\n   ccc"
	if got != want {
		t.Errorf("FillIndent = %q, want %q", got, want)
	}
	if got := FillIndent("", 80, "   ", true); got != "" {
		t.Errorf("FillIndent of empty caption = %q, want empty", got)
	}
}
