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

package rst

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// SectionChars holds the underline character for each section level,
// level 1 first.
const SectionChars = "=-~:#+"

// MaxLevel is the deepest supported section level.
const MaxLevel = len(SectionChars)

// Section is a titled container. Its level selects the underline
// character and is derived from its position among enclosing sections.
type Section struct {
	Container
	Title string
	depth int // level - 1
}

// NewSection returns a level 1 section holding items.
func NewSection(title string, items ...interface{}) *Section {
	s := &Section{Title: title}
	s.Add(items...)
	return s
}

// Level returns the section's level, 1 for a zero Section.
func (s *Section) Level() int {
	return s.depth + 1
}

// SetLevel sets the level of a section that is not nested in another
// one, and re-levels every section below it. A level outside 1-6, zero
// included, makes Render fail with ErrLevel.
func (s *Section) SetLevel(level int) *Section {
	relevel(s, level-1)
	return s
}

// Add appends items like Container.Add. Every section in the added
// subtrees, including those reached through plain containers, is
// re-leveled to one below its nearest enclosing section.
//
// A node has a single parent. To move a node that is already nested,
// Remove it from its old parent first.
func (s *Section) Add(items ...interface{}) *Section {
	for _, n := range s.attach(s, items) {
		relevel(n, s.Level())
	}
	return s
}

func relevel(n Node, parent int) {
	switch t := n.(type) {
	case *Section:
		t.depth = parent
		for _, c := range t.children {
			relevel(c, t.Level())
		}
	case Parent:
		for _, c := range t.Children() {
			relevel(c, parent)
		}
	}
}

func (s *Section) Render() (string, error) {
	level := s.Level()
	if level < 1 || level > MaxLevel {
		return "", newError(ErrLevel, "section %q at level %d, want 1-%d", s.Title, level, MaxLevel).
			WithDetail("level", level)
	}
	var b strings.Builder
	writeHeading(&b, s.Title, SectionChars[level-1], false)
	b.WriteString("\n")
	if err := renderBlocks(&b, s.children); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeHeading writes title underlined, and overlined when over is set,
// by a run of ch as wide as the title.
func writeHeading(b *strings.Builder, title string, ch byte, over bool) {
	rule := strings.Repeat(string(ch), runewidth.StringWidth(title))
	if over {
		b.WriteString(rule)
		b.WriteString("\n")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
}
