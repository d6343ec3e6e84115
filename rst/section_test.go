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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionRender(t *testing.T) {
	s := NewSection("Introduction", "Some text.")
	assert.Equal(t, "Introduction\n============\n\nSome text.\n\n", render(t, s))

	s.SetLevel(2)
	assert.Equal(t, "Introduction\n------------\n\nSome text.\n\n", render(t, s))
}

func TestSectionUnderlineWidth(t *testing.T) {
	s := NewSection("概要")
	assert.Equal(t, "概要\n====\n\n", render(t, s))
}

func TestSectionLevels(t *testing.T) {
	root := NewSection("Root")
	child := NewSection("Child")
	grand := NewSection("Grand")
	root.Add(child)
	child.Add(grand)

	assert.Equal(t, 1, root.Level())
	assert.Equal(t, 2, child.Level())
	assert.Equal(t, 3, grand.Level())
}

func TestSectionRelevelSubtree(t *testing.T) {
	c := NewSection("C")
	b := NewSection("B", c)
	a := NewSection("A", b)
	require.Equal(t, []int{1, 2, 3}, []int{a.Level(), b.Level(), c.Level()})

	root := NewSection("Root")
	root.SetLevel(2)
	root.Add(a)
	assert.Equal(t, []int{3, 4, 5}, []int{a.Level(), b.Level(), c.Level()})

	top := NewSection("Top")
	top.Add(root)
	assert.Equal(t, []int{2, 3, 4, 5}, []int{root.Level(), a.Level(), b.Level(), c.Level()})
}

func TestSectionRelevelThroughContainers(t *testing.T) {
	x := NewSection("X")
	y := NewSection("Y")
	group := NewContainer(x, NewDirective("note", "", y))

	parent := NewSection("Parent").SetLevel(3)
	parent.Add(group)
	assert.Equal(t, 4, x.Level())
	assert.Equal(t, 4, y.Level())
}

func TestSectionTooDeep(t *testing.T) {
	sections := make([]*Section, 7)
	for i := range sections {
		sections[i] = NewSection(string(rune('a' + i)))
	}
	for i := len(sections) - 2; i >= 0; i-- {
		sections[i].Add(sections[i+1])
	}
	assert.Equal(t, 6, sections[5].Level())
	assert.Equal(t, 7, sections[6].Level())

	_, err := sections[0].Render()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLevel))

	_, err = sections[5].Render()
	assert.True(t, errors.Is(err, ErrLevel), "the error comes from the nested section")
	assert.Equal(t, "f\n+\n\n", render(t, NewSection("f").SetLevel(6)))
}

func TestSectionLevelZero(t *testing.T) {
	s := NewSection("x").SetLevel(0)
	assert.Equal(t, 0, s.Level())
	_, err := s.Render()
	assert.True(t, errors.Is(err, ErrLevel))

	s.SetLevel(1)
	assert.Equal(t, "x\n=\n\n", render(t, s))
}

func TestSectionMove(t *testing.T) {
	a := NewSection("A")
	b := NewSection("B")
	a.Add(b)
	p := NewSection("P", NewSection("Q"))
	q := p.Children()[0].(*Section)

	require.True(t, a.Remove(b))
	q.Add(b)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 3, b.Level())
	assert.Equal(t, "A\n=\n\n", render(t, a))
}

func TestZeroSection(t *testing.T) {
	var s Section
	s.Title = "Zero"
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, "Zero\n====\n\n", render(t, &s))
}
