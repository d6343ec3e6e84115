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

import "akhil.cc/rstgen/wrap"

// DefaultWidth is the fill width of a Text created by NewText and of
// strings passed to Add.
const DefaultWidth = 80

// Text is a paragraph filled to Width columns. Words wider than Width are
// broken unless KeepLongWords is set.
type Text struct {
	Body          string
	Width         int
	KeepLongWords bool
}

// NewText returns a paragraph of the default width.
func NewText(body string) *Text {
	return &Text{Body: body, Width: DefaultWidth}
}

func (t *Text) Render() (string, error) {
	width := t.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return wrap.Fill(t.Body, width, !t.KeepLongWords) + "\n", nil
}
