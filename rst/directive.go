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

	"akhil.cc/rstgen/wrap"
)

// indent is the body indentation of every directive.
const indent = "   "

// Option is a single directive parameter.
type Option struct {
	Name  string
	Value string
}

// Options is an ordered list of directive parameters, rendered in order.
type Options []Option

// Set replaces the value of the named option, or appends it.
func (o Options) Set(name, value string) Options {
	for i := range o {
		if o[i].Name == name {
			o[i].Value = value
			return o
		}
	}
	return append(o, Option{Name: name, Value: value})
}

// Get returns the value of the named option.
func (o Options) Get(name string) (string, bool) {
	for _, opt := range o {
		if opt.Name == name {
			return opt.Value, true
		}
	}
	return "", false
}

func writeDirective(b *strings.Builder, name, arg string, opts Options) {
	b.WriteString(".. ")
	b.WriteString(name)
	b.WriteString("::")
	if arg != "" {
		b.WriteString(" ")
		b.WriteString(arg)
	}
	b.WriteString("\n")
	for _, opt := range opts {
		b.WriteString(indent)
		b.WriteString(":")
		b.WriteString(opt.Name)
		b.WriteString(":")
		if opt.Value != "" {
			b.WriteString(" ")
			b.WriteString(opt.Value)
		}
		b.WriteString("\n")
	}
}

// Image is an image directive.
type Image struct {
	URI     string
	Options Options
}

// NewImage returns an image directive for uri.
func NewImage(uri string, opts ...Option) *Image {
	return &Image{URI: uri, Options: append(Options(nil), opts...)}
}

func (i *Image) Render() (string, error) {
	var b strings.Builder
	writeDirective(&b, "image", i.URI, i.Options)
	return b.String(), nil
}

// Figure is an image directive with a caption.
type Figure struct {
	URI     string
	Caption string
	Options Options
}

// NewFigure returns a figure directive for uri.
func NewFigure(uri, caption string, opts ...Option) *Figure {
	return &Figure{URI: uri, Caption: caption, Options: append(Options(nil), opts...)}
}

func (f *Figure) Render() (string, error) {
	var b strings.Builder
	writeDirective(&b, "figure", f.URI, f.Options)
	if caption := wrap.FillIndent(f.Caption, DefaultWidth, indent, true); caption != "" {
		b.WriteString("\n")
		b.WriteString(caption)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Hyperlink is a hyperlink target. Other text refers to it as `Name`_.
// An indirect hyperlink also emits an anonymous reference to the target.
type Hyperlink struct {
	Name     string
	URL      string
	Indirect bool
}

// NewHyperlink returns a direct hyperlink target.
func NewHyperlink(name, url string) *Hyperlink {
	return &Hyperlink{Name: name, URL: url}
}

func (h *Hyperlink) Render() (string, error) {
	var b strings.Builder
	b.WriteString(".. _")
	b.WriteString(h.Name)
	b.WriteString(": ")
	b.WriteString(h.URL)
	b.WriteString("\n")
	if h.Indirect {
		b.WriteString("\n__ ")
		b.WriteString(h.Name)
		b.WriteString("_\n")
	}
	return b.String(), nil
}

// Include embeds another file when the document is processed. The file
// itself is never read here.
type Include struct {
	Path    string
	Options Options
}

// NewInclude returns an include directive for path.
func NewInclude(path string, opts ...Option) *Include {
	return &Include{Path: path, Options: append(Options(nil), opts...)}
}

func (i *Include) Render() (string, error) {
	var b strings.Builder
	writeDirective(&b, "include", i.Path, i.Options)
	return b.String(), nil
}

// Directive is a generic directive such as note or warning. Body, if
// set, is rendered after a blank line and indented.
type Directive struct {
	Name     string
	Argument string
	Options  Options
	Body     Node
}

// NewDirective returns a directive whose body holds items.
func NewDirective(name, arg string, items ...interface{}) *Directive {
	d := &Directive{Name: name, Argument: arg}
	if len(items) > 0 {
		d.Body = NewContainer(items...)
	}
	return d
}

func (d *Directive) Render() (string, error) {
	var b strings.Builder
	writeDirective(&b, d.Name, d.Argument, d.Options)
	if d.Body == nil {
		return b.String(), nil
	}
	body, err := d.Body.Render()
	if err != nil {
		return "", err
	}
	body = strings.TrimRight(body, "\n")
	if body != "" {
		b.WriteString("\n")
		b.WriteString(wrap.Indent(body, indent))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Children implements Parent.
func (d *Directive) Children() []Node {
	if d.Body == nil {
		return nil
	}
	return []Node{d.Body}
}
