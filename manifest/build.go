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

package manifest

import (
	"fmt"
	"io"

	"akhil.cc/rstgen/config"
	"akhil.cc/rstgen/rst"
)

// Build returns a document for m writing to w. Paragraph width, long word
// handling, table defaults and the role palette come from cfg; a nil cfg
// means the built-in defaults.
func (m *Manifest) Build(w io.Writer, cfg *config.Config) (*rst.Document, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	doc := rst.New(w)
	doc.Title = m.Title
	doc.Subtitle = m.Subtitle
	if m.Styles {
		doc.Add(rst.NewStyleSheet(cfg.Roles()...))
	}
	nodes, err := buildBlocks(m.Body, cfg, "body")
	if err != nil {
		return nil, err
	}
	doc.Add(nodes...)
	return doc, nil
}

func buildBlocks(blocks []Block, cfg *config.Config, path string) ([]interface{}, error) {
	nodes := make([]interface{}, 0, len(blocks))
	for i := range blocks {
		n, err := buildBlock(&blocks[i], cfg, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func buildBlock(b *Block, cfg *config.Config, at string) (rst.Node, error) {
	switch {
	case b.Text != "":
		return cfg.NewText(b.Text), nil

	case b.Section != "":
		children, err := buildBlocks(b.Body, cfg, at+".body")
		if err != nil {
			return nil, err
		}
		return rst.NewSection(b.Section, children...), nil

	case b.Image != nil:
		opts, err := ParseOptions(b.Image.Options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		return &rst.Image{URI: b.Image.URI, Options: opts}, nil

	case b.Figure != nil:
		opts, err := ParseOptions(b.Figure.Options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		return &rst.Figure{URI: b.Figure.URI, Caption: b.Figure.Caption, Options: opts}, nil

	case b.Link != nil:
		return &rst.Hyperlink{Name: b.Link.Name, URL: b.Link.URL, Indirect: b.Link.Indirect}, nil

	case b.Include != nil:
		opts, err := ParseOptions(b.Include.Options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		return &rst.Include{Path: b.Include.Path, Options: opts}, nil

	case b.Table != nil:
		return buildTable(b.Table, cfg, at)

	case b.Directive != nil:
		opts, err := ParseOptions(b.Directive.Options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		d := &rst.Directive{Name: b.Directive.Name, Argument: b.Directive.Argument, Options: opts}
		if len(b.Directive.Body) > 0 {
			children, err := buildBlocks(b.Directive.Body, cfg, at+".directive.body")
			if err != nil {
				return nil, err
			}
			d.Body = rst.NewContainer(children...)
		}
		return d, nil
	}
	return nil, fmt.Errorf("%s: empty block", at)
}

func buildTable(t *Table, cfg *config.Config, at string) (rst.Node, error) {
	st := &rst.SimpleTable{
		Header:      t.Header,
		Rows:        t.Rows,
		Lenient:     cfg.Table.Lenient,
		MaxColWidth: cfg.Table.ColWidth,
	}
	if t.Lenient != nil {
		st.Lenient = *t.Lenient
	}
	if t.ColWidth != nil {
		st.MaxColWidth = *t.ColWidth
	}
	opts, err := ParseOptions(t.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	if t.Title == "" && len(opts) == 0 {
		return st, nil
	}
	return &rst.Table{SimpleTable: st, Title: t.Title, Options: opts}, nil
}
