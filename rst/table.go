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
	"fmt"
	"strings"

	"akhil.cc/rstgen/wrap"
	"github.com/mattn/go-runewidth"
)

// SimpleTable is a grid table. A cell is either a Node, rendered in place
// and possibly spanning several lines, or any other value, formatted with
// fmt.Sprint.
//
// With a header the table has one column per label; without one it is as
// wide as its longest row. Rows of another length are an ErrShape error
// unless Lenient is set, in which case they are padded with empty cells or
// truncated. A positive MaxColWidth wraps non-Node cells to that width.
type SimpleTable struct {
	Header      []string
	Rows        [][]interface{}
	Lenient     bool
	MaxColWidth int
}

// NewSimpleTable returns a strict table. A nil header makes it headerless.
func NewSimpleTable(header []string, rows [][]interface{}) *SimpleTable {
	return &SimpleTable{Header: header, Rows: rows}
}

// StringRows converts rows of strings into table rows.
func StringRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = make([]interface{}, len(row))
		for j, cell := range row {
			out[i][j] = cell
		}
	}
	return out
}

func (t *SimpleTable) columns() int {
	if len(t.Header) > 0 {
		return len(t.Header)
	}
	n := 0
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// layout splits every cell into lines, pads the cells of each row to the
// same height and negotiates the column widths.
func (t *SimpleTable) layout() ([][][]string, []int, error) {
	n := t.columns()
	widths := make([]int, n)
	for i, h := range t.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	grid := make([][][]string, 0, len(t.Rows))
	for r, row := range t.Rows {
		if len(row) != n && !t.Lenient {
			return nil, nil, newError(ErrShape, "row %d has %d cells, want %d", r, len(row), n).
				WithDetail("header", t.Header).
				WithDetail("row", r).
				WithDetail("cells", len(row)).
				WithDetail("want", n)
		}
		cells := make([][]string, n)
		height := 1
		for i := 0; i < n && i < len(row); i++ {
			lines, err := t.cellLines(row[i])
			if err != nil {
				return nil, nil, err
			}
			cells[i] = lines
			if len(lines) > height {
				height = len(lines)
			}
			for _, l := range lines {
				if w := runewidth.StringWidth(l); w > widths[i] {
					widths[i] = w
				}
			}
		}
		for i := range cells {
			for len(cells[i]) < height {
				cells[i] = append(cells[i], "")
			}
		}
		grid = append(grid, cells)
	}
	return grid, widths, nil
}

func (t *SimpleTable) cellLines(cell interface{}) ([]string, error) {
	var s string
	node, isNode := cell.(Node)
	switch {
	case isNode:
		var err error
		if s, err = node.Render(); err != nil {
			return nil, err
		}
	case cell != nil:
		s = fmt.Sprint(cell)
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if t.MaxColWidth <= 0 || isNode {
		return lines, nil
	}
	var wrapped []string
	for _, l := range lines {
		ll := wrap.Lines(l, t.MaxColWidth, true)
		if len(ll) == 0 {
			ll = []string{""}
		}
		wrapped = append(wrapped, ll...)
	}
	return wrapped, nil
}

// ColumnWidths returns the negotiated width of every column.
func (t *SimpleTable) ColumnWidths() ([]int, error) {
	_, widths, err := t.layout()
	return widths, err
}

func (t *SimpleTable) Render() (string, error) {
	grid, widths, err := t.layout()
	if err != nil {
		return "", err
	}
	if len(widths) == 0 {
		return "", nil
	}
	sep := separator(widths)
	var b strings.Builder
	b.WriteString(sep)
	if len(t.Header) > 0 {
		labels := make([]string, len(widths))
		for i, h := range t.Header {
			labels[i] = center(h, widths[i])
		}
		writeLine(&b, labels)
		b.WriteString(sep)
	}
	line := make([]string, len(widths))
	for _, cells := range grid {
		for l := range cells[0] {
			for i := range cells {
				line[i] = ljust(cells[i][l], widths[i])
			}
			writeLine(&b, line)
		}
		b.WriteString(sep)
	}
	return b.String(), nil
}

func separator(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
	return b.String()
}

func writeLine(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func ljust(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// Table is a table directive with a title around a SimpleTable.
type Table struct {
	*SimpleTable
	Title   string
	Options Options
}

// NewTable returns a titled strict table.
func NewTable(title string, header []string, rows [][]interface{}) *Table {
	return &Table{SimpleTable: NewSimpleTable(header, rows), Title: title}
}

func (t *Table) Render() (string, error) {
	d := &Directive{Name: "table", Argument: t.Title, Options: t.Options}
	if t.SimpleTable != nil {
		d.Body = t.SimpleTable
	}
	return d.Render()
}
