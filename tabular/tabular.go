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

// Package tabular reads rectangular data from CSV and HTML sources and
// turns it into rst tables.
package tabular // import "akhil.cc/rstgen/tabular"

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"akhil.cc/rstgen/rst"
	"github.com/PuerkitoBio/goquery"
)

// Grid is a header and rows of text cells. Rows may be ragged.
type Grid struct {
	Header []string
	Rows   [][]string
}

// Cells returns the rows as rst table cells.
func (g *Grid) Cells() [][]interface{} {
	return rst.StringRows(g.Rows)
}

// SimpleTable returns a strict grid table of g.
func (g *Grid) SimpleTable() *rst.SimpleTable {
	return rst.NewSimpleTable(g.Header, g.Cells())
}

// Table returns a strict titled table of g.
func (g *Grid) Table(title string) *rst.Table {
	return &rst.Table{SimpleTable: g.SimpleTable(), Title: title}
}

// ReadCSV reads comma separated records. When header is set the first
// record becomes the header.
func ReadCSV(r io.Reader, header bool) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	g := &Grid{}
	if header && len(records) > 0 {
		g.Header = records[0]
		records = records[1:]
	}
	g.Rows = records
	return g, nil
}

// ReadHTML returns a grid for every table element in the document, in
// document order. A leading row made only of th cells becomes the header.
// Cell text has its whitespace collapsed.
func ReadHTML(r io.Reader) ([]*Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	var grids []*Grid
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		g := &Grid{}
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			// rows of nested tables belong to their own grid
			if tr.Closest("table").Get(0) != tbl.Get(0) {
				return
			}
			var cells []string
			allTH := true
			tr.Children().Filter("th, td").Each(func(_ int, c *goquery.Selection) {
				if !c.Is("th") {
					allTH = false
				}
				cells = append(cells, strings.Join(strings.Fields(c.Text()), " "))
			})
			if len(cells) == 0 {
				return
			}
			if allTH && g.Header == nil && len(g.Rows) == 0 {
				g.Header = cells
				return
			}
			g.Rows = append(g.Rows, cells)
		})
		grids = append(grids, g)
	})
	return grids, nil
}
