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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTable(t *testing.T) {
	tests := []struct {
		name  string
		table *SimpleTable
		want  string
	}{
		{
			name:  "header and two rows",
			table: NewSimpleTable([]string{"A", "B"}, StringRows([][]string{{"1", "2"}, {"3", "4"}})),
			want: "+---+---+\n" +
				"| A | B |\n" +
				"+---+---+\n" +
				"| 1 | 2 |\n" +
				"+---+---+\n" +
				"| 3 | 4 |\n" +
				"+---+---+\n",
		},
		{
			name:  "multi-line cell",
			table: NewSimpleTable([]string{"K", "V"}, [][]interface{}{{"a", "x\nyy"}}),
			want: "+---+----+\n" +
				"| K | V  |\n" +
				"+---+----+\n" +
				"| a | x  |\n" +
				"|   | yy |\n" +
				"+---+----+\n",
		},
		{
			name:  "header wider than data",
			table: NewSimpleTable([]string{"Name", "N"}, [][]interface{}{{"x", 12345}}),
			want: "+------+-------+\n" +
				"| Name |   N   |\n" +
				"+------+-------+\n" +
				"| x    | 12345 |\n" +
				"+------+-------+\n",
		},
		{
			name:  "headerless",
			table: NewSimpleTable(nil, StringRows([][]string{{"a", "bb"}})),
			want: "+---+----+\n" +
				"| a | bb |\n" +
				"+---+----+\n",
		},
		{
			name: "lenient pads short rows",
			table: &SimpleTable{
				Rows:    StringRows([][]string{{"a", "b", "c"}, {"d"}}),
				Lenient: true,
			},
			want: "+---+---+---+\n" +
				"| a | b | c |\n" +
				"+---+---+---+\n" +
				"| d |   |   |\n" +
				"+---+---+---+\n",
		},
		{
			name: "lenient truncates long rows",
			table: &SimpleTable{
				Header:  []string{"A", "B"},
				Rows:    StringRows([][]string{{"1", "2", "3"}}),
				Lenient: true,
			},
			want: "+---+---+\n" +
				"| A | B |\n" +
				"+---+---+\n" +
				"| 1 | 2 |\n" +
				"+---+---+\n",
		},
		{
			name: "cells wrapped to max column width",
			table: &SimpleTable{
				Header:      []string{"Food", "Notes"},
				Rows:        StringRows([][]string{{"hot dogs", "a delicious snack"}}),
				MaxColWidth: 10,
			},
			want: "+----------+-----------+\n" +
				"|   Food   |   Notes   |\n" +
				"+----------+-----------+\n" +
				"| hot dogs | a         |\n" +
				"|          | delicious |\n" +
				"|          | snack     |\n" +
				"+----------+-----------+\n",
		},
		{
			name:  "nested table cell",
			table: NewSimpleTable([]string{"Nested"}, [][]interface{}{{NewSimpleTable(nil, StringRows([][]string{{"x"}}))}}),
			want: "+--------+\n" +
				"| Nested |\n" +
				"+--------+\n" +
				"| +---+  |\n" +
				"| | x |  |\n" +
				"| +---+  |\n" +
				"+--------+\n",
		},
		{
			name:  "header only",
			table: NewSimpleTable([]string{"Only"}, nil),
			want: "+------+\n" +
				"| Only |\n" +
				"+------+\n",
		},
		{
			name:  "no columns",
			table: NewSimpleTable(nil, nil),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleTableShape(t *testing.T) {
	strict := NewSimpleTable(nil, StringRows([][]string{{"a", "b", "c"}, {"d"}}))
	_, err := strict.Render()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 1, rerr.Details["row"])
	assert.Equal(t, 1, rerr.Details["cells"])
	assert.Equal(t, 3, rerr.Details["want"])

	headed := NewSimpleTable([]string{"A", "B"}, StringRows([][]string{{"1", "2"}, {"3"}}))
	_, err = headed.Render()
	assert.True(t, errors.Is(err, ErrShape))
	assert.Contains(t, err.Error(), "row 1 has 1 cells, want 2")

	strict.Lenient = true
	_, err = strict.Render()
	assert.NoError(t, err)
}

func TestSimpleTableLenientWidth(t *testing.T) {
	header := []string{"A", "B", "C"}
	rows := StringRows([][]string{{"1"}, {"1", "2", "3", "4", "5"}, {}})
	tbl := &SimpleTable{Header: header, Rows: rows, Lenient: true}

	out, err := tbl.Render()
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if strings.HasPrefix(line, "|") {
			assert.Equal(t, len(header)+1, strings.Count(line, "|"), "line %q", line)
		}
	}
}

func TestSeparatorInvariant(t *testing.T) {
	tables := []*SimpleTable{
		NewSimpleTable([]string{"A", "B"}, StringRows([][]string{{"1", "2"}})),
		NewSimpleTable([]string{"Long header", "x", "y"}, StringRows([][]string{{"a", "bbbbbbbbbbb", ""}})),
		NewSimpleTable(nil, StringRows([][]string{{"one"}, {"two", "three", "four", "five"}})),
	}
	for i, tbl := range tables {
		tbl.Lenient = true
		widths, err := tbl.ColumnWidths()
		require.NoError(t, err)
		out, err := tbl.Render()
		require.NoError(t, err)

		sep := strings.SplitN(out, "\n", 2)[0]
		sum := 0
		for _, w := range widths {
			sum += w
		}
		assert.Equal(t, len(widths)+1, strings.Count(sep, "+"), "case %d", i)
		assert.Equal(t, sum+3*len(widths)+1, len(sep), "case %d", i)
	}
}

func TestColumnWidthsWide(t *testing.T) {
	tbl := NewSimpleTable([]string{"名前"}, StringRows([][]string{{"ab"}}))
	widths, err := tbl.ColumnWidths()
	require.NoError(t, err)
	assert.Equal(t, []int{4}, widths)
}

func TestSimpleTableReflectsMutation(t *testing.T) {
	cell := NewText("a")
	tbl := NewSimpleTable([]string{"H"}, [][]interface{}{{cell}})
	first, err := tbl.Render()
	require.NoError(t, err)
	again, err := tbl.Render()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	cell.Body = "longer"
	changed, err := tbl.Render()
	require.NoError(t, err)
	assert.Contains(t, changed, "| longer |")
}

func TestTable(t *testing.T) {
	tbl := NewTable("Scores", []string{"A", "B"}, StringRows([][]string{{"1", "2"}}))
	tbl.Options = tbl.Options.Set("align", "left")

	got, err := tbl.Render()
	require.NoError(t, err)
	want := ".. table:: Scores\n" +
		"   :align: left\n" +
		"\n" +
		"   +---+---+\n" +
		"   | A | B |\n" +
		"   +---+---+\n" +
		"   | 1 | 2 |\n" +
		"   +---+---+\n"
	assert.Equal(t, want, got)

	tbl.Rows = append(tbl.Rows, []interface{}{"3"})
	_, err = tbl.Render()
	assert.True(t, errors.Is(err, ErrShape))
}

func TestTableUntitled(t *testing.T) {
	tbl := &Table{SimpleTable: NewSimpleTable(nil, StringRows([][]string{{"x"}}))}
	got, err := tbl.Render()
	require.NoError(t, err)
	assert.Equal(t, ".. table::\n\n   +---+\n   | x |\n   +---+\n", got)
}
