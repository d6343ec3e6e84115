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

// Examples for the rst package
package rst_test

import (
	"fmt"
	"log"
	"os"

	"akhil.cc/rstgen/rst"
)

func ExampleDocument() {
	doc := rst.New(os.Stdout)
	doc.Title = "README"
	doc.Add(rst.NewSection("Introduction", "rstgen builds reStructuredText documents."))
	if err := doc.Emit(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// ======
	// README
	// ======
	//
	// Introduction
	// ============
	//
	// rstgen builds reStructuredText documents.
}

func ExampleSection_Add() {
	intro := rst.NewSection("Section 1")
	sub := rst.NewSection("Subsection 1.1", "Nested sections take the next underline.")
	intro.Add(sub)

	out, err := intro.Render()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// Section 1
	// =========
	//
	// Subsection 1.1
	// --------------
	//
	// Nested sections take the next underline.
}

func ExampleTable() {
	t := rst.NewTable("Scores", []string{"Name", "Score"}, rst.StringRows([][]string{
		{"Ada", "10"},
		{"Bob", "7"},
	}))
	out, err := t.Render()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(out)
	// Output:
	// .. table:: Scores
	//
	//    +------+-------+
	//    | Name | Score |
	//    +------+-------+
	//    | Ada  | 10    |
	//    +------+-------+
	//    | Bob  | 7     |
	//    +------+-------+
}

func ExampleRoleFormatter() {
	red := rst.RoleFormatter("red")
	fmt.Println("Status: " + red("failing"))
	// Output:
	// Status: :red:`failing`
}

func ExampleHyperlink() {
	link := &rst.Hyperlink{Name: "docutils", URL: "https://docutils.sourceforge.io", Indirect: true}
	out, _ := link.Render()
	fmt.Print(out)
	// Output:
	// .. _docutils: https://docutils.sourceforge.io
	//
	// __ docutils_
}
