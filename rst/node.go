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

// Package rst builds reStructuredText documents from a tree of nodes.
// Containers concatenate their children; a Section nested in another
// Section takes the next underline character; tables negotiate their
// column widths from the cells they hold.
//
// Nodes correspond to the following markup:
// 	Text                        wrapped paragraph
// 	Section                     title over a run of = - ~ : # +
// 	Image                       .. image:: uri
// 	Figure                      .. figure:: uri
// 	Hyperlink                   .. _name: url (and __ name_ when indirect)
// 	Include                     .. include:: path
// 	StyleSheet                  .. raw:: html and .. role:: name
// 	Directive                   .. name:: argument
// 	SimpleTable                 +---+---+ grid table
// 	Table                       .. table:: title around a grid table
//
// A tree is built by a single goroutine. Render must not run concurrently
// with Add on the same tree.
package rst // import "akhil.cc/rstgen/rst"

import (
	"errors"
	"fmt"
)

// Node is anything that renders to reStructuredText. Render reflects the
// node's fields at call time and may be called any number of times.
type Node interface {
	Render() (string, error)
}

// Parent is a Node that owns an ordered list of children.
type Parent interface {
	Node
	Children() []Node
}

// SkipChildren may be returned by a Walk function to skip the children
// of the node just visited.
var SkipChildren = errors.New("skip children")

// Walk visits n and then, depth first, every descendant reachable through
// Parent nodes. Table cells are not descended into.
func Walk(n Node, fn func(Node) error) error {
	if n == nil {
		return nil
	}
	if err := fn(n); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	if p, ok := n.(Parent); ok {
		for _, c := range p.Children() {
			if err := Walk(c, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// toNode normalizes an item given to Add or Concat. Strings become Text
// nodes of the default width.
func toNode(item interface{}) Node {
	switch t := item.(type) {
	case Node:
		return t
	case string:
		return NewText(t)
	case nil:
		panic("rst: nil node")
	default:
		panic(fmt.Sprintf("rst: cannot add %T, want a Node or a string", item))
	}
}

type concat struct {
	a, b Node
}

// Concat returns a new node rendering a, a newline, then b. Neither
// operand is modified; b may be a Node or a string.
func Concat(a Node, b interface{}) Node {
	return &concat{a: toNode(a), b: toNode(b)}
}

func (c *concat) Render() (string, error) {
	a, err := c.a.Render()
	if err != nil {
		return "", err
	}
	b, err := c.b.Render()
	if err != nil {
		return "", err
	}
	return a + "\n" + b, nil
}

// Children implements Parent so that Walk sees both operands.
func (c *concat) Children() []Node {
	return []Node{c.a, c.b}
}
