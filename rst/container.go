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

import "strings"

// Container renders its children in insertion order, each followed by a
// blank line. A container owns its children; a node must not be shared
// between containers.
type Container struct {
	children []Node
}

// NewContainer returns a container holding items.
func NewContainer(items ...interface{}) *Container {
	c := &Container{}
	c.Add(items...)
	return c
}

// Add appends each item, which must be a Node or a string. Strings are
// wrapped in a Text of the default width. Add panics if an item is, or
// contains, the container itself, table cells included. A node already
// held by another parent must be removed from it before being added.
func (c *Container) Add(items ...interface{}) *Container {
	c.attach(c, items)
	return c
}

// attach normalizes items and appends them on behalf of owner, the node
// the caller sees (a Section or Document embedding c).
func (c *Container) attach(owner Node, items []interface{}) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		n := toNode(item)
		if contains(n, owner) {
			panic("rst: adding a node to itself or to one of its descendants")
		}
		nodes = append(nodes, n)
	}
	c.children = append(c.children, nodes...)
	return nodes
}

// contains reports whether target is n or sits anywhere below it,
// including inside the Node cells of tables.
func contains(n, target Node) bool {
	if n == target {
		return true
	}
	switch t := n.(type) {
	case *Table:
		return t.SimpleTable != nil && contains(t.SimpleTable, target)
	case *SimpleTable:
		for _, row := range t.Rows {
			for _, cell := range row {
				if c, ok := cell.(Node); ok && contains(c, target) {
					return true
				}
			}
		}
	case Parent:
		for _, c := range t.Children() {
			if contains(c, target) {
				return true
			}
		}
	}
	return false
}

// Remove detaches the first occurrence of n and reports whether it was
// found. A removed node may then be added elsewhere.
func (c *Container) Remove(n Node) bool {
	for i, child := range c.children {
		if child == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a copy of the container's children.
func (c *Container) Children() []Node {
	return append([]Node(nil), c.children...)
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

func (c *Container) Render() (string, error) {
	var b strings.Builder
	if err := renderBlocks(&b, c.children); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderBlocks(b *strings.Builder, nodes []Node) error {
	for _, n := range nodes {
		s, err := n.Render()
		if err != nil {
			return err
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	return nil
}
