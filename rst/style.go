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

// Role is a named inline style and the CSS rule it applies.
type Role struct {
	Name string `koanf:"name" yaml:"name" toml:"name"`
	Rule string `koanf:"rule" yaml:"rule" toml:"rule"`
}

var defaultRoles = [...]Role{
	{"red", "color: #d9534f"},
	{"green", "color: #5cb85c"},
	{"blue", "color: #337ab7"},
	{"orange", "color: #f0ad4e"},
	{"gray", "color: #777777"},
	{"highlight", "background-color: #ffff66"},
	{"underline", "text-decoration: underline"},
	{"strike", "text-decoration: line-through"},
}

// DefaultRoles returns a fresh copy of the built-in palette.
func DefaultRoles() []Role {
	return append([]Role(nil), defaultRoles[:]...)
}

// StyleSheet declares a set of inline roles: an HTML style block with one
// class per role, followed by a role directive for each.
type StyleSheet struct {
	Roles []Role
}

// NewStyleSheet returns a style sheet declaring roles, or the built-in
// palette when none are given.
func NewStyleSheet(roles ...Role) *StyleSheet {
	if len(roles) == 0 {
		return &StyleSheet{Roles: DefaultRoles()}
	}
	return &StyleSheet{Roles: append([]Role(nil), roles...)}
}

func (s *StyleSheet) Render() (string, error) {
	if len(s.Roles) == 0 {
		return "", nil
	}
	var css strings.Builder
	css.WriteString("<style>\n")
	for _, r := range s.Roles {
		css.WriteString(".")
		css.WriteString(r.Name)
		css.WriteString(" { ")
		css.WriteString(strings.TrimSuffix(strings.TrimSpace(r.Rule), ";"))
		css.WriteString("; }\n")
	}
	css.WriteString("</style>")

	var b strings.Builder
	writeDirective(&b, "raw", "html", nil)
	b.WriteString("\n")
	b.WriteString(wrap.Indent(css.String(), indent))
	b.WriteString("\n\n")
	for _, r := range s.Roles {
		writeDirective(&b, "role", r.Name, nil)
	}
	return b.String(), nil
}

// RoleFormatter returns a function marking text with the named role.
// The role must be declared by a StyleSheet in the same document.
func RoleFormatter(name string) func(string) string {
	return func(text string) string {
		return ":" + name + ":`" + strings.ReplaceAll(text, "`", "\\`") + "`"
	}
}
