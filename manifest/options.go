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
	"strings"

	"akhil.cc/rstgen/rst"
	sq "github.com/kballard/go-shellquote"
)

// ParseOptions splits s according to the Bourne shell's word-splitting
// rules and turns each name=value word into a directive option, keeping
// their order. Repeating a name replaces its earlier value.
func ParseOptions(s string) (rst.Options, error) {
	words, err := sq.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad options %q: %w", s, err)
	}
	var opts rst.Options
	for _, w := range words {
		name, value, _ := strings.Cut(w, "=")
		name = strings.Trim(name, ":")
		if name == "" {
			return nil, fmt.Errorf("bad options %q: option %q has no name", s, w)
		}
		opts = opts.Set(name, value)
	}
	return opts, nil
}
