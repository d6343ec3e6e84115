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

// Package manifest decodes document descriptions written in YAML or TOML
// and builds rst documents from them.
//
// A manifest has a title, an optional subtitle, a styles flag adding the
// inline role palette, and a body of blocks. Each block sets exactly one
// of the following keys:
//
//      text       paragraph string
//      section    section title, with nested blocks under body
//      image      {uri, options}
//      figure     {uri, caption, options}
//      link       {name, url, indirect}
//      include    {path, options}
//      table      {title, header, rows, lenient, colwidth, options}
//      directive  {name, argument, options, body}
//
// Options are written as a single shell-quoted string of name=value
// words, for example "alt='A cat' width=200". A word without = is a flag
// option.
package manifest // import "akhil.cc/rstgen/manifest"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format called name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("unknown manifest format %q", name)
}

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("cannot tell the manifest format of %q", path)
	}
	return ParseFormat(ext)
}

// Manifest describes a whole document.
type Manifest struct {
	Title    string  `yaml:"title" toml:"title"`
	Subtitle string  `yaml:"subtitle" toml:"subtitle"`
	Styles   bool    `yaml:"styles" toml:"styles"`
	Body     []Block `yaml:"body" toml:"body"`
}

// Block is one node of the document body.
type Block struct {
	Text      string     `yaml:"text" toml:"text"`
	Section   string     `yaml:"section" toml:"section"`
	Body      []Block    `yaml:"body" toml:"body"`
	Image     *Image     `yaml:"image" toml:"image"`
	Figure    *Figure    `yaml:"figure" toml:"figure"`
	Link      *Link      `yaml:"link" toml:"link"`
	Include   *Include   `yaml:"include" toml:"include"`
	Table     *Table     `yaml:"table" toml:"table"`
	Directive *Directive `yaml:"directive" toml:"directive"`
}

type Image struct {
	URI     string `yaml:"uri" toml:"uri"`
	Options string `yaml:"options" toml:"options"`
}

type Figure struct {
	URI     string `yaml:"uri" toml:"uri"`
	Caption string `yaml:"caption" toml:"caption"`
	Options string `yaml:"options" toml:"options"`
}

type Link struct {
	Name     string `yaml:"name" toml:"name"`
	URL      string `yaml:"url" toml:"url"`
	Indirect bool   `yaml:"indirect" toml:"indirect"`
}

type Include struct {
	Path    string `yaml:"path" toml:"path"`
	Options string `yaml:"options" toml:"options"`
}

// Table is a grid table; it becomes a table directive when Title is set.
// Lenient and ColWidth override the configured defaults.
type Table struct {
	Title    string          `yaml:"title" toml:"title"`
	Header   []string        `yaml:"header" toml:"header"`
	Rows     [][]interface{} `yaml:"rows" toml:"rows"`
	Lenient  *bool           `yaml:"lenient" toml:"lenient"`
	ColWidth *int            `yaml:"colwidth" toml:"colwidth"`
	Options  string          `yaml:"options" toml:"options"`
}

type Directive struct {
	Name     string  `yaml:"name" toml:"name"`
	Argument string  `yaml:"argument" toml:"argument"`
	Options  string  `yaml:"options" toml:"options"`
	Body     []Block `yaml:"body" toml:"body"`
}

// Load reads the manifest at path, choosing the format by extension.
func Load(path string) (*Manifest, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	m, err := Decode(src, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads a manifest in the given format. Unknown keys are errors.
func Decode(r io.Reader, f Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m Manifest
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %v", f)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every block sets exactly one kind.
func (m *Manifest) Validate() error {
	return validateBlocks(m.Body, "body")
}

func validateBlocks(blocks []Block, path string) error {
	for i, b := range blocks {
		at := fmt.Sprintf("%s[%d]", path, i)
		kinds := b.kinds()
		if len(kinds) != 1 {
			return fmt.Errorf("%s: block sets %d kinds %v, want exactly one", at, len(kinds), kinds)
		}
		if len(b.Body) > 0 && b.Section == "" {
			return fmt.Errorf("%s: only a section block may have a body", at)
		}
		if err := validateBlocks(b.Body, at+".body"); err != nil {
			return err
		}
		if b.Directive != nil {
			if b.Directive.Name == "" {
				return fmt.Errorf("%s: directive has no name", at)
			}
			if err := validateBlocks(b.Directive.Body, at+".directive.body"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Block) kinds() []string {
	var kinds []string
	add := func(set bool, name string) {
		if set {
			kinds = append(kinds, name)
		}
	}
	add(b.Text != "", "text")
	add(b.Section != "", "section")
	add(b.Image != nil, "image")
	add(b.Figure != nil, "figure")
	add(b.Link != nil, "link")
	add(b.Include != nil, "include")
	add(b.Table != nil, "table")
	add(b.Directive != nil, "directive")
	return kinds
}
