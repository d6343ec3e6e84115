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

// Package config loads rstgen settings. Values are layered, later sources
// overriding earlier ones:
//
//	1. built-in defaults (defaults.toml)
//	2. $XDG_CONFIG_HOME/rstgen/config.toml, if present
//	3. an explicit file given with --config (TOML, or YAML by extension)
//	4. RSTGEN_* environment variables, e.g. RSTGEN_TEXT_WIDTH=72
package config // import "akhil.cc/rstgen/config"

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"akhil.cc/rstgen/rst"
	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RSTGEN_"

//go:embed defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config holds the settings used when building documents.
type Config struct {
	Text  Text  `koanf:"text"`
	Table Table `koanf:"table"`
	Style Style `koanf:"style"`
}

// Text configures paragraphs built from plain strings.
type Text struct {
	Width     int  `koanf:"width"`
	BreakLong bool `koanf:"breaklong"`
}

// Table configures tables built from manifests and tabular sources.
type Table struct {
	Lenient  bool `koanf:"lenient"`
	ColWidth int  `koanf:"colwidth"`
}

// Style configures the inline role palette.
type Style struct {
	Roles []rst.Role `koanf:"roles"`
}

// Roles returns the configured palette, or the built-in one when none is
// configured.
func (c *Config) Roles() []rst.Role {
	if len(c.Style.Roles) == 0 {
		return rst.DefaultRoles()
	}
	return append([]rst.Role(nil), c.Style.Roles...)
}

// NewText returns a paragraph using the configured width and long-word
// handling.
func (c *Config) NewText(body string) *rst.Text {
	return &rst.Text{Body: body, Width: c.Text.Width, KeepLongWords: !c.Text.BreakLong}
}

// UserConfigPath returns the per-user configuration file location.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "rstgen", "config.toml")
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := load("", "", false)
	if err != nil {
		panic("config: bad built-in defaults: " + err.Error())
	}
	return cfg
}

// Load reads the layered configuration. path names an optional explicit
// config file; it is an error for it to be missing.
func Load(path string) (*Config, error) {
	return load(UserConfigPath(), path, true)
}

func load(userPath, path string, withEnv bool) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), parserFor(userPath)); err != nil {
				return nil, fmt.Errorf("failed to load user config from %s: %w", userPath, err)
			}
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if withEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load env vars: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Text.Width < 0 {
		return fmt.Errorf("text.width must not be negative, got %d", c.Text.Width)
	}
	if c.Table.ColWidth < 0 {
		return fmt.Errorf("table.colwidth must not be negative, got %d", c.Table.ColWidth)
	}
	for i, r := range c.Style.Roles {
		if r.Name == "" {
			return fmt.Errorf("style.roles[%d] has no name", i)
		}
	}
	return nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return toml.Parser()
}
