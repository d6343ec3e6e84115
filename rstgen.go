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

// This CLI utility builds reStructuredText documents from manifests
// and tabular data.
//
// Usage:
//   rstgen [command]
//
// Available Commands:
//   build       Build a document from a YAML or TOML manifest
//   help        Help about any command
//   roles       Preview the inline role palette
//   table       Convert CSV or HTML tables into grid tables
//
// Flags:
//   -c, --config     configuration file
//   -h, --help       help for rstgen
//   -v, --verbose    increase log verbosity (repeatable)
//
// Use "rstgen [command] --help" for more information about a command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"akhil.cc/rstgen/config"
	"akhil.cc/rstgen/logging"
	"akhil.cc/rstgen/manifest"
	"akhil.cc/rstgen/rst"
	"akhil.cc/rstgen/tabular"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

func flagError(msg string) func(*cobra.Command, error) error {
	return func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(msg, err)
		}
		return nil
	}
}

// countingWriter records how many bytes went through it.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}

// emit renders doc in memory and only then writes it to the named output
// file, or to stdout when name is empty, so a failed build leaves an
// existing file untouched.
func emit(doc func(io.Writer) (*rst.Document, error), name string, stdout io.Writer) error {
	log := logging.GetLogger("cli")
	var buf rst.Buffer
	d, err := doc(&buf)
	if err != nil {
		return err
	}
	if err := d.Emit(); err != nil {
		return err
	}
	if err := d.Close(); err != nil {
		return err
	}

	cw := &countingWriter{w: stdout}
	var f *os.File
	if len(name) != 0 {
		if f, err = os.Create(name); err != nil {
			return err
		}
		cw.w = f
	}
	_, err = io.WriteString(cw, buf.String())
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}
	log.Info().Str("output", outputName(name)).Msgf("Wrote %s", humanize.Bytes(cw.n))
	return nil
}

func outputName(name string) string {
	if name == "" {
		return "stdout"
	}
	return name
}

func newRootCmd() *cobra.Command {
	var (
		configfile string
		verbosity  int
		cfg        *config.Config
	)
	rootCmd := &cobra.Command{
		Use:   "rstgen",
		Short: "reStructuredText document generator",
		Long: `This CLI utility builds reStructuredText documents from manifests
and tabular data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			var err error
			cfg, err = config.Load(configfile)
			if err != nil {
				return prefix("(config) ", err)
			}
			log := logging.GetLogger("cli")
			log.Debug().
				Int("width", cfg.Text.Width).
				Bool("lenient", cfg.Table.Lenient).
				Msg("Configuration loaded")
			return nil
		},
	}
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	rootCmd.PersistentFlags().StringVarP(&configfile, "config", "c", "", "``configuration file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(
		newBuildCmd(func() *config.Config { return cfg }),
		newTableCmd(func() *config.Config { return cfg }),
		newRolesCmd(func() *config.Config { return cfg }),
	)
	return rootCmd
}

func newBuildCmd(cfg func() *config.Config) *cobra.Command {
	var outputfile, format string
	prefixBuild := "(build) "
	buildCmd := &cobra.Command{
		Use:   "build [manifest] [-o output]",
		Short: "Build a document from a YAML or TOML manifest",
		Long: `This command reads a manifest describing a document and writes
the document as reStructuredText. Nested sections take the next
underline character. Directive options are parsed according to the
Bourne shell's word-splitting rules.

If no manifest is specified, it is read from standard input in the
format given by --format. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cli"), "build")
			defer done()

			var m *manifest.Manifest
			var err error
			if len(args) != 0 {
				m, err = manifest.Load(args[0])
			} else {
				var f manifest.Format
				if f, err = manifest.ParseFormat(format); err == nil {
					m, err = manifest.Decode(cmd.InOrStdin(), f)
				}
			}
			if err != nil {
				return prefix(prefixBuild, err)
			}
			err = emit(func(w io.Writer) (*rst.Document, error) {
				return m.Build(w, cfg())
			}, outputfile, cmd.OutOrStdout())
			if err != nil {
				return prefix(prefixBuild, err)
			}
			return nil
		},
	}
	buildCmd.SetFlagErrorFunc(flagError(prefixBuild))
	buildCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	buildCmd.Flags().StringVarP(&format, "format", "f", "yaml", "``manifest format on standard input (yaml or toml)")
	return buildCmd
}

func newTableCmd(cfg func() *config.Config) *cobra.Command {
	var (
		outputfile, format, title string
		index, maxColWidth        int
		lenient, noHeader         bool
	)
	prefixTable := "(table) "
	tableCmd := &cobra.Command{
		Use:   "table [input] [-o output]",
		Short: "Convert CSV or HTML tables into grid tables",
		Long: `This command reads a CSV file, or a table element from an HTML
page, and writes it as a grid table. The first CSV record is the
header unless --no-header is given; an HTML table uses a leading row
of th cells as its header. Rows with a different number of cells are
an error unless --lenient is given.

If no input file is specified, input is read from standard input.
The format is taken from --format, or else from the extension of the
input file. If no output argument is specified, output is written to
standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cli"), "table")
			defer done()

			src := cmd.InOrStdin()
			if len(args) != 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return prefix(prefixTable, err)
				}
				defer f.Close()
				src = f
				if !cmd.Flags().Changed("format") {
					format = tableFormat(args[0])
				}
			}
			grid, err := readGrid(src, format, index, !noHeader)
			if err != nil {
				return prefix(prefixTable, err)
			}

			c := cfg()
			st := grid.SimpleTable()
			st.Lenient = c.Table.Lenient
			if cmd.Flags().Changed("lenient") {
				st.Lenient = lenient
			}
			st.MaxColWidth = c.Table.ColWidth
			if cmd.Flags().Changed("max-col-width") {
				st.MaxColWidth = maxColWidth
			}
			var node rst.Node = st
			if title != "" {
				node = &rst.Table{SimpleTable: st, Title: title}
			}
			err = emit(func(w io.Writer) (*rst.Document, error) {
				return rst.New(w).Add(node), nil
			}, outputfile, cmd.OutOrStdout())
			if err != nil {
				return prefix(prefixTable, err)
			}
			return nil
		},
	}
	tableCmd.SetFlagErrorFunc(flagError(prefixTable))
	tableCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	tableCmd.Flags().StringVarP(&format, "format", "f", "csv", "``input format (csv or html)")
	tableCmd.Flags().StringVarP(&title, "title", "t", "", "``wrap the grid in a titled table directive")
	tableCmd.Flags().IntVar(&index, "index", 0, "``which HTML table to convert, counting from 0")
	tableCmd.Flags().IntVar(&maxColWidth, "max-col-width", 0, "``wrap cells wider than this many columns")
	tableCmd.Flags().BoolVar(&lenient, "lenient", false, "pad or truncate ragged rows")
	tableCmd.Flags().BoolVar(&noHeader, "no-header", false, "treat the first CSV record as data")
	return tableCmd
}

func tableFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html"
	}
	return "csv"
}

func readGrid(r io.Reader, format string, index int, header bool) (*tabular.Grid, error) {
	switch strings.ToLower(format) {
	case "csv":
		return tabular.ReadCSV(r, header)
	case "html":
		grids, err := tabular.ReadHTML(r)
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(grids) {
			return nil, fmt.Errorf("table index %d out of range, found %d tables", index, len(grids))
		}
		return grids[index], nil
	}
	return nil, fmt.Errorf("unknown table format %q", format)
}

func newRolesCmd(cfg func() *config.Config) *cobra.Command {
	var emitSheet bool
	rolesCmd := &cobra.Command{
		Use:   "roles [--rst]",
		Short: "Preview the inline role palette",
		Long: `This command lists the configured inline roles, each drawn in its
own style when the terminal supports it, next to the markup that
applies it. With --rst it prints the style sheet declaring the
roles instead.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := cfg().Roles()
			out := cmd.OutOrStdout()
			if emitSheet {
				return rst.New(out).Add(rst.NewStyleSheet(roles...)).Emit()
			}
			width := 0
			for _, r := range roles {
				if len(r.Name) > width {
					width = len(r.Name)
				}
			}
			for _, r := range roles {
				sample := roleStyle(r).Render(r.Name)
				pad := strings.Repeat(" ", width-len(r.Name))
				fmt.Fprintf(out, "%s%s  %s\n", sample, pad, rst.RoleFormatter(r.Name)("text"))
			}
			return nil
		},
	}
	rolesCmd.Flags().BoolVar(&emitSheet, "rst", false, "print the style sheet as reStructuredText")
	return rolesCmd
}

// roleStyle approximates a role's CSS rule with a terminal style. Only
// colors and text decorations are understood; other properties are
// ignored.
func roleStyle(r rst.Role) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, decl := range strings.Split(r.Rule, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(strings.ToLower(prop)) {
		case "color":
			style = style.Foreground(lipgloss.Color(value))
		case "background-color", "background":
			style = style.Background(lipgloss.Color(value))
		case "font-weight":
			style = style.Bold(value == "bold")
		case "font-style":
			style = style.Italic(value == "italic")
		case "text-decoration":
			style = style.
				Underline(strings.Contains(value, "underline")).
				Strikethrough(strings.Contains(value, "line-through"))
		}
	}
	return style
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
