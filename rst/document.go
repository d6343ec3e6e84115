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
	"io"
	"os"
	"strings"

	"akhil.cc/rstgen/logging"
)

// Document is the root of a tree. It renders an optional title and
// subtitle before its children and writes the result to a sink.
type Document struct {
	Container
	Title    string
	Subtitle string

	sink   io.Writer
	closer io.Closer
	closed bool
}

// New returns a document writing to w. The caller keeps ownership of w.
func New(w io.Writer) *Document {
	if w == nil {
		panic("nil writer")
	}
	return &Document{sink: w}
}

// Create returns a document writing to the named file, which is created
// or truncated. The document owns the file and closes it on Close.
func Create(path string) (*Document, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, wrapError(err, ErrIO, "create document").WithDetail("path", path)
	}
	d := New(f)
	d.closer = f
	return d, nil
}

// Open returns a document for sink, which is either an io.Writer or the
// path of a file to create.
func Open(sink interface{}) (*Document, error) {
	switch s := sink.(type) {
	case io.Writer:
		return New(s), nil
	case string:
		return Create(s)
	}
	return nil, newError(ErrConstruction, "sink of type %T is neither an io.Writer nor a path", sink)
}

// Add appends items like Container.Add and returns d.
func (d *Document) Add(items ...interface{}) *Document {
	d.attach(d, items)
	return d
}

func (d *Document) Render() (string, error) {
	var b strings.Builder
	if d.Title != "" {
		writeHeading(&b, d.Title, '=', true)
		b.WriteString("\n")
	}
	if d.Subtitle != "" {
		writeHeading(&b, d.Subtitle, '-', true)
		b.WriteString("\n")
	}
	if err := renderBlocks(&b, d.children); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteTo renders the document and writes it to w in a single call.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	s, err := d.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	if err != nil {
		return int64(n), wrapError(err, ErrIO, "write document")
	}
	return int64(n), nil
}

// Emit writes the whole rendered document to the sink. Each call writes
// the full text again. Emit fails with ErrIO once the document is closed.
func (d *Document) Emit() error {
	log := logging.GetLogger("rst")
	if d.closed {
		return wrapError(os.ErrClosed, ErrIO, "emit to closed document")
	}
	n, err := d.WriteTo(d.sink)
	if err != nil {
		log.Debug().Err(err).Msg("Emit failed")
		return err
	}
	log.Debug().Int64("bytes", n).Int("blocks", d.Len()).Msg("Document emitted")
	return nil
}

// Close releases the sink. A file opened by Create is closed; a writer
// passed to New is left open but no longer written to. Closing twice is
// not an error.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.closer != nil {
		if err := d.closer.Close(); err != nil {
			return wrapError(err, ErrIO, "close document")
		}
	}
	return nil
}
