//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package yamlevents is a streaming YAML reader: it turns a byte stream into
// a flat sequence of structural events (document boundaries, collection
// boundaries, scalars, aliases) without building a node tree. Callers that
// want a tree, type resolution, or anchor/alias graphs build those on top of
// the event stream; this package stops at events.
package yamlevents

import (
	"io"

	"github.com/mna/yamlevents/internal/parserc"
	"github.com/mna/yamlevents/internal/yamlh"
)

// Mark is a position in the input stream. Offset counts Unicode scalars
// from the start of the stream, not bytes, with a CR LF pair counted as
// two. In the Marks carried by events, Line and Column are 0-based, and
// Column is counted in Unicode scalars.
type Mark struct {
	Offset int
	Line   int
	Column int
}

func markFromPosition(p yamlh.Position) Mark {
	return Mark{Offset: p.Index, Line: p.Line, Column: p.Column}
}

// Encoding identifies the transcoding applied to the input byte stream.
type Encoding int

const (
	// AnyEncoding asks the Reader to autodetect the encoding from a BOM.
	AnyEncoding Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
)

func (e Encoding) toInternal() yamlh.Encoding {
	switch e {
	case UTF8:
		return yamlh.UTF8_ENCODING
	case UTF16LE:
		return yamlh.UTF16LE_ENCODING
	case UTF16BE:
		return yamlh.UTF16BE_ENCODING
	default:
		return yamlh.ANY_ENCODING
	}
}

func encodingFromInternal(e yamlh.Encoding) Encoding {
	switch e {
	case yamlh.UTF8_ENCODING:
		return UTF8
	case yamlh.UTF16LE_ENCODING:
		return UTF16LE
	case yamlh.UTF16BE_ENCODING:
		return UTF16BE
	default:
		return AnyEncoding
	}
}

// Parser pulls events, one at a time, from an input stream. A Parser is not
// safe for concurrent use: it is a single-threaded iterator with no internal
// locking, matching the one-token-at-a-time pull model of the stages it
// wraps.
type Parser struct {
	p *parserc.YamlParser
}

// Option configures a Parser at construction time.
type Option func(*parserc.YamlParser)

// WithEncoding overrides autodetection and forces the given encoding.
func WithEncoding(enc Encoding) Option {
	return func(p *parserc.YamlParser) {
		p.Encoding = enc.toInternal()
	}
}

// WithMaxDepth bounds flow nesting and block indentation depth. Parsing
// pathological or adversarial input (deeply nested flow collections, deeply
// nested block sequences) fails with an *Error of Kind MaxDepthExceeded
// once this bound is exceeded, rather than growing internal slices without limit. A value <= 0
// means "use the default" (10000).
func WithMaxDepth(n int) Option {
	return func(p *parserc.YamlParser) {
		p.Max_depth = n
	}
}

// New constructs a Parser reading from r.
func New(r io.Reader, opts ...Option) *Parser {
	p := parserc.New(r)
	for _, opt := range opts {
		opt(p)
	}
	return &Parser{p: p}
}

// Encoding reports the transcoding applied to the input stream. With
// WithEncoding it reports that encoding from construction on; otherwise it
// returns AnyEncoding until the first call to Next has run the
// autodetection.
func (p *Parser) Encoding() Encoding {
	return encodingFromInternal(p.p.Encoding)
}

// Next returns the next event in the stream. It returns (nil, io.EOF) once
// the stream has been fully consumed. A malformed input stream is reported
// as an *Error with a Kind and a Mark pinpointing where the problem was
// detected; the Parser must not be used again after an error, matching the
// teacher stages' no-local-recovery error model.
//
// Next never hands the caller the underlying stream-start/stream-end
// markers or a bare tail-comment event: a tail comment scanned after a
// mapping value, but belonging with the key that follows it, is folded into
// that following event's Head field instead of appearing as its own event,
// keeping the event kind taxonomy closed to document and node boundaries.
func (p *Parser) Next() (*Event, error) {
	var pendingTail []byte
	for {
		if p.p.Stream_end_produced {
			return nil, io.EOF
		}
		ev, err := parserc.Parse(p.p)
		if err != nil {
			return nil, convertError(err)
		}
		switch ev.Type {
		case yamlh.STREAM_START_EVENT, yamlh.STREAM_END_EVENT:
			continue
		case yamlh.TAIL_COMMENT_EVENT:
			pendingTail = append(pendingTail, ev.Foot_comment...)
			continue
		}
		out := convertEvent(ev)
		if len(pendingTail) > 0 {
			if len(out.Head) > 0 {
				pendingTail = append(pendingTail, '\n')
				out.Head = append(pendingTail, out.Head...)
			} else {
				out.Head = pendingTail
			}
		}
		return out, nil
	}
}
