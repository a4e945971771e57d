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

package yamlevents

import (
	"strconv"

	"github.com/mna/yamlevents/internal/yamlh"
)

// ErrorKind classifies the specific problem an Error reports, independent
// of which stage (byte decoding, token scanning, or grammar parsing)
// detected it.
type ErrorKind int

const (
	// EndOfStream means input ended where the grammar required more.
	EndOfStream ErrorKind = iota
	// InvalidEncoding means the byte stream is not valid in its
	// declared or autodetected encoding.
	InvalidEncoding
	// InvalidVersion means a %YAML directive names an unsupported or
	// malformed version.
	InvalidVersion
	// InvalidToken means a token is not legal at the current grammar
	// position.
	InvalidToken
	// InvalidIndentation means indentation violates block-scalar,
	// mapping, or sequence rules.
	InvalidIndentation
	// InvalidEscape means an escape sequence in a quoted scalar is
	// malformed or unrecognized.
	InvalidEscape
	// ExpectedKey means a mapping key was required but not found.
	ExpectedKey
	// ExpectedValue means a mapping or scalar value was required but
	// not found.
	ExpectedValue
	// ExpectedWhitespace means whitespace or a line break was required
	// but not found.
	ExpectedWhitespace
	// UnexpectedKey means a key indicator appears where the grammar
	// forbids one.
	UnexpectedKey
	// UnexpectedValue means a value indicator appears where the
	// grammar forbids one.
	UnexpectedValue
	// UnexpectedDirective means a directive is repeated, or appears
	// where a directive cannot.
	UnexpectedDirective
	// DirectiveFormat means a directive's name or arguments are
	// malformed.
	DirectiveFormat
	// TagFormat means a tag handle or URI is malformed.
	TagFormat
	// AnchorFormat means an anchor or alias name is malformed.
	AnchorFormat

	// IOError reports a failure reading from the underlying io.Reader.
	// It is not part of the grammar's problem taxonomy: the bytes were
	// never seen, so they can't be malformed YAML.
	IOError
	// MaxDepthExceeded reports that WithMaxDepth's bound on flow
	// nesting or block indentation was exceeded. It is a guard against
	// pathological input, not a grammar violation.
	MaxDepthExceeded
)

var errorKindNames = [...]string{
	EndOfStream:         "end of stream",
	InvalidEncoding:     "invalid encoding",
	InvalidVersion:      "invalid version",
	InvalidToken:        "invalid token",
	InvalidIndentation:  "invalid indentation",
	InvalidEscape:       "invalid escape",
	ExpectedKey:         "expected key",
	ExpectedValue:       "expected value",
	ExpectedWhitespace:  "expected whitespace",
	UnexpectedKey:       "unexpected key",
	UnexpectedValue:     "unexpected value",
	UnexpectedDirective: "unexpected directive",
	DirectiveFormat:     "directive format",
	TagFormat:           "tag format",
	AnchorFormat:        "anchor format",
	IOError:             "io error",
	MaxDepthExceeded:    "max depth exceeded",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "unknown error"
	}
	return errorKindNames[k]
}

// Error is returned whenever the Reader, Scanner, or Parser rejects the
// input. It carries the Mark where the problem was detected; there is no
// local recovery from an Error, the Parser that produced it must be
// discarded.
type Error struct {
	Kind    ErrorKind
	Mark    Mark
	Problem string
}

func (e *Error) Error() string {
	if e.Mark.Line > 0 {
		return "yaml: line " + strconv.Itoa(e.Mark.Line) + ": " + e.Problem
	}
	return "yaml: " + e.Problem
}

var errorKindFromCode = map[yamlh.ErrorCode]ErrorKind{
	yamlh.EndOfStream:         EndOfStream,
	yamlh.InvalidEncoding:     InvalidEncoding,
	yamlh.InvalidVersion:      InvalidVersion,
	yamlh.InvalidToken:        InvalidToken,
	yamlh.InvalidIndentation:  InvalidIndentation,
	yamlh.InvalidEscape:       InvalidEscape,
	yamlh.ExpectedKey:         ExpectedKey,
	yamlh.ExpectedValue:       ExpectedValue,
	yamlh.ExpectedWhitespace:  ExpectedWhitespace,
	yamlh.UnexpectedKey:       UnexpectedKey,
	yamlh.UnexpectedValue:     UnexpectedValue,
	yamlh.UnexpectedDirective: UnexpectedDirective,
	yamlh.DirectiveFormat:     DirectiveFormat,
	yamlh.TagFormat:           TagFormat,
	yamlh.AnchorFormat:        AnchorFormat,
	yamlh.IOError:             IOError,
	yamlh.MaxDepthExceeded:    MaxDepthExceeded,
}

func convertError(err error) error {
	ye, ok := err.(*yamlh.YamlError)
	if !ok {
		return err
	}
	kind, ok := errorKindFromCode[ye.Code]
	if !ok {
		kind = InvalidToken
	}
	return &Error{Kind: kind, Mark: markFromPosition(ye.Mark), Problem: ye.Problem}
}
