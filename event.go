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

import "github.com/mna/yamlevents/internal/yamlh"

// EventKind identifies what an Event represents.
type EventKind int

const (
	DocumentStart EventKind = iota
	DocumentEnd
	Alias
	Scalar
	SequenceStart
	SequenceEnd
	MappingStart
	MappingEnd
)

var eventKindNames = [...]string{
	DocumentStart: "document start",
	DocumentEnd:   "document end",
	Alias:         "alias",
	Scalar:        "scalar",
	SequenceStart: "sequence start",
	SequenceEnd:   "sequence end",
	MappingStart:  "mapping start",
	MappingEnd:    "mapping end",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown event kind"
	}
	return eventKindNames[k]
}

// ScalarStyle records how a scalar was written.
type ScalarStyle int

const (
	PlainScalar ScalarStyle = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

// CollectionStyle records whether a sequence or mapping used block or flow
// notation.
type CollectionStyle int

const (
	BlockStyle CollectionStyle = iota
	FlowStyle
)

// VersionDirective is a parsed %YAML directive.
type VersionDirective struct {
	Major int
	Minor int
}

// TagDirective is a parsed %TAG directive.
type TagDirective struct {
	Handle string
	Prefix string
}

// Event is one item of the flat event stream the Parser produces.
type Event struct {
	Kind       EventKind
	Start, End Mark

	// Set on DocumentStart.
	Version       *VersionDirective
	TagDirectives []TagDirective

	// Comments attached to this event. Head precedes the node, Line trails
	// it on the same source line, Foot trails it after a blank line. A tail
	// comment scanned after the mapping value that precedes this event, but
	// belonging with this event's key, is folded into Head by the Parser
	// rather than surfaced as its own event.
	Head []byte
	Line []byte
	Foot []byte

	// Set on Alias, Scalar, SequenceStart, MappingStart.
	Anchor string
	// Set on Scalar, SequenceStart, MappingStart.
	Tag string
	// Set on Scalar.
	Value string

	// Implicit is true when this event's start/end indicator, or its tag,
	// was not explicit in the source (for DocumentStart, DocumentEnd,
	// SequenceStart, MappingStart, Scalar).
	Implicit bool
	// QuotedImplicit is true when a quoted scalar's tag is still implicit
	// (the !!str tag was not written out).
	QuotedImplicit bool

	// ScalarStyle is meaningful when Kind == Scalar.
	ScalarStyle ScalarStyle
	// CollectionStyle is meaningful when Kind == SequenceStart or MappingStart.
	CollectionStyle CollectionStyle
}

// convertEvent translates one of the parser's internal document/node
// events into a public Event. It is never called with a stream-start,
// stream-end, or tail-comment event: Next folds those into surrounding
// events or the Parser's Encoding method before a caller ever sees them.
func convertEvent(e *yamlh.Event) *Event {
	out := &Event{
		Start:          markFromPosition(e.Start_mark),
		End:            markFromPosition(e.End_mark),
		Head:           e.Head_comment,
		Line:           e.Line_comment,
		Foot:           e.Foot_comment,
		Anchor:         string(e.Anchor),
		Tag:            string(e.Tag),
		Value:          string(e.Value),
		Implicit:       e.Implicit,
		QuotedImplicit: e.Quoted_implicit,
	}
	switch e.Type {
	case yamlh.DOCUMENT_START_EVENT:
		out.Kind = DocumentStart
		if e.Version_directive != nil {
			out.Version = &VersionDirective{Major: int(e.Version_directive.Major), Minor: int(e.Version_directive.Minor)}
		}
		for _, td := range e.Tag_directives {
			out.TagDirectives = append(out.TagDirectives, TagDirective{Handle: string(td.Handle), Prefix: string(td.Prefix)})
		}
	case yamlh.DOCUMENT_END_EVENT:
		out.Kind = DocumentEnd
	case yamlh.ALIAS_EVENT:
		out.Kind = Alias
	case yamlh.SCALAR_EVENT:
		out.Kind = Scalar
		out.ScalarStyle = scalarStyleFromInternal(e.Scalar_style())
	case yamlh.SEQUENCE_START_EVENT:
		out.Kind = SequenceStart
		out.CollectionStyle = collectionStyleFromSequence(e.Sequence_style())
	case yamlh.SEQUENCE_END_EVENT:
		out.Kind = SequenceEnd
	case yamlh.MAPPING_START_EVENT:
		out.Kind = MappingStart
		out.CollectionStyle = collectionStyleFromMapping(e.Mapping_style())
	case yamlh.MAPPING_END_EVENT:
		out.Kind = MappingEnd
	}
	return out
}

func scalarStyleFromInternal(s yamlh.YamlScalarStyle) ScalarStyle {
	switch s {
	case yamlh.SINGLE_QUOTED_SCALAR_STYLE:
		return SingleQuoted
	case yamlh.DOUBLE_QUOTED_SCALAR_STYLE:
		return DoubleQuoted
	case yamlh.LITERAL_SCALAR_STYLE:
		return Literal
	case yamlh.FOLDED_SCALAR_STYLE:
		return Folded
	default:
		return PlainScalar
	}
}

func collectionStyleFromSequence(s yamlh.YamlSequenceStyle) CollectionStyle {
	if s == yamlh.FLOW_SEQUENCE_STYLE {
		return FlowStyle
	}
	return BlockStyle
}

func collectionStyleFromMapping(s yamlh.YamlMappingStyle) CollectionStyle {
	if s == yamlh.FLOW_MAPPING_STYLE {
		return FlowStyle
	}
	return BlockStyle
}
