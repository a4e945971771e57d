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

package yamlevents_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mna/yamlevents"
)

// collect drains a Parser, asserting it never returns an error, and
// returns the events in order.
func collect(t *testing.T, input string) []yamlevents.Event {
	t.Helper()
	p := yamlevents.New(strings.NewReader(input))
	var events []yamlevents.Event
	for {
		ev, err := p.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, *ev)
	}
	return events
}

func kinds(events []yamlevents.Event) []yamlevents.EventKind {
	out := make([]yamlevents.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

var scanTests = []struct {
	name  string
	input string
	want  []yamlevents.EventKind
}{
	{
		name:  "empty stream",
		input: "",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.DocumentEnd,
		},
	},
	{
		name:  "bare plain scalar document",
		input: "hello\n",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.Scalar, yamlevents.DocumentEnd,
		},
	},
	{
		name:  "flow sequence",
		input: "[a, b, c]\n",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.SequenceStart,
			yamlevents.Scalar, yamlevents.Scalar, yamlevents.Scalar, yamlevents.SequenceEnd,
			yamlevents.DocumentEnd,
		},
	},
	{
		name:  "block mapping",
		input: "a: 1\nb: 2\n",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.MappingStart,
			yamlevents.Scalar, yamlevents.Scalar, yamlevents.Scalar, yamlevents.Scalar,
			yamlevents.MappingEnd, yamlevents.DocumentEnd,
		},
	},
	{
		name:  "block sequence of mappings",
		input: "- a: 1\n- b: 2\n",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.SequenceStart,
			yamlevents.MappingStart, yamlevents.Scalar, yamlevents.Scalar, yamlevents.MappingEnd,
			yamlevents.MappingStart, yamlevents.Scalar, yamlevents.Scalar, yamlevents.MappingEnd,
			yamlevents.SequenceEnd, yamlevents.DocumentEnd,
		},
	},
	{
		name:  "alias and anchor",
		input: "a: &x 1\nb: *x\n",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.MappingStart,
			yamlevents.Scalar, yamlevents.Scalar, yamlevents.Scalar, yamlevents.Alias,
			yamlevents.MappingEnd, yamlevents.DocumentEnd,
		},
	},
	{
		name:  "multiple documents",
		input: "---\na\n---\nb\n",
		want: []yamlevents.EventKind{
			yamlevents.DocumentStart, yamlevents.Scalar, yamlevents.DocumentEnd,
			yamlevents.DocumentStart, yamlevents.Scalar, yamlevents.DocumentEnd,
		},
	},
}

func TestEventSequences(t *testing.T) {
	for _, tt := range scanTests {
		t.Run(tt.name, func(t *testing.T) {
			events := collect(t, tt.input)
			require.Equal(t, tt.want, kinds(events))
		})
	}
}

func TestStreamAlwaysStartsAndEndsWithADocumentBoundary(t *testing.T) {
	for _, tt := range scanTests {
		events := collect(t, tt.input)
		require.NotEmpty(t, events)
		require.Equal(t, yamlevents.DocumentStart, events[0].Kind)
		require.Equal(t, yamlevents.DocumentEnd, events[len(events)-1].Kind)
	}
}

func TestMarksAreNonDecreasing(t *testing.T) {
	for _, tt := range scanTests {
		events := collect(t, tt.input)
		for i := 1; i < len(events); i++ {
			require.GreaterOrEqual(t, events[i].Start.Offset, events[i-1].Start.Offset,
				"event %d (%v) starts before event %d (%v)", i, events[i].Kind, i-1, events[i-1].Kind)
		}
	}
}

func TestCollectionBoundariesBalance(t *testing.T) {
	for _, tt := range scanTests {
		events := collect(t, tt.input)
		depth := 0
		for _, ev := range events {
			switch ev.Kind {
			case yamlevents.SequenceStart, yamlevents.MappingStart:
				depth++
			case yamlevents.SequenceEnd, yamlevents.MappingEnd:
				depth--
				require.GreaterOrEqual(t, depth, 0, "closed more collections than were opened")
			}
		}
		require.Zero(t, depth)
	}
}

func TestScalarValues(t *testing.T) {
	events := collect(t, "a: 1\nb: 2\n")
	var scalars []string
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar {
			scalars = append(scalars, ev.Value)
		}
	}
	require.Equal(t, []string{"a", "1", "b", "2"}, scalars)
}

func TestSingleQuotedScalarStyle(t *testing.T) {
	events := collect(t, "v: 'hi'\n")
	found := false
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar && ev.Value == "hi" {
			require.Equal(t, yamlevents.SingleQuoted, ev.ScalarStyle)
			found = true
		}
	}
	require.True(t, found)
}

func TestFlowSequenceStyle(t *testing.T) {
	events := collect(t, "[1, 2]\n")
	for _, ev := range events {
		if ev.Kind == yamlevents.SequenceStart {
			require.Equal(t, yamlevents.FlowStyle, ev.CollectionStyle)
			return
		}
	}
	t.Fatal("no SequenceStart event found")
}

func TestBlockSequenceStyle(t *testing.T) {
	events := collect(t, "- 1\n- 2\n")
	for _, ev := range events {
		if ev.Kind == yamlevents.SequenceStart {
			require.Equal(t, yamlevents.BlockStyle, ev.CollectionStyle)
			return
		}
	}
	t.Fatal("no SequenceStart event found")
}

func TestDuplicateYAMLDirectiveIsAnError(t *testing.T) {
	p := yamlevents.New(strings.NewReader("%YAML 1.1\n%YAML 1.1\n---\n"))
	var err error
	for {
		_, err = p.Next()
		if err != nil {
			break
		}
	}
	require.Error(t, err)
	var ye *yamlevents.Error
	require.ErrorAs(t, err, &ye)
	require.Equal(t, yamlevents.UnexpectedDirective, ye.Kind)
}

func TestUnclosedFlowSequenceIsAnError(t *testing.T) {
	p := yamlevents.New(strings.NewReader("[1, 2\n"))
	var err error
	for {
		_, err = p.Next()
		if err != nil {
			break
		}
	}
	require.Error(t, err)
}

func TestMaxDepthIsEnforced(t *testing.T) {
	input := strings.Repeat("[", 20) + strings.Repeat("]", 20) + "\n"
	p := yamlevents.New(strings.NewReader(input), yamlevents.WithMaxDepth(5))
	var err error
	for {
		_, err = p.Next()
		if err != nil {
			break
		}
	}
	require.Error(t, err)
	var ye *yamlevents.Error
	require.ErrorAs(t, err, &ye)
	require.Equal(t, yamlevents.MaxDepthExceeded, ye.Kind)
}

func TestCRLFIsNormalized(t *testing.T) {
	events := collect(t, "a: 1\r\nb: 2\r\n")
	var scalars []string
	for _, ev := range events {
		if ev.Kind == yamlevents.Scalar {
			scalars = append(scalars, ev.Value)
		}
	}
	require.Equal(t, []string{"a", "1", "b", "2"}, scalars)
}

func TestExplicitEncodingOption(t *testing.T) {
	p := yamlevents.New(strings.NewReader("a: 1\n"), yamlevents.WithEncoding(yamlevents.UTF8))
	require.Equal(t, yamlevents.UTF8, p.Encoding())
	first, err := p.Next()
	require.NoError(t, err)
	require.Equal(t, yamlevents.DocumentStart, first.Kind)
	require.Equal(t, yamlevents.UTF8, p.Encoding())
}

func TestEncodingReflectsAutodetection(t *testing.T) {
	p := yamlevents.New(strings.NewReader("a: 1\n"))
	require.Equal(t, yamlevents.AnyEncoding, p.Encoding())
	_, err := p.Next()
	require.NoError(t, err)
	require.Equal(t, yamlevents.UTF8, p.Encoding())
}
