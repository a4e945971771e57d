package fuzz

import (
	"io"
	"strings"
	"testing"

	"github.com/mna/yamlevents"
	yamlv3 "gopkg.in/yaml.v3"
)

var seedCorpus = []string{
	`{}`,
	`v: hi`,
	`v: true`,
	`v: 10`,
	`v: 0b10`,
	`v: 0xA`,
	`v: 4294967296`,
	`v: 0.1`,
	`v: .1`,
	`v: .Inf`,
	`v: -10`,
	`123`,
	`canonical: 6.8523e+5`,
	`empty:`,
	`canonical: ~`,
	`english: null`,
	`~: null key`,
	`seq: [A,B]`,
	`seq: [A,B,C,]`,
	"seq:\n - A\n - B",
	"scalar: | # Comment\n\n literal\n\n \ttext\n\n",
	"scalar: > # Comment\n\n folded\n line\n \n next\n line\n  * one\n  * two\n\n last\n line\n\n",
	"a: {b: c}",
	"a: {b: c, 1: d}",
	"a: [b,c,d]",
	"'1': '\"2\"'",
	"v:\n- A\n- 'B\n\n  C'\n",
	"v: !!float '1.1'",
	"v: !!null ''",
	"%TAG !y! tag:yaml.org,2002:\n---\nv: !y!int '1'",
	"v: ! test",
	"a: &x 1\nb: &y 2\nc: *x\nd: *y\n",
	"foo: ''",
	"foo: null",
	"a: {b: https://github.com/go-yaml/yaml}",
	"a: 3s",
	"a: <foo>",
	"a: 1:1\n",
	"a: 2015-01-01\n",
	"a: 2015-02-24T18:19:39.12Z\n",
	"---\nhello\n...\n}not yaml",
	"true\n#" + strings.Repeat(" ", 512*3),
	"a: b\r\nc:\r\n- d\r\n- e\r\n",
	"\n0:\n<<:\n  {}:\n",
}

// drainEvents pulls every event from data and checks the invariants that
// hold regardless of input validity: collection starts and ends balance,
// and the Parser never panics.
func drainEvents(t *testing.T, data string) (int, error) {
	t.Helper()
	p := yamlevents.New(strings.NewReader(data))
	events := 0
	depth := 0
	for {
		ev, err := p.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return events, err
		}
		events++
		switch ev.Kind {
		case yamlevents.SequenceStart, yamlevents.MappingStart:
			depth++
		case yamlevents.SequenceEnd, yamlevents.MappingEnd:
			depth--
			if depth < 0 {
				t.Fatalf("event stream closed a collection that was never opened, at %v", ev.Start)
			}
		}
	}
	if depth != 0 {
		t.Fatalf("event stream left %d collection(s) unclosed", depth)
	}
	return events, nil
}

func FuzzEventStream(f *testing.F) {
	for _, s := range seedCorpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data string) {
		drainEvents(t, data)
	})
}

// FuzzNoPanicRelativeToReference differentially fuzzes against
// gopkg.in/yaml.v3: any input yaml.v3 can unmarshal without panicking must
// also not panic our Reader/Scanner/Parser pipeline. It does not assert
// agreement on error-or-not, since this package accepts a different (YAML
// 1.2 oriented) grammar than yaml.v3's YAML 1.1 grammar on some edge cases.
func FuzzNoPanicRelativeToReference(f *testing.F) {
	for _, s := range seedCorpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data string) {
		var v3Val any
		func() {
			defer func() { recover() }()
			_ = yamlv3.Unmarshal([]byte(data), &v3Val)
		}()
		drainEvents(t, data)
	})
}
