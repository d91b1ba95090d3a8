package pbr

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

type flushRecorder struct {
	bytes.Buffer
	flushed int
}

func (w *flushRecorder) Flush() error {
	w.flushed++
	return nil
}

func TestWriterSink(t *testing.T) {
	tests := map[string]struct {
		run  func(Sink) error
		want string
	}{
		"Accept": {
			run:  func(s Sink) error { return s.Accept("line") },
			want: "\rline",
		},
		"EndKeep": {
			run:  func(s Sink) error { return s.End(EndKeep, "ignored") },
			want: "",
		},
		"EndReplace": {
			run:  func(s Sink) error { return s.End(EndReplace, "done") },
			want: "\rdone",
		},
		"EndBelow": {
			run:  func(s Sink) error { return s.End(EndBelow, "done") },
			want: "\ndone",
		},
	}
	for name, tc := range tests {
		var buf bytes.Buffer
		if err := tc.run(NewWriterSink(&buf)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%s: want %q, got %q", name, tc.want, got)
		}
	}
}

func TestWriterSinkFlush(t *testing.T) {
	w := new(flushRecorder)
	s := NewWriterSink(w)
	_ = s.Accept("a")
	_ = s.End(EndKeep, "")
	if w.flushed != 2 {
		t.Errorf("want %d flushes, got %d", 2, w.flushed)
	}

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	b := On(bw, 10, BarWidth(20))
	b.Add(1)
	if buf.Len() == 0 {
		t.Error("bufio.Writer was not flushed")
	}
}

func TestWriterSinkWidth(t *testing.T) {
	s := NewWriterSink(new(bytes.Buffer))
	if w, ok := s.(widthProvider).Width(); ok {
		t.Errorf("non terminal reported width %d", w)
	}
	b := NewWithSink(s, 10)
	if got := b.termWidth(); got != 80 {
		t.Errorf("want width %d, got %d", 80, got)
	}
}

type errWriter struct {
	err error
}

func (w errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestBarOnErrWriter(t *testing.T) {
	errWrite := errors.New("write")
	b := On(errWriter{errWrite}, 10)
	b.Inc()
	if err := b.FinishPrintln("done"); !errors.Is(err, errWrite) {
		t.Errorf("want %v, got %v", errWrite, err)
	}
}

func TestNilWriterSink(t *testing.T) {
	b := On(nil, 10)
	b.Inc()
	if err := b.Finish(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEndingString(t *testing.T) {
	for e, want := range map[Ending]string{EndKeep: "Keep", EndReplace: "Replace", EndBelow: "Below", Ending(7): "Ending(7)"} {
		if got := e.String(); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}
}
