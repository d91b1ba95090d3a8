package cwriter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestWriter(t *testing.T) {
	b := &bytes.Buffer{}
	w := New(b)
	for i := 0; i < 2; i++ {
		fmt.Fprintln(w, "foo")
	}
	if err := w.Flush(0); err != nil {
		t.Fatal(err)
	}
	want := "foo\nfoo\n"
	if b.String() != want {
		t.Fatalf("want %q, got %q", want, b.String())
	}
}

// TestWriterLines by writing and flushing many times. Every frame but the
// first must be preceded by cursor up sequence of previous frame lines.
func TestWriterLines(t *testing.T) {
	out := new(bytes.Buffer)
	w := New(out)

	var lines int
	for _, tcase := range []struct {
		input, expectedOutput string
	}{
		{input: "foo\n", expectedOutput: "foo\n"},
		{input: "bar\n", expectedOutput: "foo\n" + CursorUp(1) + "bar\n"},
		{input: "a\nb\n", expectedOutput: "foo\n" + CursorUp(1) + "bar\n" + CursorUp(1) + "a\nb\n"},
		{input: "c\nd\n", expectedOutput: "foo\n" + CursorUp(1) + "bar\n" + CursorUp(1) + "a\nb\n" + CursorUp(2) + "c\nd\n"},
	} {
		t.Run(tcase.input, func(t *testing.T) {
			w.WriteString(tcase.input)
			if err := w.Flush(lines); err != nil {
				t.Fatal(err)
			}
			lines = bytes.Count([]byte(tcase.input), []byte("\n"))
			output := out.String()
			if output != tcase.expectedOutput {
				t.Fatalf("want %q, got %q", tcase.expectedOutput, output)
			}
		})
	}
}

func TestCursorUp(t *testing.T) {
	for n, want := range map[int]string{
		-1:  "",
		0:   "",
		1:   "\x1b[1A",
		12:  "\x1b[12A",
		100: "\x1b[100A",
	} {
		if got := CursorUp(n); got != want {
			t.Errorf("CursorUp(%d): want %q, got %q", n, want, got)
		}
	}
}

func TestFlushBuffered(t *testing.T) {
	out := new(bytes.Buffer)
	bw := bufio.NewWriter(out)
	w := New(bw)
	w.WriteString("\rline")
	if err := w.Flush(0); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\rline" {
		t.Errorf("want %q, got %q", "\rline", got)
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestFlushError(t *testing.T) {
	testErr := errors.New("broken pipe")
	w := New(errWriter{testErr})
	w.WriteString("foo\n")
	if err := w.Flush(0); !errors.Is(err, testErr) {
		t.Errorf("want %v, got %v", testErr, err)
	}
	if w.buf.Len() != 0 {
		t.Errorf("buffer is not reset after failed flush")
	}
}

func TestNotTerminal(t *testing.T) {
	w := New(new(bytes.Buffer))
	if w.IsTerminal() {
		t.Error("bytes.Buffer reported as terminal")
	}
	if _, _, err := w.GetTermSize(); !errors.Is(err, ErrNotTTY) {
		t.Errorf("want %v, got %v", ErrNotTTY, err)
	}
	if width, ok := w.Width(); ok || width != 0 {
		t.Errorf("want (0, false), got (%d, %t)", width, ok)
	}
}
