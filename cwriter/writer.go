package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen = "\x1b["
	cuu     = "A"
)

// DefaultWidth is used when width of the output cannot be determined.
const DefaultWidth = 80

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Up is how to move the cursor up before the next frame. Either Seq is
// written in front of the frame, so move and frame are a single write,
// or Move is called right before the frame is written.
type Up struct {
	Seq  string
	Move func() error
}

// Writer is a buffered writer that updates the terminal. The contents of
// writer will be flushed when Flush is called.
type Writer struct {
	buf      bytes.Buffer
	out      io.Writer
	fd       int
	terminal bool
	cygwin   bool
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		out: out,
		fd:  -1,
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		w.terminal = term.IsTerminal(w.fd)
		w.cygwin = isatty.IsCygwinTerminal(f.Fd())
	}
	return w
}

// Write appends p to the buffer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// WriteString appends s to the buffer.
func (w *Writer) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Flush moves the cursor up by lines, then writes buffered content to the
// underlying writer with a single write call and flushes it, if it has
// Flush method. Buffer is reset even on error.
func (w *Writer) Flush(lines int) error {
	defer w.buf.Reset()
	up := w.CursorUp(lines)
	if up.Move != nil {
		if err := up.Move(); err != nil {
			return err
		}
	}
	if len(up.Seq) != 0 || w.buf.Len() != 0 {
		frame := make([]byte, 0, len(up.Seq)+w.buf.Len())
		frame = append(frame, up.Seq...)
		frame = append(frame, w.buf.Bytes()...)
		if _, err := w.out.Write(frame); err != nil {
			return err
		}
	}
	if f, ok := w.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// IsTerminal tells whether underlying io.Writer is terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal || w.cygwin
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	if !w.IsTerminal() {
		return -1, -1, ErrNotTTY
	}
	return GetSize(w.fd)
}

// Width returns column count of underlying terminal, false if it is
// not a terminal or its size is unknown.
func (w *Writer) Width() (int, bool) {
	width, _, err := w.GetTermSize()
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// CursorUp returns ANSI escape sequence moving the cursor n lines up.
// Non positive n results in empty string.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return escOpen + strconv.Itoa(n) + cuu
}
