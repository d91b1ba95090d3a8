package pbr

import (
	"io"

	"github.com/vbauerster/pbr/cwriter"
)

// Ending tells a Sink how a finished bar leaves the display.
type Ending int

//go:generate go tool stringer -type=Ending -trimprefix=End
const (
	// EndKeep leaves the last frame as is.
	EndKeep Ending = iota
	// EndReplace replaces the bar line with the given text.
	EndReplace
	// EndBelow prints the given text on the line below the bar.
	EndBelow
)

// Sink receives rendered output of a single bar. Bar calls Accept once per
// draw and End exactly once, when it finishes.
type Sink interface {
	Accept(line string) error
	End(e Ending, text string) error
}

// widthProvider is implemented by sinks which know width of their output.
type widthProvider interface {
	Width() (int, bool)
}

type writerSink struct {
	cw *cwriter.Writer
}

// NewWriterSink returns Sink which draws directly to w. Every draw is a
// single write of carriage return and the line, followed by flush if w
// has Flush() error method. Nil w is replaced with io.Discard.
func NewWriterSink(w io.Writer) Sink {
	if w == nil {
		w = io.Discard
	}
	return writerSink{cwriter.New(w)}
}

func (s writerSink) Accept(line string) error {
	return s.frame("\r", line)
}

func (s writerSink) End(e Ending, text string) error {
	switch e {
	case EndReplace:
		return s.frame("\r", text)
	case EndBelow:
		return s.frame("\n", text)
	default:
		return s.frame("", "")
	}
}

func (s writerSink) Width() (int, bool) {
	return s.cw.Width()
}

func (s writerSink) frame(lead, text string) error {
	s.cw.WriteString(lead)
	s.cw.WriteString(text)
	return s.cw.Flush(0)
}
