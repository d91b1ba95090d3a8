package pbr

import (
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/vbauerster/pbr/cwriter"
	"github.com/vbauerster/pbr/decor"
	"github.com/vbauerster/pbr/internal"
)

const (
	// DefaultFormat is start, fill, tip, empty and end glyphs of the bar.
	DefaultFormat = "[=>-]"
	// DefaultTickFormat is sequence of tick glyphs.
	DefaultTickFormat = "\\|/-"
)

const (
	iStart = iota
	iFill
	iTip
	iEmpty
	iEnd
	formatLen
)

// Bar is a single progress bar. Bar is not safe for concurrent use, it is
// supposed to be owned by a single goroutine. Show* fields toggle
// segments of the line and may be changed at any time.
type Bar struct {
	ShowBar      bool
	ShowSpeed    bool
	ShowPercent  bool
	ShowCounter  bool
	ShowTimeLeft bool
	ShowTick     bool
	ShowMessage  bool

	total   uint64
	current uint64

	format  [formatLen]string
	tick    []string
	tickIdx int
	units   decor.Units
	width   int
	message string

	startTime      time.Time
	lastRefresh    time.Time
	maxRefreshRate time.Duration

	average decor.MovingAverage
	sample  struct {
		at      time.Time
		current uint64
	}

	finished bool
	multi    bool
	sink     Sink
	err      error
	now      func() time.Time
}

// New creates a Bar, which draws to os.Stdout.
func New(total uint64, options ...BarOption) *Bar {
	return On(os.Stdout, total, options...)
}

// On creates a Bar, which draws to w.
func On(w io.Writer, total uint64, options ...BarOption) *Bar {
	return NewWithSink(NewWriterSink(w), total, options...)
}

// NewWithSink creates a Bar, which hands its lines to s.
func NewWithSink(s Sink, total uint64, options ...BarOption) *Bar {
	b := newBar(s, total, time.Now)
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func newBar(s Sink, total uint64, now func() time.Time) *Bar {
	b := &Bar{
		ShowBar:      true,
		ShowSpeed:    true,
		ShowPercent:  true,
		ShowCounter:  true,
		ShowTimeLeft: true,
		ShowMessage:  true,
		total:        total,
		sink:         s,
		now:          now,
	}
	b.startTime = now()
	b.lastRefresh = b.startTime
	b.sample.at = b.startTime
	b.SetFormat(DefaultFormat)
	b.SetTickFormat(DefaultTickFormat)
	return b
}

// SetFormat sets bar glyphs: start, fill, tip, empty and end, one grapheme
// each, like "╢▌▌░╟". Format shorter than 5 graphemes is ignored.
func (b *Bar) SetFormat(format string) {
	glyphs := internal.Graphemes(format)
	if len(glyphs) < formatLen {
		return
	}
	copy(b.format[:], glyphs)
}

// Format returns current bar glyphs.
func (b *Bar) Format() string {
	return strings.Join(b.format[:], "")
}

// SetTickFormat sets tick glyphs, one grapheme each. Tick segment is
// turned on for any format other than DefaultTickFormat. Empty format is
// ignored.
func (b *Bar) SetTickFormat(format string) {
	glyphs := internal.Graphemes(format)
	if len(glyphs) == 0 {
		return
	}
	if format != DefaultTickFormat {
		b.ShowTick = true
	}
	b.tick = glyphs
	b.tickIdx = 0
}

// SetMessage sets text drawn in front of the bar. Line breaks are
// replaced with spaces. Empty message stops drawing it.
func (b *Bar) SetMessage(message string) {
	b.message = strings.NewReplacer("\n", " ", "\r", " ").Replace(message)
}

// SetWidth pins width of the whole line. Non positive width restores
// detection of the terminal width.
func (b *Bar) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	b.width = width
}

// SetMaxRefreshRate limits how often the bar redraws. Draws requested
// sooner than d after the previous one are skipped, except when the bar
// is complete. Non positive d removes the limit.
func (b *Bar) SetMaxRefreshRate(d time.Duration) {
	if d <= 0 {
		b.maxRefreshRate = 0
		return
	}
	b.maxRefreshRate = d
	b.lastRefresh = b.lastRefresh.Add(-d)
}

// SetUnits sets units of counter and speed segments.
func (b *Bar) SetUnits(u decor.Units) {
	b.units = u
}

// ResetStartTime restarts elapsed time used for speed and time left.
func (b *Bar) ResetStartTime() {
	b.startTime = b.now()
	b.sample.at = b.startTime
	b.sample.current = b.current
}

// Add increments current by n and draws. Returns new current value.
func (b *Bar) Add(n uint64) uint64 {
	if b.current > math.MaxUint64-n {
		b.current = math.MaxUint64
	} else {
		b.current += n
	}
	b.Tick()
	return b.current
}

// Set sets current to n and draws. Returns new current value.
func (b *Bar) Set(n uint64) uint64 {
	b.current = n
	b.Tick()
	return b.current
}

// Inc is shorthand for b.Add(1).
func (b *Bar) Inc() uint64 {
	return b.Add(1)
}

// Tick advances tick glyph and draws, even if there is no progress. Useful
// to show that the work is alive. Nothing is drawn if current is above
// total, the bar waits for Finish then.
func (b *Bar) Tick() {
	b.tickIdx = (b.tickIdx + 1) % len(b.tick)
	if b.current <= b.total {
		b.draw(false)
	}
}

// Write implements io.Writer, every write adds len(p) to current. It
// never fails, so Bar can be a target of io.Copy or io.MultiWriter.
func (b *Bar) Write(p []byte) (int, error) {
	b.Add(uint64(len(p)))
	return len(p), nil
}

// Current returns current value.
func (b *Bar) Current() uint64 {
	return b.current
}

// Total returns total value.
func (b *Bar) Total() uint64 {
	return b.total
}

// Finished reports whether one of finish methods has been called.
func (b *Bar) Finished() bool {
	return b.finished
}

// Err returns the first error of the sink. Bar stops drawing after it.
func (b *Bar) Err() error {
	return b.err
}

// Finish sets current to total if it is below, draws the last time
// regardless of max refresh rate and leaves the line as is. It returns
// the first sink error, if any.
func (b *Bar) Finish() error {
	return b.finish(EndKeep, "")
}

// FinishPrint finishes like Finish and replaces the bar line with s.
func (b *Bar) FinishPrint(s string) error {
	return b.finish(EndReplace, s)
}

// FinishPrintln finishes like Finish and prints s below the bar. Bars of
// Multi can't print new lines, so there it is the same as FinishPrint.
func (b *Bar) FinishPrintln(s string) error {
	if b.multi {
		return b.finish(EndReplace, s)
	}
	return b.finish(EndBelow, s)
}

func (b *Bar) finish(e Ending, text string) error {
	if b.finished {
		return b.err
	}
	if b.current < b.total {
		b.current = b.total
	}
	b.draw(true)
	b.finished = true
	if e == EndReplace {
		text = internal.PadRight(text, b.termWidth())
	}
	if b.err == nil {
		b.err = b.sink.End(e, text)
	}
	return b.err
}

func (b *Bar) draw(force bool) {
	if b.finished || b.err != nil {
		return
	}
	now := b.now()
	if !force && b.maxRefreshRate > 0 && now.Sub(b.lastRefresh) < b.maxRefreshRate && b.current < b.total {
		return
	}
	line := render(b.renderState(now), b.termWidth())
	if err := b.sink.Accept(line); err != nil {
		b.err = err
		return
	}
	b.lastRefresh = now
}

func (b *Bar) renderState(now time.Time) *renderState {
	st := &renderState{
		total:        b.total,
		current:      b.current,
		elapsed:      now.Sub(b.startTime),
		units:        b.units,
		format:       b.format,
		tick:         b.tick[b.tickIdx],
		message:      b.message,
		showBar:      b.ShowBar,
		showSpeed:    b.ShowSpeed,
		showPercent:  b.ShowPercent,
		showCounter:  b.ShowCounter,
		showTimeLeft: b.ShowTimeLeft,
		showTick:     b.ShowTick,
		showMessage:  b.ShowMessage,
	}
	if b.average != nil {
		switch dt := now.Sub(b.sample.at); {
		case b.current < b.sample.current:
			// moved backwards by Set, sample again from here
			b.sample.at = now
			b.sample.current = b.current
		case dt > 0:
			b.average.Add(float64(b.current-b.sample.current) / dt.Seconds())
			b.sample.at = now
			b.sample.current = b.current
		}
		st.speed = b.average.Value()
	}
	return st
}

// termWidth is explicit width, then width of the sink, then default.
func (b *Bar) termWidth() int {
	if b.width > 0 {
		return b.width
	}
	if wp, ok := b.sink.(widthProvider); ok {
		if w, ok := wp.Width(); ok && w > 0 {
			return w
		}
	}
	return cwriter.DefaultWidth
}
