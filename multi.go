package pbr

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vbauerster/pbr/cwriter"
)

// Multi draws several bars, one line each, updated in place. Bars created
// by CreateBar may be driven from different goroutines, one goroutine per
// bar, while a single goroutine runs Listen.
type Multi struct {
	mu     sync.Mutex
	lines  []string
	active int
	drawn  int
	cw     *cwriter.Writer
	err    error // first write error, sticky

	q        *mailbox
	width    int
	debugMu  sync.Mutex
	debugOut io.Writer
}

// NewMulti creates Multi, which draws to os.Stdout.
func NewMulti(options ...MultiOption) *Multi {
	return MultiOn(os.Stdout, options...)
}

// MultiOn creates Multi, which draws to w.
func MultiOn(w io.Writer, options ...MultiOption) *Multi {
	if w == nil {
		w = io.Discard
	}
	m := &Multi{
		cw:       cwriter.New(w),
		q:        newMailbox(),
		debugOut: io.Discard,
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Println adds a static line below already added lines. It is drawn with
// the next frame.
func (m *Multi) Println(s string) {
	s = strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
	m.mu.Lock()
	m.lines = append(m.lines, s)
	m.mu.Unlock()
}

// CreateBar adds a bar line below already added lines and returns its Bar.
// FinishPrintln of the returned Bar behaves as FinishPrint.
func (m *Multi) CreateBar(total uint64, options ...BarOption) *Bar {
	m.mu.Lock()
	slot := len(m.lines)
	m.lines = append(m.lines, "")
	m.active++
	m.mu.Unlock()

	c := &conduit{
		slot:  slot,
		q:     m.q,
		width: m.barWidth,
		drop: func(msg message) {
			m.debugf("dropped %s message of slot %d", msg.kind, msg.slot)
		},
	}
	b := NewWithSink(c, total, options...)
	b.multi = true
	b.Add(0)
	return b
}

// Listen blocks until every bar created so far has finished, drawing a
// frame after each bar update. It returns immediately if there are no
// active bars. First write error stops the loop and is returned, updates
// of bars are dropped after that, and further calls return it at once.
func (m *Multi) Listen() error {
	return m.ListenContext(context.Background())
}

// ListenContext is Listen, which also stops when ctx is done and returns
// ctx.Err() then. Listen may be called again afterwards.
func (m *Multi) ListenContext(ctx context.Context) error {
	if err := m.failed(); err != nil {
		return err
	}
	for m.Active() != 0 {
		msgs := m.q.take()
		if len(msgs) == 0 {
			select {
			case <-m.q.notify:
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		for _, msg := range msgs {
			if err := m.process(msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Drain processes updates queued so far without waiting for new ones, and
// reports how many were processed.
func (m *Multi) Drain() (int, error) {
	if err := m.failed(); err != nil {
		return 0, err
	}
	msgs := m.q.take()
	for i, msg := range msgs {
		if err := m.process(msg); err != nil {
			return i + 1, err
		}
	}
	return len(msgs), nil
}

// Active returns count of bars, which have not finished yet.
func (m *Multi) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Lines returns copy of the current lines, one per bar or Println call.
func (m *Multi) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, len(m.lines))
	copy(lines, m.lines)
	return lines
}

func (m *Multi) failed() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Multi) process(msg message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if msg.slot < 0 || msg.slot >= len(m.lines) {
		m.debugf("unknown slot %d of %s message", msg.slot, msg.kind)
		return nil
	}
	switch msg.kind {
	case msgUpdate:
		m.lines[msg.slot] = msg.text
	case msgReplace:
		m.lines[msg.slot] = msg.text
		m.active--
	case msgFinish:
		m.active--
	}
	if err := m.flush(); err != nil {
		m.err = err
		m.q.close()
		m.debugf("%v", err)
		return err
	}
	return nil
}

// flush writes a frame of all lines over the previous one.
func (m *Multi) flush() error {
	for _, line := range m.lines {
		m.cw.WriteString("\r")
		m.cw.WriteString(line)
		m.cw.WriteString("\n")
	}
	err := m.cw.Flush(m.drawn)
	m.drawn = len(m.lines)
	return err
}

// barWidth is width of the bars without their own.
func (m *Multi) barWidth() (int, bool) {
	if m.width > 0 {
		return m.width, true
	}
	return m.cw.Width()
}

// debugf may be called by bars concurrently.
func (m *Multi) debugf(format string, a ...interface{}) {
	m.debugMu.Lock()
	defer m.debugMu.Unlock()
	fmt.Fprintf(m.debugOut, "%s %s %s\n", "[pbr]", time.Now().Format(time.RFC3339), fmt.Sprintf(format, a...))
}
