package pbr

import "sync"

type msgKind int

//go:generate go tool stringer -type=msgKind -trimprefix=msg
const (
	msgUpdate msgKind = iota
	msgReplace
	msgFinish
)

// message is what bars of Multi send to it.
type message struct {
	slot int
	kind msgKind
	text string
}

// mailbox is an unbounded multi producer, single consumer queue. Senders
// never block, so a bar can't stall its goroutine on a busy coordinator.
type mailbox struct {
	mu     sync.Mutex
	queue  []message
	closed bool
	notify chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		notify: make(chan struct{}, 1),
	}
}

// send reports false if message has been dropped, because consumer is gone.
func (q *mailbox) send(m message) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.queue = append(q.queue, m)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

// take returns all queued messages in arrival order.
func (q *mailbox) take() []message {
	q.mu.Lock()
	defer q.mu.Unlock()
	msgs := q.queue
	q.queue = nil
	return msgs
}

func (q *mailbox) close() {
	q.mu.Lock()
	q.closed = true
	q.queue = nil
	q.mu.Unlock()
}

// conduit is Sink of a bar, created by Multi. It turns lines into messages
// tagged with bar's slot.
type conduit struct {
	slot  int
	q     *mailbox
	width func() (int, bool)
	drop  func(message)
}

func (c *conduit) Accept(line string) error {
	c.send(msgUpdate, line)
	return nil
}

func (c *conduit) End(e Ending, text string) error {
	if e == EndKeep {
		c.send(msgFinish, "")
	} else {
		c.send(msgReplace, text)
	}
	return nil
}

func (c *conduit) send(kind msgKind, text string) {
	msg := message{slot: c.slot, kind: kind, text: text}
	if !c.q.send(msg) && c.drop != nil {
		c.drop(msg)
	}
}

func (c *conduit) Width() (int, bool) {
	return c.width()
}
