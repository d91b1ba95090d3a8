package pbr

import "io"

// MultiOption is a func option to alter default behavior of Multi,
// if passed to NewMulti or MultiOn.
type MultiOption func(*Multi)

// WithWidth sets width of bars, which don't have their own. Without it
// width of the output terminal is used, or cwriter.DefaultWidth if the
// output is not a terminal.
func WithWidth(width int) MultiOption {
	return func(m *Multi) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithDebugOutput sets debug output, where Multi reports errors and
// dropped messages.
func WithDebugOutput(w io.Writer) MultiOption {
	return func(m *Multi) {
		if w == nil {
			w = io.Discard
		}
		m.debugOut = w
	}
}
