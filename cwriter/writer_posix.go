//go:build !windows

package cwriter

// CursorUp returns how to move the cursor n lines up. Escape sequence is
// always inlined into the frame.
func (w *Writer) CursorUp(n int) Up {
	return Up{Seq: CursorUp(n)}
}
