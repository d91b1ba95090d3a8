//go:build windows

package cwriter

import "golang.org/x/sys/windows"

// CursorUp returns how to move the cursor n lines up. Console has no
// atomic write with cursor movement, so there the move is a separate
// console call, which Flush makes right before writing the frame.
// Cygwin and msys ptys, files and pipes get the escape sequence inlined.
func (w *Writer) CursorUp(n int) Up {
	if n <= 0 {
		return Up{}
	}
	if !w.terminal || w.cygwin {
		return Up{Seq: CursorUp(n)}
	}
	fd := windows.Handle(w.fd)
	return Up{Move: func() error {
		return moveUp(fd, n)
	}}
}

func moveUp(fd windows.Handle, n int) error {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(fd, &info); err != nil {
		return err
	}
	pos := info.CursorPosition
	pos.X = 0
	pos.Y -= int16(n)
	if pos.Y < 0 {
		pos.Y = 0
	}
	return windows.SetConsoleCursorPosition(fd, pos)
}
