package cwriter

import (
	"fmt"
	"io"
	"strconv"
	"testing"
)

func BenchmarkWithFprintf(b *testing.B) {
	cuu := "\x1b[%dA"
	for i := 0; i < b.N; i++ {
		fmt.Fprintf(io.Discard, cuu, 4)
	}
}

func BenchmarkWithAppend(b *testing.B) {
	escOpen := []byte("\x1b[")
	for i := 0; i < b.N; i++ {
		io.Discard.Write(append(strconv.AppendInt(escOpen, 4, 10), 'A'))
	}
}

func BenchmarkCursorUp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		io.WriteString(io.Discard, CursorUp(4))
	}
}
