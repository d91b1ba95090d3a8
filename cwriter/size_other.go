//go:build !unix

package cwriter

import "golang.org/x/term"

// GetSize returns the dimensions of the given terminal.
func GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
