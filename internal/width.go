package internal

import (
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ambiguous width runes such as box drawing glyphs are one cell wide
// regardless of locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// StringWidth returns display width of s, escape sequences excluded.
func StringWidth(s string) int {
	return cond.StringWidth(stripansi.Strip(s))
}

// PadRight right pads s with spaces up to width display columns.
func PadRight(s string, width int) string {
	if n := width - StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	var res []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		res = append(res, g.Str())
	}
	return res
}
