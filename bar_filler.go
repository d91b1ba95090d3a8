package pbr

import (
	"strings"

	"github.com/vbauerster/pbr/internal"
)

// fillBar draws cells glyphs between start and end glyphs. The cell at the
// fill boundary is tip, if there are both filled and empty cells.
// Non positive cells draws nothing.
func fillBar(format [formatLen]string, total, current uint64, cells int) string {
	if cells <= 0 {
		return ""
	}
	filled := internal.FillCount(total, current, cells)
	empty := cells - filled

	var b strings.Builder
	b.WriteString(format[iStart])
	if empty > 0 && filled > 0 {
		b.WriteString(strings.Repeat(format[iFill], filled-1))
		b.WriteString(format[iTip])
	} else {
		b.WriteString(strings.Repeat(format[iFill], filled))
	}
	b.WriteString(strings.Repeat(format[iEmpty], empty))
	b.WriteString(format[iEnd])
	return b.String()
}
