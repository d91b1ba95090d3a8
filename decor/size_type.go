package decor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var sizeB1024Units = [...]string{"B", "KB", "MB", "GB", "TB"}

// SizeB1024 is a byte amount, scaled by powers of 1024 when formatted.
// Amounts below 1024 are always formatted without fraction digits.
//
//	"% .2f" = "1.00 KB", "%.1f" = "1.0KB", "% .2f" of 512 = "512 B"
type SizeB1024 float64

func (self SizeB1024) Format(st fmt.State, verb rune) {
	var prec int
	switch verb {
	case 'd':
	case 's':
		prec = -1
	default:
		if p, ok := st.Precision(); ok {
			prec = p
		} else {
			prec = 6
		}
	}

	v := float64(self)
	var unit int
	for unit < len(sizeB1024Units)-1 && v >= 1024 {
		v /= 1024
		unit++
	}
	if unit == 0 {
		prec = 0
	}

	var b strings.Builder
	b.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
	if st.Flag(' ') {
		b.WriteString(" ")
	}
	b.WriteString(sizeB1024Units[unit])

	if w, ok := st.Width(); ok {
		if l := b.Len(); l < w {
			pad := strings.Repeat(" ", w-l)
			if st.Flag('-') {
				b.WriteString(pad)
			} else {
				tmp := b.String()
				b.Reset()
				b.WriteString(pad)
				b.WriteString(tmp)
			}
		}
	}

	io.WriteString(st, b.String())
}

// Bytes formats n with two fraction digits and a space before the unit,
// which is how byte counters and speeds are drawn.
func Bytes(n float64) string {
	return fmt.Sprintf("% .2f", SizeB1024(n))
}
