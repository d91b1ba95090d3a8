package pbr

import (
	"strings"
	"time"

	"github.com/vbauerster/pbr/decor"
	"github.com/vbauerster/pbr/internal"
)

// renderState is everything render needs, copied out of Bar.
type renderState struct {
	total   uint64
	current uint64
	elapsed time.Duration
	speed   float64 // overrides average speed if not zero
	units   decor.Units
	format  [formatLen]string
	tick    string
	message string

	showBar      bool
	showSpeed    bool
	showPercent  bool
	showCounter  bool
	showTimeLeft bool
	showTick     bool
	showMessage  bool
}

// render lays out prefix, bar and suffix into a line of width display
// columns. Line is padded with spaces, so it fully overwrites a longer
// previous one. Bar is dropped if there is no room for it.
func render(st *renderState, width int) string {
	speed := st.speed
	if speed == 0 {
		speed = decor.AverageSpeed(st.current, st.elapsed)
	}

	var parts []string
	if st.showPercent {
		parts = append(parts, decor.Percentage(st.total, st.current))
	}
	if st.showSpeed {
		parts = append(parts, decor.Speed(speed, st.units))
	}
	if st.showTimeLeft {
		if eta, ok := decor.ETA(st.total, st.current, speed); ok {
			parts = append(parts, eta)
		}
	}
	suffix := " " + strings.Join(parts, " ")

	var prefix strings.Builder
	if st.showMessage {
		prefix.WriteString(st.message)
	}
	if st.showCounter {
		prefix.WriteString(decor.Counter(st.total, st.current, st.units))
		prefix.WriteByte(' ')
	}
	if st.showTick {
		prefix.WriteString(st.tick)
		prefix.WriteByte(' ')
	}

	var bar string
	if st.showBar {
		cells := width - (internal.StringWidth(prefix.String()) + internal.StringWidth(suffix) + 3)
		bar = fillBar(st.format, st.total, st.current, cells)
	}

	return internal.PadRight(prefix.String()+bar+suffix, width)
}
