package pbr

import (
	"time"

	"github.com/vbauerster/pbr/decor"
)

// BarOption is a func option to alter default behavior of a bar.
type BarOption func(*Bar)

// Segment is a part of the bar line, which can be shown or hidden.
type Segment int

// Segments of the bar line, from left to right.
const (
	SegmentMessage Segment = iota
	SegmentCounter
	SegmentTick
	SegmentBar
	SegmentPercent
	SegmentSpeed
	SegmentTimeLeft
)

// BarFormat sets bar glyphs, see (*Bar).SetFormat.
func BarFormat(format string) BarOption {
	return func(b *Bar) {
		b.SetFormat(format)
	}
}

// BarTickFormat sets tick glyphs, see (*Bar).SetTickFormat.
func BarTickFormat(format string) BarOption {
	return func(b *Bar) {
		b.SetTickFormat(format)
	}
}

// BarMessage sets message drawn in front of the bar.
func BarMessage(message string) BarOption {
	return func(b *Bar) {
		b.SetMessage(message)
	}
}

// BarWidth pins width of the bar line.
func BarWidth(width int) BarOption {
	return func(b *Bar) {
		b.SetWidth(width)
	}
}

// BarMaxRefreshRate limits redraw frequency, see (*Bar).SetMaxRefreshRate.
func BarMaxRefreshRate(d time.Duration) BarOption {
	return func(b *Bar) {
		b.SetMaxRefreshRate(d)
	}
}

// BarUnits sets units of counter and speed segments.
func BarUnits(u decor.Units) BarOption {
	return func(b *Bar) {
		b.SetUnits(u)
	}
}

// BarSpeedAverage makes speed and time left segments use provided moving
// average of per draw speed, instead of average since start. Average
// speed is used while moving average reports zero.
func BarSpeedAverage(average decor.MovingAverage) BarOption {
	return func(b *Bar) {
		b.average = average
	}
}

// BarSpeedEwma is BarSpeedAverage with decor.NewEwma(age).
func BarSpeedEwma(age float64) BarOption {
	return func(b *Bar) {
		b.average = decor.NewEwma(age)
	}
}

// BarHide hides provided segments.
func BarHide(segments ...Segment) BarOption {
	return func(b *Bar) {
		for _, s := range segments {
			if p := b.segment(s); p != nil {
				*p = false
			}
		}
	}
}

// BarShow shows provided segments.
func BarShow(segments ...Segment) BarOption {
	return func(b *Bar) {
		for _, s := range segments {
			if p := b.segment(s); p != nil {
				*p = true
			}
		}
	}
}

// BarOptOn returns option when condition evaluates to true.
func BarOptOn(option BarOption, condition func() bool) BarOption {
	if condition() {
		return option
	}
	return nil
}

func (b *Bar) segment(s Segment) *bool {
	switch s {
	case SegmentMessage:
		return &b.ShowMessage
	case SegmentCounter:
		return &b.ShowCounter
	case SegmentTick:
		return &b.ShowTick
	case SegmentBar:
		return &b.ShowBar
	case SegmentPercent:
		return &b.ShowPercent
	case SegmentSpeed:
		return &b.ShowSpeed
	case SegmentTimeLeft:
		return &b.ShowTimeLeft
	}
	return nil
}
