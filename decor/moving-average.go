package decor

import (
	"math"

	"github.com/VividCortex/ewma"
)

// MovingAverage is the interface that computes a moving average over a time-
// series stream of numbers. The average may be over a window or exponentially
// decaying.
type MovingAverage interface {
	Add(float64)
	Value() float64
	Set(float64)
}

// median3 is median of the last three samples. Unfilled samples are zero.
type median3 struct {
	samples [3]float64
	next    int
}

func (m *median3) Add(v float64) {
	m.samples[m.next] = v
	m.next = (m.next + 1) % len(m.samples)
}

func (m *median3) Value() float64 {
	a, b, c := m.samples[0], m.samples[1], m.samples[2]
	return math.Max(math.Min(a, b), math.Min(math.Max(a, b), c))
}

func (m *median3) Set(v float64) {
	for i := range m.samples {
		m.samples[i] = v
	}
}

// NewMedian is MovingAverage, which reports median of the last 3 samples.
func NewMedian() MovingAverage {
	return new(median3)
}

// prefiltered feeds values of filter into MovingAverage, instead of raw
// samples.
type prefiltered struct {
	MovingAverage
	filter MovingAverage
}

func (p prefiltered) Add(v float64) {
	p.filter.Add(v)
	p.MovingAverage.Add(p.filter.Value())
}

func (p prefiltered) Set(v float64) {
	p.filter.Set(v)
	p.MovingAverage.Set(v)
}

// NewEwma is exponentially weighted MovingAverage over age samples.
// Zero or negative age selects the default of 30 samples. Averages with
// non default age report zero until warmed up.
func NewEwma(age float64) MovingAverage {
	if age <= 0 {
		return ewma.NewMovingAverage()
	}
	return ewma.NewMovingAverage(age)
}

// NewMedianEwma is ewma over medians of the last 3 samples. Single spikes,
// like a burst of buffered io, don't move it.
func NewMedianEwma(age ...float64) MovingAverage {
	return prefiltered{
		MovingAverage: ewma.NewMovingAverage(age...),
		filter:        NewMedian(),
	}
}
