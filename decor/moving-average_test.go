package decor

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	m := NewMedian()
	for _, v := range []float64{5, 1, 3} {
		m.Add(v)
	}
	if got := m.Value(); got != 3 {
		t.Errorf("want %f, got %f", 3.0, got)
	}
	m.Add(10)
	if got := m.Value(); got != 3 {
		t.Errorf("want %f, got %f", 3.0, got)
	}
	m.Set(7)
	if got := m.Value(); got != 7 {
		t.Errorf("want %f, got %f", 7.0, got)
	}
}

func TestNewEwma(t *testing.T) {
	avg := NewEwma(0)
	avg.Add(100)
	if got := avg.Value(); got != 100 {
		t.Errorf("first sample: want %f, got %f", 100.0, got)
	}
	avg.Add(100)
	if got := avg.Value(); math.Abs(got-100) > 1e-6 {
		t.Errorf("steady samples: want %f, got %f", 100.0, got)
	}
}

func TestNewMedianEwma(t *testing.T) {
	avg := NewMedianEwma()
	for _, v := range []float64{40, 20, 1000} {
		avg.Add(v)
	}
	// spike of 1000 is hidden by median of the last 3 samples
	if got := avg.Value(); got <= 20 || got >= 40 {
		t.Errorf("want value in (20, 40), got %f", got)
	}
}
