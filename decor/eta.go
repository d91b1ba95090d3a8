package decor

import (
	"fmt"
	"math"
)

// ETA formats time left to complete total at the given speed. Below a
// minute it is whole seconds "42s", otherwise whole minutes "3m". The
// second return value is false when there is nothing to estimate: no
// progress yet, already complete or zero speed.
func ETA(total, current uint64, speed float64) (string, bool) {
	if current == 0 || total <= current || speed <= 0 {
		return "", false
	}
	left := float64(total-current) / speed
	if math.IsInf(left, 0) || math.IsNaN(left) {
		return "", false
	}
	if left < 60 {
		return fmt.Sprintf("%.0fs", left), true
	}
	return fmt.Sprintf("%.0fm", left/60), true
}
