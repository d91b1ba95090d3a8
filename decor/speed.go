package decor

import (
	"strconv"
	"time"
)

// AverageSpeed returns current amount per second since start. Zero
// elapsed duration is treated as one nanosecond.
func AverageSpeed(current uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return float64(current) / elapsed.Seconds()
}

// Speed formats speed according to units: "12.50/s" or "1.00 KB/s".
func Speed(speed float64, units Units) string {
	if units == UnitsBytes {
		return Bytes(speed) + "/s"
	}
	return strconv.FormatFloat(speed, 'f', 2, 64) + "/s"
}
