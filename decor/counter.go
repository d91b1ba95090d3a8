package decor

import "strconv"

// Counter formats "current / total" according to units.
func Counter(total, current uint64, units Units) string {
	if units == UnitsBytes {
		return Bytes(float64(current)) + " / " + Bytes(float64(total))
	}
	return strconv.FormatUint(current, 10) + " / " + strconv.FormatUint(total, 10)
}
