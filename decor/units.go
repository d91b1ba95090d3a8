package decor

// Units selects how counter and speed segments are formatted.
type Units int

const (
	// UnitsDefault plain numbers.
	UnitsDefault Units = iota
	// UnitsBytes byte amounts scaled by 1024: B, KB, MB, GB, TB.
	UnitsBytes
)
