package decor

import (
	"fmt"

	"github.com/vbauerster/pbr/internal"
)

// Percentage formats completion of current against total, like "42.50 %".
// Zero total is formatted as "0.00 %".
func Percentage(total, current uint64) string {
	return fmt.Sprintf("%.2f %%", internal.Percent(total, current))
}
