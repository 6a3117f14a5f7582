package render

import (
	"fmt"
	"math"
)

// FormatSeconds renders a duration in seconds at one of three unit
// scales: milliseconds below one second, seconds below one minute, and
// minutes with remaining seconds from there on. Negative input is not
// special-cased and falls into the milliseconds branch.
func FormatSeconds(seconds float64) string {
	if seconds < 1 {
		return fmt.Sprintf("%.1f ms", seconds*1000)
	}
	if seconds < 60 {
		return fmt.Sprintf("%.2f s", seconds)
	}
	minutes := int(seconds / 60)
	remaining := math.Mod(seconds, 60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}
