package textutil

import (
	"fmt"
	"math"
)

// FormatClock renders seconds as HH:MM:SS after rounding to the nearest whole
// second. Hours are not capped at 99. Negative or non-finite input renders as
// 00:00:00.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int64(math.Round(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatSeconds renders seconds with two decimals and an "s" unit.
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatDuration combines FormatClock and FormatSeconds as "HH:MM:SS (S.SSs)".
func FormatDuration(seconds float64) string {
	return fmt.Sprintf("%s (%s)", FormatClock(seconds), FormatSeconds(seconds))
}
