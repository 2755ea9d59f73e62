package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration the way the chat replies expect:
// "2d" at a day or more, "3h 15m" at an hour or more, "42m" below that.
// Components truncate rather than round, and past a full day the smaller
// units are dropped entirely. Negative durations render as "expired".
func FormatDuration(d time.Duration) string {
	seconds := int64(d.Seconds())
	if seconds < 0 {
		return "expired"
	}

	switch {
	case seconds >= 86400:
		return fmt.Sprintf("%dd", seconds/86400)
	case seconds >= 3600:
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	default:
		return fmt.Sprintf("%dm", (seconds%3600)/60)
	}
}
