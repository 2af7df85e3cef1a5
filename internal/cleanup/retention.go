package cleanup

import (
	"fmt"
	"time"
)

// retentionLeft renders how much retention time remains for an item as
// a human readable string. Returns "0" once the cutoff has passed the
// last-played time.
func retentionLeft(lastPlayed, cutoff time.Time) string {
	if cutoff.After(lastPlayed) {
		return "0"
	}
	delta := lastPlayed.Sub(cutoff)

	if days := int64(delta.Hours() / 24); days > 0 {
		return fmt.Sprintf("%d day%s", days, plural(days))
	}
	if hours := int64(delta.Hours()); hours > 0 {
		return fmt.Sprintf("%d hour%s", hours, plural(hours))
	}
	minutes := int64(delta.Minutes())
	return fmt.Sprintf("%d minute%s", minutes, plural(minutes))
}

func plural(n int64) string {
	if n > 1 {
		return "s"
	}
	return ""
}
