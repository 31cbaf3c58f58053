package ui

import "time"

const displayTimeLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders a parsed timestamp for display.
func FormatTimestamp(t time.Time) string {
	return t.Format(displayTimeLayout)
}
