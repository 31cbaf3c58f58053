package task

import "time"

// TimeLayout is the timestamp format used in the collection files: naive
// local time without offset, matching how the files have always been
// written.
const TimeLayout = "2006-01-02T15:04:05"

// parseLayouts lists accepted timestamp formats, most common first.
// Fractional seconds appear in files written by older versions.
var parseLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	TimeLayout,
	time.RFC3339,
}

// FormatTime renders a timestamp in the wire format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a wire-format timestamp. Returns false when the value
// is empty or unparsable.
func ParseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
