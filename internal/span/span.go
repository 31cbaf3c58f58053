// Package span decomposes elapsed wall-clock time into display components.
package span

import (
	"fmt"
	"time"
)

// Breakdown is an elapsed span split into days, hours, minutes, and seconds.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Between returns the breakdown of end minus start. The subtraction is
// calendar-naive: no timezone reconciliation, negative spans clamp to zero.
func Between(start, end time.Time) Breakdown {
	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	total := int(elapsed / time.Second)
	days := total / 86400
	rest := total % 86400
	hours := rest / 3600
	rest = rest % 3600

	return Breakdown{
		Days:    days,
		Hours:   hours,
		Minutes: rest / 60,
		Seconds: rest % 60,
	}
}

// String renders the breakdown like "1d 2h 3m 4s".
func (b Breakdown) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}
