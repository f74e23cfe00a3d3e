package picker

import (
	"fmt"
	"time"
)

const (
	// MonthCount is the number of month options
	MonthCount = 12
	// YearCount is the number of year options, starting at the current year
	YearCount = 7
)

// Months returns "01" through "12"
func Months() []string {
	out := make([]string, MonthCount)
	for i := range out {
		out[i] = fmt.Sprintf("%02d", i+1)
	}
	return out
}

// Years returns YearCount consecutive four-digit years starting at now's year.
// It is evaluated on every render, so the range follows the wall clock.
func Years(now time.Time) []string {
	first := now.Year()
	out := make([]string, YearCount)
	for i := range out {
		out[i] = fmt.Sprintf("%04d", first+i)
	}
	return out
}

// Options returns the list for mode, or nil for an unknown mode
func Options(mode Mode, now time.Time) []string {
	switch mode {
	case ModeMonth:
		return Months()
	case ModeYear:
		return Years(now)
	default:
		return nil
	}
}
