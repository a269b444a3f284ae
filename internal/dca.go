package internal

import (
	"portfoliolab/internal/domain"
	"time"
)

// PeriodCount returns how many contribution events a DCA schedule fires
// between start and end. The first contribution always lands on the start
// date, hence the +1. Partial days don't count; partial weeks don't count.
// Degenerate or inverted ranges still produce exactly one contribution,
// so the result is never below 1.
func PeriodCount(start, end time.Time, frequency domain.DCAFrequency) int {
	days := int(end.Sub(start).Hours() / 24)
	weeks := days / 7
	periods := weeks/frequency.WeekInterval() + 1
	if periods < 1 {
		periods = 1
	}
	return periods
}
