package util

import (
	"time"
)

const layout = "2006-01-02"

// NewDate builds a whole-day UTC date. Backtest windows carry no time zone
// semantics; everything is a calendar-day boundary.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}
