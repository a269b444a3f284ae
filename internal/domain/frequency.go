package domain

import (
	"fmt"
	"strings"
)

// DCAFrequency is the interval between recurring contributions. The
// enumeration is closed; WeekInterval is total over it so period math
// never has an error path.
type DCAFrequency string

const (
	DCAFrequency_Weekly       DCAFrequency = "WEEKLY"
	DCAFrequency_Biweekly     DCAFrequency = "BIWEEKLY"
	DCAFrequency_Every4Weeks  DCAFrequency = "EVERY_4_WEEKS"
	DCAFrequency_Every8Weeks  DCAFrequency = "EVERY_8_WEEKS"
	DCAFrequency_Every12Weeks DCAFrequency = "EVERY_12_WEEKS"
	DCAFrequency_Every24Weeks DCAFrequency = "EVERY_24_WEEKS"
	DCAFrequency_Every48Weeks DCAFrequency = "EVERY_48_WEEKS"
)

var AllDCAFrequencies = []DCAFrequency{
	DCAFrequency_Weekly,
	DCAFrequency_Biweekly,
	DCAFrequency_Every4Weeks,
	DCAFrequency_Every8Weeks,
	DCAFrequency_Every12Weeks,
	DCAFrequency_Every24Weeks,
	DCAFrequency_Every48Weeks,
}

func (f DCAFrequency) WeekInterval() int {
	switch f {
	case DCAFrequency_Weekly:
		return 1
	case DCAFrequency_Biweekly:
		return 2
	case DCAFrequency_Every4Weeks:
		return 4
	case DCAFrequency_Every8Weeks:
		return 8
	case DCAFrequency_Every12Weeks:
		return 12
	case DCAFrequency_Every24Weeks:
		return 24
	case DCAFrequency_Every48Weeks:
		return 48
	}
	// unset frequency on a DCA asset is caught by the validator; treat it
	// as weekly so the arithmetic stays total
	return 1
}

func NewDCAFrequency(s string) (*DCAFrequency, error) {
	for _, f := range AllDCAFrequencies {
		if strings.EqualFold(
			strings.ReplaceAll(string(f), "_", ""),
			strings.ReplaceAll(strings.TrimSpace(s), "_", ""),
		) {
			out := f
			return &out, nil
		}
	}
	return nil, fmt.Errorf("unknown dca frequency %s", s)
}
