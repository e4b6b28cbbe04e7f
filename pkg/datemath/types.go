package datemath

import "errors"

// ErrUnresolvablePhrase is returned when a phrase cannot be turned into a date.
var ErrUnresolvablePhrase = errors.New("unresolvable date phrase")

// Unit is a calendar period used for range arithmetic.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// clock is a parsed time of day.
type clock struct {
	hour   int
	minute int
}
