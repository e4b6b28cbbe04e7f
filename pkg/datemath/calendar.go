package datemath

import (
	"time"

	"github.com/jinzhu/now"
)

// Calendar does period arithmetic with Monday-anchored weeks in a fixed timezone.
type Calendar struct {
	cfg *now.Config
}

// NewCalendar creates a Calendar for loc. A nil loc means UTC.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{cfg: &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: loc,
	}}
}

// StartOfDay returns midnight of the day containing t.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	return c.with(t).BeginningOfDay()
}

// StartOf returns the first instant of the unit containing t.
func (c *Calendar) StartOf(u Unit, t time.Time) time.Time {
	n := c.with(t)
	switch u {
	case Week:
		return n.BeginningOfWeek()
	case Month:
		return n.BeginningOfMonth()
	case Year:
		return n.BeginningOfYear()
	default:
		return n.BeginningOfDay()
	}
}

// Add shifts t by n units.
func (c *Calendar) Add(u Unit, t time.Time, n int) time.Time {
	switch u {
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// EndOf returns the last millisecond of the unit that starts at start,
// e.g. Sunday 23:59:59.999 for a week.
func (c *Calendar) EndOf(u Unit, start time.Time) time.Time {
	return c.Add(u, start, 1).Add(-time.Millisecond)
}

func (c *Calendar) with(t time.Time) *now.Now {
	return c.cfg.With(t.In(c.cfg.TimeLocation))
}
