package filter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"nb-query/pkg/datemath"
)

const unscheduled = "unscheduled"

var overdueRe = regexp.MustCompile(`(?i)^(past|over)\s?due$`)

type span struct {
	unit   datemath.Unit
	offset int
}

// rangeKeywords maps every symbolic due filter to the calendar unit it covers
// and how many units it is shifted from the one containing now.
var rangeKeywords = map[string]span{
	"yesterday":  {datemath.Day, -1},
	"today":      {datemath.Day, 0},
	"tomorrow":   {datemath.Day, 1},
	"last week":  {datemath.Week, -1},
	"this week":  {datemath.Week, 0},
	"next week":  {datemath.Week, 1},
	"last month": {datemath.Month, -1},
	"this month": {datemath.Month, 0},
	"next month": {datemath.Month, 1},
	"last year":  {datemath.Year, -1},
	"this year":  {datemath.Year, 0},
	"next year":  {datemath.Year, 1},
}

// DueResolver turns due filter values into predicates.
type DueResolver struct {
	phrases PhraseResolver
	cal     Calendar
}

// NewDueResolver creates a DueResolver.
func NewDueResolver(phrases PhraseResolver, cal Calendar) *DueResolver {
	return &DueResolver{phrases: phrases, cal: cal}
}

// Resolve builds the predicate for a due filter value. Symbolic keywords are
// matched case-sensitively; anything else is resolved as a date phrase at now
// and matches only that exact instant. Only "unscheduled" matches items
// without a due date.
func (r *DueResolver) Resolve(value string, now time.Time) (Predicate, error) {
	value = strings.TrimSpace(value)

	if s, ok := rangeKeywords[value]; ok {
		start := r.cal.Add(s.unit, r.cal.StartOf(s.unit, now), s.offset)
		return Between(start, r.cal.EndOf(s.unit, start)), nil
	}

	switch {
	case value == unscheduled:
		return func(due *time.Time) bool { return due == nil }, nil
	case overdueRe.MatchString(value):
		return func(due *time.Time) bool { return due != nil && due.Before(now) }, nil
	}

	at, err := r.resolve(value, now)
	if err != nil {
		return nil, err
	}
	return func(due *time.Time) bool { return due != nil && due.Equal(at) }, nil
}

// Before builds a predicate matching items due at or before the phrase.
func (r *DueResolver) Before(value string, now time.Time) (Predicate, error) {
	at, err := r.resolve(value, now)
	if err != nil {
		return nil, err
	}
	return func(due *time.Time) bool { return due != nil && !due.After(at) }, nil
}

// After builds a predicate matching items due at or after the phrase.
func (r *DueResolver) After(value string, now time.Time) (Predicate, error) {
	at, err := r.resolve(value, now)
	if err != nil {
		return nil, err
	}
	return func(due *time.Time) bool { return due != nil && !due.Before(at) }, nil
}

func (r *DueResolver) resolve(value string, now time.Time) (time.Time, error) {
	at, err := r.phrases.Parse(strings.TrimSpace(value), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("due filter %q: %w", value, err)
	}
	return at, nil
}

// Between matches due dates inside the closed interval [start, end].
func Between(start, end time.Time) Predicate {
	return func(due *time.Time) bool {
		return due != nil && !due.Before(start) && !due.After(end)
	}
}
