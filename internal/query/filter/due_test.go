package filter_test

import (
	"errors"
	"testing"
	"time"

	"nb-query/internal/query/filter"
	"nb-query/pkg/datemath"
)

// Friday.
var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newDueResolver(t *testing.T) *filter.DueResolver {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return filter.NewDueResolver(p, datemath.NewCalendar(time.UTC))
}

func at(y int, m time.Month, d, h, mi int) *time.Time {
	v := time.Date(y, m, d, h, mi, 0, 0, time.UTC)
	return &v
}

func TestResolve(t *testing.T) {
	r := newDueResolver(t)
	endOfDay := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 23, 59, 59, 999_000_000, time.UTC)
		return &v
	}

	tests := []struct {
		value string
		match []*time.Time
		miss  []*time.Time
	}{
		{
			value: "today",
			match: []*time.Time{at(2024, 3, 1, 0, 0), at(2024, 3, 1, 13, 0), endOfDay(2024, 3, 1)},
			miss:  []*time.Time{at(2024, 2, 29, 23, 59), at(2024, 3, 2, 0, 0)},
		},
		{
			value: "tomorrow",
			match: []*time.Time{at(2024, 3, 2, 0, 0), at(2024, 3, 2, 18, 30)},
			miss:  []*time.Time{at(2024, 3, 1, 13, 0), at(2024, 3, 3, 0, 0)},
		},
		{
			value: "yesterday",
			match: []*time.Time{at(2024, 2, 29, 8, 0)},
			miss:  []*time.Time{at(2024, 3, 1, 0, 0)},
		},
		{
			value: "this week",
			match: []*time.Time{at(2024, 2, 26, 0, 0), at(2024, 3, 1, 13, 0), endOfDay(2024, 3, 3)},
			miss:  []*time.Time{at(2024, 2, 25, 23, 59), at(2024, 3, 4, 0, 0), at(2024, 3, 9, 0, 0)},
		},
		{
			value: "next week",
			match: []*time.Time{at(2024, 3, 4, 0, 0), at(2024, 3, 9, 0, 0), endOfDay(2024, 3, 10)},
			miss:  []*time.Time{at(2024, 3, 3, 12, 0), at(2024, 3, 11, 0, 0)},
		},
		{
			value: "last week",
			match: []*time.Time{at(2024, 2, 19, 0, 0), at(2024, 2, 25, 23, 0)},
			miss:  []*time.Time{at(2024, 2, 18, 23, 59), at(2024, 2, 26, 0, 0)},
		},
		{
			value: "this month",
			match: []*time.Time{at(2024, 3, 1, 0, 0), endOfDay(2024, 3, 31)},
			miss:  []*time.Time{at(2024, 2, 29, 12, 0), at(2024, 4, 1, 0, 0)},
		},
		{
			value: "last month",
			match: []*time.Time{at(2024, 2, 1, 0, 0), endOfDay(2024, 2, 29)},
			miss:  []*time.Time{at(2024, 1, 31, 12, 0), at(2024, 3, 1, 0, 0)},
		},
		{
			value: "next month",
			match: []*time.Time{at(2024, 4, 30, 9, 0)},
			miss:  []*time.Time{at(2024, 5, 1, 0, 0)},
		},
		{
			value: "this year",
			match: []*time.Time{at(2024, 1, 1, 0, 0), endOfDay(2024, 12, 31)},
			miss:  []*time.Time{at(2023, 12, 31, 23, 0), at(2025, 1, 1, 0, 0)},
		},
		{
			value: "next year",
			match: []*time.Time{at(2025, 6, 1, 0, 0)},
			miss:  []*time.Time{at(2024, 12, 31, 0, 0)},
		},
		{
			value: "last year",
			match: []*time.Time{at(2023, 6, 1, 0, 0)},
			miss:  []*time.Time{at(2024, 1, 1, 0, 0)},
		},
		{
			value: "overdue",
			match: []*time.Time{at(2024, 3, 1, 9, 59), at(2020, 1, 1, 0, 0)},
			miss:  []*time.Time{at(2024, 3, 1, 10, 0), at(2024, 3, 2, 0, 0)},
		},
		{
			value: "Past Due",
			match: []*time.Time{at(2024, 2, 20, 18, 30)},
			miss:  []*time.Time{at(2024, 3, 1, 13, 0)},
		},
		{
			value: "pastdue",
			match: []*time.Time{at(2024, 2, 20, 18, 30)},
			miss:  []*time.Time{at(2024, 3, 1, 13, 0)},
		},
		{
			value: "2024-03-05",
			match: []*time.Time{at(2024, 3, 5, 0, 0)},
			miss:  []*time.Time{at(2024, 3, 5, 9, 0)},
		},
		{
			value: "2024-03-05 9am",
			match: []*time.Time{at(2024, 3, 5, 9, 0)},
			miss:  []*time.Time{at(2024, 3, 5, 0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			pred, err := r.Resolve(tt.value, now)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if pred(nil) {
				t.Errorf("%q matched an unscheduled item", tt.value)
			}
			for _, due := range tt.match {
				if !pred(due) {
					t.Errorf("%q should match %v", tt.value, *due)
				}
			}
			for _, due := range tt.miss {
				if pred(due) {
					t.Errorf("%q should not match %v", tt.value, *due)
				}
			}
		})
	}
}

func TestResolveUnscheduled(t *testing.T) {
	r := newDueResolver(t)
	pred, err := r.Resolve("unscheduled", now)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !pred(nil) {
		t.Error("unscheduled should match items without a due date")
	}
	if pred(at(2024, 3, 1, 0, 0)) {
		t.Error("unscheduled should not match scheduled items")
	}
}

func TestResolveUnknownPhrase(t *testing.T) {
	r := newDueResolver(t)
	_, err := r.Resolve("zzz-qqq", now)
	if !errors.Is(err, datemath.ErrUnresolvablePhrase) {
		t.Fatalf("Resolve() error = %v, want ErrUnresolvablePhrase", err)
	}
}

func TestBeforeAfter(t *testing.T) {
	r := newDueResolver(t)

	before, err := r.Before("2024-03-05", now)
	if err != nil {
		t.Fatalf("Before() error = %v", err)
	}
	after, err := r.After("2024-03-05", now)
	if err != nil {
		t.Fatalf("After() error = %v", err)
	}

	edge := at(2024, 3, 5, 0, 0)
	if !before(edge) || !after(edge) {
		t.Error("both bounds should be inclusive")
	}
	if !before(at(2024, 3, 4, 23, 0)) || after(at(2024, 3, 4, 23, 0)) {
		t.Error("an earlier date should only pass Before")
	}
	if before(at(2024, 3, 5, 9, 0)) || !after(at(2024, 3, 5, 9, 0)) {
		t.Error("a later date should only pass After")
	}
	if before(nil) || after(nil) {
		t.Error("unscheduled items should fail both bounds")
	}

	if _, err := r.Before("zzz-qqq", now); !errors.Is(err, datemath.ErrUnresolvablePhrase) {
		t.Errorf("Before() error = %v, want ErrUnresolvablePhrase", err)
	}
}
