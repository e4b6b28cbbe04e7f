package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months|year|years)$`)
	clock12Re    = regexp.MustCompile(`(?:^|\s)(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s?(am|pm)$`)
	clock24Re    = regexp.MustCompile(`(?:^|\s)(?:at\s+)?(\d{1,2}):(\d{2})$`)
	namedClockRe = regexp.MustCompile(`(?:^|\s)(?:at\s+)?(noon|midnight)$`)
)

var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts date phrases ("2024-03-01", "tomorrow at 1pm", "next friday",
// "in 3 days") to absolute time.Time values. Phrases that name a day without a
// time of day resolve to midnight. Phrases outside the built-in grammar are
// handed to a natural-language fallback.
type Parser struct {
	location *time.Location
	fallback *when.Parser
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Parser{location: loc, fallback: w}, nil
}

// Location returns the timezone phrases are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
	if normalized == "" {
		return time.Time{}, fmt.Errorf("%w: empty phrase", ErrUnresolvablePhrase)
	}
	base := baseTime.In(p.location)

	datePart, c, hasClock, err := splitClock(normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnresolvablePhrase, phrase, err)
	}

	if day, ok := p.parseDay(datePart, base); ok {
		if hasClock {
			return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, 0, 0, p.location), nil
		}
		return day, nil
	}

	r, err := p.fallback.Parse(normalized, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnresolvablePhrase, phrase, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnresolvablePhrase, phrase)
	}
	return r.Time.In(p.location), nil
}

// parseDay resolves the date part of a phrase to midnight of that day.
func (p *Parser) parseDay(datePart string, base time.Time) (time.Time, bool) {
	datePart = strings.TrimPrefix(datePart, "on ")

	switch datePart {
	case "", "today":
		return p.startOfDay(base), true
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), true
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), true
	case "next week":
		return p.startOfDay(base.AddDate(0, 0, 7)), true
	case "last week":
		return p.startOfDay(base.AddDate(0, 0, -7)), true
	case "next month":
		return p.startOfDay(base.AddDate(0, 1, 0)), true
	case "last month":
		return p.startOfDay(base.AddDate(0, -1, 0)), true
	case "next year":
		return p.startOfDay(base.AddDate(1, 0, 0)), true
	case "last year":
		return p.startOfDay(base.AddDate(-1, 0, 0)), true
	}

	if strings.HasPrefix(datePart, "in ") {
		return p.parseInDuration(datePart, base)
	}

	if t, ok := p.parseWeekday(datePart, base); ok {
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, datePart, p.location); err == nil {
			return t, true
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.ParseInLocation(layout, datePart, p.location); err == nil {
			return time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location), true
		}
	}

	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, bool) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), true
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), true
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), true
	case strings.HasPrefix(unit, "year"):
		return p.startOfDay(baseTime.AddDate(amount, 0, 0)), true
	}
	return time.Time{}, false
}

// parseWeekday handles "friday", "this friday", "next friday" and "last friday".
// A bare or "this" weekday is the next occurrence including today; "next" is
// strictly after today and "last" strictly before.
func (p *Parser) parseWeekday(relative string, baseTime time.Time) (time.Time, bool) {
	modifier, dayName, found := strings.Cut(relative, " ")
	if !found {
		modifier, dayName = "", relative
	}

	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, false
	}

	diff := int(targetWeekday - baseTime.Weekday())
	switch modifier {
	case "", "this":
		if diff < 0 {
			diff += 7
		}
	case "next":
		if diff <= 0 {
			diff += 7
		}
	case "last":
		if diff >= 0 {
			diff -= 7
		}
	default:
		return time.Time{}, false
	}

	return p.startOfDay(baseTime.AddDate(0, 0, diff)), true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// splitClock separates a trailing time of day ("1pm", "at 13:00", "noon") from
// the rest of the phrase.
func splitClock(phrase string) (string, clock, bool, error) {
	if loc := clock12Re.FindStringSubmatchIndex(phrase); loc != nil {
		hour, _ := strconv.Atoi(phrase[loc[2]:loc[3]])
		minute := 0
		if loc[4] >= 0 {
			minute, _ = strconv.Atoi(phrase[loc[4]:loc[5]])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return "", clock{}, false, fmt.Errorf("invalid time of day %q", phrase[loc[0]:loc[1]])
		}
		hour %= 12
		if phrase[loc[6]:loc[7]] == "pm" {
			hour += 12
		}
		return strings.TrimSpace(phrase[:loc[0]]), clock{hour: hour, minute: minute}, true, nil
	}

	if loc := clock24Re.FindStringSubmatchIndex(phrase); loc != nil {
		hour, _ := strconv.Atoi(phrase[loc[2]:loc[3]])
		minute, _ := strconv.Atoi(phrase[loc[4]:loc[5]])
		if hour > 23 || minute > 59 {
			return "", clock{}, false, fmt.Errorf("invalid time of day %q", phrase[loc[0]:loc[1]])
		}
		return strings.TrimSpace(phrase[:loc[0]]), clock{hour: hour, minute: minute}, true, nil
	}

	if loc := namedClockRe.FindStringSubmatchIndex(phrase); loc != nil {
		c := clock{}
		if phrase[loc[2]:loc[3]] == "noon" {
			c.hour = 12
		}
		return strings.TrimSpace(phrase[:loc[0]]), c, true, nil
	}

	return phrase, clock{}, false, nil
}
