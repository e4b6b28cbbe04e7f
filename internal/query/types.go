package query

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// NoResultsText replaces the output of a query that found nothing.
const NoResultsText = "No results found"

// Placeholder attributes of a page query element.
const (
	AttrQuery           = "data-query"
	AttrTags            = "data-tags"
	AttrFilterType      = "data-filter-type"
	AttrFilterTags      = "data-filter-tags"
	AttrFilterExclude   = "data-filter-exclude-tags"
	AttrFilterDue       = "data-filter-due"
	AttrFilterDueBefore = "data-filter-due-before"
	AttrFilterDueAfter  = "data-filter-due-after"
	AttrLimit           = "data-limit"
	AttrFormat          = "data-format"
	AttrShowIcon        = "data-show-icon"
	AttrShowDueDate     = "data-show-due-date"
	AttrShowTags        = "data-show-tags"

	// AttrQueryError marks a placeholder whose query failed.
	AttrQueryError = "data-query-error"
)

var truthyRe = regexp.MustCompile(`(?i)^(y|yes|true|1|on)$`)

// Format selects how a query result is rendered.
type Format string

const (
	FormatList Format = "list"
	FormatJSON Format = "json"
)

// ParseFormat maps an attribute value to a Format. Anything but "json" is a list.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatList
}

// Display toggles the optional parts of a list entry.
type Display struct {
	Icon    bool
	DueDate bool
	Tags    bool
}

// DefaultDisplay shows everything.
func DefaultDisplay() Display {
	return Display{Icon: true, DueDate: true, Tags: true}
}

// Spec is one query request, read from a page placeholder or an API call.
type Spec struct {
	Query       string
	Tags        []string
	Types       []string
	IncludeTags []string
	ExcludeTags []string
	Due         string
	DueBefore   string
	DueAfter    string
	Limit       int
	Format      Format
	Display     Display
}

// SearchText is the text sent to the note server: the query itself, else the
// fallback tags as "#a #b", else a single space which matches everything.
func (s Spec) SearchText() string {
	if q := strings.TrimSpace(s.Query); q != "" {
		return q
	}
	if len(s.Tags) > 0 {
		tags := make([]string, len(s.Tags))
		for i, t := range s.Tags {
			tags[i] = "#" + strings.TrimPrefix(t, "#")
		}
		return strings.Join(tags, " ")
	}
	return " "
}

// SpecFromAttributes builds a Spec from attribute lookups such as a page
// element's attributes. Missing display toggles default to shown.
func SpecFromAttributes(attr func(name string) (string, bool)) (Spec, error) {
	get := func(name string) string {
		v, _ := attr(name)
		return strings.TrimSpace(v)
	}
	show := func(name string) bool {
		v, ok := attr(name)
		if !ok {
			return true
		}
		return IsTruthy(v)
	}

	spec := Spec{
		Query:       get(AttrQuery),
		Tags:        SplitList(get(AttrTags)),
		Types:       SplitList(get(AttrFilterType)),
		IncludeTags: SplitList(get(AttrFilterTags)),
		ExcludeTags: SplitList(get(AttrFilterExclude)),
		Due:         get(AttrFilterDue),
		DueBefore:   get(AttrFilterDueBefore),
		DueAfter:    get(AttrFilterDueAfter),
		Format:      ParseFormat(get(AttrFormat)),
		Display: Display{
			Icon:    show(AttrShowIcon),
			DueDate: show(AttrShowDueDate),
			Tags:    show(AttrShowTags),
		},
	}

	if v := get(AttrLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidLimit, v)
		}
		spec.Limit = n
	}

	return spec, nil
}

// IsTruthy reports whether a toggle value means "on" (y, yes, true, 1 or on).
func IsTruthy(v string) bool {
	return truthyRe.MatchString(strings.TrimSpace(v))
}

// SplitList splits a comma separated attribute, dropping empty entries and a
// leading "#" on each entry.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), "#")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SearchURL builds "{searchPath}?--query={text}" with the text percent-encoded
// so that spaces become %20 and "#" becomes %23.
func SearchURL(searchPath, text string) string {
	return searchPath + "?--query=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Output is the rendered result of one query.
type Output struct {
	Body        string
	Format      Format
	ContentType string
	NoResults   bool
}

// QueryFailure describes one placeholder whose query failed.
type QueryFailure struct {
	Index int
	Query string
	Err   error
}

// PageOutput is a page with its query placeholders replaced.
type PageOutput struct {
	HTML     string
	Queries  int
	Failures []QueryFailure
}
