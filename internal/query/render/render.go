// Package render turns filtered items into list markup or JSON.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"nb-query/internal/model"
	"nb-query/internal/query"
)

const (
	DefaultDateLayout = "2006-01-02"
	clockLayout       = "15:04"

	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

var listTmpl = template.Must(template.New("list").Parse(
	`<ul class="found-notes">{{range .}}` +
		`<li class="found-note"><span class="note"><a href="{{.URL}}">` +
		`{{if .Icon}}<span class="note-icon">{{.Icon}}</span> {{end}}` +
		`<span class="note-title">{{.Title}}</span>` +
		`{{if .Due}} <span class="note-due-date">@{{.Due}}</span>{{end}}</a>` +
		`{{if .Tags}} <span class="note-tags">{{range $i, $t := .Tags}}{{if $i}} {{end}}<a href="{{$t.URL}}">#{{$t.Name}}</a>{{end}}</span>{{end}}` +
		`</span></li>{{end}}</ul>`,
))

type tagLink struct {
	Name string
	URL  string
}

type listEntry struct {
	URL   string
	Icon  string
	Title string
	Due   string
	Tags  []tagLink
}

// Renderer formats query results.
type Renderer struct {
	searchPath string
	dateLayout string
}

// New creates a Renderer. Tag links point at searchPath; due dates use
// dateLayout, or DefaultDateLayout when empty.
func New(searchPath, dateLayout string) *Renderer {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return &Renderer{searchPath: searchPath, dateLayout: dateLayout}
}

// Render formats items in the requested format. No items renders the
// no-results text.
func (r *Renderer) Render(items []model.FoundItem, format query.Format, display query.Display) (query.Output, error) {
	if len(items) == 0 {
		return NoResults(), nil
	}

	if format == query.FormatJSON {
		body, err := JSON(items)
		if err != nil {
			return query.Output{}, err
		}
		return query.Output{Body: body, Format: query.FormatJSON, ContentType: ContentTypeJSON}, nil
	}

	body, err := r.List(items, display)
	if err != nil {
		return query.Output{}, err
	}
	return query.Output{Body: body, Format: query.FormatList, ContentType: ContentTypeHTML}, nil
}

// NoResults is the output of a query that found nothing.
func NoResults() query.Output {
	return query.Output{
		Body:        query.NoResultsText,
		Format:      query.FormatList,
		ContentType: ContentTypeText,
		NoResults:   true,
	}
}

// List renders items as a <ul class="found-notes"> list.
func (r *Renderer) List(items []model.FoundItem, display query.Display) (string, error) {
	entries := make([]listEntry, 0, len(items))
	for _, it := range items {
		e := listEntry{URL: it.URL, Title: it.Title}
		if display.Icon {
			e.Icon = it.Icon
		}
		if display.DueDate && it.DueDate != nil {
			e.Due = r.FormatDue(*it.DueDate)
		}
		if display.Tags {
			for _, tag := range it.Tags {
				e.Tags = append(e.Tags, tagLink{Name: tag, URL: query.SearchURL(r.searchPath, "#"+tag)})
			}
		}
		entries = append(entries, e)
	}

	var buf bytes.Buffer
	if err := listTmpl.Execute(&buf, entries); err != nil {
		return "", fmt.Errorf("render list: %w", err)
	}
	return buf.String(), nil
}

// FormatDue formats a due date, adding the time of day unless it is midnight.
func (r *Renderer) FormatDue(due time.Time) string {
	if due.Hour() == 0 && due.Minute() == 0 {
		return due.Format(r.dateLayout)
	}
	return due.Format(r.dateLayout + " " + clockLayout)
}

// JSON renders items as an indented JSON array.
func JSON(items []model.FoundItem) (string, error) {
	if items == nil {
		items = []model.FoundItem{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render json: %w", err)
	}
	return string(b), nil
}
