// Package parser turns raw note-server rows into FoundItems.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"nb-query/internal/model"
)

var (
	tagRe = regexp.MustCompile(`#([\w-]+)`)
	dueRe = regexp.MustCompile(`\(@(.*)\)`)
)

const (
	filenameSeparator = "·"
	nbsp              = "\u00a0"
)

// PhraseResolver resolves a free-text date phrase relative to ref.
type PhraseResolver interface {
	Parse(phrase string, ref time.Time) (time.Time, error)
}

// Parser extracts FoundItems from rows. Due-date phrases are resolved relative
// to the parser clock.
type Parser struct {
	resolver PhraseResolver
	now      func() time.Time
}

// New creates a Parser. A nil clock means time.Now.
func New(resolver PhraseResolver, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{resolver: resolver, now: now}
}

// Parse builds a FoundItem from row. Missing glyphs, tags or due annotations
// fall back to defaults; only a due annotation the resolver cannot understand
// is an error.
func (p *Parser) Parse(row model.Row) (model.FoundItem, error) {
	itemType := detectType(row.Text)
	tags := extractTags(row.Text)

	due, err := p.extractDueDate(row.Text)
	if err != nil {
		return model.FoundItem{}, fmt.Errorf("row %s: %w", row.ID, err)
	}

	id := row.ID
	if id == "" {
		id = row.Href
	}

	return model.FoundItem{
		ID:       id,
		URL:      row.Href,
		Title:    extractTitle(row.VisibleText),
		Type:     itemType,
		Icon:     itemType.Icon(),
		IsPinned: strings.Contains(row.Text, model.PinGlyph),
		Tags:     tags,
		DueDate:  due,
	}, nil
}

// ParseAll parses rows in order and stops at the first error.
func (p *Parser) ParseAll(rows []model.Row) ([]model.FoundItem, error) {
	items := make([]model.FoundItem, 0, len(rows))
	for _, row := range rows {
		item, err := p.Parse(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func detectType(text string) model.ItemType {
	for _, t := range model.ItemTypes {
		for _, glyph := range t.Glyphs() {
			if strings.Contains(text, glyph) {
				return t
			}
		}
	}
	return model.ItemTypeNote
}

func extractTags(text string) []string {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		tags = append(tags, m[1])
	}
	return tags
}

// extractDueDate resolves the "(@ phrase)" annotation. A single-token phrase
// names a bare date and is floored to midnight; longer phrases keep their time.
func (p *Parser) extractDueDate(text string) (*time.Time, error) {
	m := dueRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	phrase := strings.TrimSpace(strings.ReplaceAll(m[1], nbsp, " "))
	due, err := p.resolver.Parse(phrase, p.now())
	if err != nil {
		return nil, err
	}

	if !strings.ContainsAny(phrase, " \t\n") {
		due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	}
	return &due, nil
}

func extractTitle(text string) string {
	title := strings.ReplaceAll(text, model.PinGlyph, "")
	for _, t := range model.ItemTypes {
		for _, glyph := range t.Glyphs() {
			title = strings.ReplaceAll(title, glyph, "")
		}
	}

	// Removing one token can splice the text around it into another, so strip
	// until nothing matches.
	for {
		stripped := tagRe.ReplaceAllString(dueRe.ReplaceAllString(title, ""), "")
		if stripped == title {
			break
		}
		title = stripped
	}

	if _, after, found := strings.Cut(title, filenameSeparator); found {
		title = after
	}

	title = strings.ReplaceAll(title, nbsp, " ")

	return strings.Join(strings.Fields(title), " ")
}
