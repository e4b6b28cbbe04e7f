package parser_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"nb-query/internal/model"
	"nb-query/internal/query/parser"
	"nb-query/pkg/datemath"
)

var clockNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return clockNow }

func newParser(t *testing.T) *parser.Parser {
	t.Helper()
	dp, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return parser.New(dp, fixedNow)
}

// noonResolver resolves every phrase to noon of the reference day.
type noonResolver struct {
	calls []string
}

func (r *noonResolver) Parse(phrase string, ref time.Time) (time.Time, error) {
	r.calls = append(r.calls, phrase)
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 12, 0, 0, 0, ref.Location()), nil
}

type failingResolver struct{}

func (failingResolver) Parse(phrase string, ref time.Time) (time.Time, error) {
	return time.Time{}, datemath.ErrUnresolvablePhrase
}

func row(id, text string) model.Row {
	return model.Row{ID: id, Href: "/" + id, Text: "[" + id + "] " + text, VisibleText: text}
}

func TestParse(t *testing.T) {
	p := newParser(t)
	at := func(h, m int) *time.Time {
		v := time.Date(2024, 3, 1, h, m, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name string
		row  model.Row
		want model.FoundItem
	}{
		{
			name: "todo with tags and time",
			row:  row("home:11", "✔️ Pick up soap #important #chores (@ 2024-03-01 1pm)"),
			want: model.FoundItem{
				ID: "home:11", URL: "/home:11", Title: "Pick up soap",
				Type: model.ItemTypeTodo, Icon: "✔️",
				Tags: []string{"important", "chores"}, DueDate: at(13, 0),
			},
		},
		{
			name: "done todo with bare date",
			row:  row("home:9", "✅ Pick up Hayes #family (@2024-03-01)"),
			want: model.FoundItem{
				ID: "home:9", URL: "/home:9", Title: "Pick up Hayes",
				Type: model.ItemTypeTodo, Icon: "✔️",
				Tags: []string{"family"}, DueDate: at(0, 0),
			},
		},
		{
			name: "pinned note with filename prefix",
			row:  row("home:6", "📌 📔 ideas.md · Pinned todo ideas #ideas"),
			want: model.FoundItem{
				ID: "home:6", URL: "/home:6", Title: "Pinned todo ideas",
				Type: model.ItemTypeNote, Icon: "📔", IsPinned: true,
				Tags: []string{"ideas"},
			},
		},
		{
			name: "folder",
			row:  row("home:2", "📂 todos"),
			want: model.FoundItem{
				ID: "home:2", URL: "/home:2", Title: "todos",
				Type: model.ItemTypeFolder, Icon: "📂", Tags: []string{},
			},
		},
		{
			name: "no glyph defaults to note",
			row:  row("home:14", "Journal   mentions todo"),
			want: model.FoundItem{
				ID: "home:14", URL: "/home:14", Title: "Journal mentions todo",
				Type: model.ItemTypeNote, Icon: "📔", Tags: []string{},
			},
		},
		{
			name: "duplicate tags collapse",
			row:  row("home:4", "🔖 Review #reading #work #reading"),
			want: model.FoundItem{
				ID: "home:4", URL: "/home:4", Title: "Review",
				Type: model.ItemTypeBookmark, Icon: "🔖",
				Tags: []string{"reading", "work"},
			},
		},
		{
			name: "missing id falls back to href",
			row:  model.Row{Href: "/home:3", Text: "📄 todo-guide.pdf", VisibleText: "📄 todo-guide.pdf"},
			want: model.FoundItem{
				ID: "/home:3", URL: "/home:3", Title: "todo-guide.pdf",
				Type: model.ItemTypeDoc, Icon: "📄", Tags: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.row)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTitleHasNoTagsOrDue(t *testing.T) {
	p := newParser(t)
	texts := []string{
		"✔️ Respond to Manas #important #work (@2024-02-27)",
		"📔 notes.md · Weekly #plan-ahead review",
		"✔️ #(@today)work spliced",
		"🔖 #a#b##c",
	}
	for _, text := range texts {
		item, err := p.Parse(row("home:1", text))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		if strings.Contains(item.Title, "(@") {
			t.Errorf("title %q still has a due annotation", item.Title)
		}
		for _, tag := range item.Tags {
			if strings.Contains(item.Title, "#"+tag) {
				t.Errorf("title %q still has tag %q", item.Title, tag)
			}
		}
		if item.Title != strings.TrimSpace(item.Title) || strings.Contains(item.Title, "  ") {
			t.Errorf("title %q is not whitespace-collapsed", item.Title)
		}
	}
}

func TestParseTagRoundTrip(t *testing.T) {
	p := newParser(t)
	item, err := p.Parse(row("home:1", "📔 Plan #work #urgent"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff([]string{"work", "urgent"}, item.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFloorsBareDates(t *testing.T) {
	r := &noonResolver{}
	p := parser.New(r, fixedNow)

	bare, err := p.Parse(row("home:1", "✔️ Bare (@tomorrow)"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if bare.DueDate == nil || bare.DueDate.Hour() != 0 || bare.DueDate.Minute() != 0 {
		t.Errorf("bare phrase due = %v, want midnight", bare.DueDate)
	}

	timed, err := p.Parse(row("home:2", "✔️ Timed (@ tomorrow noon )"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if timed.DueDate == nil || timed.DueDate.Hour() != 12 {
		t.Errorf("timed phrase due = %v, want noon", timed.DueDate)
	}

	phrase, err := p.Parse(row("home:3", "✔️ Weekly review (@ next friday)"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if phrase.DueDate == nil || phrase.DueDate.Hour() != 12 || phrase.DueDate.Minute() != 0 {
		t.Errorf("multi-word phrase due = %v, want resolver time 12:00 kept", phrase.DueDate)
	}

	if diff := cmp.Diff([]string{"tomorrow", "tomorrow noon", "next friday"}, r.calls); diff != "" {
		t.Errorf("resolver phrases mismatch (-want +got):\n%s", diff)
	}
}

func TestParseResolverError(t *testing.T) {
	p := parser.New(failingResolver{}, fixedNow)

	_, err := p.Parse(row("home:5", "✔️ Broken (@ someday maybe)"))
	if !errors.Is(err, datemath.ErrUnresolvablePhrase) {
		t.Fatalf("Parse() error = %v, want ErrUnresolvablePhrase", err)
	}
	if !strings.Contains(err.Error(), "home:5") {
		t.Errorf("error %q does not name the row", err)
	}

	if _, err := p.Parse(row("home:6", "✔️ No annotation")); err != nil {
		t.Errorf("row without annotation should not call the resolver: %v", err)
	}
}

func TestParseAll(t *testing.T) {
	p := newParser(t)
	items, err := p.ParseAll([]model.Row{
		row("home:1", "📔 One"),
		row("home:2", "📂 Two"),
	})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(items) != 2 || items[0].ID != "home:1" || items[1].ID != "home:2" {
		t.Errorf("ParseAll() = %+v, want two items in order", items)
	}

	bad := parser.New(failingResolver{}, fixedNow)
	if _, err := bad.ParseAll([]model.Row{row("home:1", "✔️ x (@later)")}); err == nil {
		t.Error("ParseAll() expected error")
	}
}
