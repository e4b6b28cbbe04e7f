package nb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"nb-query/internal/query"
	"nb-query/internal/query/repository"
	"nb-query/internal/query/repository/nb"
	"nb-query/pkg/log"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile("testdata/query_results_todos.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	r := strings.NewReplacer("{{date}}", "2024-03-01", "{{date-at-time}}", "2024-03-01 1:00pm")
	return []byte(r.Replace(string(raw)))
}

func TestNbClient(t *testing.T) {
	fixture := loadFixture(t)
	var gotQuery string

	mux := http.NewServeMux()
	mux.HandleFunc("/home:", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		if r.URL.Query().Get("--query") == "error" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(fixture)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := nb.NewClient(ts.URL+"/", "/home:", 5*time.Second)
	ctx := context.Background()

	t.Run("Search", func(t *testing.T) {
		body, err := client.Search(ctx, "#important todo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotQuery != "--query=%23important%20todo" {
			t.Errorf("unexpected raw query: %s", gotQuery)
		}
		if len(body) != len(fixture) {
			t.Errorf("body length = %d, want %d", len(body), len(fixture))
		}
	})

	t.Run("Search error status", func(t *testing.T) {
		_, err := client.Search(ctx, "error")
		if err == nil || !strings.Contains(err.Error(), "500") {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	repo := nb.New(client, "", log.NewNop())

	t.Run("Repository rows", func(t *testing.T) {
		rows, err := repo.Search(ctx, repository.SearchOptions{Query: "todo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 15 {
			t.Fatalf("got %d rows, want 15", len(rows))
		}
		if rows[14].ID != "home:5" {
			t.Errorf("last row id = %q, want the duplicate home:5", rows[14].ID)
		}
	})

	t.Run("Repository wraps failures", func(t *testing.T) {
		_, err := repo.Search(ctx, repository.SearchOptions{Query: "error"})
		if !errors.Is(err, query.ErrNoteServer) {
			t.Fatalf("expected ErrNoteServer, got %v", err)
		}
	})

	t.Run("Unreachable server", func(t *testing.T) {
		dead := nb.New(nb.NewClient("http://127.0.0.1:1", "/home:", time.Second), "", log.NewNop())
		_, err := dead.Search(ctx, repository.SearchOptions{Query: "todo"})
		if !errors.Is(err, query.ErrNoteServer) {
			t.Fatalf("expected ErrNoteServer, got %v", err)
		}
	})
}

func TestParseRows(t *testing.T) {
	rows, err := nb.ParseRows(strings.NewReader(string(loadFixture(t))), nb.DefaultRowSelector)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 15 {
		t.Fatalf("got %d rows, want 15", len(rows))
	}

	first := rows[0]
	if first.ID != "home:1" {
		t.Errorf("ID = %q", first.ID)
	}
	if first.Href != "//localhost:6789/home:1?--per-page=30&--columns=70" {
		t.Errorf("Href = %q", first.Href)
	}
	if !strings.HasPrefix(first.Text, "[home:1]") {
		t.Errorf("Text = %q, want identifier markup kept", first.Text)
	}
	if strings.Contains(first.VisibleText, "home:1") || strings.Contains(first.VisibleText, "[") {
		t.Errorf("VisibleText = %q, want identifier markup removed", first.VisibleText)
	}
	if !strings.Contains(first.VisibleText, "Groceries todo #shopping") {
		t.Errorf("VisibleText = %q", first.VisibleText)
	}

	// The clone used for VisibleText must leave the document untouched.
	if !strings.Contains(rows[1].Text, "[home:2]") {
		t.Errorf("Text = %q", rows[1].Text)
	}

	none, err := nb.ParseRows(strings.NewReader("<html><body><p>nothing</p></body></html>"), nb.DefaultRowSelector)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d rows from an empty page", len(none))
	}
}

func TestClientPing(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	client := nb.NewClient(srv.URL, "/home:", time.Second)
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	status.Store(http.StatusBadGateway)
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping() expected error for 502")
	}

	srv.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping() expected error for a closed server")
	}
}
