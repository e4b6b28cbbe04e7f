package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nb-query/internal/httpserver"
	"nb-query/internal/model"
	"nb-query/internal/query"
	"nb-query/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Execute(ctx context.Context, spec query.Spec) (query.Output, error) {
	return query.Output{Body: query.NoResultsText, ContentType: "text/plain; charset=utf-8", NoResults: true}, nil
}

func (stubUseCase) Find(ctx context.Context, spec query.Spec) ([]model.FoundItem, error) {
	return nil, nil
}

func (stubUseCase) RenderPage(ctx context.Context, page string) (query.PageOutput, error) {
	return query.PageOutput{HTML: page}, nil
}

func TestNewValidates(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", Port: 8080})
	assert.Error(t, err, "query use case is required")

	_, err = httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", QueryUseCase: stubUseCase{}})
	assert.Error(t, err, "port is required")

	_, err = httpserver.New(nil, httpserver.Config{Mode: "test", Port: 8080, QueryUseCase: stubUseCase{}})
	assert.Error(t, err, "logger is required")
}

func TestRoutes(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Logger:       log.NewNop(),
		Port:         8080,
		Mode:         "test",
		Environment:  "development",
		QueryUseCase: stubUseCase{},
	})
	require.NoError(t, err)

	for _, path := range []string{"/health", "/ready", "/live", "/api/v1/query/render?query=x", "/api/v1/query/items"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/query/render?query=x", nil))
	assert.Equal(t, query.NoResultsText, w.Body.String())
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name   string
		pinger httpserver.NotesPinger
		want   int
	}{
		{name: "no pinger", want: http.StatusOK},
		{name: "nb reachable", pinger: stubPinger{}, want: http.StatusOK},
		{name: "nb down", pinger: stubPinger{err: errors.New("nb unreachable")}, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := httpserver.New(log.NewNop(), httpserver.Config{
				Port:         8080,
				Mode:         "test",
				NotesPinger:  tt.pinger,
				QueryUseCase: stubUseCase{},
			})
			require.NoError(t, err)

			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
