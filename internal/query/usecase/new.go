package usecase

import (
	"time"

	"nb-query/internal/query/filter"
	"nb-query/internal/query/parser"
	"nb-query/internal/query/render"
	"nb-query/internal/query/repository"
	"nb-query/pkg/log"
)

// PhraseResolver resolves free-text date phrases for due annotations and filters.
type PhraseResolver interface {
	Parse(phrase string, ref time.Time) (time.Time, error)
}

// implUseCase is the private implementation of query.UseCase.
type implUseCase struct {
	repo     repository.NotesRepository
	parser   *parser.Parser
	pipeline *filter.Pipeline
	renderer *render.Renderer
	now      func() time.Time
	l        log.Logger
}

// New creates a new query UseCase implementation. A nil clock means time.Now.
func New(
	l log.Logger,
	repo repository.NotesRepository,
	phrases PhraseResolver,
	cal filter.Calendar,
	renderer *render.Renderer,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		repo:     repo,
		parser:   parser.New(phrases, now),
		pipeline: filter.NewPipeline(filter.NewDueResolver(phrases, cal)),
		renderer: renderer,
		now:      now,
		l:        l,
	}
}
