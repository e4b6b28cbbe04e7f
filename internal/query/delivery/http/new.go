package http

import (
	"nb-query/internal/query"
	"nb-query/pkg/log"
)

type handler struct {
	l  log.Logger
	uc query.UseCase
}

// New creates a new HTTP handler for the query domain.
func New(l log.Logger, uc query.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
