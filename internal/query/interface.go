package query

import (
	"context"

	"nb-query/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Execute runs one query and renders its result.
	Execute(ctx context.Context, spec Spec) (Output, error)
	// Find runs one query and returns the filtered items without rendering them.
	Find(ctx context.Context, spec Spec) ([]model.FoundItem, error)
	// RenderPage replaces every query placeholder of an HTML page with its output.
	RenderPage(ctx context.Context, page string) (PageOutput, error)
}
