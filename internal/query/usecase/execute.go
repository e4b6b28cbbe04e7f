package usecase

import (
	"context"

	"nb-query/internal/model"
	"nb-query/internal/query"
	"nb-query/internal/query/filter"
	"nb-query/internal/query/render"
	repo "nb-query/internal/query/repository"
)

// Execute runs one query and renders the survivors. A search without rows or
// a filter that keeps nothing both render the no-results text.
func (uc *implUseCase) Execute(ctx context.Context, spec query.Spec) (query.Output, error) {
	items, err := uc.Find(ctx, spec)
	if err != nil {
		return query.Output{}, err
	}
	if len(items) == 0 {
		return render.NoResults(), nil
	}

	out, err := uc.renderer.Render(items, spec.Format, spec.Display)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute Render: %v", err)
		return query.Output{}, err
	}
	return out, nil
}

// Find searches the note server once, parses every row and filters the items.
func (uc *implUseCase) Find(ctx context.Context, spec query.Spec) ([]model.FoundItem, error) {
	rows, err := uc.repo.Search(ctx, repo.SearchOptions{Query: spec.SearchText()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Find Search: %v", err)
		return nil, err
	}
	if len(rows) == 0 {
		return []model.FoundItem{}, nil
	}

	items, err := uc.parser.ParseAll(rows)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Find ParseAll: %v", err)
		return nil, err
	}

	items, err = uc.pipeline.Apply(items, filterOptions(spec), uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "uc.Find Apply: %v", err)
		return nil, err
	}

	uc.l.Debugf(ctx, "uc.Find: %d rows, %d items kept", len(rows), len(items))
	return items, nil
}

func filterOptions(spec query.Spec) filter.Options {
	types := make([]model.ItemType, 0, len(spec.Types))
	for _, s := range spec.Types {
		// Unknown types stay in the list and match nothing.
		t, _ := model.ParseItemType(s)
		types = append(types, t)
	}

	return filter.Options{
		Types:       types,
		IncludeTags: spec.IncludeTags,
		ExcludeTags: spec.ExcludeTags,
		Due:         spec.Due,
		DueBefore:   spec.DueBefore,
		DueAfter:    spec.DueAfter,
		Limit:       spec.Limit,
	}
}
