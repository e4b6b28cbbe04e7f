package nb

import (
	"bytes"
	"context"
	"fmt"

	"nb-query/internal/model"
	"nb-query/internal/query"
	"nb-query/internal/query/repository"
	pkgLog "nb-query/pkg/log"
)

// DefaultRowSelector matches one result anchor of the nb search page.
const DefaultRowSelector = ".item-list a"

type implRepository struct {
	client   *Client
	selector string
	l        pkgLog.Logger
}

// New creates a new nb repository. An empty selector means DefaultRowSelector.
func New(client *Client, selector string, l pkgLog.Logger) repository.NotesRepository {
	if selector == "" {
		selector = DefaultRowSelector
	}
	return &implRepository{
		client:   client,
		selector: selector,
		l:        l,
	}
}

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.Row, error) {
	body, err := r.client.Search(ctx, opt.Query)
	if err != nil {
		r.l.Errorf(ctx, "nb repository: search %q failed: %v", opt.Query, err)
		return nil, fmt.Errorf("%w: %w", query.ErrNoteServer, err)
	}

	rows, err := ParseRows(bytes.NewReader(body), r.selector)
	if err != nil {
		r.l.Errorf(ctx, "nb repository: %v", err)
		return nil, fmt.Errorf("%w: %w", query.ErrNoteServer, err)
	}

	r.l.Debugf(ctx, "nb repository: search %q returned %d rows", opt.Query, len(rows))
	return rows, nil
}
