package repository

import (
	"context"

	"nb-query/internal/model"
)

// NotesRepository reads search results from the note server.
type NotesRepository interface {
	// Search runs one search and returns its result rows in server order.
	Search(ctx context.Context, opt SearchOptions) ([]model.Row, error)
}
