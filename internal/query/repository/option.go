package repository

// SearchOptions holds the parameters of a note server search.
type SearchOptions struct {
	Query string // Raw search text; " " matches everything
}
