package model

// Row is one raw search result as returned by the note server, before parsing.
type Row struct {
	ID          string // machine identifier, e.g. "home:12"
	Href        string // link target of the result
	Text        string // full text content, identifier markup included
	VisibleText string // text content with identifier markup removed
}
