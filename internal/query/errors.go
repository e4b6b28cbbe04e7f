package query

import "errors"

var (
	ErrNoteServer   = errors.New("note server request failed")
	ErrInvalidPage  = errors.New("invalid page markup")
	ErrInvalidLimit = errors.New("limit must be a whole number")
)
