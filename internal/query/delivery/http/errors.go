package http

import (
	"errors"
	"net/http"

	"nb-query/internal/query"
	"nb-query/pkg/datemath"
	pkgErrors "nb-query/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, datemath.ErrUnresolvablePhrase),
		errors.Is(err, query.ErrInvalidLimit),
		errors.Is(err, query.ErrInvalidPage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, query.ErrNoteServer):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, query.ErrNoteServer.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
