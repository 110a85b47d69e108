package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() ErrorEnricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() ErrorEnricher    { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher     { return WithCode(http.StatusNotFound) }

// IsNotFound reports whether err carries a 404 code.
func IsNotFound(err error) bool {
	e, ok := err.(Error)
	return ok && e.Code() == http.StatusNotFound
}
