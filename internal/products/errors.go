package products

import (
	"errors"
	"net/http"

	"ProductsAPI/pkg/kit"
)

var ErrNotFound = errors.New("product not found")

var (
	ErrUnauthorized     = kit.NewError(http.StatusUnauthorized, "Unauthorized: Invalid API key")
	ErrMissingFields    = kit.NewError(http.StatusBadRequest, "Validation Error: Missing fields")
	ErrInvalidBody      = kit.NewError(http.StatusBadRequest, "Invalid JSON body")
	ErrProductNotFound  = kit.NewError(http.StatusNotFound, "Product not found")
	ErrRouteNotFound    = kit.NewError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	ErrMethodNotAllowed = kit.NewError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
)

var ErrBodyTooLarge = kit.NewError(http.StatusRequestEntityTooLarge, "Request body too large")
