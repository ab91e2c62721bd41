package kit

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal Server Error"

// HTTPError is a failure that already knows its response status.
type HTTPError struct {
	Status  int
	Message string
}

func NewError(status int, msg string) *HTTPError {
	return &HTTPError{Status: status, Message: msg}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HandlerFunc is an http.HandlerFunc that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc. A returned error is written by WriteErr;
// fn must not have written a response in that case.
func Handle(log *zap.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteErr(w, r, log, err)
		}
	}
}

// WriteErr serializes err as {"error": message}. Errors without a status are
// logged and reported as 500.
func WriteErr(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var he *HTTPError
	if errors.As(err, &he) && he.Status != 0 {
		msg := he.Message
		if msg == "" {
			msg = http.StatusText(he.Status)
		}
		WriteError(w, he.Status, msg)
		return
	}

	if log != nil {
		log.Error("request failed",
			zap.Error(err),
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	}
	WriteError(w, http.StatusInternalServerError, internalErrorMessage)
}
