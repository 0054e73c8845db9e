package http

import (
	"context"
	"errors"
	"net/http"

	"gateguard/internal/adapters/http/response"
	httpErrors "gateguard/internal/platform/http"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/validator"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders the error a handler returns. Typed HTTP errors keep
// their status, a validation error becomes 422, and anything else is logged
// and hidden behind a 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		log := logger.FromContext(r.Context()).With(
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		)

		if httpErr, ok := httpErrors.StatusOf(err); ok {
			if httpErr.StatusCode >= http.StatusInternalServerError {
				log.Error("Request failed", logger.Int("status", httpErr.StatusCode), logger.Error(err))
			}
			response.RespondError(w, httpErr.StatusCode, httpErr)
			return
		}

		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			response.RespondValidationError(w, http.StatusUnprocessableEntity, validationErr)
			return
		}

		if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
			log.Debug("Client went away", logger.Error(err))
			return
		}

		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Request timed out", logger.Error(err))
			response.RespondError(w, http.StatusServiceUnavailable, errors.New("request timed out"))
			return
		}

		log.Error("Unexpected server error", logger.String("remote_addr", r.RemoteAddr), logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
