package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

var errMalformedBody = errors.New("request body is not valid JSON")

// writeError converts a domain error to a status code and body.
// Unknown errors are logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields})

	case errors.Is(err, domain.ErrFetchFailed):
		h.logger.Warn("catalog unavailable", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Failed to load products"})

	case errors.Is(err, domain.ErrMissingUser):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "user id is required"})

	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrDogNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrBreedNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundMessage(err)})

	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSize),
		errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrInvalidSuggestionType),
		errors.Is(err, errMalformedBody):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, context.Canceled):
		// The client went away; nobody reads the body.
		w.WriteHeader(499)

	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{
		domain.ErrProductNotFound,
		domain.ErrDogNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrBreedNotFound,
		domain.ErrReviewNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "not found"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errMalformedBody
	}
	return nil
}
