package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/validation"
)

// maxBodyBytes caps request bodies; a bond is a few hundred bytes.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T. Unknown fields are rejected so
// that a misspelt field is not silently dropped.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	return req, nil
}

// parseAsOf reads the optional as_of query parameter.
// Defaults to today (UTC) when absent.
func parseAsOf(r *http.Request) (time.Time, error) {
	return parseDateParam(r, "as_of", calc.Today())
}

// parseDateParam reads a YYYY-MM-DD query parameter, falling back to def.
func parseDateParam(r *http.Request, name string, def time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def, nil
	}
	t, err := validation.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", apperrors.ErrInvalidDate, name, err)
	}
	return t, nil
}

// bondID returns the {id} path parameter.
// ValidateBondIDMiddleware has already rejected malformed values.
func bondID(r *http.Request) (int64, error) {
	return validation.ValidateID(chi.URLParam(r, "id"))
}

// respondServiceError maps service errors onto HTTP status codes.
// Validation failures return their field map as details.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
	case errors.Is(err, apperrors.ErrBondNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrBondNotFound.Error(), err.Error())
	case errors.Is(err, apperrors.ErrNoUpcomingPayment):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrNoUpcomingPayment.Error(), err.Error())
	case errors.Is(err, apperrors.ErrInvalidBondID),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrInvalidYieldType):
		response.RespondError(w, http.StatusBadRequest, message, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}

// bondRequest reads the bond ID and as_of date shared by the per-bond
// calculation endpoints. It writes a 400 response and returns false on error.
func bondRequest(w http.ResponseWriter, r *http.Request) (int64, time.Time, bool) {
	id, err := bondID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBondID.Error(), err.Error())
		return 0, time.Time{}, false
	}
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return 0, time.Time{}, false
	}
	return id, asOf, true
}
