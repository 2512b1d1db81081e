// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/validation"
)

// ValidateBondIDMiddleware validates that the id URL parameter is present and is a positive integer.
// Returns 400 Bad Request if the bond ID is missing or invalid.
// This middleware should be applied to routes that require a bond ID in the URL path.
//
// Example usage in router:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateBondIDMiddleware)
//	    r.Get("/", handler.GetBond)
//	    r.Put("/", handler.UpdateBond)
//	})
func ValidateBondIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "bond ID is required", "")
			return
		}

		if _, err := validation.ValidateID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBondID.Error(), err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
