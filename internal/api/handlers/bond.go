package handlers

import (
	"net/http"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/request"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// BondHandler handles HTTP requests for bond endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the bond, interest and yield services.
type BondHandler struct {
	bondService     *service.BondService
	interestService *service.InterestService
	yieldService    *service.YieldService
}

// NewBondHandler creates a new BondHandler with the provided service dependencies.
func NewBondHandler(
	bondService *service.BondService,
	interestService *service.InterestService,
	yieldService *service.YieldService,
) *BondHandler {
	return &BondHandler{
		bondService:     bondService,
		interestService: interestService,
		yieldService:    yieldService,
	}
}

// Bonds handles GET requests to retrieve all bonds.
//
// Endpoint: GET /api/bond
// Response: 200 OK with array of Bond, ordered by maturity date
// Error: 500 Internal Server Error if retrieval fails
func (h *BondHandler) Bonds(w http.ResponseWriter, r *http.Request) {
	bonds, err := h.bondService.GetBonds(r.Context())
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToRetrieveBonds.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, bonds)
}

// GetBond handles GET requests to retrieve a single bond.
//
// Endpoint: GET /api/bond/{id}
// Response: 200 OK with Bond
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the bond does not exist
func (h *BondHandler) GetBond(w http.ResponseWriter, r *http.Request) {
	id, err := bondID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBondID.Error(), err.Error())
		return
	}

	bond, err := h.bondService.GetBond(r.Context(), id)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToRetrieveBond.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, bond)
}

// CreateBond handles POST requests to add a bond to the portfolio.
//
// Endpoint: POST /api/bond
// Request Body: CreateBondRequest; either purchasePrice or purchasePricePer100
// Response: 201 Created with Bond
// Error: 400 Bad Request if validation fails, details holds one message per field
// Error: 500 Internal Server Error if creation fails
func (h *BondHandler) CreateBond(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateBondRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bond, err := h.bondService.CreateBond(r.Context(), req)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToCreateBond.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, bond)
}

// UpdateBond handles PUT requests to update an existing bond.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /api/bond/{id}
// Request Body: UpdateBondRequest (all fields optional)
// Response: 200 OK with updated Bond
// Error: 400 Bad Request if the ID is invalid or validation fails
// Error: 404 Not Found if the bond does not exist
// Error: 500 Internal Server Error if update fails
func (h *BondHandler) UpdateBond(w http.ResponseWriter, r *http.Request) {
	id, err := bondID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBondID.Error(), err.Error())
		return
	}

	req, err := parseJSON[request.UpdateBondRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bond, err := h.bondService.UpdateBond(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToUpdateBond.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, bond)
}

// DeleteBond handles DELETE requests to remove a bond.
//
// Endpoint: DELETE /api/bond/{id}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid
// Error: 404 Not Found if the bond does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *BondHandler) DeleteBond(w http.ResponseWriter, r *http.Request) {
	id, err := bondID(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBondID.Error(), err.Error())
		return
	}

	if err := h.bondService.DeleteBond(r.Context(), id); err != nil {
		respondServiceError(w, apperrors.ErrFailedToDeleteBond.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Payments handles GET requests for the future coupon payments of one bond.
//
// Endpoint: GET /api/bond/{id}/payments?as_of=YYYY-MM-DD
// Response: 200 OK with array of InterestPayment, empty for zero-coupon and matured bonds
// Error: 400 Bad Request if the ID or as_of is invalid
// Error: 404 Not Found if the bond does not exist
func (h *BondHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id, asOf, ok := bondRequest(w, r)
	if !ok {
		return
	}

	payments, err := h.interestService.BondPayments(r.Context(), id, asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetSchedule.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, payments)
}

// NextPayment handles GET requests for the next coupon payment of one bond.
//
// Endpoint: GET /api/bond/{id}/next-payment?as_of=YYYY-MM-DD
// Response: 200 OK with InterestPayment
// Error: 400 Bad Request if the ID or as_of is invalid
// Error: 404 Not Found if the bond does not exist or has no coupon left
func (h *BondHandler) NextPayment(w http.ResponseWriter, r *http.Request) {
	id, asOf, ok := bondRequest(w, r)
	if !ok {
		return
	}

	payment, err := h.interestService.NextPayment(r.Context(), id, asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetSchedule.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, payment)
}

// Yields handles GET requests for the yield metrics of one bond.
//
// Endpoint: GET /api/bond/{id}/yields?as_of=YYYY-MM-DD
// Response: 200 OK with BondYields
// Error: 400 Bad Request if the ID or as_of is invalid
// Error: 404 Not Found if the bond does not exist
func (h *BondHandler) Yields(w http.ResponseWriter, r *http.Request) {
	id, asOf, ok := bondRequest(w, r)
	if !ok {
		return
	}

	yields, err := h.yieldService.BondYields(r.Context(), id, asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetYields.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, yields)
}
