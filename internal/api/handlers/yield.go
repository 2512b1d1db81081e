package handlers

import (
	"net/http"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// YieldHandler handles HTTP requests for portfolio-level yields.
type YieldHandler struct {
	yieldService *service.YieldService
}

// NewYieldHandler creates a new YieldHandler.
func NewYieldHandler(yieldService *service.YieldService) *YieldHandler {
	return &YieldHandler{
		yieldService: yieldService,
	}
}

// AverageYieldResponse is the weighted average of a single yield type.
type AverageYieldResponse struct {
	Type  model.YieldType `json:"type"`
	AsOf  string          `json:"asOf"`
	Value float64         `json:"value"`
}

// Average handles GET requests for the weighted average of one yield type.
// type accepts COUPON_RATE, CURRENT_YIELD or YIELD_TO_MATURITY, or the short
// forms coupon, current and ytm.
//
// Endpoint: GET /api/yield/average?type=ytm&as_of=YYYY-MM-DD
// Response: 200 OK with AverageYieldResponse
// Error: 400 Bad Request if type is missing or unknown, or as_of is invalid
func (h *YieldHandler) Average(w http.ResponseWriter, r *http.Request) {
	yieldType, err := model.ParseYieldType(r.URL.Query().Get("type"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidYieldType.Error(), err.Error())
		return
	}
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	value, err := h.yieldService.Average(r.Context(), yieldType, asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetYields.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, AverageYieldResponse{
		Type:  yieldType,
		AsOf:  asOf.Format("2006-01-02"),
		Value: value,
	})
}

// Averages handles GET requests for the weighted average of every yield type.
//
// Endpoint: GET /api/yield?as_of=YYYY-MM-DD
// Response: 200 OK with an object keyed by yield type
func (h *YieldHandler) Averages(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	yields, err := h.yieldService.Averages(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetYields.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, yields)
}
