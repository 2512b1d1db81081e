package handlers

import (
	"net/http"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/calc"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// defaultCalendarDays is the calendar window used when to is omitted.
const defaultCalendarDays = 30

// InterestHandler handles HTTP requests for portfolio interest schedules and summaries.
type InterestHandler struct {
	interestService *service.InterestService
}

// NewInterestHandler creates a new InterestHandler.
func NewInterestHandler(interestService *service.InterestService) *InterestHandler {
	return &InterestHandler{
		interestService: interestService,
	}
}

// Schedule handles GET requests for every future payment of the portfolio.
//
// Endpoint: GET /api/interest/schedule?as_of=YYYY-MM-DD
// Response: 200 OK with array of InterestPayment in date order
// Error: 400 Bad Request if as_of is invalid
// Error: 500 Internal Server Error if the bonds cannot be loaded
func (h *InterestHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	payments, err := h.interestService.Schedule(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetSchedule.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, payments)
}

// Monthly handles GET requests for interest totals per calendar month.
//
// Endpoint: GET /api/interest/monthly?as_of=YYYY-MM-DD
// Response: 200 OK with array of MonthlyInterest ordered by year and month
func (h *InterestHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	rows, err := h.interestService.Monthly(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetSummary.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// Yearly handles GET requests for interest totals per calendar year.
//
// Endpoint: GET /api/interest/yearly?as_of=YYYY-MM-DD
// Response: 200 OK with array of YearlyInterest ordered by year
func (h *InterestHandler) Yearly(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	rows, err := h.interestService.Yearly(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetSummary.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// Calendar handles GET requests for payments grouped by date within a window.
// from defaults to today and to defaults to 30 days after from. Both ends are inclusive.
//
// Endpoint: GET /api/interest/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
// Response: 200 OK with array of CalendarDay ordered by date
// Error: 400 Bad Request if a date is invalid or from is after to
func (h *InterestHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateParam(r, "from", calc.Today())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}
	to, err := parseDateParam(r, "to", from.AddDate(0, 0, defaultCalendarDays))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	days, err := h.interestService.Calendar(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetSchedule.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, days)
}
