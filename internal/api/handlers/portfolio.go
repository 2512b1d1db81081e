package handlers

import (
	"net/http"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api/response"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Overview handles GET requests for the portfolio summary screen.
//
// Endpoint: GET /api/portfolio/overview?as_of=YYYY-MM-DD
// Response: 200 OK with PortfolioOverview
// Error: 400 Bad Request if as_of is invalid
// Error: 500 Internal Server Error if the bonds cannot be loaded
func (h *PortfolioHandler) Overview(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	overview, err := h.portfolioService.Overview(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, apperrors.ErrFailedToGetOverview.Error(), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}
