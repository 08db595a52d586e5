package repayment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agrimart/repayment/internal/purchase"
	"github.com/agrimart/repayment/internal/tariff"
	"github.com/agrimart/repayment/pkg/middleware"
	"github.com/agrimart/repayment/pkg/response"
)

// Handler handles HTTP requests for repayment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new repayment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for repayment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{purchaseId}/quote", h.Quote)
	r.Get("/{purchaseId}/schedule", h.Schedule)
	r.Post("/{purchaseId}", h.Initiate)

	return r
}

// Quote handles GET /repayments/{purchaseId}/quote
// @Summary      Get a settlement quote
// @Description  Computes the tier-adjusted amount payable today for a credit purchase
// @Tags         repayments
// @Produce      json
// @Param        purchaseId path string true "Purchase ID"
// @Success      200 {object} response.APIResponse{data=CalculationResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse "Repayment restricted on the purchase date"
// @Router       /repayments/{purchaseId}/quote [get]
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	vendorID, purchaseID, ok := h.identify(w, r)
	if !ok {
		return
	}

	calc, err := h.service.Quote(r.Context(), vendorID, purchaseID)
	if err != nil {
		h.writeError(w, err, "Failed to compute settlement quote")
		return
	}

	response.JSON(w, http.StatusOK, calc.ToResponse())
}

// Schedule handles GET /repayments/{purchaseId}/schedule
// @Summary      Get the settlement schedule
// @Description  Returns the forward-looking day-by-day payable amounts across the tier schedule
// @Tags         repayments
// @Produce      json
// @Param        purchaseId path string true "Purchase ID"
// @Success      200 {object} response.APIResponse{data=[]ProjectionPointResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /repayments/{purchaseId}/schedule [get]
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	vendorID, purchaseID, ok := h.identify(w, r)
	if !ok {
		return
	}

	points, err := h.service.Schedule(r.Context(), vendorID, purchaseID)
	if err != nil {
		h.writeError(w, err, "Failed to compute settlement schedule")
		return
	}

	pointResponses := make([]ProjectionPointResponse, len(points))
	for i, point := range points {
		pointResponses[i] = point.ToResponse()
	}

	response.JSON(w, http.StatusOK, pointResponses)
}

// Initiate handles POST /repayments/{purchaseId}
// @Summary      Initiate a repayment
// @Description  Validates a full or partial settlement request and opens a payment order with the gateway
// @Tags         repayments
// @Accept       json
// @Produce      json
// @Param        purchaseId path string true "Purchase ID"
// @Param        request body InitiateRepaymentRequest true "Repayment request"
// @Success      201 {object} response.APIResponse{data=HandoffResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse "Repayment restricted on the purchase date"
// @Router       /repayments/{purchaseId} [post]
func (h *Handler) Initiate(w http.ResponseWriter, r *http.Request) {
	vendorID, purchaseID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req InitiateRepaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.InitiateRepayment(r.Context(), vendorID, purchaseID, req.Mode, req.Amount)
	if err != nil {
		h.writeError(w, err, "Failed to initiate repayment")
		return
	}

	response.JSON(w, http.StatusCreated, result.ToResponse())
}

// identify pulls the acting vendor from context and the purchase ID from the URL
func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (int64, uuid.UUID, bool) {
	vendorID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		vendorID = 1
	}

	purchaseID, err := uuid.Parse(chi.URLParam(r, "purchaseId"))
	if err != nil {
		response.BadRequest(w, "Invalid purchase ID")
		return 0, uuid.Nil, false
	}

	return vendorID, purchaseID, true
}

// writeError maps repayment errors onto HTTP responses. The Day-0 restriction
// is surfaced as 422 with its earliest repayment date so clients can show it
// apart from ordinary validation failures.
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var day0Err *Day0RestrictionError
	if errors.As(err, &day0Err) {
		response.UnprocessableEntity(w, "DAY0_RESTRICTION", day0Err.Error(), map[string]interface{}{
			"earliest_repayment_date": day0Err.EarliestRepaymentDate.Format("2006-01-02"),
		})
		return
	}

	var belowMinErr *BelowMinimumError
	if errors.As(err, &belowMinErr) {
		response.ErrorWithDetails(w, http.StatusBadRequest, "BELOW_MINIMUM_PARTIAL_PAYMENT", belowMinErr.Error(), map[string]interface{}{
			"minimum_amount": belowMinErr.MinimumAmount,
			"entered_amount": belowMinErr.EnteredAmount,
		})
		return
	}

	var confErr *tariff.ConfigurationError
	if errors.As(err, &confErr) {
		// Configuration faults are for the operator, not the vendor
		log.Printf("Tariff configuration error during repayment: %v", confErr)
		response.InternalError(w, "Rate tier configuration is invalid")
		return
	}

	switch {
	case errors.Is(err, purchase.ErrPurchaseNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, purchase.ErrNotPurchaseOwner):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrAlreadySettled):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrInvalidAmount):
		response.Error(w, http.StatusBadRequest, "INVALID_AMOUNT", err.Error())
	case errors.Is(err, ErrAmountExceedsPayable):
		response.Error(w, http.StatusBadRequest, "AMOUNT_EXCEEDS_PAYABLE", err.Error())
	case errors.Is(err, ErrUnknownPaymentMode):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
