package purchase

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agrimart/repayment/pkg/middleware"
	"github.com/agrimart/repayment/pkg/response"
)

// Handler handles HTTP requests for purchase operations
type Handler struct {
	service *Service
}

// NewHandler creates a new purchase handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for purchase endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}

// Create handles POST /purchases
// @Summary      Record a credit purchase
// @Description  Records a credit purchase for the acting vendor; the purchase date starts the settlement clock
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request body CreatePurchaseRequest true "Purchase creation request"
// @Success      201 {object} response.APIResponse{data=PurchaseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /purchases [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		vendorID = 1
	}

	var req CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), vendorID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidPrincipal) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create purchase")
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// GetByID handles GET /purchases/{id}
// @Summary      Get purchase by ID
// @Tags         purchases
// @Produce      json
// @Param        id path string true "Purchase ID"
// @Success      200 {object} response.APIResponse{data=PurchaseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /purchases/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid purchase ID")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPurchaseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get purchase")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// List handles GET /purchases
// @Summary      List my purchases
// @Description  Lists credit purchases for the acting vendor
// @Tags         purchases
// @Produce      json
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} response.APIResponse{data=[]PurchaseResponse}
// @Router       /purchases [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.GetVendorID(r.Context())
	if !ok {
		vendorID = 1
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	purchases, total, err := h.service.ListByVendorID(r.Context(), vendorID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list purchases")
		return
	}

	purchaseResponses := make([]*PurchaseResponse, len(purchases))
	for i, p := range purchases {
		purchaseResponses[i] = p.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, purchaseResponses, meta)
}
