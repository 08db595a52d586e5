package tariff

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrimart/repayment/pkg/middleware"
	"github.com/agrimart/repayment/pkg/response"
)

// Handler handles HTTP requests for tier table administration
type Handler struct {
	service *Service
}

// NewHandler creates a new tariff handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for tariff endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.With(middleware.RequireRole(middleware.RoleAdmin)).Put("/", h.Replace)

	return r
}

// Get handles GET /tariffs
// @Summary      Get the active rate tier table
// @Description  Returns the tier table currently applied to repayment settlement
// @Tags         tariffs
// @Produce      json
// @Success      200 {object} response.APIResponse{data=TableResponse}
// @Failure      500 {object} response.APIResponse
// @Router       /tariffs [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Load(r.Context())
	if err != nil {
		var confErr *ConfigurationError
		if errors.As(err, &confErr) {
			// Not the admin's input; log for the configuration owner
			log.Printf("Tariff configuration error: %v", confErr)
			response.InternalError(w, "Rate tier configuration is invalid")
			return
		}
		response.InternalError(w, "Failed to load rate tier table")
		return
	}

	response.JSON(w, http.StatusOK, table.ToResponse())
}

// Replace handles PUT /tariffs
// @Summary      Replace the rate tier table
// @Description  Validates and stores a new tier table (admin only)
// @Tags         tariffs
// @Accept       json
// @Produce      json
// @Param        request body ReplaceTableRequest true "New tier table"
// @Success      200 {object} response.APIResponse{data=TableResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /tariffs [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	table := req.ToTable()
	if err := h.service.Replace(r.Context(), table); err != nil {
		var confErr *ConfigurationError
		if errors.As(err, &confErr) {
			response.BadRequest(w, confErr.Error())
			return
		}
		response.InternalError(w, "Failed to replace rate tier table")
		return
	}

	response.JSON(w, http.StatusOK, table.ToResponse())
}
