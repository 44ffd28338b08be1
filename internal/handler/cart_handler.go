package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"grill-master/internal/middleware"
	"grill-master/internal/model"
	"grill-master/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests. The session cookie set by the
// session middleware scopes every operation to one cart.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID string `json:"productId"`
}

// updateItemRequest is the payload for setting a line's quantity.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.View(middleware.SessionID(r.Context())))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Clear(middleware.SessionID(r.Context())))
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "productId is required", h.logger)
		return
	}

	summary, err := h.service.Add(r.Context(), middleware.SessionID(r.Context()), req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// UpdateItem handles PUT /api/cart/items/{productId} requests. A quantity of
// zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := itemProductID(r.URL.Path)
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "product ID is required", h.logger)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.UpdateQuantity(middleware.SessionID(r.Context()), productID, req.Quantity))
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests. Removing an
// absent line is a silent no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := itemProductID(r.URL.Path)
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "product ID is required", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Remove(middleware.SessionID(r.Context()), productID))
}

// itemProductID extracts the product ID from /api/cart/items/{productId}.
func itemProductID(path string) string {
	return strings.TrimPrefix(path, "/api/cart/items/")
}
