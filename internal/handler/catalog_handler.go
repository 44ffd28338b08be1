package handler

import (
	"net/http"

	"grill-master/internal/model"
	"grill-master/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalog HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// GetCatalog handles GET /api/catalog requests. A backing-store failure is
// not an error here; the service already degraded to an empty catalog.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	groups := h.service.GetCatalog(r.Context())
	writeJSON(w, http.StatusOK, groups)
}
