package handler

import (
	"net/http"

	"grill-master/internal/model"
	"grill-master/internal/service"

	"github.com/rs/zerolog"
)

// TableHandler handles restaurant table HTTP requests.
type TableHandler struct {
	service service.TableService
	logger  zerolog.Logger
}

// NewTableHandler creates a new table handler.
func NewTableHandler(service service.TableService, logger zerolog.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		logger:  logger.With().Str("handler", "table").Logger(),
	}
}

// GetAll handles GET /api/tables requests.
func (h *TableHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}
