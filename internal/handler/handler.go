package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"grill-master/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a domain error to its HTTP status and writes it.
// Anything that is not a DomainError is a plain internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeEmptyCart,
		model.ErrCodeMissingCustomerInfo,
		model.ErrCodeInvalidQuantity:
		status = http.StatusBadRequest
	case model.ErrCodeProductNotFound:
		status = http.StatusNotFound
	case model.ErrCodeSubmissionInProgress,
		model.ErrCodeTableUnavailable:
		status = http.StatusConflict
	case model.ErrCodeOrderWriteFailed:
		status = http.StatusInternalServerError
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}
