package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"souled-store/internal/model"

	"github.com/rs/zerolog"
)

// Response is the envelope shared by every endpoint.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details []model.FieldError `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeSuccess writes a success envelope.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// writeError writes an error envelope with the given status and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("request failed")
	writeJSON(w, status, Response{
		Status:  "error",
		Message: message,
	})
}

// writeDomainError maps a service-layer error to an HTTP status and the
// error envelope. Internal error detail is surfaced only in development
// mode; production clients get a generic message.
func writeDomainError(w http.ResponseWriter, err error, fallback string, dev bool, logger zerolog.Logger) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  "error",
			Message: "Validation failed",
			Details: validationErr.Details,
		})
		return
	}

	var stockErr *model.StockConflictError
	if errors.As(err, &stockErr) {
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  "error",
			Message: "Some items in your cart are out of stock",
			Data: map[string]any{
				"outOfStockItems": stockErr.Items,
			},
		})
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeProductNotFound, model.ErrCodeCartItemNotFound, model.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		}
		writeJSON(w, status, Response{
			Status:  "error",
			Message: domainErr.Message,
		})
		return
	}

	logger.Error().Err(err).Msg(fallback)
	resp := Response{
		Status:  "error",
		Message: fallback,
	}
	if dev {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
