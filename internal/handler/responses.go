package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a failed encode never corrupts the body
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: an HTTP status code and a message users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNotLoggedIn):
		return http.StatusUnauthorized, ErrMsgNotLoggedInHTTP
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrRequirementUnmet):
		return http.StatusForbidden, ErrMsgRequirementError
	case errors.Is(err, domain.ErrStoreNotFound):
		return http.StatusNotFound, ErrMsgStoreNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrStackNotFound):
		return http.StatusNotFound, ErrMsgStackNotFoundErr
	case errors.Is(err, domain.ErrNoApplicableEffect):
		return http.StatusBadRequest, ErrMsgNoEffectError
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, ErrMsgPetNotFoundError
	case errors.Is(err, domain.ErrShipNotFound):
		return http.StatusNotFound, ErrMsgShipNotFoundError
	case errors.Is(err, domain.ErrShipAlreadyOwned):
		return http.StatusBadRequest, ErrMsgShipOwnedError
	case errors.Is(err, domain.ErrShipNotOwned):
		return http.StatusBadRequest, ErrMsgShipNotOwnedError
	case errors.Is(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, ErrMsgCodeNotFoundError
	case errors.Is(err, domain.ErrCodeAlreadyUsed):
		return http.StatusBadRequest, ErrMsgCodeUsedError
	case errors.Is(err, domain.ErrCodeMaxUses):
		return http.StatusBadRequest, ErrMsgCodeExhaustedError
	case errors.Is(err, domain.ErrCodeExpired):
		return http.StatusBadRequest, ErrMsgCodeExpiredError
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return http.StatusConflict, ErrMsgAlreadyCheckedInErr
	case errors.Is(err, domain.ErrPointNotFound):
		return http.StatusNotFound, ErrMsgPointNotFoundError
	case errors.Is(err, domain.ErrFishNotFound):
		return http.StatusNotFound, ErrMsgFishNotFoundError
	case errors.Is(err, domain.ErrExternalFailure):
		return http.StatusBadGateway, ErrMsgUpstreamError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Operation failed", "op", opName, "error", err)
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
