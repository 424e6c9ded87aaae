package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ldanko/idleheroes/internal/domain"
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

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	// Encode to a buffer first so an encode failure never produces a
	// half-written body.
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

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidRequestErr  = "Invalid request. Please check your inputs."

	ErrMsgHeroNotFoundError  = "Hero not found"
	ErrMsgHeroNameTakenErr   = "That hero name is already taken"
	ErrMsgOwnerHasHeroError  = "You already have a hero"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgNotInInventoryErr  = "Your hero doesn't have that item"
	ErrMsgQuestNotFoundError = "Quest not found"
	ErrMsgQuestAssignedError = "That quest has already been taken"
	ErrMsgGuildNotFoundError = "Guild not found"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages safe to show to users. Internal detail stays in the logs.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrHeroNotFound):
		return http.StatusNotFound, ErrMsgHeroNotFoundError
	case errors.Is(err, domain.ErrHeroNameTaken):
		return http.StatusConflict, ErrMsgHeroNameTakenErr
	case errors.Is(err, domain.ErrOwnerHasHero):
		return http.StatusConflict, ErrMsgOwnerHasHeroError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryErr
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrQuestAssigned):
		return http.StatusConflict, ErrMsgQuestAssignedError
	case errors.Is(err, domain.ErrGuildNotFound):
		return http.StatusNotFound, ErrMsgGuildNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestErr
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs the real error and answers with the mapped
// user-facing one.
func respondServiceError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(op, "error", err)
	} else {
		log.Warn(op, "error", err)
	}
	respondError(w, status, msg)
}
