package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lingoread/backend/internal/middleware"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps domain errors to HTTP statuses
//
// Unknown errors are logged and answered with 500 and the generic "message".
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var preconditionErr *models.PreconditionError

	switch {
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		h.respondError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &preconditionErr):
		h.respondError(w, http.StatusPreconditionFailed, preconditionErr.Error())
	default:
		h.logger.Error(message,
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
		)
		h.respondError(w, http.StatusInternalServerError, message)
	}
}

// learnerID returns the authenticated learner or answers 401
func (h *BaseHandler) learnerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	learnerID, ok := middleware.GetLearnerID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return learnerID, true
}

// decodeJSON decodes the request body into "dst" or answers 400
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
