package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// SettingsService is the interface that wraps methods for learner settings.
type SettingsService interface {
	// Method Get retrieve the learner's settings, defaults when nothing was stored yet.
	Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error)
	// Method Update apply the non-nil fields of "req" and return the stored settings.
	//
	// Enabling reminders requires an e-mail address. Changing the selected language is logged as activity.
	Update(ctx context.Context, learnerID int, req models.UpdateSettingsRequest) (*models.LearnerSettings, error)
}

// SettingsHandler handles HTTP requests for learner settings
type SettingsHandler struct {
	BaseHandler
	service SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(svc SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all settings handler routes
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.Get)
	r.Put("/settings", h.Update)
}

// Get handles GET /api/v1/settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LearnerSettings
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	settings, err := h.service.Get(r.Context(), learnerID)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get settings")
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}

// Update handles PUT /api/v1/settings
// @Summary Update settings
// @Description Change the selected language, the reminder e-mail or the reminders flag
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateSettingsRequest true "Settings to change"
// @Success 200 {object} models.LearnerSettings
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	var req models.UpdateSettingsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.service.Update(r.Context(), learnerID, req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to update settings")
		return
	}

	h.respondJSON(w, http.StatusOK, settings)
}
