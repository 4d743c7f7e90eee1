package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps the progress summary.
type ProgressService interface {
	// Method Summary retrieve the progress page metrics of one language.
	//
	// "languageParam" is one of the supported language ids; empty value means the learner's selected language.
	// The summary may be served from cache.
	Summary(ctx context.Context, learnerID int, languageParam string) (*models.ProgressSummary, error)
}

// ProgressHandler handles HTTP requests for learner progress
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/progress", h.Summary)
}

// Summary handles GET /api/v1/progress
// @Summary Get progress summary
// @Description Get vocabulary, review and streak metrics of one language.
// @Description studyStreak keeps the stored day count after a missed day, show it only while isStreakActive is true.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param language query string false "Language id, default: the learner's selected language"
// @Success 200 {object} models.ProgressSummary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/progress [get]
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), learnerID, r.URL.Query().Get("language"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get progress")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
