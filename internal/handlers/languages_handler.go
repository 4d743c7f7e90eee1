package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// LanguagesHandler serves the list of supported target languages
type LanguagesHandler struct {
	BaseHandler
}

// NewLanguagesHandler creates a new languages handler
func NewLanguagesHandler(logger *zap.Logger) *LanguagesHandler {
	return &LanguagesHandler{BaseHandler: BaseHandler{logger: logger}}
}

// RegisterRoutes registers the public language routes
func (h *LanguagesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.GetAll)
}

// GetAll handles GET /api/v1/languages
// @Summary Get supported languages
// @Description Get the target languages a learner can study, with ISO codes for speech synthesis
// @Tags languages
// @Produce json
// @Success 200 {array} models.LanguageInfo
// @Router /api/v1/languages [get]
func (h *LanguagesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, models.SupportedLanguages())
}
