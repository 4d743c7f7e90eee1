package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// ReviewService is the interface that wraps methods for flashcard review.
type ReviewService interface {
	// Method Due retrieve the items of one language that are due for review, in presentation order.
	//
	// "languageParam" is one of the supported language ids; empty value means the learner's selected language.
	// Mastered items with enough reviews are never returned.
	Due(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error)
	// Method Answer record the outcome of one flashcard and return the rescheduled item.
	//
	// PreconditionError is returned when another answer for the same item was stored concurrently.
	Answer(ctx context.Context, learnerID int, id string, correct bool) (*models.VocabularyItem, error)
}

// ReviewHandler handles HTTP requests for flashcard review sessions
type ReviewHandler struct {
	BaseHandler
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all review handler routes
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Route("/review", func(r chi.Router) {
		r.Get("/due", h.Due)
		r.Post("/{id}/answer", h.Answer)
	})
}

// Due handles GET /api/v1/review/due
// @Summary Get due flashcards
// @Description Get the words due for review in a shuffled order
// @Tags review
// @Produce json
// @Security BearerAuth
// @Param language query string false "Language id, default: the learner's selected language"
// @Success 200 {array} models.VocabularyItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/review/due [get]
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	items, err := h.service.Due(r.Context(), learnerID, r.URL.Query().Get("language"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get due items")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Answer handles POST /api/v1/review/{id}/answer
// @Summary Answer a flashcard
// @Description Record whether the learner knew the word and schedule the next review
// @Tags review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vocabulary item ID"
// @Param request body models.ReviewAnswerRequest true "Answer outcome"
// @Success 200 {object} models.VocabularyItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/review/{id}/answer [post]
func (h *ReviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	var req models.ReviewAnswerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.Correct == nil {
		h.respondError(w, http.StatusBadRequest, "correct is required")
		return
	}

	item, err := h.service.Answer(r.Context(), learnerID, chi.URLParam(r, "id"), *req.Correct)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to record answer")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}
