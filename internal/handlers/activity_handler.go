package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// ActivityService is the interface that wraps methods for the learner activity log.
type ActivityService interface {
	// Method Record append one learner action to the log and advance the study streak.
	//
	// Idempotent actions (read_article, saved_word, saved_flashcard_set) require "TargetID"
	// and are stored once per target; recording them again refreshes the timestamp.
	Record(ctx context.Context, learnerID int, req models.RecordActivityRequest) (*models.ActivityRecord, error)
	// Method History build the structured view over the learner's activity.
	//
	// "kindParams" optionally restricts the history to some action kinds.
	History(ctx context.Context, learnerID int, kindParams []string) (*models.ActivityHistory, error)
	// Method Since retrieve the raw log at or after "since", newest first.
	Since(ctx context.Context, learnerID int, since time.Time) ([]models.ActivityRecord, error)
	// Method Statistics count the learner's actions per kind.
	Statistics(ctx context.Context, learnerID int) (map[models.ActionKind]int, error)
	// Method Remove soft-delete an idempotent action, e.g. when an article is marked as unread.
	//
	// NotFoundError is returned when the learner never recorded the action.
	Remove(ctx context.Context, learnerID int, kindParam, targetID string) error
}

// ActivityHandler handles HTTP requests for the learner activity log
type ActivityHandler struct {
	BaseHandler
	service ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all activity handler routes
func (h *ActivityHandler) RegisterRoutes(r chi.Router) {
	r.Route("/activity", func(r chi.Router) {
		r.Get("/", h.Since)
		r.Post("/", h.Record)
		r.Get("/history", h.History)
		r.Get("/statistics", h.Statistics)
		r.Delete("/{kind}/{targetId}", h.Remove)
	})
}

// Record handles POST /api/v1/activity
// @Summary Record an activity
// @Description Log one learner action, e.g. a read article or a translated sentence
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RecordActivityRequest true "Action"
// @Success 201 {object} models.ActivityRecord
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/activity [post]
func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	var req models.RecordActivityRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	record, err := h.service.Record(r.Context(), learnerID, req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to record activity")
		return
	}

	h.respondJSON(w, http.StatusCreated, record)
}

// Since handles GET /api/v1/activity
// @Summary Get the activity log
// @Description Get the raw activity log, optionally starting at a point in time
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param since query string false "RFC3339 timestamp, default: whole log"
// @Success 200 {array} models.ActivityRecord
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/activity [get]
func (h *ActivityHandler) Since(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	var since time.Time
	if sinceParam := r.URL.Query().Get("since"); sinceParam != "" {
		parsed, err := time.Parse(time.RFC3339, sinceParam)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid since parameter")
			return
		}
		since = parsed.UTC()
	}

	records, err := h.service.Since(r.Context(), learnerID, since)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get activity")
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}

// History handles GET /api/v1/activity/history
// @Summary Get activity history
// @Description Get read articles, completed flashcards, saved words and other activity grouped by category
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param actions query string false "Comma-separated action kinds, default: all"
// @Success 200 {object} models.ActivityHistory
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/activity/history [get]
func (h *ActivityHandler) History(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	history, err := h.service.History(r.Context(), learnerID, splitList(r.URL.Query().Get("actions")))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get activity history")
		return
	}

	h.respondJSON(w, http.StatusOK, history)
}

// Statistics handles GET /api/v1/activity/statistics
// @Summary Get activity statistics
// @Description Get the number of recorded actions per action kind
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/activity/statistics [get]
func (h *ActivityHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(r.Context(), learnerID)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get activity statistics")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// Remove handles DELETE /api/v1/activity/{kind}/{targetId}
// @Summary Remove an activity
// @Description Undo an idempotent action, e.g. mark an article as unread
// @Tags activity
// @Security BearerAuth
// @Param kind path string true "Action kind: read_article, saved_word or saved_flashcard_set"
// @Param targetId path string true "Target ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/activity/{kind}/{targetId} [delete]
func (h *ActivityHandler) Remove(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	err := h.service.Remove(r.Context(), learnerID, chi.URLParam(r, "kind"), chi.URLParam(r, "targetId"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to remove activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// splitList splits a comma-separated query value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
