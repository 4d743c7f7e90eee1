package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

const (
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxImportFormSize = 8 << 20
)

// VocabularyService is the interface that wraps methods for vocabulary business logic.
type VocabularyService interface {
	// Method List retrieve the learner's vocabulary items of one language, newest first.
	//
	// "languageParam" is one of the supported language ids; empty value means the learner's selected language.
	// If the language is not supported, ValidationError is returned together with "nil" value.
	List(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error)
	// Method Get retrieve one vocabulary item of the learner by its id.
	//
	// NotFoundError is returned for unknown, deleted or foreign items.
	Get(ctx context.Context, learnerID int, id string) (*models.VocabularyItem, error)
	// Method Create save a new vocabulary item and log the saved_word activity.
	//
	// Words are trimmed; empty original or translated word returns ValidationError.
	Create(ctx context.Context, learnerID int, req models.CreateVocabularyRequest) (*models.VocabularyItem, error)
	// Method Update apply a learner edit to a vocabulary item and return the stored result.
	//
	// Only non-nil fields of "update" are written. Marking an item mastered requires enough reviews.
	Update(ctx context.Context, learnerID int, id string, update models.VocabularyUpdate) (*models.VocabularyItem, error)
	// Method Delete soft-delete a vocabulary item.
	Delete(ctx context.Context, learnerID int, id string) error
	// Method Export render the vocabulary of one language as an xlsx workbook.
	//
	// Returns the workbook bytes and the resolved language.
	Export(ctx context.Context, learnerID int, languageParam string) ([]byte, models.Language, error)
	// Method Import save every row of an xlsx workbook as a new vocabulary item and return their number.
	//
	// The workbook is validated before anything is written.
	Import(ctx context.Context, learnerID int, languageParam string, r io.Reader) (int, error)
}

// VocabularyHandler handles HTTP requests for the learner's vocabulary
type VocabularyHandler struct {
	BaseHandler
	service VocabularyService
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(svc VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all vocabulary handler routes
func (h *VocabularyHandler) RegisterRoutes(r chi.Router) {
	r.Route("/vocabulary", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/export", h.Export)
		r.Post("/import", h.Import)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/v1/vocabulary
// @Summary List vocabulary
// @Description Get the learner's saved words of one language, newest first
// @Tags vocabulary
// @Produce json
// @Security BearerAuth
// @Param language query string false "Language id, default: the learner's selected language"
// @Success 200 {array} models.VocabularyItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary [get]
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), learnerID, r.URL.Query().Get("language"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get vocabulary")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Get handles GET /api/v1/vocabulary/{id}
// @Summary Get vocabulary item
// @Tags vocabulary
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vocabulary item ID"
// @Success 200 {object} models.VocabularyItem
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary/{id} [get]
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), learnerID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get vocabulary item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// Create handles POST /api/v1/vocabulary
// @Summary Save a word
// @Description Save a new word with its translation and context sentence
// @Tags vocabulary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateVocabularyRequest true "Word to save"
// @Success 201 {object} models.VocabularyItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary [post]
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	var req models.CreateVocabularyRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	item, err := h.service.Create(r.Context(), learnerID, req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to save vocabulary item")
		return
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// Update handles PATCH /api/v1/vocabulary/{id}
// @Summary Edit a word
// @Description Update words, sentences, source or the mastered flag of a saved word
// @Tags vocabulary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vocabulary item ID"
// @Param request body models.VocabularyUpdate true "Fields to change"
// @Success 200 {object} models.VocabularyItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary/{id} [patch]
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	var update models.VocabularyUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	item, err := h.service.Update(r.Context(), learnerID, chi.URLParam(r, "id"), update)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to update vocabulary item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/vocabulary/{id}
// @Summary Delete a word
// @Tags vocabulary
// @Security BearerAuth
// @Param id path string true "Vocabulary item ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary/{id} [delete]
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), learnerID, chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, r, err, "failed to delete vocabulary item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/v1/vocabulary/export
// @Summary Export vocabulary
// @Description Download the vocabulary of one language as an xlsx workbook
// @Tags vocabulary
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param language query string false "Language id, default: the learner's selected language"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary/export [get]
func (h *VocabularyHandler) Export(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	data, language, err := h.service.Export(r.Context(), learnerID, r.URL.Query().Get("language"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to export vocabulary")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="vocabulary-%s.xlsx"`, language))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("failed to write export", zap.Error(err))
	}
}

// Import handles POST /api/v1/vocabulary/import
// @Summary Import vocabulary
// @Description Upload an xlsx workbook (Word, Translation, Sentence, ...) and save each row as a new word
// @Tags vocabulary
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param language query string false "Language id, default: the learner's selected language"
// @Param file formData file true "xlsx workbook"
// @Success 201 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/vocabulary/import [post]
func (h *VocabularyHandler) Import(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := h.learnerID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImportFormSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	imported, err := h.service.Import(r.Context(), learnerID, r.URL.Query().Get("language"), file)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to import vocabulary")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]int{"imported": imported})
}
