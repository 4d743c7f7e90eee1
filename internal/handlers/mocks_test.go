package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lingoread/backend/internal/middleware"
	"github.com/lingoread/backend/internal/models"
)

const testLearnerID = 7

// newTestRouter mounts handler routes behind a fake authentication step
// A zero "learnerID" leaves the request unauthenticated.
func newTestRouter(learnerID int, register func(chi.Router)) chi.Router {
	r := chi.NewRouter()
	if learnerID != 0 {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(middleware.WithLearnerID(req.Context(), learnerID)))
			})
		})
	}
	register(r)
	return r
}

// mockVocabularyService is a mock implementation of VocabularyService
type mockVocabularyService struct {
	items    []models.VocabularyItem
	item     *models.VocabularyItem
	export   []byte
	imported int
	err      error

	learnerID    int
	language     string
	id           string
	created      *models.CreateVocabularyRequest
	update       *models.VocabularyUpdate
	importedBody []byte
}

func (m *mockVocabularyService) List(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error) {
	m.learnerID, m.language = learnerID, languageParam
	return m.items, m.err
}

func (m *mockVocabularyService) Get(ctx context.Context, learnerID int, id string) (*models.VocabularyItem, error) {
	m.learnerID, m.id = learnerID, id
	if m.err != nil {
		return nil, m.err
	}
	return m.item, nil
}

func (m *mockVocabularyService) Create(ctx context.Context, learnerID int, req models.CreateVocabularyRequest) (*models.VocabularyItem, error) {
	m.learnerID, m.created = learnerID, &req
	if m.err != nil {
		return nil, m.err
	}
	return m.item, nil
}

func (m *mockVocabularyService) Update(ctx context.Context, learnerID int, id string, update models.VocabularyUpdate) (*models.VocabularyItem, error) {
	m.learnerID, m.id, m.update = learnerID, id, &update
	if m.err != nil {
		return nil, m.err
	}
	return m.item, nil
}

func (m *mockVocabularyService) Delete(ctx context.Context, learnerID int, id string) error {
	m.learnerID, m.id = learnerID, id
	return m.err
}

func (m *mockVocabularyService) Export(ctx context.Context, learnerID int, languageParam string) ([]byte, models.Language, error) {
	m.learnerID, m.language = learnerID, languageParam
	if m.err != nil {
		return nil, "", m.err
	}
	return m.export, models.LanguageFrench, nil
}

func (m *mockVocabularyService) Import(ctx context.Context, learnerID int, languageParam string, r io.Reader) (int, error) {
	m.learnerID, m.language = learnerID, languageParam
	body, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.importedBody = body
	return m.imported, m.err
}

// mockReviewService is a mock implementation of ReviewService
type mockReviewService struct {
	due  []models.VocabularyItem
	item *models.VocabularyItem
	err  error

	language string
	id       string
	correct  *bool
}

func (m *mockReviewService) Due(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error) {
	m.language = languageParam
	return m.due, m.err
}

func (m *mockReviewService) Answer(ctx context.Context, learnerID int, id string, correct bool) (*models.VocabularyItem, error) {
	m.id, m.correct = id, &correct
	if m.err != nil {
		return nil, m.err
	}
	return m.item, nil
}

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct {
	summary *models.ProgressSummary
	err     error

	language string
}

func (m *mockProgressService) Summary(ctx context.Context, learnerID int, languageParam string) (*models.ProgressSummary, error) {
	m.language = languageParam
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

// mockActivityService is a mock implementation of ActivityService
type mockActivityService struct {
	record  *models.ActivityRecord
	records []models.ActivityRecord
	history *models.ActivityHistory
	stats   map[models.ActionKind]int
	err     error

	request *models.RecordActivityRequest
	kinds   []string
	since   time.Time
	removed string
}

func (m *mockActivityService) Record(ctx context.Context, learnerID int, req models.RecordActivityRequest) (*models.ActivityRecord, error) {
	m.request = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *mockActivityService) History(ctx context.Context, learnerID int, kindParams []string) (*models.ActivityHistory, error) {
	m.kinds = kindParams
	if m.err != nil {
		return nil, m.err
	}
	return m.history, nil
}

func (m *mockActivityService) Since(ctx context.Context, learnerID int, since time.Time) ([]models.ActivityRecord, error) {
	m.since = since
	return m.records, m.err
}

func (m *mockActivityService) Statistics(ctx context.Context, learnerID int) (map[models.ActionKind]int, error) {
	return m.stats, m.err
}

func (m *mockActivityService) Remove(ctx context.Context, learnerID int, kindParam, targetID string) error {
	m.removed = kindParam + "/" + targetID
	return m.err
}

// mockSettingsService is a mock implementation of SettingsService
type mockSettingsService struct {
	settings *models.LearnerSettings
	err      error

	request *models.UpdateSettingsRequest
}

func (m *mockSettingsService) Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettingsService) Update(ctx context.Context, learnerID int, req models.UpdateSettingsRequest) (*models.LearnerSettings, error) {
	m.request = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}
