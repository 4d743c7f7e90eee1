package services

import (
	"context"
	"time"

	"github.com/lingoread/backend/internal/models"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// mockVocabularyRepository is a mock implementation of VocabularyRepository
type mockVocabularyRepository struct {
	items       []models.VocabularyItem
	item        *models.VocabularyItem
	err         error
	saveErr     error
	saveLimit   int // Saves accepted before saveErr is returned
	updateErr   error
	scheduleErr error
	deleteErr   error

	saved               []*models.VocabularyItem
	updates             []models.VocabularyUpdate
	scheduled           *models.VocabularyItem
	expectedReviewCount int
	deletedAt           time.Time
	listedLanguage      models.Language
}

func (m *mockVocabularyRepository) Save(ctx context.Context, item *models.VocabularyItem) error {
	if m.saveErr != nil && len(m.saved) >= m.saveLimit {
		return m.saveErr
	}
	m.saved = append(m.saved, item)
	return nil
}

func (m *mockVocabularyRepository) Get(ctx context.Context, learnerID int, id string) (*models.VocabularyItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.item == nil {
		return nil, &models.NotFoundError{Resource: "vocabulary item", ID: id}
	}
	item := *m.item
	return &item, nil
}

func (m *mockVocabularyRepository) Update(ctx context.Context, learnerID int, id string, update models.VocabularyUpdate) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, update)
	return nil
}

func (m *mockVocabularyRepository) UpdateSchedule(ctx context.Context, learnerID int, id string, expectedReviewCount int, item models.VocabularyItem) error {
	if m.scheduleErr != nil {
		return m.scheduleErr
	}
	m.expectedReviewCount = expectedReviewCount
	m.scheduled = &item
	return nil
}

func (m *mockVocabularyRepository) ListByLanguage(ctx context.Context, learnerID int, language models.Language) ([]models.VocabularyItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listedLanguage = language
	return m.items, nil
}

func (m *mockVocabularyRepository) SoftDelete(ctx context.Context, learnerID int, id string, at time.Time) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedAt = at
	return nil
}

// mockActivityRepository is a mock implementation of ActivityRepository
type mockActivityRepository struct {
	records   []models.ActivityRecord
	counts    map[models.ActionKind]int
	err       error
	deleteErr error

	recorded  []models.ActivityRecord
	listKinds []models.ActionKind
	since     time.Time
	deleted   string
}

func (m *mockActivityRepository) Record(ctx context.Context, record *models.ActivityRecord) error {
	if m.err != nil {
		return m.err
	}
	record.ID = int64(len(m.recorded) + 1)
	m.recorded = append(m.recorded, *record)
	return nil
}

func (m *mockActivityRepository) List(ctx context.Context, learnerID int, kinds []models.ActionKind) ([]models.ActivityRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listKinds = kinds
	return m.records, nil
}

func (m *mockActivityRepository) ListSince(ctx context.Context, learnerID int, since time.Time) ([]models.ActivityRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.since = since
	return m.records, nil
}

func (m *mockActivityRepository) CountByKind(ctx context.Context, learnerID int) (map[models.ActionKind]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.counts, nil
}

func (m *mockActivityRepository) SoftDelete(ctx context.Context, learnerID int, kind models.ActionKind, targetID string, at time.Time) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = string(kind) + "/" + targetID
	return nil
}

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	streak  models.StudyStreak
	err     error
	saveErr error

	savedCounts *models.LanguageProgress
	savedStreak *models.StudyStreak
}

func (m *mockProgressRepository) Streak(ctx context.Context, learnerID int, language models.Language) (models.StudyStreak, error) {
	if m.err != nil {
		return models.StudyStreak{}, m.err
	}
	return m.streak, nil
}

func (m *mockProgressRepository) SaveCounts(ctx context.Context, progress models.LanguageProgress) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedCounts = &progress
	return nil
}

func (m *mockProgressRepository) SaveStreak(ctx context.Context, learnerID int, language models.Language, streak models.StudyStreak) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedStreak = &streak
	return nil
}

// mockSettingsRepository is a mock implementation of SettingsRepository
type mockSettingsRepository struct {
	settings   *models.LearnerSettings
	recipients []models.LearnerSettings
	err        error
	saveErr    error

	saved *models.LearnerSettings
}

func (m *mockSettingsRepository) Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		return &models.LearnerSettings{LearnerID: learnerID, SelectedLanguage: models.DefaultLanguage}, nil
	}
	s := *m.settings
	return &s, nil
}

func (m *mockSettingsRepository) Save(ctx context.Context, settings models.LearnerSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &settings
	return nil
}

func (m *mockSettingsRepository) ListReminderRecipients(ctx context.Context) ([]models.LearnerSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.recipients, nil
}

// mockProgressCache is a mock implementation of ProgressCache
type mockProgressCache struct {
	snapshot      *models.ProgressSnapshot
	getErr        error
	setErr        error
	invalidateErr error

	set         *models.ProgressSnapshot
	invalidated []models.Language
}

func (m *mockProgressCache) Get(ctx context.Context, learnerID int, language models.Language) (*models.ProgressSnapshot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.snapshot, nil
}

func (m *mockProgressCache) Set(ctx context.Context, learnerID int, snapshot models.ProgressSnapshot) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set = &snapshot
	m.snapshot = &snapshot
	return nil
}

func (m *mockProgressCache) Invalidate(ctx context.Context, learnerID int, language models.Language) error {
	m.invalidated = append(m.invalidated, language)
	m.snapshot = nil
	return m.invalidateErr
}

// mockActivityRecorder is a mock implementation of ActivityRecorder
type mockActivityRecorder struct {
	err      error
	requests []models.RecordActivityRequest
}

func (m *mockActivityRecorder) Record(ctx context.Context, learnerID int, req models.RecordActivityRequest) (*models.ActivityRecord, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &models.ActivityRecord{
		ID:         int64(len(m.requests)),
		LearnerID:  learnerID,
		ActionKind: req.ActionKind,
		TargetKind: req.TargetKind,
		TargetID:   req.TargetID,
		Language:   req.Language,
		Timestamp:  fixedNow,
	}, nil
}
