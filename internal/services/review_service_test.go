package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReviewService(repo *mockVocabularyRepository, recorder *mockActivityRecorder, cache *mockProgressCache) *reviewService {
	svc := NewReviewService(repo, &mockSettingsRepository{}, review.NewScheduler(rand.NewSource(42)), recorder, cache, zap.NewNop())
	svc.now = fixedClock
	return svc
}

func TestNewReviewService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := &mockVocabularyRepository{}
	settings := &mockSettingsRepository{}
	scheduler := review.NewScheduler(nil)
	recorder := &mockActivityRecorder{}
	cache := &mockProgressCache{}

	svc := NewReviewService(repo, settings, scheduler, recorder, cache, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, repo, svc.repo)
	assert.Equal(t, settings, svc.settingsRepo)
	assert.Equal(t, scheduler, svc.scheduler)
	assert.Equal(t, recorder, svc.activity)
	assert.Equal(t, cache, svc.cache)
	assert.Equal(t, logger, svc.logger)
}

func TestReviewService_Due(t *testing.T) {
	past := fixedNow.AddDate(0, 0, -1)
	future := fixedNow.AddDate(0, 0, 2)
	items := []models.VocabularyItem{
		{ID: "new"},
		{ID: "overdue", ReviewCount: 2, NextReview: &past},
		{ID: "later", ReviewCount: 1, NextReview: &future},
		{ID: "mastered", ReviewCount: 6, Mastered: true, NextReview: &past},
		{ID: "now", ReviewCount: 3, NextReview: &fixedNow},
	}

	t.Run("due items only", func(t *testing.T) {
		svc := newTestReviewService(&mockVocabularyRepository{items: items}, &mockActivityRecorder{}, &mockProgressCache{})

		due, err := svc.Due(context.Background(), 7, "italian")

		require.NoError(t, err)
		ids := make([]string, 0, len(due))
		for _, item := range due {
			ids = append(ids, item.ID)
		}
		assert.ElementsMatch(t, []string{"new", "overdue", "now"}, ids)
	})

	t.Run("nothing due", func(t *testing.T) {
		svc := newTestReviewService(&mockVocabularyRepository{items: items[2:4]}, &mockActivityRecorder{}, &mockProgressCache{})

		due, err := svc.Due(context.Background(), 7, "italian")

		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("repository error", func(t *testing.T) {
		svc := newTestReviewService(&mockVocabularyRepository{err: errors.New("database error")}, &mockActivityRecorder{}, &mockProgressCache{})

		due, err := svc.Due(context.Background(), 7, "italian")

		assert.Error(t, err)
		assert.Nil(t, due)
	})

	t.Run("invalid language", func(t *testing.T) {
		svc := newTestReviewService(&mockVocabularyRepository{items: items}, &mockActivityRecorder{}, &mockProgressCache{})

		due, err := svc.Due(context.Background(), 7, "elvish")

		assert.IsType(t, &models.ValidationError{}, err)
		assert.Nil(t, due)
	})
}

func TestReviewService_Answer(t *testing.T) {
	tests := []struct {
		name             string
		item             *models.VocabularyItem
		correct          bool
		repo             func(*models.VocabularyItem) *mockVocabularyRepository
		expectedError    bool
		expectedType     any
		expectedCount    int
		expectedMastered bool
		expectedDays     int
	}{
		{
			name:          "first correct answer",
			item:          &models.VocabularyItem{ID: "a", Language: models.LanguageItalian},
			correct:       true,
			expectedCount: 1,
			expectedDays:  3,
		},
		{
			name:          "wrong answer",
			item:          &models.VocabularyItem{ID: "a", ReviewCount: 3, Language: models.LanguageItalian},
			correct:       false,
			expectedCount: 4,
			expectedDays:  1,
		},
		{
			name:             "fifth correct answer masters the item",
			item:             &models.VocabularyItem{ID: "a", ReviewCount: 4, Language: models.LanguageItalian},
			correct:          true,
			expectedCount:    5,
			expectedMastered: true,
			expectedDays:     30,
		},
		{
			name:          "mastered item regresses",
			item:          &models.VocabularyItem{ID: "a", ReviewCount: 7, Mastered: true, Language: models.LanguageItalian},
			correct:       false,
			expectedCount: 8,
			expectedDays:  1,
		},
		{
			name:          "not found",
			correct:       true,
			expectedError: true,
			expectedType:  &models.NotFoundError{},
		},
		{
			name:    "concurrent answer",
			item:    &models.VocabularyItem{ID: "a", ReviewCount: 2},
			correct: true,
			repo: func(item *models.VocabularyItem) *mockVocabularyRepository {
				return &mockVocabularyRepository{
					item:        item,
					scheduleErr: &models.PreconditionError{Message: "vocabulary item a was changed by another review"},
				}
			},
			expectedError: true,
			expectedType:  &models.PreconditionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockVocabularyRepository{item: tt.item}
			if tt.repo != nil {
				repo = tt.repo(tt.item)
			}
			recorder := &mockActivityRecorder{}
			cache := &mockProgressCache{}
			svc := newTestReviewService(repo, recorder, cache)

			result, err := svc.Answer(context.Background(), 7, "a", tt.correct)

			if tt.expectedError {
				assert.Error(t, err)
				assert.IsType(t, tt.expectedType, err)
				assert.Nil(t, result)
				assert.Empty(t, recorder.requests)
				assert.Empty(t, cache.invalidated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, result.ReviewCount)
			assert.Equal(t, tt.expectedMastered, result.Mastered)
			require.NotNil(t, result.LastReviewed)
			require.NotNil(t, result.NextReview)
			assert.Equal(t, fixedNow, *result.LastReviewed)
			assert.Equal(t, fixedNow.AddDate(0, 0, tt.expectedDays), *result.NextReview)

			assert.Equal(t, tt.item.ReviewCount, repo.expectedReviewCount)
			assert.Equal(t, result, repo.scheduled)

			require.Len(t, recorder.requests, 1)
			assert.Equal(t, models.ActionCompletedFlashcard, recorder.requests[0].ActionKind)
			assert.Equal(t, "a", recorder.requests[0].TargetID)
			assert.Equal(t, tt.correct, recorder.requests[0].Metadata["correct"])
			assert.Equal(t, []models.Language{models.LanguageItalian}, cache.invalidated)
		})
	}
}
