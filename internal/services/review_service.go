package services

import (
	"context"
	"time"

	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/review"
	"go.uber.org/zap"
)

type reviewService struct {
	repo         VocabularyRepository
	settingsRepo SettingsRepository
	scheduler    *review.Scheduler
	activity     ActivityRecorder
	cache        ProgressCache
	logger       *zap.Logger
	now          func() time.Time
}

// NewReviewService creates a new flashcard review service
//
// "cache" may be nil when progress snapshots are not cached.
func NewReviewService(
	repo VocabularyRepository,
	settingsRepo SettingsRepository,
	scheduler *review.Scheduler,
	activity ActivityRecorder,
	cache ProgressCache,
	logger *zap.Logger,
) *reviewService {
	return &reviewService{
		repo:         repo,
		settingsRepo: settingsRepo,
		scheduler:    scheduler,
		activity:     activity,
		cache:        cache,
		logger:       logger,
		now:          utcNow,
	}
}

// Due returns the items of one language that are due for review, shuffled for presentation
func (s *reviewService) Due(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error) {
	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, languageParam)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByLanguage(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}

	due := s.scheduler.SelectDue(items, s.now())
	return s.scheduler.PresentationOrder(due), nil
}

// Answer records the outcome of one flashcard and persists the new schedule
//
// The schedule is written only if no other answer for the same item was stored since it was read.
// A lost race returns PreconditionError and leaves the item untouched.
func (s *reviewService) Answer(ctx context.Context, learnerID int, id string, correct bool) (*models.VocabularyItem, error) {
	item, err := s.repo.Get(ctx, learnerID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := s.scheduler.RecordOutcome(*item, correct, now)
	if err := s.repo.UpdateSchedule(ctx, learnerID, id, item.ReviewCount, updated); err != nil {
		return nil, err
	}

	s.logger.Debug("recorded review outcome",
		zap.Int("learner_id", learnerID),
		zap.String("id", id),
		zap.Bool("correct", correct),
		zap.Int("review_count", updated.ReviewCount),
		zap.Bool("mastered", updated.Mastered),
	)

	if s.activity != nil {
		_, err := s.activity.Record(ctx, learnerID, models.RecordActivityRequest{
			ActionKind: models.ActionCompletedFlashcard,
			TargetKind: models.TargetWord,
			TargetID:   id,
			Language:   updated.Language,
			Metadata:   map[string]any{"correct": correct, "reviewCount": updated.ReviewCount},
		})
		if err != nil {
			s.logger.Warn("failed to record completed flashcard", zap.Error(err), zap.String("id", id))
		}
	}
	invalidateProgress(ctx, s.cache, s.logger, learnerID, updated.Language)

	return &updated, nil
}
