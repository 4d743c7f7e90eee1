package services

import (
	"context"
	"time"

	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/progress"
	"go.uber.org/zap"
)

// ProgressRepository is the interface that wraps methods for language_progress table data access
type ProgressRepository interface {
	// Method Streak retrieves the study streak of a learner in one language.
	//
	// A learner without activity gets a zero streak, never an error.
	Streak(ctx context.Context, learnerID int, language models.Language) (models.StudyStreak, error)
	// Method SaveCounts stores the word and article counters of "progress".
	SaveCounts(ctx context.Context, progress models.LanguageProgress) error
	// Method SaveStreak stores the study streak of a learner in one language.
	SaveStreak(ctx context.Context, learnerID int, language models.Language, streak models.StudyStreak) error
}

// ProgressCache is the interface that wraps methods of the progress snapshot cache
type ProgressCache interface {
	// Method Get returns the cached snapshot or nil on a cache miss.
	Get(ctx context.Context, learnerID int, language models.Language) (*models.ProgressSnapshot, error)
	// Method Set stores a snapshot under the learner and the language of the snapshot.
	Set(ctx context.Context, learnerID int, snapshot models.ProgressSnapshot) error
	// Method Invalidate drops a cached snapshot.
	Invalidate(ctx context.Context, learnerID int, language models.Language) error
}

type progressService struct {
	vocabularyRepo VocabularyRepository
	activityRepo   ActivityRepository
	progressRepo   ProgressRepository
	settingsRepo   SettingsRepository
	cache          ProgressCache
	logger         *zap.Logger
	now            func() time.Time
}

// NewProgressService creates a new progress service
//
// "cache" may be nil when progress snapshots are not cached.
func NewProgressService(
	vocabularyRepo VocabularyRepository,
	activityRepo ActivityRepository,
	progressRepo ProgressRepository,
	settingsRepo SettingsRepository,
	cache ProgressCache,
	logger *zap.Logger,
) *progressService {
	return &progressService{
		vocabularyRepo: vocabularyRepo,
		activityRepo:   activityRepo,
		progressRepo:   progressRepo,
		settingsRepo:   settingsRepo,
		cache:          cache,
		logger:         logger,
		now:            utcNow,
	}
}

// Summary returns the progress page metrics of a learner for one language
//
// The stored inputs are served from the cache when present, the summary is always computed
// with the current time. Freshly loaded inputs refresh the persisted counters and the cache,
// failures of either are logged and ignored.
func (s *progressService) Summary(ctx context.Context, learnerID int, languageParam string) (*models.ProgressSummary, error) {
	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, languageParam)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, learnerID, language)
		if err != nil {
			s.logger.Warn("failed to read progress cache", zap.Error(err), zap.Int("learner_id", learnerID))
		} else if cached != nil {
			summary := progress.Summarize(language, cached.Items, cached.Activity, cached.Streak, s.now())
			return &summary, nil
		}
	}

	snapshot, err := s.loadSnapshot(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}

	summary := progress.Summarize(language, snapshot.Items, snapshot.Activity, snapshot.Streak, s.now())

	if err := s.progressRepo.SaveCounts(ctx, summary.Progress(learnerID)); err != nil {
		s.logger.Warn("failed to persist language progress", zap.Error(err), zap.Int("learner_id", learnerID))
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, learnerID, *snapshot); err != nil {
			s.logger.Warn("failed to write progress cache", zap.Error(err), zap.Int("learner_id", learnerID))
		}
	}

	return &summary, nil
}

// loadSnapshot reads the vocabulary, the activity and the streak of one language
func (s *progressService) loadSnapshot(ctx context.Context, learnerID int, language models.Language) (*models.ProgressSnapshot, error) {
	items, err := s.vocabularyRepo.ListByLanguage(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}

	records, err := s.activityRepo.List(ctx, learnerID, nil)
	if err != nil {
		return nil, err
	}
	activity := make([]models.ActivityRecord, 0, len(records))
	for _, rec := range records {
		if rec.Language == language {
			activity = append(activity, rec)
		}
	}

	streak, err := s.progressRepo.Streak(ctx, learnerID, language)
	if err != nil {
		return nil, err
	}

	return &models.ProgressSnapshot{
		Language: language,
		Items:    items,
		Activity: activity,
		Streak:   streak,
	}, nil
}

// invalidateProgress drops a cached snapshot, logging instead of failing the caller
func invalidateProgress(ctx context.Context, cache ProgressCache, logger *zap.Logger, learnerID int, language models.Language) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, learnerID, language); err != nil {
		logger.Warn("failed to invalidate progress cache", zap.Error(err),
			zap.Int("learner_id", learnerID), zap.String("language", string(language)))
	}
}
