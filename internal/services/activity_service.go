package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/progress"
	"go.uber.org/zap"
)

// ActivityRepository is the interface that wraps methods for activity_records table data access
type ActivityRepository interface {
	// Method Record appends "record" to the activity log and writes the generated id back into it.
	//
	// Idempotent action kinds with a target id are stored once per learner and target,
	// recording them again only refreshes the timestamp and metadata.
	Record(ctx context.Context, record *models.ActivityRecord) error
	// Method List retrieves the live activity of a learner, newest first.
	//
	// "kinds" parameter restricts the result to the given action kinds, an empty slice means all kinds.
	List(ctx context.Context, learnerID int, kinds []models.ActionKind) ([]models.ActivityRecord, error)
	// Method ListSince retrieves the live activity of a learner at or after "since", newest first.
	ListSince(ctx context.Context, learnerID int, since time.Time) ([]models.ActivityRecord, error)
	// Method CountByKind counts the live activity of a learner per action kind.
	CountByKind(ctx context.Context, learnerID int) (map[models.ActionKind]int, error)
	// Method SoftDelete removes an idempotent action addressed by its kind and target id.
	//
	// ValidationError is returned for non idempotent kinds, NotFoundError when no live record exists.
	SoftDelete(ctx context.Context, learnerID int, kind models.ActionKind, targetID string, at time.Time) error
}

type activityService struct {
	repo         ActivityRepository
	progressRepo ProgressRepository
	settingsRepo SettingsRepository
	cache        ProgressCache
	logger       *zap.Logger
	now          func() time.Time
}

// NewActivityService creates a new activity service
//
// "cache" may be nil when progress snapshots are not cached.
func NewActivityService(
	repo ActivityRepository,
	progressRepo ProgressRepository,
	settingsRepo SettingsRepository,
	cache ProgressCache,
	logger *zap.Logger,
) *activityService {
	return &activityService{
		repo:         repo,
		progressRepo: progressRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		logger:       logger,
		now:          utcNow,
	}
}

// Record validates and stores a learner action, then advances the study streak of its language
//
// Actions without a language are attributed to the learner's selected language.
// The streak and cache updates are best effort, a stored action is never reported as failed.
func (s *activityService) Record(ctx context.Context, learnerID int, req models.RecordActivityRequest) (*models.ActivityRecord, error) {
	if !req.ActionKind.IsValid() {
		return nil, &models.ValidationError{Field: "actionKind", Message: fmt.Sprintf("unknown action kind %q", req.ActionKind)}
	}
	if !req.TargetKind.IsValid() {
		return nil, &models.ValidationError{Field: "targetKind", Message: fmt.Sprintf("unknown target kind %q", req.TargetKind)}
	}
	if req.ActionKind.IsIdempotent() && req.TargetID == "" {
		return nil, &models.ValidationError{Field: "targetId", Message: fmt.Sprintf("is required for %s", req.ActionKind)}
	}

	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, string(req.Language))
	if err != nil {
		return nil, err
	}

	record := &models.ActivityRecord{
		LearnerID:  learnerID,
		ActionKind: req.ActionKind,
		TargetKind: req.TargetKind,
		TargetID:   req.TargetID,
		Language:   language,
		Metadata:   req.Metadata,
		Timestamp:  s.now(),
	}
	if err := s.repo.Record(ctx, record); err != nil {
		return nil, err
	}

	s.advanceStreak(ctx, learnerID, language, record.Timestamp)
	invalidateProgress(ctx, s.cache, s.logger, learnerID, language)

	return record, nil
}

// History builds the structured view over the learner's activity
//
// "kindParams" optionally restricts the history to some action kinds.
func (s *activityService) History(ctx context.Context, learnerID int, kindParams []string) (*models.ActivityHistory, error) {
	kinds := make([]models.ActionKind, 0, len(kindParams))
	for _, param := range kindParams {
		kind := models.ActionKind(param)
		if !kind.IsValid() {
			return nil, &models.ValidationError{Field: "actions", Message: fmt.Sprintf("unknown action kind %q", param)}
		}
		kinds = append(kinds, kind)
	}

	records, err := s.repo.List(ctx, learnerID, kinds)
	if err != nil {
		return nil, err
	}

	history := BuildHistory(records)
	return &history, nil
}

// Since retrieves the raw activity log of a learner at or after "since"
func (s *activityService) Since(ctx context.Context, learnerID int, since time.Time) ([]models.ActivityRecord, error) {
	return s.repo.ListSince(ctx, learnerID, since)
}

// Statistics counts the learner's actions per kind
func (s *activityService) Statistics(ctx context.Context, learnerID int) (map[models.ActionKind]int, error) {
	return s.repo.CountByKind(ctx, learnerID)
}

// Remove soft-deletes an idempotent action, e.g. when an article is marked as unread
func (s *activityService) Remove(ctx context.Context, learnerID int, kindParam, targetID string) error {
	kind := models.ActionKind(kindParam)
	if !kind.IsValid() {
		return &models.ValidationError{Field: "actionKind", Message: fmt.Sprintf("unknown action kind %q", kindParam)}
	}
	if targetID == "" {
		return &models.ValidationError{Field: "targetId", Message: "is required"}
	}

	if err := s.repo.SoftDelete(ctx, learnerID, kind, targetID, s.now()); err != nil {
		return err
	}

	// The removed record may belong to any language
	for _, info := range models.SupportedLanguages() {
		invalidateProgress(ctx, s.cache, s.logger, learnerID, info.ID)
	}
	return nil
}

func (s *activityService) advanceStreak(ctx context.Context, learnerID int, language models.Language, at time.Time) {
	if s.progressRepo == nil {
		return
	}

	streak, err := s.progressRepo.Streak(ctx, learnerID, language)
	if err != nil {
		s.logger.Warn("failed to load study streak", zap.Error(err), zap.Int("learner_id", learnerID))
		return
	}

	next := progress.AdvanceStreak(streak, at)
	if next == streak {
		return
	}
	if err := s.progressRepo.SaveStreak(ctx, learnerID, language, next); err != nil {
		s.logger.Warn("failed to save study streak", zap.Error(err), zap.Int("learner_id", learnerID))
	}
}

// BuildHistory groups activity records into the structured history view
//
// Target ids are listed once per category, newest first. Settings are merged oldest to newest,
// so the latest value of every key wins.
func BuildHistory(records []models.ActivityRecord) models.ActivityHistory {
	history := models.ActivityHistory{
		ReadArticles:          []string{},
		CompletedFlashcards:   []string{},
		SavedWords:            []string{},
		Translations:          []string{},
		VocabularyExtractions: []string{},
		AIChatSessions:        []string{},
		Settings:              map[string]any{},
		TotalActions:          len(records),
	}

	appendDistinct := func(list []string, id string) []string {
		if id == "" || slices.Contains(list, id) {
			return list
		}
		return append(list, id)
	}

	for _, rec := range records {
		if history.LastActivity == nil || rec.Timestamp.After(*history.LastActivity) {
			ts := rec.Timestamp
			history.LastActivity = &ts
		}

		switch rec.ActionKind {
		case models.ActionReadArticle:
			history.ReadArticles = appendDistinct(history.ReadArticles, rec.TargetID)
		case models.ActionCompletedFlashcard:
			history.CompletedFlashcards = appendDistinct(history.CompletedFlashcards, rec.TargetID)
		case models.ActionSavedWord:
			history.SavedWords = appendDistinct(history.SavedWords, rec.TargetID)
		case models.ActionTranslatedArticle:
			history.Translations = appendDistinct(history.Translations, rec.TargetID)
		case models.ActionExtractedVocabulary:
			history.VocabularyExtractions = appendDistinct(history.VocabularyExtractions, rec.TargetID)
		case models.ActionUsedAIChat:
			history.AIChatSessions = appendDistinct(history.AIChatSessions, rec.TargetID)
		}
	}

	settingsRecords := make([]models.ActivityRecord, 0)
	for _, rec := range records {
		if rec.ActionKind == models.ActionChangedTargetLanguage || rec.ActionKind == models.ActionUpdatedProfile {
			settingsRecords = append(settingsRecords, rec)
		}
	}
	slices.SortStableFunc(settingsRecords, func(a, b models.ActivityRecord) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	for _, rec := range settingsRecords {
		for k, v := range rec.Metadata {
			history.Settings[k] = v
		}
	}

	return history
}
