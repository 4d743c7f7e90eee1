package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/review"
	"github.com/lingoread/backend/internal/spreadsheet"
	"go.uber.org/zap"
)

// VocabularyRepository is the interface that wraps methods for vocabulary_items table data access
type VocabularyRepository interface {
	// Method Save inserts a new vocabulary item or replaces the editable fields of an existing one.
	//
	// "item" parameter must carry a non-empty id, both words and a supported language.
	// ValidationError is returned for invalid items, any other error is a storage failure.
	Save(ctx context.Context, item *models.VocabularyItem) error
	// Method Get retrieves one vocabulary item of a learner.
	//
	// NotFoundError is returned when the item does not exist, was soft-deleted or belongs to another learner.
	Get(ctx context.Context, learnerID int, id string) (*models.VocabularyItem, error)
	// Method Update merges the non-nil fields of "update" into a stored item.
	//
	// Please reference Get method for more information about NotFoundError.
	Update(ctx context.Context, learnerID int, id string, update models.VocabularyUpdate) error
	// Method UpdateSchedule persists the scheduling fields of "item".
	//
	// The write happens only while the stored review count equals "expectedReviewCount",
	// otherwise PreconditionError is returned and nothing is written.
	UpdateSchedule(ctx context.Context, learnerID int, id string, expectedReviewCount int, item models.VocabularyItem) error
	// Method ListByLanguage retrieves all live items of a learner in one language, newest first.
	ListByLanguage(ctx context.Context, learnerID int, language models.Language) ([]models.VocabularyItem, error)
	// Method SoftDelete hides an item from every read.
	//
	// Please reference Get method for more information about NotFoundError.
	SoftDelete(ctx context.Context, learnerID int, id string, at time.Time) error
}

// ActivityRecorder is the interface that wraps the Record method of the activity service
type ActivityRecorder interface {
	// Method Record appends a learner action to the activity log and advances the study streak.
	Record(ctx context.Context, learnerID int, req models.RecordActivityRequest) (*models.ActivityRecord, error)
}

type vocabularyService struct {
	repo         VocabularyRepository
	settingsRepo SettingsRepository
	activity     ActivityRecorder
	cache        ProgressCache
	logger       *zap.Logger
	now          func() time.Time
}

// NewVocabularyService creates a new vocabulary service
//
// "cache" may be nil when progress snapshots are not cached.
func NewVocabularyService(
	repo VocabularyRepository,
	settingsRepo SettingsRepository,
	activity ActivityRecorder,
	cache ProgressCache,
	logger *zap.Logger,
) *vocabularyService {
	return &vocabularyService{
		repo:         repo,
		settingsRepo: settingsRepo,
		activity:     activity,
		cache:        cache,
		logger:       logger,
		now:          utcNow,
	}
}

// List retrieves the vocabulary of a learner in one language
//
// An empty languageParam means the learner's selected language.
func (s *vocabularyService) List(ctx context.Context, learnerID int, languageParam string) ([]models.VocabularyItem, error) {
	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, languageParam)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByLanguage(ctx, learnerID, language)
}

// Get retrieves one vocabulary item
func (s *vocabularyService) Get(ctx context.Context, learnerID int, id string) (*models.VocabularyItem, error) {
	return s.repo.Get(ctx, learnerID, id)
}

// Create saves a new vocabulary item on behalf of the learner and records a saved_word action
func (s *vocabularyService) Create(ctx context.Context, learnerID int, req models.CreateVocabularyRequest) (*models.VocabularyItem, error) {
	item, err := s.newItem(ctx, learnerID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	if s.activity != nil {
		_, err := s.activity.Record(ctx, learnerID, models.RecordActivityRequest{
			ActionKind: models.ActionSavedWord,
			TargetKind: models.TargetWord,
			TargetID:   item.ID,
			Language:   item.Language,
			Metadata:   map[string]any{"word": item.OriginalWord, "sourceId": item.SourceID},
		})
		if err != nil {
			s.logger.Warn("failed to record saved word", zap.Error(err), zap.String("id", item.ID))
		}
	}
	s.invalidate(ctx, learnerID, item.Language)

	return item, nil
}

// Update applies a learner edit to an item
//
// Marking an item as mastered requires at least review.MasteryReviewCount reviews.
func (s *vocabularyService) Update(ctx context.Context, learnerID int, id string, update models.VocabularyUpdate) (*models.VocabularyItem, error) {
	if update.IsEmpty() {
		return nil, &models.ValidationError{Message: "no fields to update"}
	}

	item, err := s.repo.Get(ctx, learnerID, id)
	if err != nil {
		return nil, err
	}
	if update.Mastered != nil && *update.Mastered && item.ReviewCount < review.MasteryReviewCount {
		return nil, &models.ValidationError{
			Field:   "mastered",
			Message: fmt.Sprintf("requires at least %d reviews", review.MasteryReviewCount),
		}
	}

	if err := s.repo.Update(ctx, learnerID, id, update); err != nil {
		return nil, err
	}
	s.invalidate(ctx, learnerID, item.Language)

	return s.repo.Get(ctx, learnerID, id)
}

// Delete soft-deletes an item
func (s *vocabularyService) Delete(ctx context.Context, learnerID int, id string) error {
	item, err := s.repo.Get(ctx, learnerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, learnerID, id, s.now()); err != nil {
		return err
	}
	s.invalidate(ctx, learnerID, item.Language)
	return nil
}

// Export renders the vocabulary of one language as an xlsx workbook
func (s *vocabularyService) Export(ctx context.Context, learnerID int, languageParam string) ([]byte, models.Language, error) {
	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, languageParam)
	if err != nil {
		return nil, "", err
	}

	items, err := s.repo.ListByLanguage(ctx, learnerID, language)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, items); err != nil {
		s.logger.Error("failed to export vocabulary", zap.Error(err), zap.Int("learner_id", learnerID))
		return nil, "", fmt.Errorf("failed to export vocabulary: %w", err)
	}

	return buf.Bytes(), language, nil
}

// Import saves every row of an xlsx workbook as a new vocabulary item
//
// Rows are validated before anything is written, so a bad workbook leaves the vocabulary unchanged.
// A storage failure stops the import and keeps the rows saved before it.
// Returns the number of imported items.
func (s *vocabularyService) Import(ctx context.Context, learnerID int, languageParam string, r io.Reader) (int, error) {
	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, languageParam)
	if err != nil {
		return 0, err
	}

	rows, err := spreadsheet.Read(r)
	if err != nil {
		return 0, err
	}

	items := make([]*models.VocabularyItem, 0, len(rows))
	for _, row := range rows {
		row.Language = language
		item, err := s.newItem(ctx, learnerID, row)
		if err != nil {
			return 0, err
		}
		items = append(items, item)
	}

	for i, item := range items {
		if err := s.repo.Save(ctx, item); err != nil {
			if i > 0 {
				s.invalidate(ctx, learnerID, language)
			}
			return i, err
		}
	}
	if len(items) > 0 {
		s.invalidate(ctx, learnerID, language)
	}

	s.logger.Info("imported vocabulary", zap.Int("learner_id", learnerID), zap.Int("count", len(items)))
	return len(items), nil
}

func (s *vocabularyService) newItem(ctx context.Context, learnerID int, req models.CreateVocabularyRequest) (*models.VocabularyItem, error) {
	original := strings.TrimSpace(req.OriginalWord)
	translated := strings.TrimSpace(req.TranslatedWord)
	if original == "" {
		return nil, &models.ValidationError{Field: "originalWord", Message: "must not be empty"}
	}
	if translated == "" {
		return nil, &models.ValidationError{Field: "translatedWord", Message: "must not be empty"}
	}

	language, err := resolveLanguage(ctx, s.settingsRepo, learnerID, string(req.Language))
	if err != nil {
		return nil, err
	}

	return &models.VocabularyItem{
		ID:                 uuid.NewString(),
		LearnerID:          learnerID,
		OriginalWord:       original,
		TranslatedWord:     translated,
		OriginalSentence:   strings.TrimSpace(req.OriginalSentence),
		TranslatedSentence: strings.TrimSpace(req.TranslatedSentence),
		Language:           language,
		SourceID:           req.SourceID,
		SourceTitle:        req.SourceTitle,
		CreatedAt:          s.now(),
	}, nil
}

func (s *vocabularyService) invalidate(ctx context.Context, learnerID int, language models.Language) {
	invalidateProgress(ctx, s.cache, s.logger, learnerID, language)
}
