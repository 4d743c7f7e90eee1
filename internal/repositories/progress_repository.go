package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

type progressRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProgressRepository creates a new instance of the ProgressRepository interface
func NewProgressRepository(db *sql.DB, logger *zap.Logger) *progressRepository {
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// Method Get is a ProgressRepository implementation for retrieving the cached progress of a learner in one language.
//
// A learner without a stored row gets a zero-valued record, never an error.
func (r *progressRepository) Get(ctx context.Context, learnerID int, language models.Language) (*models.LanguageProgress, error) {
	query := `
		SELECT total_words, mastered_words, articles_read, study_streak, last_activity
		FROM language_progress
		WHERE learner_id = ? AND language = ?
	`

	progress := &models.LanguageProgress{LearnerID: learnerID, Language: language}
	var lastActivity sql.NullTime
	err := r.db.QueryRowContext(ctx, query, learnerID, language).Scan(
		&progress.TotalWords,
		&progress.MasteredWords,
		&progress.ArticlesRead,
		&progress.StudyStreak,
		&lastActivity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return progress, nil
		}
		r.logger.Error("failed to query language progress", zap.Error(err),
			zap.Int("learner_id", learnerID), zap.String("language", string(language)))
		return nil, fmt.Errorf("failed to query language progress: %w", err)
	}
	progress.LastActivity = lastActivity.Time

	return progress, nil
}

// Method Streak is a ProgressRepository implementation for retrieving the study streak counter.
func (r *progressRepository) Streak(ctx context.Context, learnerID int, language models.Language) (models.StudyStreak, error) {
	progress, err := r.Get(ctx, learnerID, language)
	if err != nil {
		return models.StudyStreak{}, err
	}
	return models.StudyStreak{Days: progress.StudyStreak, LastActivity: progress.LastActivity}, nil
}

// Method SaveCounts is a ProgressRepository implementation for storing the word and article counters.
//
// The streak columns are left untouched, they are owned by SaveStreak.
func (r *progressRepository) SaveCounts(ctx context.Context, progress models.LanguageProgress) error {
	query := `
		INSERT INTO language_progress (learner_id, language, total_words, mastered_words, articles_read)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			total_words = VALUES(total_words),
			mastered_words = VALUES(mastered_words),
			articles_read = VALUES(articles_read)
	`

	_, err := r.db.ExecContext(ctx, query,
		progress.LearnerID,
		progress.Language,
		progress.TotalWords,
		progress.MasteredWords,
		progress.ArticlesRead,
	)
	if err != nil {
		r.logger.Error("failed to save language progress", zap.Error(err), zap.Int("learner_id", progress.LearnerID))
		return fmt.Errorf("failed to save language progress: %w", err)
	}

	return nil
}

// Method SaveStreak is a ProgressRepository implementation for storing the study streak counter.
func (r *progressRepository) SaveStreak(ctx context.Context, learnerID int, language models.Language, streak models.StudyStreak) error {
	query := `
		INSERT INTO language_progress (learner_id, language, study_streak, last_activity)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			study_streak = VALUES(study_streak),
			last_activity = VALUES(last_activity)
	`

	var lastActivity sql.NullTime
	if !streak.LastActivity.IsZero() {
		lastActivity = sql.NullTime{Time: streak.LastActivity, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query, learnerID, language, streak.Days, lastActivity)
	if err != nil {
		r.logger.Error("failed to save study streak", zap.Error(err), zap.Int("learner_id", learnerID))
		return fmt.Errorf("failed to save study streak: %w", err)
	}

	return nil
}
