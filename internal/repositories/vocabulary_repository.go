package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

const vocabularyColumns = `id, learner_id, language, original_word, translated_word, original_sentence,
		translated_sentence, source_id, source_title, mastered, review_count, last_reviewed, next_review, created_at`

type vocabularyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVocabularyRepository creates a new instance of the VocabularyRepository interface
func NewVocabularyRepository(db *sql.DB, logger *zap.Logger) *vocabularyRepository {
	return &vocabularyRepository{
		db:     db,
		logger: logger,
	}
}

// Method Save is a VocabularyRepository implementation for inserting or replacing a vocabulary item.
//
// Items are upserted by id. learner_id, language and created_at of an existing row are never changed.
func (r *vocabularyRepository) Save(ctx context.Context, item *models.VocabularyItem) error {
	if err := validateItem(item); err != nil {
		return err
	}

	query := `
		INSERT INTO vocabulary_items (` + vocabularyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			original_word = VALUES(original_word),
			translated_word = VALUES(translated_word),
			original_sentence = VALUES(original_sentence),
			translated_sentence = VALUES(translated_sentence),
			source_id = VALUES(source_id),
			source_title = VALUES(source_title),
			mastered = VALUES(mastered),
			review_count = VALUES(review_count),
			last_reviewed = VALUES(last_reviewed),
			next_review = VALUES(next_review)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.LearnerID,
		item.Language,
		item.OriginalWord,
		item.TranslatedWord,
		item.OriginalSentence,
		item.TranslatedSentence,
		item.SourceID,
		item.SourceTitle,
		item.Mastered,
		item.ReviewCount,
		nullTime(item.LastReviewed),
		nullTime(item.NextReview),
		item.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to save vocabulary item", zap.Error(err), zap.String("id", item.ID))
		return fmt.Errorf("failed to save vocabulary item: %w", err)
	}

	return nil
}

// Method Get is a VocabularyRepository implementation for retrieving one item of a learner.
func (r *vocabularyRepository) Get(ctx context.Context, learnerID int, id string) (*models.VocabularyItem, error) {
	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE id = ? AND learner_id = ? AND deleted_at IS NULL
	`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id, learnerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &models.NotFoundError{Resource: "vocabulary item", ID: id}
		}
		r.logger.Error("failed to query vocabulary item", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to query vocabulary item: %w", err)
	}

	return item, nil
}

// Method ListByLanguage is a VocabularyRepository implementation for retrieving all live items of a learner in one language.
//
// Items are ordered by creation time, newest first.
func (r *vocabularyRepository) ListByLanguage(ctx context.Context, learnerID int, language models.Language) ([]models.VocabularyItem, error) {
	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE learner_id = ? AND language = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, learnerID, language)
	if err != nil {
		r.logger.Error("failed to query vocabulary items", zap.Error(err), zap.Int("learner_id", learnerID))
		return nil, fmt.Errorf("failed to query vocabulary items: %w", err)
	}
	defer rows.Close()

	items := []models.VocabularyItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.logger.Error("failed to scan vocabulary item", zap.Error(err))
			return nil, fmt.Errorf("failed to scan vocabulary item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// Method Update is a VocabularyRepository implementation for applying a partial learner edit.
//
// Only non-nil fields of "update" are written. Scheduling fields are not editable here, use UpdateSchedule.
func (r *vocabularyRepository) Update(ctx context.Context, learnerID int, id string, update models.VocabularyUpdate) error {
	if update.IsEmpty() {
		return &models.ValidationError{Message: "no fields to update"}
	}
	if update.OriginalWord != nil && strings.TrimSpace(*update.OriginalWord) == "" {
		return &models.ValidationError{Field: "originalWord", Message: "must not be empty"}
	}
	if update.TranslatedWord != nil && strings.TrimSpace(*update.TranslatedWord) == "" {
		return &models.ValidationError{Field: "translatedWord", Message: "must not be empty"}
	}

	var setClauses []string
	var args []any
	add := func(column string, value any) {
		setClauses = append(setClauses, column+" = ?")
		args = append(args, value)
	}
	if update.OriginalWord != nil {
		add("original_word", *update.OriginalWord)
	}
	if update.TranslatedWord != nil {
		add("translated_word", *update.TranslatedWord)
	}
	if update.OriginalSentence != nil {
		add("original_sentence", *update.OriginalSentence)
	}
	if update.TranslatedSentence != nil {
		add("translated_sentence", *update.TranslatedSentence)
	}
	if update.SourceID != nil {
		add("source_id", *update.SourceID)
	}
	if update.SourceTitle != nil {
		add("source_title", *update.SourceTitle)
	}
	if update.Mastered != nil {
		add("mastered", *update.Mastered)
	}
	args = append(args, id, learnerID)

	query := fmt.Sprintf(`
		UPDATE vocabulary_items
		SET %s
		WHERE id = ? AND learner_id = ? AND deleted_at IS NULL
	`, strings.Join(setClauses, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update vocabulary item", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update vocabulary item: %w", err)
	}

	return r.expectOneRow(result, &models.NotFoundError{Resource: "vocabulary item", ID: id})
}

// Method UpdateSchedule is a VocabularyRepository implementation for persisting a review outcome.
//
// The row is written only while its stored review_count still equals "expectedReviewCount".
// A lost race results in a PreconditionError, the caller must reload the item before retrying.
func (r *vocabularyRepository) UpdateSchedule(ctx context.Context, learnerID int, id string, expectedReviewCount int, item models.VocabularyItem) error {
	query := `
		UPDATE vocabulary_items
		SET mastered = ?, review_count = ?, last_reviewed = ?, next_review = ?
		WHERE id = ? AND learner_id = ? AND review_count = ? AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Mastered,
		item.ReviewCount,
		nullTime(item.LastReviewed),
		nullTime(item.NextReview),
		id,
		learnerID,
		expectedReviewCount,
	)
	if err != nil {
		r.logger.Error("failed to update vocabulary schedule", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to update vocabulary schedule: %w", err)
	}

	return r.expectOneRow(result, &models.PreconditionError{
		Message: fmt.Sprintf("vocabulary item %s was changed by another review", id),
	})
}

// Method SoftDelete is a VocabularyRepository implementation for hiding an item from every read.
func (r *vocabularyRepository) SoftDelete(ctx context.Context, learnerID int, id string, at time.Time) error {
	query := `
		UPDATE vocabulary_items
		SET deleted_at = ?
		WHERE id = ? AND learner_id = ? AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, at, id, learnerID)
	if err != nil {
		r.logger.Error("failed to delete vocabulary item", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to delete vocabulary item: %w", err)
	}

	return r.expectOneRow(result, &models.NotFoundError{Resource: "vocabulary item", ID: id})
}

func (r *vocabularyRepository) expectOneRow(result sql.Result, noRows error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return noRows
	}
	return nil
}

func validateItem(item *models.VocabularyItem) error {
	if item == nil {
		return &models.ValidationError{Message: "vocabulary item is required"}
	}
	if item.ID == "" {
		return &models.ValidationError{Field: "id", Message: "is required"}
	}
	if strings.TrimSpace(item.OriginalWord) == "" {
		return &models.ValidationError{Field: "originalWord", Message: "must not be empty"}
	}
	if strings.TrimSpace(item.TranslatedWord) == "" {
		return &models.ValidationError{Field: "translatedWord", Message: "must not be empty"}
	}
	if !item.Language.IsValid() {
		return &models.ValidationError{Field: "language", Message: fmt.Sprintf("unsupported language %q", item.Language)}
	}
	if item.ReviewCount < 0 {
		return &models.ValidationError{Field: "reviewCount", Message: "must not be negative"}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.VocabularyItem, error) {
	var item models.VocabularyItem
	var lastReviewed, nextReview sql.NullTime
	err := row.Scan(
		&item.ID,
		&item.LearnerID,
		&item.Language,
		&item.OriginalWord,
		&item.TranslatedWord,
		&item.OriginalSentence,
		&item.TranslatedSentence,
		&item.SourceID,
		&item.SourceTitle,
		&item.Mastered,
		&item.ReviewCount,
		&lastReviewed,
		&nextReview,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.LastReviewed = timePtr(lastReviewed)
	item.NextReview = timePtr(nextReview)
	return &item, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
