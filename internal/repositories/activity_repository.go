package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

type activityRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewActivityRepository creates a new instance of the ActivityRepository interface
func NewActivityRepository(db *sql.DB, logger *zap.Logger) *activityRepository {
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// DedupeKey returns the key under which an idempotent action is stored once per learner and target
// Returns an empty string for actions that are always appended
func DedupeKey(learnerID int, kind models.ActionKind, targetID string) string {
	if !kind.IsIdempotent() || targetID == "" {
		return ""
	}
	return fmt.Sprintf("%d_%s_%s", learnerID, kind, targetID)
}

// Method Record is an ActivityRepository implementation for appending an action to the activity log.
//
// Idempotent actions with a target replace the timestamp and metadata of the existing record instead of
// creating a new one. A soft-deleted idempotent record is revived. The record id is written back to "record".
func (r *activityRepository) Record(ctx context.Context, record *models.ActivityRecord) error {
	metadata, err := encodeMetadata(record.Metadata)
	if err != nil {
		return &models.ValidationError{Field: "metadata", Message: err.Error()}
	}

	var dedupe sql.NullString
	if key := DedupeKey(record.LearnerID, record.ActionKind, record.TargetID); key != "" {
		dedupe = sql.NullString{String: key, Valid: true}
	}

	query := `
		INSERT INTO activity_records (learner_id, action_kind, target_kind, target_id, language, metadata, occurred_at, dedupe_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			id = LAST_INSERT_ID(id),
			occurred_at = VALUES(occurred_at),
			metadata = VALUES(metadata),
			deleted_at = NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		record.LearnerID,
		record.ActionKind,
		record.TargetKind,
		nullString(record.TargetID),
		nullString(string(record.Language)),
		metadata,
		record.Timestamp,
		dedupe,
	)
	if err != nil {
		r.logger.Error("failed to record activity", zap.Error(err),
			zap.Int("learner_id", record.LearnerID), zap.String("action_kind", string(record.ActionKind)))
		return fmt.Errorf("failed to record activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	record.ID = id

	return nil
}

// Method List is an ActivityRepository implementation for retrieving the live activity log of a learner.
//
// When "kinds" is empty every action kind is returned. Records are ordered newest first.
func (r *activityRepository) List(ctx context.Context, learnerID int, kinds []models.ActionKind) ([]models.ActivityRecord, error) {
	args := []any{learnerID}
	filter := ""
	if len(kinds) > 0 {
		placeholders := make([]string, len(kinds))
		for i, kind := range kinds {
			placeholders[i] = "?"
			args = append(args, kind)
		}
		filter = fmt.Sprintf(" AND action_kind IN (%s)", strings.Join(placeholders, ", "))
	}

	query := `
		SELECT id, learner_id, action_kind, target_kind, target_id, language, metadata, occurred_at
		FROM activity_records
		WHERE learner_id = ? AND deleted_at IS NULL` + filter + `
		ORDER BY occurred_at DESC, id DESC
	`

	return r.query(ctx, query, args...)
}

// Method ListSince is an ActivityRepository implementation for retrieving live records at or after "since".
func (r *activityRepository) ListSince(ctx context.Context, learnerID int, since time.Time) ([]models.ActivityRecord, error) {
	query := `
		SELECT id, learner_id, action_kind, target_kind, target_id, language, metadata, occurred_at
		FROM activity_records
		WHERE learner_id = ? AND occurred_at >= ? AND deleted_at IS NULL
		ORDER BY occurred_at DESC, id DESC
	`

	return r.query(ctx, query, learnerID, since)
}

// Method CountByKind is an ActivityRepository implementation for counting live records per action kind.
func (r *activityRepository) CountByKind(ctx context.Context, learnerID int) (map[models.ActionKind]int, error) {
	query := `
		SELECT action_kind, COUNT(*)
		FROM activity_records
		WHERE learner_id = ? AND deleted_at IS NULL
		GROUP BY action_kind
	`

	rows, err := r.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		r.logger.Error("failed to count activity", zap.Error(err), zap.Int("learner_id", learnerID))
		return nil, fmt.Errorf("failed to count activity: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ActionKind]int)
	for rows.Next() {
		var kind models.ActionKind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			r.logger.Error("failed to scan activity count", zap.Error(err))
			return nil, fmt.Errorf("failed to scan activity count: %w", err)
		}
		counts[kind] = count
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// Method SoftDelete is an ActivityRepository implementation for removing an idempotent action, e.g. un-saving a word.
//
// Only idempotent kinds can be addressed by target. NotFoundError is returned when no live record exists.
func (r *activityRepository) SoftDelete(ctx context.Context, learnerID int, kind models.ActionKind, targetID string, at time.Time) error {
	key := DedupeKey(learnerID, kind, targetID)
	if key == "" {
		return &models.ValidationError{Field: "actionKind", Message: fmt.Sprintf("%s records cannot be removed by target", kind)}
	}

	query := `
		UPDATE activity_records
		SET deleted_at = ?
		WHERE dedupe_key = ? AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, at, key)
	if err != nil {
		r.logger.Error("failed to delete activity", zap.Error(err), zap.String("dedupe_key", key))
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &models.NotFoundError{Resource: string(kind), ID: targetID}
	}

	return nil
}

func (r *activityRepository) query(ctx context.Context, query string, args ...any) ([]models.ActivityRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query activity", zap.Error(err))
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	records := []models.ActivityRecord{}
	for rows.Next() {
		var rec models.ActivityRecord
		var targetID, language sql.NullString
		var metadata []byte
		if err := rows.Scan(&rec.ID, &rec.LearnerID, &rec.ActionKind, &rec.TargetKind,
			&targetID, &language, &metadata, &rec.Timestamp); err != nil {
			r.logger.Error("failed to scan activity", zap.Error(err))
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		rec.TargetID = targetID.String
		rec.Language = models.Language(language.String)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
				r.logger.Warn("failed to decode activity metadata", zap.Error(err), zap.Int64("id", rec.ID))
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// encodeMetadata returns the JSON column value, nil for empty metadata
func encodeMetadata(metadata map[string]any) (any, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
