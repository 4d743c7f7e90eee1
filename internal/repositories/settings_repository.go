package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

type settingsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a new instance of the SettingsRepository interface
func NewSettingsRepository(db *sql.DB, logger *zap.Logger) *settingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Method Get is a SettingsRepository implementation for retrieving learner settings.
//
// A learner without stored settings gets the defaults (DefaultLanguage, reminders off).
func (r *settingsRepository) Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error) {
	query := `
		SELECT learner_id, selected_language, email, reminders_enabled
		FROM learner_settings
		WHERE learner_id = ?
	`

	var settings models.LearnerSettings
	err := r.db.QueryRowContext(ctx, query, learnerID).Scan(
		&settings.LearnerID,
		&settings.SelectedLanguage,
		&settings.Email,
		&settings.RemindersEnabled,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.LearnerSettings{LearnerID: learnerID, SelectedLanguage: models.DefaultLanguage}, nil
		}
		r.logger.Error("failed to query learner settings", zap.Error(err), zap.Int("learner_id", learnerID))
		return nil, fmt.Errorf("failed to query learner settings: %w", err)
	}

	return &settings, nil
}

// Method Save is a SettingsRepository implementation for inserting or replacing learner settings.
func (r *settingsRepository) Save(ctx context.Context, settings models.LearnerSettings) error {
	if !settings.SelectedLanguage.IsValid() {
		return &models.ValidationError{Field: "selectedLanguage", Message: fmt.Sprintf("unsupported language %q", settings.SelectedLanguage)}
	}

	query := `
		INSERT INTO learner_settings (learner_id, selected_language, email, reminders_enabled)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			selected_language = VALUES(selected_language),
			email = VALUES(email),
			reminders_enabled = VALUES(reminders_enabled)
	`

	_, err := r.db.ExecContext(ctx, query,
		settings.LearnerID,
		settings.SelectedLanguage,
		settings.Email,
		settings.RemindersEnabled,
	)
	if err != nil {
		r.logger.Error("failed to save learner settings", zap.Error(err), zap.Int("learner_id", settings.LearnerID))
		return fmt.Errorf("failed to save learner settings: %w", err)
	}

	return nil
}

// Method ListReminderRecipients is a SettingsRepository implementation for retrieving learners
// who enabled review reminders and have an e-mail address.
func (r *settingsRepository) ListReminderRecipients(ctx context.Context) ([]models.LearnerSettings, error) {
	query := `
		SELECT learner_id, selected_language, email, reminders_enabled
		FROM learner_settings
		WHERE reminders_enabled = TRUE AND email <> ''
		ORDER BY learner_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query reminder recipients", zap.Error(err))
		return nil, fmt.Errorf("failed to query reminder recipients: %w", err)
	}
	defer rows.Close()

	recipients := []models.LearnerSettings{}
	for rows.Next() {
		var s models.LearnerSettings
		if err := rows.Scan(&s.LearnerID, &s.SelectedLanguage, &s.Email, &s.RemindersEnabled); err != nil {
			r.logger.Error("failed to scan learner settings", zap.Error(err))
			return nil, fmt.Errorf("failed to scan learner settings: %w", err)
		}
		recipients = append(recipients, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recipients, nil
}
