package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// SettingsRepository is the interface that wraps methods for learner_settings table data access
type SettingsRepository interface {
	// Method Get retrieves the settings of a learner.
	//
	// Learners without stored settings get the defaults, so a missing row is never an error.
	Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error)
	// Method Save inserts or replaces the settings of a learner.
	//
	// ValidationError is returned for an unsupported selected language.
	Save(ctx context.Context, settings models.LearnerSettings) error
	// Method ListReminderRecipients retrieves the settings of every learner who wants review reminders.
	ListReminderRecipients(ctx context.Context) ([]models.LearnerSettings, error)
}

type settingsService struct {
	repo     SettingsRepository
	activity ActivityRecorder
	logger   *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo SettingsRepository, activity ActivityRecorder, logger *zap.Logger) *settingsService {
	return &settingsService{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

// Get retrieves the settings of a learner
func (s *settingsService) Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error) {
	return s.repo.Get(ctx, learnerID)
}

// Update merges a partial update into the learner settings
//
// A change of the selected language is recorded as a changed_target_language action.
func (s *settingsService) Update(ctx context.Context, learnerID int, req models.UpdateSettingsRequest) (*models.LearnerSettings, error) {
	current, err := s.repo.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.LearnerID = learnerID
	if req.SelectedLanguage != nil {
		if !req.SelectedLanguage.IsValid() {
			return nil, &models.ValidationError{Field: "selectedLanguage", Message: fmt.Sprintf("unsupported language %q", *req.SelectedLanguage)}
		}
		updated.SelectedLanguage = *req.SelectedLanguage
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return nil, &models.ValidationError{Field: "email", Message: "invalid e-mail address"}
			}
		}
		updated.Email = email
	}
	if req.RemindersEnabled != nil {
		updated.RemindersEnabled = *req.RemindersEnabled
	}
	if updated.RemindersEnabled && updated.Email == "" {
		return nil, &models.ValidationError{Field: "email", Message: "required when reminders are enabled"}
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	if updated.SelectedLanguage != current.SelectedLanguage && s.activity != nil {
		_, err := s.activity.Record(ctx, learnerID, models.RecordActivityRequest{
			ActionKind: models.ActionChangedTargetLanguage,
			TargetKind: models.TargetSetting,
			Language:   updated.SelectedLanguage,
			Metadata:   map[string]any{"selectedLanguage": string(updated.SelectedLanguage)},
		})
		if err != nil {
			s.logger.Warn("failed to record language change", zap.Error(err), zap.Int("learner_id", learnerID))
		}
	}

	return &updated, nil
}

// resolveLanguage validates a language parameter, falling back to the learner's selected language when empty
func resolveLanguage(ctx context.Context, settingsRepo SettingsRepository, learnerID int, param string) (models.Language, error) {
	if param != "" {
		language := models.Language(strings.ToLower(strings.TrimSpace(param)))
		if !language.IsValid() {
			return "", &models.ValidationError{Field: "language", Message: fmt.Sprintf("unsupported language %q", param)}
		}
		return language, nil
	}

	if settingsRepo == nil {
		return models.DefaultLanguage, nil
	}
	settings, err := settingsRepo.Get(ctx, learnerID)
	if err != nil {
		return "", err
	}
	if !settings.SelectedLanguage.IsValid() {
		return models.DefaultLanguage, nil
	}
	return settings.SelectedLanguage, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
