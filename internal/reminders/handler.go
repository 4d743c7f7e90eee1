package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/review"
	"go.uber.org/zap"
)

// SettingsRepository is the interface for reading learner settings
type SettingsRepository interface {
	// Method Get retrieve the learner's settings, defaults when nothing was stored yet.
	Get(ctx context.Context, learnerID int) (*models.LearnerSettings, error)
}

// VocabularyRepository is the interface for reading a learner's vocabulary
type VocabularyRepository interface {
	// Method ListByLanguage retrieve the learner's live vocabulary items of one language.
	ListByLanguage(ctx context.Context, learnerID int, language models.Language) ([]models.VocabularyItem, error)
}

// Mailer sends e-mails
type Mailer interface {
	Send(to, subject, body string) error
}

// Handler processes review reminder tasks
type Handler struct {
	settings   SettingsRepository
	vocabulary VocabularyRepository
	scheduler  *review.Scheduler
	mailer     Mailer
	logger     *zap.Logger
	now        func() time.Time
}

// NewHandler creates a new reminder task handler
func NewHandler(
	settings SettingsRepository,
	vocabulary VocabularyRepository,
	scheduler *review.Scheduler,
	mailer Mailer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		settings:   settings,
		vocabulary: vocabulary,
		scheduler:  scheduler,
		mailer:     mailer,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ProcessTask handles a review:reminder task
//
// Nothing is sent when the learner turned reminders off since the task was enqueued
// or when no item of the selected language is due.
func (h *Handler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := ParseReviewReminderPayload(t)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	settings, err := h.settings.Get(ctx, payload.LearnerID)
	if err != nil {
		return err
	}
	if !settings.RemindersEnabled || settings.Email == "" {
		h.logger.Debug("reminders disabled, skipping", zap.Int("learner_id", payload.LearnerID))
		return nil
	}

	items, err := h.vocabulary.ListByLanguage(ctx, payload.LearnerID, settings.SelectedLanguage)
	if err != nil {
		return err
	}

	due := len(h.scheduler.SelectDue(items, h.now()))
	if due == 0 {
		h.logger.Debug("no items due, skipping reminder", zap.Int("learner_id", payload.LearnerID))
		return nil
	}

	subject, body := reminderMessage(due, settings.SelectedLanguage)
	if err := h.mailer.Send(settings.Email, subject, body); err != nil {
		h.logger.Error("failed to send review reminder", zap.Int("learner_id", payload.LearnerID), zap.Error(err))
		return err
	}

	h.logger.Info("sent review reminder", zap.Int("learner_id", payload.LearnerID), zap.Int("due", due))
	return nil
}

func reminderMessage(due int, language models.Language) (string, string) {
	words := "words are"
	if due == 1 {
		words = "word is"
	}
	subject := fmt.Sprintf("%d %s %s waiting for review", due, language.Name(), words)
	body := fmt.Sprintf(
		"Hi!\n\n%d %s %s ready for review today. A short flashcard session keeps your streak going.\n\nHappy studying,\nLingoRead",
		due, language.Name(), words,
	)
	return subject, body
}
