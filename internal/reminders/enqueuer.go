package reminders

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/lingoread/backend/internal/models"
	"go.uber.org/zap"
)

// RecipientRepository is the interface for reading learners who opted into reminders
type RecipientRepository interface {
	// Method ListReminderRecipients retrieve the settings of every learner with reminders enabled and an e-mail set.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	ListReminderRecipients(ctx context.Context) ([]models.LearnerSettings, error)
}

// TaskClient is the subset of asynq.Client used to enqueue reminders
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer fans out one reminder task per recipient
type Enqueuer struct {
	recipients RecipientRepository
	client     TaskClient
	logger     *zap.Logger
	now        func() time.Time
}

// NewEnqueuer creates a new reminder enqueuer
func NewEnqueuer(recipients RecipientRepository, client TaskClient, logger *zap.Logger) *Enqueuer {
	return &Enqueuer{
		recipients: recipients,
		client:     client,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// EnqueueAll enqueues a reminder for every recipient and returns the number of enqueued tasks
//
// Recipients already reminded today are skipped. A failure for one learner does not stop the others.
func (e *Enqueuer) EnqueueAll(ctx context.Context) (int, error) {
	recipients, err := e.recipients.ListReminderRecipients(ctx)
	if err != nil {
		return 0, err
	}

	now := e.now()
	enqueued := 0
	for _, recipient := range recipients {
		task, err := NewReviewReminderTask(recipient.LearnerID)
		if err != nil {
			e.logger.Error("failed to create reminder task", zap.Int("learner_id", recipient.LearnerID), zap.Error(err))
			continue
		}

		_, err = e.client.EnqueueContext(ctx, task,
			asynq.Queue(Queue),
			asynq.MaxRetry(maxRetry),
			asynq.TaskID(reminderTaskID(recipient.LearnerID, now)),
			asynq.Retention(reminderRetention(now)),
		)
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			e.logger.Debug("reminder already enqueued today", zap.Int("learner_id", recipient.LearnerID))
			continue
		}
		if err != nil {
			e.logger.Error("failed to enqueue reminder", zap.Int("learner_id", recipient.LearnerID), zap.Error(err))
			continue
		}
		enqueued++
	}

	e.logger.Info("enqueued review reminders", zap.Int("recipients", len(recipients)), zap.Int("enqueued", enqueued))
	return enqueued, nil
}
