// Package reminders schedules, enqueues and delivers review reminder e-mails
package reminders

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TypeReviewReminder is the asynq task type of a review reminder
	TypeReviewReminder = "review:reminder"
	// Queue is the asynq queue reminders are enqueued to
	Queue = "reminders"

	maxRetry = 3
)

// ReviewReminderPayload is the payload of a review reminder task
type ReviewReminderPayload struct {
	LearnerID int `json:"learnerId"`
}

// NewReviewReminderTask creates a reminder task for one learner
func NewReviewReminderTask(learnerID int) (*asynq.Task, error) {
	payload, err := json.Marshal(ReviewReminderPayload{LearnerID: learnerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TypeReviewReminder, payload), nil
}

// ParseReviewReminderPayload decodes the payload of a reminder task
func ParseReviewReminderPayload(t *asynq.Task) (ReviewReminderPayload, error) {
	var payload ReviewReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to parse reminder payload: %w", err)
	}
	if payload.LearnerID <= 0 {
		return payload, fmt.Errorf("invalid learner id %d in reminder payload", payload.LearnerID)
	}
	return payload, nil
}

// reminderTaskID identifies the reminder of one learner on one UTC day
// asynq rejects a second task with the same id while the first one is still stored.
func reminderTaskID(learnerID int, at time.Time) string {
	return fmt.Sprintf("review-reminder-%d-%s", learnerID, at.UTC().Format("2006-01-02"))
}

// reminderRetention keeps a processed reminder stored until the end of its UTC day
// Retention counts from completion, so the task id stays taken at least until midnight.
func reminderRetention(at time.Time) time.Duration {
	at = at.UTC()
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return midnight.Sub(at)
}
