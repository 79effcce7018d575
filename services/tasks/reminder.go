package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tinyhouse/models"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder is the asynq task type for check-in reminders.
const TypeBookingReminder = "booking:reminder"

// ReminderLead is how long before check-in the reminder fires.
const ReminderLead = 24 * time.Hour

// NewReminderTask builds the reminder task and its scheduling options.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.BookingID),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// FireAt returns when a reminder for checkIn should run, never earlier than now.
func FireAt(checkIn, now time.Time) time.Time {
	at := checkIn.Add(-ReminderLead)
	if at.Before(now) {
		return now
	}
	return at
}

// Enqueuer is the subset of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler queues check-in reminders on asynq.
type ReminderScheduler struct {
	client Enqueuer
	now    func() time.Time
}

// NewReminderScheduler wraps an asynq client.
func NewReminderScheduler(client Enqueuer) *ReminderScheduler {
	return &ReminderScheduler{client: client, now: time.Now}
}

// ScheduleReminder queues a reminder one day before checkIn.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, checkIn time.Time) error {
	task, opts, err := NewReminderTask(payload, FireAt(checkIn, s.now()))
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
