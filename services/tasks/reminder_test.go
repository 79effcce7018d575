package tasks

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tinyhouse/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	r.opts = append(r.opts, opts)
	return &asynq.TaskInfo{ID: "t1"}, nil
}

func TestFireAt(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	checkIn := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), FireAt(checkIn, now))

	tomorrow := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, FireAt(tomorrow, now))
}

func TestScheduleReminder_EnqueuesPayload(t *testing.T) {
	rec := &recordingEnqueuer{}
	s := NewReminderScheduler(rec)
	s.now = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }

	payload := models.ReminderPayload{BookingID: "b1", TenantID: "u1", ListingID: "l1", Title: "Cabin", CheckIn: "2024-06-10"}
	require.NoError(t, s.ScheduleReminder(context.Background(), payload, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)))

	require.Len(t, rec.tasks, 1)
	assert.Equal(t, TypeBookingReminder, rec.tasks[0].Type())

	var got models.ReminderPayload
	require.NoError(t, json.Unmarshal(rec.tasks[0].Payload(), &got))
	assert.Equal(t, payload, got)
	assert.Len(t, rec.opts[0], 3)
}
