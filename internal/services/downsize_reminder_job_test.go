package services

import (
	"context"
	"testing"
	"time"

	"piercing-service/internal/models"
	"piercing-service/internal/rules"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsizeReminderJob_RunOnce(t *testing.T) {
	clients := newFakeClientRepo()
	known := uuid.New()
	clients.clients[known] = models.ClientRecord{ClientID: known, FirstName: "Jordan", Phone: "+15035550100"}

	due := fixedNow.Add(24 * time.Hour)
	piercings := &fakePiercingRepo{due: []models.PiercingRecord{
		{RecordID: uuid.New(), ClientID: known, PiercingType: "helix", DownsizeDueDate: &due},
		{RecordID: uuid.New(), ClientID: uuid.New(), PiercingType: "rook", DownsizeDueDate: &due},
	}}

	notifier, sender, _, _ := newTestNotificationService()
	job := NewDownsizeReminderJob(clients, piercings, notifier)
	job.now = func() time.Time { return fixedNow }

	sent := job.RunOnce(context.Background())

	assert.Equal(t, 1, sent)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), piercings.from)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), piercings.to)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+15035550100", sender.sent[0].phone)

	stats := job.Stats()
	require.NotNil(t, stats.LastRun)
	assert.Equal(t, fixedNow, *stats.LastRun)
	assert.Equal(t, int64(1), stats.RemindersSent)
	assert.Equal(t, int64(1), stats.Failures, "unknown client counts as a failure")

	// a second run the same day does not text again
	assert.Equal(t, 0, job.RunOnce(context.Background()))
}

func TestDownsizeReminderJob_QueryFailure(t *testing.T) {
	notifier := NewNotificationService(rules.NewEngine(), &fakeSender{}, nil, nil)
	job := NewDownsizeReminderJob(newFakeClientRepo(), &fakePiercingRepo{dueErr: errBoom}, notifier)
	job.now = func() time.Time { return fixedNow }

	assert.Equal(t, 0, job.RunOnce(context.Background()))
	assert.Equal(t, int64(1), job.Stats().Failures)
}

func TestDownsizeReminderJob_EarlyTimerCoversScheduledDay(t *testing.T) {
	piercings := &fakePiercingRepo{}
	job := NewDownsizeReminderJob(newFakeClientRepo(), piercings, &NotificationService{})
	scheduled := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	job.now = func() time.Time { return scheduled.Add(-10 * time.Millisecond) }

	job.runFor(context.Background(), scheduled)

	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), piercings.from)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), piercings.to)
}

func TestNextRun(t *testing.T) {
	scheduled := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	// clock still reads the previous evening
	early := scheduled.Add(-10 * time.Millisecond)
	assert.Equal(t, scheduled.AddDate(0, 0, 1), nextRun(scheduled, early))

	assert.Equal(t, scheduled.AddDate(0, 0, 1), nextRun(scheduled, scheduled.Add(time.Minute)))

	// woke up days late
	late := scheduled.AddDate(0, 0, 3).Add(5 * time.Hour)
	assert.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), nextRun(scheduled, late))
}

func TestDownsizeReminderJob_StatsBeforeFirstRun(t *testing.T) {
	job := NewDownsizeReminderJob(newFakeClientRepo(), &fakePiercingRepo{}, &NotificationService{})
	assert.Nil(t, job.Stats().LastRun)
}

func TestDownsizeReminderJob_StartStopsOnCancel(t *testing.T) {
	job := NewDownsizeReminderJob(newFakeClientRepo(), &fakePiercingRepo{}, &NotificationService{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after cancel")
	}
}
