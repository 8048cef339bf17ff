package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"piercing-service/internal/models"
	"piercing-service/internal/repository"
	"piercing-service/utils"
)

type reminderSender interface {
	SendDownsizeReminder(ctx context.Context, req *models.ReminderRequest) (*models.SMSResponse, error)
}

// DownsizeReminderJob texts every client whose downsize falls on the next
// day. It runs once shortly after midnight.
type DownsizeReminderJob struct {
	clients   repository.IClientRepository
	piercings repository.IPiercingRepository
	notifier  reminderSender
	now       func() time.Time
	stats     reminderJobStats
}

type reminderJobStats struct {
	mu            sync.RWMutex
	lastRun       time.Time
	remindersSent int64
	failures      int64
}

// ReminderJobStats is a snapshot of the job's counters.
type ReminderJobStats struct {
	LastRun       *time.Time `json:"last_run,omitempty"`
	RemindersSent int64      `json:"reminders_sent"`
	Failures      int64      `json:"failures"`
}

func NewDownsizeReminderJob(clients repository.IClientRepository, piercings repository.IPiercingRepository, notifier reminderSender) *DownsizeReminderJob {
	return &DownsizeReminderJob{
		clients:   clients,
		piercings: piercings,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Start runs the job at every midnight until ctx is done. Each run covers the
// day after the midnight it was scheduled for, not the day the clock reads.
func (j *DownsizeReminderJob) Start(ctx context.Context) {
	slog.Info("Starting downsize reminder job")
	scheduled := utils.NextMidnight(j.now())
	for {
		timer := time.NewTimer(scheduled.Sub(j.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("Downsize reminder job stopped")
			return
		case <-timer.C:
			j.runFor(ctx, scheduled)
			scheduled = nextRun(scheduled, j.now())
		}
	}
}

// nextRun is the midnight after previous, or after now when the process fell
// more than a day behind.
func nextRun(previous, now time.Time) time.Time {
	next := utils.NextMidnight(previous)
	if !next.After(now) {
		return utils.NextMidnight(now)
	}
	return next
}

// RunOnce sends reminders for downsizes due tomorrow and returns how many
// texts went out.
func (j *DownsizeReminderJob) RunOnce(ctx context.Context) int {
	return j.runFor(ctx, j.now())
}

// runFor texts clients whose downsize falls on the day after day.
func (j *DownsizeReminderJob) runFor(ctx context.Context, day time.Time) int {
	from := utils.StartOfDay(day).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	due, err := j.piercings.GetDownsizesDueBetween(ctx, from, to)
	if err != nil {
		slog.Error("Failed to load due downsizes", "error", err)
		j.record(0, 1)
		return 0
	}

	var sent, failed int64
	for _, piercing := range due {
		if piercing.DownsizeDueDate == nil {
			continue
		}
		client, err := j.clients.GetClientByID(ctx, piercing.ClientID)
		if err != nil {
			slog.Error("Failed to load client for reminder", "client_id", piercing.ClientID, "error", err)
			failed++
			continue
		}

		resp, err := j.notifier.SendDownsizeReminder(ctx, &models.ReminderRequest{
			PhoneNumber:     client.Phone,
			ClientName:      client.FirstName,
			PiercingType:    piercing.PiercingType,
			DownsizeDueDate: piercing.DownsizeDueDate.Format(time.RFC3339),
		})
		switch {
		case err != nil:
			slog.Error("Reminder rejected", "record_id", piercing.RecordID, "error", err)
			failed++
		case resp.SMSSent:
			sent++
		default:
			slog.Info("Reminder not sent", "record_id", piercing.RecordID, "reason", resp.Message)
		}
	}

	j.record(sent, failed)
	slog.Info("Downsize reminder run complete", "due", len(due), "sent", sent, "failed", failed)
	return int(sent)
}

func (j *DownsizeReminderJob) record(sent, failed int64) {
	j.stats.mu.Lock()
	defer j.stats.mu.Unlock()
	j.stats.lastRun = j.now()
	j.stats.remindersSent += sent
	j.stats.failures += failed
}

func (j *DownsizeReminderJob) Stats() ReminderJobStats {
	j.stats.mu.RLock()
	defer j.stats.mu.RUnlock()
	stats := ReminderJobStats{
		RemindersSent: j.stats.remindersSent,
		Failures:      j.stats.failures,
	}
	if !j.stats.lastRun.IsZero() {
		lastRun := j.stats.lastRun
		stats.LastRun = &lastRun
	}
	return stats
}
