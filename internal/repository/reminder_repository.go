package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// IReminderRepository remembers which downsize reminders were already sent
// so repeated requests do not text the same client twice.
type IReminderRepository interface {
	// MarkReminderSent returns false when the reminder was already marked.
	MarkReminderSent(ctx context.Context, phoneNumber, piercingType, dueDate string) (bool, error)
	ClearReminder(ctx context.Context, phoneNumber, piercingType, dueDate string) error
}

type reminderRepository struct {
	client     *redis.Client
	expiration time.Duration
}

func NewReminderRepository(client *redis.Client, expiration time.Duration) IReminderRepository {
	return &reminderRepository{
		client:     client,
		expiration: expiration,
	}
}

func (r *reminderRepository) MarkReminderSent(ctx context.Context, phoneNumber, piercingType, dueDate string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.getReminderKey(phoneNumber, piercingType, dueDate), time.Now().Unix(), r.expiration).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder: %w", err)
	}
	return ok, nil
}

func (r *reminderRepository) ClearReminder(ctx context.Context, phoneNumber, piercingType, dueDate string) error {
	if err := r.client.Del(ctx, r.getReminderKey(phoneNumber, piercingType, dueDate)).Err(); err != nil {
		return fmt.Errorf("failed to clear reminder: %w", err)
	}
	return nil
}

func (r *reminderRepository) getReminderKey(phoneNumber, piercingType, dueDate string) string {
	return fmt.Sprintf("reminder:%s:%s:%s", phoneNumber, strings.ToLower(piercingType), dueDate)
}
