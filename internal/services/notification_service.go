package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"piercing-service/internal/event"
	"piercing-service/internal/models"
	"piercing-service/internal/phone"
	"piercing-service/internal/repository"
	"piercing-service/internal/rules"
	"piercing-service/utils"

	"github.com/google/uuid"
)

const reminderDateLayout = "Monday, January 2"

type INotificationService interface {
	SendAftercareSMS(ctx context.Context, req *models.SMSRequest) (*models.SMSResponse, error)
	SendDownsizeReminder(ctx context.Context, req *models.ReminderRequest) (*models.SMSResponse, error)
}

type NotificationService struct {
	engine    *rules.Engine
	sender    phone.Sender
	reminders repository.IReminderRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewNotificationService wires SMS dispatch. reminders and publisher may be
// nil; a nil sender disables SMS.
func NewNotificationService(engine *rules.Engine, sender phone.Sender, reminders repository.IReminderRepository, publisher EventPublisher) *NotificationService {
	if sender == nil {
		sender = phone.DisabledSender{}
	}
	return &NotificationService{
		engine:    engine,
		sender:    sender,
		reminders: reminders,
		publisher: publisher,
		now:       time.Now,
	}
}

// SendAftercareSMS texts aftercare instructions. Delivery problems are
// reported as sms_sent=false, never as an error.
func (s *NotificationService) SendAftercareSMS(ctx context.Context, req *models.SMSRequest) (*models.SMSResponse, error) {
	phoneNumber, err := validateRecipient(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	message := AftercareMessage(req.ClientName, req.PiercingType, s.engine, s.now())
	if !s.dispatch(ctx, phoneNumber, message) {
		return &models.SMSResponse{SMSSent: false, Message: "SMS could not be sent"}, nil
	}

	s.publish(ctx, event.AftercareSMSSent, req.PiercingType, nil)
	return &models.SMSResponse{SMSSent: true, Message: "SMS sent successfully"}, nil
}

// SendDownsizeReminder texts the downsize reminder at most once per phone,
// piercing type and due date.
func (s *NotificationService) SendDownsizeReminder(ctx context.Context, req *models.ReminderRequest) (*models.SMSResponse, error) {
	phoneNumber, err := validateRecipient(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(req.DownsizeDueDate)
	if err != nil {
		return nil, ValidationErrors{{Field: "downsize_due_date", Message: err.Error()}}
	}
	dueKey := dueDate.Format(time.DateOnly)

	if s.reminders != nil {
		first, err := s.reminders.MarkReminderSent(ctx, phoneNumber, req.PiercingType, dueKey)
		if err != nil {
			slog.Warn("Reminder de-duplication unavailable", "error", err)
		} else if !first {
			return &models.SMSResponse{SMSSent: false, Message: "Reminder already sent"}, nil
		}
	}

	message := ReminderMessage(req.ClientName, req.PiercingType, dueDate)
	if !s.dispatch(ctx, phoneNumber, message) {
		if s.reminders != nil {
			if err := s.reminders.ClearReminder(ctx, phoneNumber, req.PiercingType, dueKey); err != nil {
				slog.Warn("Failed to clear reminder marker", "error", err)
			}
		}
		return &models.SMSResponse{SMSSent: false, Message: "SMS could not be sent"}, nil
	}

	s.publish(ctx, event.DownsizeReminderSent, req.PiercingType, map[string]any{"downsize_due_date": dueKey})
	return &models.SMSResponse{SMSSent: true, Message: "Reminder sent successfully"}, nil
}

func (s *NotificationService) dispatch(ctx context.Context, phoneNumber, message string) bool {
	if err := s.sender.SendSMS(ctx, phoneNumber, message); err != nil {
		slog.Error("Error sending SMS", "error", err)
		return false
	}
	return true
}

func (s *NotificationService) publish(ctx context.Context, eventType event.PiercingEventType, piercingType string, additional map[string]any) {
	if s.publisher == nil {
		return
	}
	evt := event.PiercingEvent{
		ID:           uuid.NewString(),
		EventType:    eventType,
		PiercingType: piercingType,
		OccurredAt:   s.now().UTC(),
		Additional:   additional,
	}
	if err := s.publisher.PublishEvent(ctx, evt); err != nil {
		slog.Warn("Failed to publish piercing event", "event_type", eventType, "error", err)
	}
}

func validateRecipient(phoneNumber string) (string, error) {
	if _, err := utils.ValidatePhone(phoneNumber); err != nil {
		return "", ValidationErrors{{Field: "phone_number", Message: err.Error()}}
	}
	return utils.NormalizePhone(phoneNumber), nil
}

func parseDueDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("must be an ISO-8601 date")
}

func AftercareMessage(clientName, piercingType string, engine *rules.Engine, piercedAt time.Time) string {
	message := fmt.Sprintf("Hi %s! Thanks for getting your %s pierced at %s. "+
		"Clean it twice a day with sterile saline and avoid touching or twisting the jewelry.",
		clientName, piercingType, studioInfo.Name)

	if due, ok := engine.ResolveDownsizeDate(piercingType, piercedAt); ok {
		message += fmt.Sprintf(" Plan to come back for a jewelry downsize around %s.", due.Format(reminderDateLayout))
	}
	return message + fmt.Sprintf(" Questions? Call us at %s.", studioInfo.Phone)
}

func ReminderMessage(clientName, piercingType string, dueDate time.Time) string {
	return fmt.Sprintf("Hi %s, your %s piercing is ready for a jewelry downsize on %s. "+
		"Swapping to a shorter post helps it heal straight. Call %s to book your visit.",
		clientName, piercingType, dueDate.Format(reminderDateLayout), studioInfo.Phone)
}
