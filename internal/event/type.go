package event

import "time"

const PiercingQueue string = "piercing_events"

type PiercingEventType string

const (
	PiercingRecorded     PiercingEventType = "piercing_recorded"
	AftercareSMSSent     PiercingEventType = "aftercare_sms_sent"
	DownsizeReminderSent PiercingEventType = "downsize_reminder_sent"
)

type PiercingEvent struct {
	ID           string            `json:"id"`
	EventType    PiercingEventType `json:"event_type"`
	ClientID     string            `json:"client_id,omitempty"`
	RecordID     string            `json:"record_id,omitempty"`
	PiercingType string            `json:"piercing_type"`
	OccurredAt   time.Time         `json:"occurred_at"`
	Additional   map[string]any    `json:"additional,omitempty"`
}
